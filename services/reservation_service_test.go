package services

import (
	"testing"
	"time"

	"byoma-backend/models"
)

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	if n := Nights(day(1), day(4)); n != 3 {
		t.Errorf("3 full days = %d nights, want 3", n)
	}
	if n := Nights(day(1), day(2)); n != 1 {
		t.Errorf("1 full day = %d nights, want 1", n)
	}

	// Partial days round up: 15:00 arrival to 11:00 departure is one night.
	in := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	out := time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC)
	if n := Nights(in, out); n != 1 {
		t.Errorf("partial day = %d nights, want 1", n)
	}
}

func TestReservationCreateComputesTotal(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)

	rt := models.RoomType{Name: "Standard", BasePrice: 45000}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seed room type: %v", err)
	}
	guest := models.Guest{FirstName: "Awa", LastName: "Koné"}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	res, err := svc.Create(ReservationInput{
		GuestID:      guest.ID,
		RoomTypeID:   rt.ID,
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		NumGuests:    2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if res.TotalPrice == nil || *res.TotalPrice != 135000 {
		t.Errorf("total = %v, want 135000", res.TotalPrice)
	}
	if res.Status != models.ReservationPending {
		t.Errorf("status = %q, want pending", res.Status)
	}
	if res.ReservationNumber == "" {
		t.Error("reservation number not assigned")
	}
	if res.Guest == nil || res.Guest.FirstName != "Awa" {
		t.Error("guest not preloaded on the returned record")
	}
}

func TestReservationCreateUnknownRoomType(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)

	res, err := svc.Create(ReservationInput{
		GuestID:      1,
		RoomTypeID:   999,
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		NumGuests:    1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.TotalPrice == nil || *res.TotalPrice != 0 {
		t.Errorf("total = %v, want 0 for unknown room type", res.TotalPrice)
	}
}

// Editing the dates afterwards must not touch the stored total; the price is
// fixed at creation time.
func TestReservationTotalNotRecomputedOnDateEdit(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)

	rt := models.RoomType{Name: "Standard", BasePrice: 45000}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seed room type: %v", err)
	}

	res, err := svc.Create(ReservationInput{
		GuestID:      1,
		RoomTypeID:   rt.ID,
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		NumGuests:    1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if *res.TotalPrice != 45000 {
		t.Fatalf("initial total = %v", *res.TotalPrice)
	}

	updated, err := svc.Store.UpdateByID(res.ID, map[string]any{
		"check_out_date": time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TotalPrice == nil || *updated.TotalPrice != 45000 {
		t.Errorf("total after date edit = %v, want unchanged 45000", updated.TotalPrice)
	}
}
