package services

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"byoma-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
		&models.Venue{},
		&models.Event{},
		&models.EventBooking{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.DailySpecial{},
		&models.TableReservation{},
		&models.ContactMessage{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestStoreCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	store := NewStore[models.Guest](db, "guests", "last_name")

	guest := models.Guest{FirstName: "Awa", LastName: "Koné", Email: "awa@example.com"}
	if err := store.Create(&guest); err != nil {
		t.Fatalf("create: %v", err)
	}
	if guest.ID == 0 {
		t.Fatal("create should assign an id")
	}

	got, err := store.GetByID(guest.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "awa@example.com" {
		t.Errorf("email = %q", got.Email)
	}
}

func TestStoreGetMissingIsNotFound(t *testing.T) {
	db := openTestDB(t)
	store := NewStore[models.Guest](db, "guests", "last_name")

	_, err := store.GetByID(999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatal("error should carry a StoreError message")
	}
	if storeErr.Message != "enregistrement introuvable" {
		t.Errorf("message = %q", storeErr.Message)
	}
}

func TestStoreListOrderAndFilters(t *testing.T) {
	db := openTestDB(t)
	store := NewStore[models.Guest](db, "guests", "last_name")

	for _, g := range []models.Guest{
		{FirstName: "Moussa", LastName: "Traoré", Nationality: "CI"},
		{FirstName: "Awa", LastName: "Koné", Nationality: "CI"},
		{FirstName: "Fatou", LastName: "Diallo", Nationality: "SN"},
	} {
		guest := g
		if err := store.Create(&guest); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("list = %d records, want 3", len(all))
	}
	if all[0].LastName != "Diallo" || all[2].LastName != "Traoré" {
		t.Errorf("list order = [%s %s %s]", all[0].LastName, all[1].LastName, all[2].LastName)
	}

	local, err := store.List(Where("nationality = ?", "CI"))
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(local) != 2 {
		t.Errorf("filtered list = %d records, want 2", len(local))
	}

	n, err := store.Count(Where("nationality = ?", "SN"))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestStoreUpdateByID(t *testing.T) {
	db := openTestDB(t)
	store := NewStore[models.Guest](db, "guests", "last_name")

	guest := models.Guest{FirstName: "Awa", LastName: "Koné"}
	if err := store.Create(&guest); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := store.UpdateByID(guest.ID, map[string]any{
		"phone": "+225 07 00 00 00",
		"id":    999, // protected, must be ignored
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != "+225 07 00 00 00" {
		t.Errorf("phone = %q", updated.Phone)
	}
	if updated.ID != guest.ID {
		t.Errorf("id changed to %d", updated.ID)
	}

	if _, err := store.UpdateByID(999, map[string]any{"phone": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing = %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteByID(t *testing.T) {
	db := openTestDB(t)
	store := NewStore[models.Guest](db, "guests", "last_name")

	guest := models.Guest{FirstName: "Awa", LastName: "Koné"}
	if err := store.Create(&guest); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.DeleteByID(guest.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(guest.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	if err := store.DeleteByID(guest.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

// Deletes are hard deletes: removing room "101" and adding it back is a
// routine admin flow, so no tombstone may hold the unique room number.
func TestStoreDeleteThenRecreateSameUniqueValue(t *testing.T) {
	db := openTestDB(t)
	store := NewStore[models.Room](db, "rooms", "room_number")

	first := models.Room{RoomNumber: "101"}
	if err := store.Create(&first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.DeleteByID(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var remaining int64
	if err := db.Table("rooms").Count(&remaining).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("delete left %d row(s) behind", remaining)
	}

	second := models.Room{RoomNumber: "101"}
	if err := store.Create(&second); err != nil {
		t.Fatalf("recreate with same room number: %v", err)
	}
}

func TestStorePreloads(t *testing.T) {
	db := openTestDB(t)
	roomTypes := NewStore[models.RoomType](db, "room_types", "name")
	rooms := NewStore[models.Room](db, "rooms", "room_number", "RoomType")

	rt := models.RoomType{Name: "Deluxe", BasePrice: 75000}
	if err := roomTypes.Create(&rt); err != nil {
		t.Fatalf("create room type: %v", err)
	}
	room := models.Room{RoomNumber: "101", RoomTypeID: &rt.ID}
	if err := rooms.Create(&room); err != nil {
		t.Fatalf("create room: %v", err)
	}

	got, err := rooms.GetByID(room.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RoomType == nil || got.RoomType.Name != "Deluxe" {
		t.Errorf("room type not preloaded: %+v", got.RoomType)
	}
}
