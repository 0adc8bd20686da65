package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"byoma-backend/models"
)

func reservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rc := NewReservationController(db)
	r := gin.New()
	r.GET("/reservations", rc.List)
	r.POST("/reservations", rc.Create)
	r.PUT("/reservations/:id", rc.Update)
	r.PATCH("/reservations/:id/status", rc.UpdateStatus)
	return r
}

func TestReservationCreateEndpoint(t *testing.T) {
	db := openTestDB(t)
	r := reservationRouter(db)

	rt := models.RoomType{Name: "Standard", BasePrice: 45000}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seed room type: %v", err)
	}
	guest := models.Guest{FirstName: "Awa", LastName: "Koné"}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	payload := fmt.Sprintf(
		`{"guest_id":%d,"room_type_id":%d,"check_in_date":"2026-09-01","check_out_date":"2026-09-04","num_guests":2}`,
		guest.ID, rt.ID)
	w := doJSON(r, http.MethodPost, "/reservations", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %s)", w.Code, w.Body.String())
	}

	var created models.Reservation
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}
	if created.TotalPrice == nil || *created.TotalPrice != 135000 {
		t.Errorf("total = %v, want 135000", created.TotalPrice)
	}
	if !strings.HasPrefix(created.ReservationNumber, "RES-") {
		t.Errorf("reservation number = %q", created.ReservationNumber)
	}
	if created.Status != models.ReservationPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
}

func TestReservationCreateValidation(t *testing.T) {
	db := openTestDB(t)
	r := reservationRouter(db)

	cases := []struct {
		name    string
		payload string
	}{
		{"missing guest", `{"room_type_id":1,"check_in_date":"2026-09-01","check_out_date":"2026-09-02","num_guests":1}`},
		{"zero guests", `{"guest_id":1,"room_type_id":1,"check_in_date":"2026-09-01","check_out_date":"2026-09-02","num_guests":0}`},
		{"bad date", `{"guest_id":1,"room_type_id":1,"check_in_date":"01/09/2026","check_out_date":"2026-09-02","num_guests":1}`},
	}
	for _, tc := range cases {
		if w := doJSON(r, http.MethodPost, "/reservations", tc.payload); w.Code != http.StatusBadRequest {
			t.Errorf("%s = %d, want 400", tc.name, w.Code)
		}
	}
}

func TestReservationDateEditKeepsTotal(t *testing.T) {
	db := openTestDB(t)
	r := reservationRouter(db)

	rt := models.RoomType{Name: "Standard", BasePrice: 45000}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seed room type: %v", err)
	}

	payload := fmt.Sprintf(
		`{"guest_id":1,"room_type_id":%d,"check_in_date":"2026-09-01","check_out_date":"2026-09-02","num_guests":1}`,
		rt.ID)
	w := doJSON(r, http.MethodPost, "/reservations", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %s)", w.Code, w.Body.String())
	}
	var created models.Reservation
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/reservations/%d", created.ID),
		`{"check_out_date":"2026-09-10"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d (body %s)", w.Code, w.Body.String())
	}
	var updated models.Reservation
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal updated: %v", err)
	}
	if updated.TotalPrice == nil || *updated.TotalPrice != 45000 {
		t.Errorf("total after date edit = %v, want unchanged 45000", updated.TotalPrice)
	}
}
