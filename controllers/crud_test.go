package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
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

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func roomRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rc := NewRoomController(db)
	r := gin.New()
	r.GET("/rooms", rc.List)
	r.GET("/rooms/:id", rc.Get)
	r.POST("/rooms", rc.Create)
	r.PUT("/rooms/:id", rc.Update)
	r.PATCH("/rooms/:id/status", rc.UpdateStatus)
	r.DELETE("/rooms/:id", rc.Delete)
	return r
}

func TestRoomCRUDRoundTrip(t *testing.T) {
	db := openTestDB(t)
	r := roomRouter(db)

	w := doJSON(r, http.MethodPost, "/rooms", `{"room_number":"101","floor":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %s)", w.Code, w.Body.String())
	}
	var created models.Room
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/rooms/%d", created.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/rooms/%d", created.ID), `{"notes":"vue lagune"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d (body %s)", w.Code, w.Body.String())
	}
	var updated models.Room
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal updated: %v", err)
	}
	if updated.Notes != "vue lagune" {
		t.Errorf("notes = %q", updated.Notes)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/rooms/%d", created.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, fmt.Sprintf("/rooms/%d", created.ID), ""); w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", w.Code)
	}
}

func TestRoomCreateRejectsBadPayload(t *testing.T) {
	r := roomRouter(openTestDB(t))

	if w := doJSON(r, http.MethodPost, "/rooms", `{"floor":1}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing room number = %d, want 400", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/rooms", `{"room_number":"101","room_type_id":999}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown room type = %d, want 400", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/rooms", `{"room_number":"101","status":"flooded"}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown status = %d, want 400", w.Code)
	}
}

// Status changes accept any value of the enumeration from any current value;
// nothing orders pending before confirmed before checked_in.
func TestStatusChangeHasNoTransitionTable(t *testing.T) {
	db := openTestDB(t)
	r := roomRouter(db)

	room := models.Room{RoomNumber: "301", Status: models.RoomAvailable}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}

	// Walk the enum in an arbitrary order, including a repeat.
	sequence := []string{
		models.RoomMaintenance,
		models.RoomOccupied,
		models.RoomAvailable,
		models.RoomCleaning,
		models.RoomOccupied,
	}
	for _, status := range sequence {
		w := doJSON(r, http.MethodPatch, fmt.Sprintf("/rooms/%d/status", room.ID),
			fmt.Sprintf(`{"status":%q}`, status))
		if w.Code != http.StatusOK {
			t.Fatalf("set status %q = %d (body %s)", status, w.Code, w.Body.String())
		}
		var got models.Room
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Status != status {
			t.Errorf("status = %q, want %q", got.Status, status)
		}
	}

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/rooms/%d/status", room.ID), `{"status":"flooded"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown status = %d, want 400", w.Code)
	}
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/rooms/%d/status", room.ID), `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty status = %d, want 400", w.Code)
	}
}

func TestListSearchAndStatusParams(t *testing.T) {
	db := openTestDB(t)
	r := roomRouter(db)

	for _, room := range []models.Room{
		{RoomNumber: "101", Status: models.RoomAvailable, Notes: "vue jardin"},
		{RoomNumber: "102", Status: models.RoomOccupied, Notes: "vue jardin"},
		{RoomNumber: "201", Status: models.RoomAvailable},
	} {
		rec := room
		if err := db.Create(&rec).Error; err != nil {
			t.Fatalf("seed room: %v", err)
		}
	}

	decode := func(w *httptest.ResponseRecorder) []models.Room {
		var rooms []models.Room
		if err := json.Unmarshal(w.Body.Bytes(), &rooms); err != nil {
			t.Fatalf("unmarshal list: %v", err)
		}
		return rooms
	}

	if got := decode(doJSON(r, http.MethodGet, "/rooms", "")); len(got) != 3 {
		t.Errorf("unfiltered list = %d rooms", len(got))
	}
	if got := decode(doJSON(r, http.MethodGet, "/rooms?q=jardin", "")); len(got) != 2 {
		t.Errorf("q=jardin = %d rooms, want 2", len(got))
	}
	if got := decode(doJSON(r, http.MethodGet, "/rooms?status=available", "")); len(got) != 2 {
		t.Errorf("status=available = %d rooms, want 2", len(got))
	}
	// Both params intersect.
	got := decode(doJSON(r, http.MethodGet, "/rooms?q=jardin&status=available", ""))
	if len(got) != 1 || got[0].RoomNumber != "101" {
		t.Errorf("q+status = %v", got)
	}
}

// Amenity lists sent as JSON arrays must survive a map-based update into the
// JSON column and come back as a slice.
func TestUpdatePreservesListColumns(t *testing.T) {
	db := openTestDB(t)
	gin.SetMode(gin.TestMode)
	rtc := NewRoomTypeController(db)
	r := gin.New()
	r.POST("/room-types", rtc.Create)
	r.PUT("/room-types/:id", rtc.Update)

	w := doJSON(r, http.MethodPost, "/room-types", `{"name":"Deluxe","base_price":75000,"amenities":["Wifi","TV"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %s)", w.Code, w.Body.String())
	}
	var created models.RoomType
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/room-types/%d", created.ID),
		`{"amenities":["Wifi","TV","Minibar"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d (body %s)", w.Code, w.Body.String())
	}
	var updated models.RoomType
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal updated: %v", err)
	}
	if len(updated.Amenities) != 3 || updated.Amenities[2] != "Minibar" {
		t.Errorf("amenities = %#v", updated.Amenities)
	}
}

func TestRoomTypeDeleteConflict(t *testing.T) {
	db := openTestDB(t)
	gin.SetMode(gin.TestMode)
	rtc := NewRoomTypeController(db)
	r := gin.New()
	r.DELETE("/room-types/:id", rtc.Delete)

	rt := models.RoomType{Name: "Deluxe", BasePrice: 75000}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seed room type: %v", err)
	}
	room := models.Room{RoomNumber: "201", RoomTypeID: &rt.ID}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/room-types/%d", rt.ID), "")
	if w.Code != http.StatusConflict {
		t.Fatalf("delete in-use type = %d, want 409 (body %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "chambre") {
		t.Errorf("body should name the dependent rooms: %s", w.Body.String())
	}
}
