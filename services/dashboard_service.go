package services

import (
	"time"

	"gorm.io/gorm"

	"byoma-backend/models"
)

// DashboardStats mirrors the tiles on the admin landing page.
type DashboardStats struct {
	TotalRooms           int64            `json:"total_rooms"`
	ReservationsByStatus map[string]int64 `json:"reservations_by_status"`
	ArrivalsToday        int64            `json:"arrivals_today"`
	TotalGuests          int64            `json:"total_guests"`
	UnreadMessages       int64            `json:"unread_messages"`
	UpcomingEvents       int64            `json:"upcoming_events"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	today := time.Now().Format("2006-01-02")
	stats := &DashboardStats{ReservationsByStatus: map[string]int64{}}

	if err := s.db.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, storeErr("dashboard.rooms", err)
	}

	type statusCount struct {
		Status string
		N      int64
	}
	var counts []statusCount
	if err := s.db.Model(&models.Reservation{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, storeErr("dashboard.reservations", err)
	}
	for _, c := range counts {
		stats.ReservationsByStatus[c.Status] = c.N
	}

	if err := s.db.Model(&models.Reservation{}).
		Where("check_in_date = ?", today).
		Count(&stats.ArrivalsToday).Error; err != nil {
		return nil, storeErr("dashboard.arrivals", err)
	}
	if err := s.db.Model(&models.Guest{}).Count(&stats.TotalGuests).Error; err != nil {
		return nil, storeErr("dashboard.guests", err)
	}
	if err := s.db.Model(&models.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&stats.UnreadMessages).Error; err != nil {
		return nil, storeErr("dashboard.messages", err)
	}
	if err := s.db.Model(&models.Event{}).
		Where("event_date >= ?", today).
		Count(&stats.UpcomingEvents).Error; err != nil {
		return nil, storeErr("dashboard.events", err)
	}
	return stats, nil
}
