package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"byoma-backend/models"
)

// SeedDatabase inserts the bootstrap admin account and a starter catalog
// when the tables are empty. Safe to run on every startup.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Profile{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Profile{
				Email:    "admin@byoma.ci",
				Password: string(hash),
				FullName: "Administrateur",
				Role:     models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{
				Name:        "Chambre Standard",
				Description: "Chambre confortable avec lit queen size",
				Capacity:    2,
				BasePrice:   45000,
				TotalRooms:  10,
				Amenities:   models.StringList{"Wifi", "Climatisation", "TV"},
			},
			{
				Name:        "Chambre Deluxe",
				Description: "Chambre spacieuse avec vue sur la lagune",
				Capacity:    2,
				BasePrice:   75000,
				TotalRooms:  6,
				Amenities:   models.StringList{"Wifi", "Climatisation", "TV", "Minibar", "Balcon"},
			},
			{
				Name:        "Suite Junior",
				Description: "Suite avec salon séparé",
				Capacity:    3,
				BasePrice:   120000,
				TotalRooms:  4,
				Amenities:   models.StringList{"Wifi", "Climatisation", "TV", "Minibar", "Salon", "Baignoire"},
			},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")
		}
	}

	var mcCount int64
	DB.Model(&models.MenuCategory{}).Count(&mcCount)
	if mcCount == 0 {
		categories := []models.MenuCategory{
			{Name: "Entrées", DisplayOrder: 1},
			{Name: "Plats", DisplayOrder: 2},
			{Name: "Desserts", DisplayOrder: 3},
			{Name: "Boissons", DisplayOrder: 4},
		}
		if err := DB.Create(&categories).Error; err != nil {
			log.Printf("warning: failed to seed menu categories: %v", err)
		} else {
			log.Println("MenuCategories seeded")
		}
	}

	var venueCount int64
	DB.Model(&models.Venue{}).Count(&venueCount)
	if venueCount == 0 {
		venues := []models.Venue{
			{Name: "Salle Akwaba", Capacity: 120, Description: "Grande salle de réception"},
			{Name: "Terrasse Lagune", Capacity: 60, Description: "Terrasse extérieure face à la lagune"},
		}
		if err := DB.Create(&venues).Error; err != nil {
			log.Printf("warning: failed to seed venues: %v", err)
		} else {
			log.Println("Venues seeded")
		}
	}
}
