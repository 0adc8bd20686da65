package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"byoma-backend/controllers"
	"byoma-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public site endpoints and the guarded admin API.
func SetupRouter(api *controllers.API, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public site: read-only catalog plus the forms visitors can submit.
	public := r.Group("/api")
	{
		public.POST("/contact", api.Contact.Submit)

		site := public.Group("/public")
		{
			site.GET("/room-types", api.Public.RoomTypes)
			site.GET("/menu", api.Public.Menu)
			site.GET("/events", api.Public.Events)
			site.POST("/table-reservations", api.TableReservations.Create)
			site.POST("/event-bookings", api.EventBookings.Create)
		}

		auth := public.Group("/auth")
		{
			auth.POST("/login", api.Auth.Login)
			auth.POST("/signup", api.Auth.Signup)
		}
	}

	// Admin panel: everything past here requires a valid session, then a
	// section check matching the sidebar visibility rules.
	admin := r.Group("/api/admin", middleware.SessionGuard(db))
	{
		admin.GET("/me", api.Auth.Me)
		admin.GET("/sections", api.Dashboard.GetSections)

		dashboard := admin.Group("/dashboard", middleware.RequireSection(middleware.SectionDashboard))
		{
			dashboard.GET("/stats", api.Dashboard.GetStats)
		}

		rooms := admin.Group("", middleware.RequireSection(middleware.SectionRooms))
		{
			roomTypes := rooms.Group("/room-types")
			{
				roomTypes.GET("", api.RoomTypes.List)
				roomTypes.GET("/:id", api.RoomTypes.Get)
				roomTypes.POST("", api.RoomTypes.Create)
				roomTypes.PUT("/:id", api.RoomTypes.Update)
				roomTypes.DELETE("/:id", api.RoomTypes.Delete)
			}

			roomRoutes := rooms.Group("/rooms")
			{
				roomRoutes.GET("", api.Rooms.List)
				roomRoutes.GET("/:id", api.Rooms.Get)
				roomRoutes.POST("", api.Rooms.Create)
				roomRoutes.PUT("/:id", api.Rooms.Update)
				roomRoutes.PATCH("/:id/status", api.Rooms.UpdateStatus)
				roomRoutes.DELETE("/:id", api.Rooms.Delete)
			}
		}

		guests := admin.Group("/guests", middleware.RequireSection(middleware.SectionGuests))
		{
			guests.GET("", api.Guests.List)
			guests.GET("/:id", api.Guests.Get)
			guests.POST("", api.Guests.Create)
			guests.PUT("/:id", api.Guests.Update)
			guests.DELETE("/:id", api.Guests.Delete)
		}

		reservations := admin.Group("/reservations", middleware.RequireSection(middleware.SectionReservations))
		{
			reservations.GET("", api.Reservations.List)
			reservations.GET("/:id", api.Reservations.Get)
			reservations.POST("", api.Reservations.Create)
			reservations.PUT("/:id", api.Reservations.Update)
			reservations.PATCH("/:id/status", api.Reservations.UpdateStatus)
			reservations.DELETE("/:id", api.Reservations.Delete)
		}

		restaurant := admin.Group("/restaurant", middleware.RequireSection(middleware.SectionRestaurant))
		{
			categories := restaurant.Group("/menu-categories")
			{
				categories.GET("", api.MenuCategories.List)
				categories.POST("", api.MenuCategories.Create)
				categories.PUT("/:id", api.MenuCategories.Update)
				categories.DELETE("/:id", api.MenuCategories.Delete)
			}

			items := restaurant.Group("/menu-items")
			{
				items.GET("", api.MenuItems.List)
				items.GET("/:id", api.MenuItems.Get)
				items.POST("", api.MenuItems.Create)
				items.PUT("/:id", api.MenuItems.Update)
				items.DELETE("/:id", api.MenuItems.Delete)
			}

			specials := restaurant.Group("/daily-specials")
			{
				specials.GET("", api.DailySpecials.List)
				specials.POST("", api.DailySpecials.Create)
				specials.PUT("/:id", api.DailySpecials.Update)
				specials.DELETE("/:id", api.DailySpecials.Delete)
			}

			tables := restaurant.Group("/table-reservations")
			{
				tables.GET("", api.TableReservations.List)
				tables.GET("/:id", api.TableReservations.Get)
				tables.POST("", api.TableReservations.Create)
				tables.PUT("/:id", api.TableReservations.Update)
				tables.PATCH("/:id/status", api.TableReservations.UpdateStatus)
				tables.DELETE("/:id", api.TableReservations.Delete)
			}
		}

		events := admin.Group("", middleware.RequireSection(middleware.SectionEvents))
		{
			venues := events.Group("/venues")
			{
				venues.GET("", api.Venues.List)
				venues.POST("", api.Venues.Create)
				venues.PUT("/:id", api.Venues.Update)
				venues.DELETE("/:id", api.Venues.Delete)
			}

			eventRoutes := events.Group("/events")
			{
				eventRoutes.GET("", api.Events.List)
				eventRoutes.GET("/:id", api.Events.Get)
				eventRoutes.POST("", api.Events.Create)
				eventRoutes.PUT("/:id", api.Events.Update)
				eventRoutes.PATCH("/:id/status", api.Events.UpdateStatus)
				eventRoutes.DELETE("/:id", api.Events.Delete)
			}

			bookings := events.Group("/event-bookings")
			{
				bookings.GET("", api.EventBookings.List)
				bookings.GET("/:id", api.EventBookings.Get)
				bookings.POST("", api.EventBookings.Create)
				bookings.PATCH("/:id/status", api.EventBookings.UpdateStatus)
				bookings.DELETE("/:id", api.EventBookings.Delete)
			}
		}

		messages := admin.Group("/messages", middleware.RequireSection(middleware.SectionMessages))
		{
			messages.GET("", api.Messages.List)
			messages.GET("/:id", api.Messages.Get)
			messages.PATCH("/:id/read", api.Messages.MarkRead)
			messages.PATCH("/:id/processed", api.Messages.MarkProcessed)
			messages.DELETE("/:id", api.Messages.Delete)
		}

		settings := admin.Group("/profiles", middleware.RequireSection(middleware.SectionSettings))
		{
			settings.GET("", api.Profiles.List)
			settings.GET("/:id", api.Profiles.Get)
			settings.POST("", api.Profiles.Create)
			settings.PUT("/:id", api.Profiles.Update)
			settings.DELETE("/:id", api.Profiles.Delete)
		}
	}

	return r
}
