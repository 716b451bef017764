package routes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"hotel-booking-api/config"
	"hotel-booking-api/controllers"
	"hotel-booking-api/middleware"
	"hotel-booking-api/utils"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Amenity  *controllers.AmenityController
	Room     *controllers.RoomController
	RoomType *controllers.RoomTypeController
	User     *controllers.UserController
}

func parseCorsOrigins(configured []string) []string {
	origins := make([]string, 0, len(configured))
	for _, part := range configured {
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

func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			utils.Fault[gin.H](c, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
		utils.Success(c, gin.H{"status": "ok"}, "Service healthy")
	}
}

// SetupRouter wires middleware and every endpoint onto a new engine.
func SetupRouter(cfg config.ServerConfig, db Pinger, ctl Controllers) *gin.Engine {
	r := gin.New()

	origins := parseCorsOrigins(cfg.CorsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.ActorHeader, middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: allowCredentials,
			MaxAge:           12 * time.Hour,
		}),
		middleware.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst),
		middleware.Actor(cfg.DefaultActor),
	)

	r.GET("/health", health(db))

	api := r.Group("/api")
	{
		amenities := api.Group("/Amenity")
		{
			amenities.GET("/Fetch", ctl.Amenity.FetchAmenities)
			amenities.GET("/Fetch/:id", ctl.Amenity.FetchAmenityByID)
			amenities.POST("/Add", ctl.Amenity.AddAmenity)
			amenities.PUT("/Update/:id", ctl.Amenity.UpdateAmenity)
			amenities.DELETE("/Delete/:id", ctl.Amenity.DeleteAmenity)
			amenities.POST("/BulkInsert", ctl.Amenity.BulkInsertAmenities)
		}

		rooms := api.Group("/Room")
		{
			// static segments before /:id
			rooms.GET("/All", ctl.Room.GetAllRooms)
			rooms.POST("/Create", ctl.Room.CreateRoom)
			rooms.PUT("/Update/:id", ctl.Room.UpdateRoom)
			rooms.DELETE("/Delete/:id", ctl.Room.DeleteRoom)
			rooms.GET("/:id", ctl.Room.GetRoomByID)
		}

		roomTypes := api.Group("/RoomType")
		{
			roomTypes.GET("/AllRoomTypes", ctl.RoomType.GetAllRoomTypes)
			roomTypes.GET("/GetRoomType/:id", ctl.RoomType.GetRoomTypeByID)
			roomTypes.POST("/AddRoomType", ctl.RoomType.CreateRoomType)
			roomTypes.PUT("/Update/:id", ctl.RoomType.UpdateRoomType)
			roomTypes.POST("/ActiveInActive", ctl.RoomType.ToggleRoomTypeActive)
			roomTypes.POST("/Deactivate/:id", ctl.RoomType.DeactivateRoomType)
			roomTypes.DELETE("/Delete/:id", ctl.RoomType.DeleteRoomType)
		}

		users := api.Group("/User")
		{
			users.POST("/AddUser", ctl.User.AddUser)
			users.POST("/AssignRole", ctl.User.AssignRole)
			users.GET("/AllUsers", ctl.User.GetAllUsers)
			users.GET("/GetUser/:id", ctl.User.GetUserByID)
			users.PUT("/Update/:id", ctl.User.UpdateUser)
			users.DELETE("/Delete/:id", ctl.User.DeleteUser)
			users.POST("/Login", ctl.User.LoginUser)
			users.POST("/ToggleActive", ctl.User.ToggleUserActive)
		}
	}

	return r
}
