package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-api/middleware"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"
)

type RoomStore interface {
	FetchAll(ctx context.Context, roomTypeID *int, status string) ([]models.RoomDetails, error)
	FetchByID(ctx context.Context, id int) (*models.RoomDetails, error)
	Create(ctx context.Context, req models.CreateRoomRequest, actor string) (models.CreateRoomResponse, error)
	Update(ctx context.Context, req models.UpdateRoomRequest, actor string) (models.UpdateRoomResponse, error)
	Delete(ctx context.Context, id int, actor string) (models.DeleteRoomResponse, error)
}

type RoomController struct {
	Rooms RoomStore
}

func NewRoomController(store RoomStore) *RoomController {
	return &RoomController{Rooms: store}
}

// GET /api/Room/All?RoomTypeID=&Status=
func (c *RoomController) GetAllRooms(ctx *gin.Context) {
	var query models.RoomListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		rejectInvalid[[]models.RoomDetails](ctx, err)
		return
	}

	rooms, err := c.Rooms.FetchAll(ctx.Request.Context(), query.RoomTypeID, query.Status)
	if err != nil {
		fault[[]models.RoomDetails](ctx, "An error occurred while processing your request.", err)
		return
	}
	utils.Success(ctx, rooms, "Rooms fetched successfully.")
}

// GET /api/Room/:id
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	id, ok := bindID[models.RoomDetails](ctx)
	if !ok {
		return
	}

	room, err := c.Rooms.FetchByID(ctx.Request.Context(), id)
	if err != nil {
		fault[models.RoomDetails](ctx, "Error fetching room", err)
		return
	}
	if room == nil {
		utils.Failure[models.RoomDetails](ctx, http.StatusNotFound, fmt.Sprintf("Room with Id %d not found", id))
		return
	}
	utils.Success(ctx, *room, "Room fetched successfully.")
}

// POST /api/Room/Create
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req models.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rejectInvalid[models.CreateRoomResponse](ctx, err)
		return
	}

	result, err := c.Rooms.Create(ctx.Request.Context(), req, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.CreateRoomResponse](ctx, "Room Creation Failed", err)
		return
	}
	if !result.IsCreated {
		utils.Failure[models.CreateRoomResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// PUT /api/Room/Update/:id
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := bindID[models.UpdateRoomResponse](ctx)
	if !ok {
		return
	}
	var req models.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rejectInvalid[models.UpdateRoomResponse](ctx, err)
		return
	}
	if id != req.RoomID {
		utils.Failure[models.UpdateRoomResponse](ctx, http.StatusBadRequest, "Mismatched Room ID")
		return
	}

	result, err := c.Rooms.Update(ctx.Request.Context(), req, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.UpdateRoomResponse](ctx, "Room Update Failed", err)
		return
	}
	if !result.IsUpdated {
		utils.Failure[models.UpdateRoomResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// DELETE /api/Room/Delete/:id
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := bindID[models.DeleteRoomResponse](ctx)
	if !ok {
		return
	}

	result, err := c.Rooms.Delete(ctx.Request.Context(), id, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.DeleteRoomResponse](ctx, "Room Deletion Failed", err)
		return
	}
	switch {
	case result.NotFound:
		utils.Failure[models.DeleteRoomResponse](ctx, http.StatusNotFound, result.Message)
	case !result.IsDeleted:
		utils.Failure[models.DeleteRoomResponse](ctx, http.StatusBadRequest, result.Message)
	default:
		utils.Success(ctx, result, result.Message)
	}
}
