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

type RoomTypeStore interface {
	FetchAll(ctx context.Context, isActive *bool) ([]models.RoomTypeDetails, error)
	FetchByID(ctx context.Context, id int) (*models.RoomTypeDetails, error)
	Create(ctx context.Context, req models.CreateRoomTypeRequest, actor string) (models.CreateRoomTypeResponse, error)
	Update(ctx context.Context, req models.UpdateRoomTypeRequest, actor string) (models.UpdateRoomTypeResponse, error)
	ToggleActive(ctx context.Context, id int, active bool, actor string) (models.RoomTypeToggleResponse, error)
	Deactivate(ctx context.Context, id int, actor string) (models.RoomTypeToggleResponse, error)
	HardDelete(ctx context.Context, id int, actor string) (models.DeleteRoomTypeResponse, error)
}

// RoomTypeController offers both a soft delete (Deactivate) and a hard
// delete (DeleteRoomType); callers pick the one they mean.
type RoomTypeController struct {
	RoomTypes RoomTypeStore
}

func NewRoomTypeController(store RoomTypeStore) *RoomTypeController {
	return &RoomTypeController{RoomTypes: store}
}

// GET /api/RoomType/AllRoomTypes?IsActive=
func (c *RoomTypeController) GetAllRoomTypes(ctx *gin.Context) {
	var query models.RoomTypeListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		rejectInvalid[[]models.RoomTypeDetails](ctx, err)
		return
	}

	types, err := c.RoomTypes.FetchAll(ctx.Request.Context(), query.IsActive)
	if err != nil {
		fault[[]models.RoomTypeDetails](ctx, "An error occurred while processing your request.", err)
		return
	}
	utils.Success(ctx, types, "Room types fetched successfully.")
}

// GET /api/RoomType/GetRoomType/:id
func (c *RoomTypeController) GetRoomTypeByID(ctx *gin.Context) {
	id, ok := bindID[models.RoomTypeDetails](ctx)
	if !ok {
		return
	}

	roomType, err := c.RoomTypes.FetchByID(ctx.Request.Context(), id)
	if err != nil {
		fault[models.RoomTypeDetails](ctx, "Error fetching room type", err)
		return
	}
	if roomType == nil {
		utils.Failure[models.RoomTypeDetails](ctx, http.StatusNotFound, fmt.Sprintf("Room type with Id %d not found", id))
		return
	}
	utils.Success(ctx, *roomType, "Room type fetched successfully.")
}

// POST /api/RoomType/AddRoomType
func (c *RoomTypeController) CreateRoomType(ctx *gin.Context) {
	var req models.CreateRoomTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rejectInvalid[models.CreateRoomTypeResponse](ctx, err)
		return
	}

	result, err := c.RoomTypes.Create(ctx.Request.Context(), req, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.CreateRoomTypeResponse](ctx, "Room Type Creation Failed", err)
		return
	}
	if !result.IsCreated {
		utils.Failure[models.CreateRoomTypeResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// PUT /api/RoomType/Update/:id
func (c *RoomTypeController) UpdateRoomType(ctx *gin.Context) {
	id, ok := bindID[models.UpdateRoomTypeResponse](ctx)
	if !ok {
		return
	}
	var req models.UpdateRoomTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rejectInvalid[models.UpdateRoomTypeResponse](ctx, err)
		return
	}
	if id != req.RoomTypeID {
		utils.Failure[models.UpdateRoomTypeResponse](ctx, http.StatusBadRequest, "Mismatched Room Type ID")
		return
	}

	result, err := c.RoomTypes.Update(ctx.Request.Context(), req, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.UpdateRoomTypeResponse](ctx, "Room Type Update Failed", err)
		return
	}
	if !result.IsUpdated {
		utils.Failure[models.UpdateRoomTypeResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// POST /api/RoomType/ActiveInActive?RoomTypeId=&IsActive=
func (c *RoomTypeController) ToggleRoomTypeActive(ctx *gin.Context) {
	var query models.RoomTypeToggleQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		rejectInvalid[models.RoomTypeToggleResponse](ctx, err)
		return
	}

	result, err := c.RoomTypes.ToggleActive(ctx.Request.Context(), query.RoomTypeID, *query.IsActive, middleware.ActorFrom(ctx))
	c.respondToggle(ctx, result, err)
}

// POST /api/RoomType/Deactivate/:id
func (c *RoomTypeController) DeactivateRoomType(ctx *gin.Context) {
	id, ok := bindID[models.RoomTypeToggleResponse](ctx)
	if !ok {
		return
	}

	result, err := c.RoomTypes.Deactivate(ctx.Request.Context(), id, middleware.ActorFrom(ctx))
	c.respondToggle(ctx, result, err)
}

func (c *RoomTypeController) respondToggle(ctx *gin.Context, result models.RoomTypeToggleResponse, err error) {
	if err != nil {
		fault[models.RoomTypeToggleResponse](ctx, "Room Type Status Change Failed", err)
		return
	}
	if !result.IsUpdated {
		utils.Failure[models.RoomTypeToggleResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// DELETE /api/RoomType/Delete/:id removes the row for good.
func (c *RoomTypeController) DeleteRoomType(ctx *gin.Context) {
	id, ok := bindID[models.DeleteRoomTypeResponse](ctx)
	if !ok {
		return
	}

	result, err := c.RoomTypes.HardDelete(ctx.Request.Context(), id, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.DeleteRoomTypeResponse](ctx, "Room Type Deletion Failed", err)
		return
	}
	switch {
	case result.NotFound:
		utils.Failure[models.DeleteRoomTypeResponse](ctx, http.StatusNotFound, result.Message)
	case !result.IsDeleted:
		utils.Failure[models.DeleteRoomTypeResponse](ctx, http.StatusBadRequest, result.Message)
	default:
		utils.Success(ctx, result, result.Message)
	}
}
