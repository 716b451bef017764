package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-api/middleware"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"
)

// AmenityStore is what AmenityController needs from the amenity repository.
type AmenityStore interface {
	FetchAll(ctx context.Context, isActive *bool) (models.AmenityFetchResult, error)
	FetchByID(ctx context.Context, id int) (*models.AmenityDetails, error)
	Insert(ctx context.Context, payload models.AmenityInsert, actor string) (models.AmenityInsertResult, error)
	Update(ctx context.Context, payload models.AmenityUpdate, actor string) (models.AmenityUpdateResult, error)
	Delete(ctx context.Context, id int, actor string) (models.AmenityDeleteResult, error)
	BulkInsert(ctx context.Context, items []models.AmenityInsert, actor string) (models.AmenityBulkResult, error)
}

type AmenityController struct {
	Amenities AmenityStore
}

func NewAmenityController(store AmenityStore) *AmenityController {
	return &AmenityController{Amenities: store}
}

// GET /api/Amenity/Fetch?isActive=
func (c *AmenityController) FetchAmenities(ctx *gin.Context) {
	var query models.AmenityFetchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		rejectInvalid[models.AmenityFetchResult](ctx, err)
		return
	}

	result, err := c.Amenities.FetchAll(ctx.Request.Context(), query.IsActive)
	if err != nil {
		fault[models.AmenityFetchResult](ctx, "An error occurred while processing your request.", err)
		return
	}
	if !result.IsSuccess {
		utils.Failure[models.AmenityFetchResult](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, "Retrieved all amenities")
}

// GET /api/Amenity/Fetch/:id
func (c *AmenityController) FetchAmenityByID(ctx *gin.Context) {
	id, ok := bindID[models.AmenityDetails](ctx)
	if !ok {
		return
	}

	amenity, err := c.Amenities.FetchByID(ctx.Request.Context(), id)
	if err != nil {
		fault[models.AmenityDetails](ctx, "An error occurred while processing your request", err)
		return
	}
	if amenity == nil {
		utils.Failure[models.AmenityDetails](ctx, http.StatusNotFound, fmt.Sprintf("Amenity with Id %d not found", id))
		return
	}
	utils.Success(ctx, *amenity, "Amenity Retrieved Successfully")
}

// POST /api/Amenity/Add
func (c *AmenityController) AddAmenity(ctx *gin.Context) {
	var payload models.AmenityInsert
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		rejectInvalid[models.AmenityInsertResult](ctx, err)
		return
	}

	result, err := c.Amenities.Insert(ctx.Request.Context(), payload, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.AmenityInsertResult](ctx, "Amenity Creation Failed", err)
		return
	}
	if !result.IsCreated {
		utils.Failure[models.AmenityInsertResult](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// PUT /api/Amenity/Update/:id
func (c *AmenityController) UpdateAmenity(ctx *gin.Context) {
	id, ok := bindID[models.AmenityUpdateResult](ctx)
	if !ok {
		return
	}
	var payload models.AmenityUpdate
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		rejectInvalid[models.AmenityUpdateResult](ctx, err)
		return
	}
	if id != payload.AmenityID {
		utils.Failure[models.AmenityUpdateResult](ctx, http.StatusBadRequest, "Mismatched Amenity ID")
		return
	}

	result, err := c.Amenities.Update(ctx.Request.Context(), payload, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.AmenityUpdateResult](ctx, "Error occurred while processing your request", err)
		return
	}
	if !result.IsUpdated {
		utils.Failure[models.AmenityUpdateResult](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// DELETE /api/Amenity/Delete/:id
func (c *AmenityController) DeleteAmenity(ctx *gin.Context) {
	id, ok := bindID[models.AmenityDeleteResult](ctx)
	if !ok {
		return
	}

	result, err := c.Amenities.Delete(ctx.Request.Context(), id, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.AmenityDeleteResult](ctx, "Error occurred while trying to process your request", err)
		return
	}
	switch {
	case result.NotFound:
		utils.Failure[models.AmenityDeleteResult](ctx, http.StatusNotFound, result.Message)
	case !result.IsDeleted:
		utils.Failure[models.AmenityDeleteResult](ctx, http.StatusBadRequest, result.Message)
	default:
		utils.Success(ctx, result, result.Message)
	}
}

var errEmptyBatch = errors.New("at least one amenity is required")

// POST /api/Amenity/BulkInsert
func (c *AmenityController) BulkInsertAmenities(ctx *gin.Context) {
	var items []models.AmenityInsert
	if err := ctx.ShouldBindJSON(&items); err != nil {
		rejectInvalid[models.AmenityBulkResult](ctx, err)
		return
	}
	if len(items) == 0 {
		rejectInvalid[models.AmenityBulkResult](ctx, errEmptyBatch)
		return
	}

	result, err := c.Amenities.BulkInsert(ctx.Request.Context(), items, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.AmenityBulkResult](ctx, "Bulk Insert Failed", err)
		return
	}
	if !result.IsSuccess {
		utils.Failure[models.AmenityBulkResult](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}
