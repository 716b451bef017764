package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-api/middleware"
	"hotel-booking-api/utils"
)

// rejectInvalid answers a request that failed binding or validation. These
// are client mistakes and are not logged.
func rejectInvalid[T any](ctx *gin.Context, err error) {
	utils.Failure[T](ctx, http.StatusBadRequest, validationMessage(err))
}

// fault answers an unexpected repository error with a generic message and
// the raw error as detail.
func fault[T any](ctx *gin.Context, message string, err error) {
	log.Printf("❌ %s %s: %s: %v (rid=%s)", ctx.Request.Method, ctx.Request.URL.Path, message, err, middleware.RequestIDFrom(ctx))
	utils.Fault[T](ctx, http.StatusInternalServerError, message, err)
}
