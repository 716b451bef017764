package utils

import (
	"github.com/gin-gonic/gin"

	"hotel-booking-api/models"
)

// Success writes data in the envelope with a 200 status.
func Success[T any](c *gin.Context, data T, message string) {
	resp := models.NewSuccess(data, message)
	c.JSON(resp.Code, resp)
}

// Failure writes an expected rejection; the status code is also the envelope code.
func Failure[T any](c *gin.Context, code int, message string) {
	c.JSON(code, models.NewFailure[T](code, message))
}

func Fault[T any](c *gin.Context, code int, message string, err error) {
	c.JSON(code, models.NewFault[T](code, message, err.Error()))
}
