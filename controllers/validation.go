package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const invalidBody = "Invalid Data in the Request Body"

// passwordMaxBytes is the longest input bcrypt will hash.
const passwordMaxBytes = 72

func init() {
	// validator's max counts characters; bcrypt's limit is in bytes
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= passwordMaxBytes
		})
	}
}

// idParam binds the numeric :id path segment.
type idParam struct {
	ID int `uri:"id" binding:"required,gt=0"`
}

// validationMessage renders every failed constraint of a bind error as one line.
func validationMessage(err error) string {
	var msgs []string

	var fieldErrs validator.ValidationErrors
	var sliceErrs binding.SliceValidationError
	switch {
	case errors.As(err, &fieldErrs):
		msgs = fieldMessages(fieldErrs)
	case errors.As(err, &sliceErrs):
		for _, e := range sliceErrs {
			var itemErrs validator.ValidationErrors
			if errors.As(e, &itemErrs) {
				msgs = append(msgs, fieldMessages(itemErrs)...)
			}
		}
	}

	if len(msgs) == 0 {
		// malformed JSON or a value of the wrong type
		msgs = append(msgs, err.Error())
	}
	return invalidBody + ": " + strings.Join(msgs, "; ")
}

func fieldMessages(errs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "bcryptlen":
		return fmt.Sprintf("%s must be at most %d bytes long", fe.Field(), passwordMaxBytes)
	}
	return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
}

// bindID reads the path id; on failure it writes the 400 response and
// returns false.
func bindID[T any](ctx *gin.Context) (int, bool) {
	var p idParam
	if err := ctx.ShouldBindUri(&p); err != nil {
		rejectInvalid[T](ctx, err)
		return 0, false
	}
	return p.ID, true
}
