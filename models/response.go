package models

import "net/http"

// APIResponse is the envelope every endpoint answers with. Data is set only on
// success; Detail only when an unexpected fault was hit.
type APIResponse[T any] struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Data    *T      `json:"data"`
	Detail  *string `json:"detail"`
}

func NewSuccess[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{
		Code:    http.StatusOK,
		Message: message,
		Data:    &data,
	}
}

// NewFailure is used for expected rejections: bad input, not found and
// failures reported by the store itself.
func NewFailure[T any](code int, message string) APIResponse[T] {
	return APIResponse[T]{
		Code:    code,
		Message: message,
	}
}

func NewFault[T any](code int, message, detail string) APIResponse[T] {
	return APIResponse[T]{
		Code:    code,
		Message: message,
		Detail:  &detail,
	}
}
