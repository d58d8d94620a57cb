package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrConflict
	ErrValidation
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrConflict:       "data was modified concurrently",
	ErrValidation:     "validation failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrConflict:       http.StatusInternalServerError,
	ErrValidation:     http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrConflict:       "0004",
	ErrValidation:     "0005",
}
