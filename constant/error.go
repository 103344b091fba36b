package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPassword
	ErrEmptyCart
	ErrPersistence
	ErrInvalidStatus
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "data not found",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "unauthorize request",
	ErrInvalidPassword: "password invalid",
	ErrEmptyCart:       "cart is empty",
	ErrPersistence:     "order store unavailable",
	ErrInvalidStatus:   "unknown order status",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrInvalidPassword: http.StatusBadRequest,
	ErrEmptyCart:       http.StatusBadRequest,
	ErrPersistence:     http.StatusBadGateway,
	ErrInvalidStatus:   http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrInvalidPassword: "0005",
	ErrEmptyCart:       "0006",
	ErrPersistence:     "0007",
	ErrInvalidStatus:   "0008",
}
