package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrDuplicatePurchase
	ErrPriceNotOffered
	ErrPurchaseStateConflict
	ErrSelfDelete
	ErrProtectedAdmin
	ErrCompletionPending
	ErrBroadcastRunning
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrCredentialExists:      "username already exists",
	ErrInvalidPassword:       "password invalid",
	ErrDuplicatePurchase:     "course already purchased and still active",
	ErrPriceNotOffered:       "selected payment plan is not offered for this item",
	ErrPurchaseStateConflict: "purchase was modified concurrently, reload and retry",
	ErrSelfDelete:            "you cannot delete your own admin account",
	ErrProtectedAdmin:        "the super admin account cannot be deleted",
	ErrCompletionPending:     "completion request already pending for this course",
	ErrBroadcastRunning:      "another broadcast is still in progress",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrCredentialExists:      http.StatusBadRequest,
	ErrInvalidPassword:       http.StatusBadRequest,
	ErrDuplicatePurchase:     http.StatusConflict,
	ErrPriceNotOffered:       http.StatusBadRequest,
	ErrPurchaseStateConflict: http.StatusConflict,
	ErrSelfDelete:            http.StatusBadRequest,
	ErrProtectedAdmin:        http.StatusBadRequest,
	ErrCompletionPending:     http.StatusConflict,
	ErrBroadcastRunning:      http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrCredentialExists:      "0005",
	ErrInvalidPassword:       "0006",
	ErrDuplicatePurchase:     "0007",
	ErrPriceNotOffered:       "0008",
	ErrPurchaseStateConflict: "0009",
	ErrSelfDelete:            "0010",
	ErrProtectedAdmin:        "0011",
	ErrCompletionPending:     "0012",
	ErrBroadcastRunning:      "0013",
}
