package domain

import (
	"errors"
)

const (
	CookieAccessToken = "access_token"

	FoodStatusAvailable = "available"
	FoodStatusDelivered = "delivered"

	RequestStatusPending   = "pending"
	RequestStatusDelivered = "delivered"
	RequestStatusCanceled  = "canceled"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("credential cookie not found")
	ErrTokenInvalid  = errors.New("credential invalid")
	ErrTokenExpired  = errors.New("credential expired")
)
