package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddRequest    = "request added successfully"
	MessageSuccessGetRequests   = "requests retrieved successfully"
	MessageSuccessCancelRequest = "request canceled successfully"

	MessageFailedAddRequest    = "failed to add request"
	MessageFailedGetRequests   = "failed to retrieve requests"
	MessageFailedCancelRequest = "failed to cancel request"

	ErrInsufficientFilter = errors.New("not enough data")
)

type (
	AddRequestRequest struct {
		FoodID         string `json:"food_id" validate:"required"`
		FoodName       string `json:"food_name" validate:"required"`
		FoodImage      string `json:"food_image" validate:"omitempty"`
		RequesterEmail string `json:"requester_email" validate:"required,email"`
		RequesterName  string `json:"requester_name" validate:"required"`
		RequesterImage string `json:"requester_image" validate:"omitempty"`
		DonorEmail     string `json:"donor_email" validate:"required,email"`
		DonorName      string `json:"donor_name" validate:"omitempty"`
		PickupLocation string `json:"pickup_location" validate:"omitempty"`
		ExpiredAt      string `json:"expired_at" validate:"omitempty"`
		Message        string `json:"message" validate:"omitempty"`
	}

	// AlreadyRequested reports the duplicate-suppression outcome; it is a
	// success-shaped response, not an error.
	AddRequestResponse struct {
		ID               string `json:"id,omitempty"`
		AlreadyRequested bool   `json:"already_requested"`
	}

	RequestFilter struct {
		Requester string
		Donor     string
		ID        string
	}

	RequestResponse struct {
		ID             string    `json:"id"`
		FoodID         string    `json:"food_id"`
		FoodName       string    `json:"food_name"`
		FoodImage      string    `json:"food_image,omitempty"`
		RequesterEmail string    `json:"requester_email"`
		RequesterName  string    `json:"requester_name"`
		RequesterImage string    `json:"requester_image,omitempty"`
		DonorEmail     string    `json:"donor_email"`
		DonorName      string    `json:"donor_name"`
		PickupLocation string    `json:"pickup_location"`
		ExpiredAt      time.Time `json:"expired_at"`
		RequestDate    time.Time `json:"request_date"`
		Message        string    `json:"message,omitempty"`
		Status         string    `json:"status"`
	}

	CancelRequestResponse struct {
		DeletedRequests int64 `json:"deleted_requests"`
	}
)
