package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFood         = "food added successfully"
	MessageSuccessGetFoods        = "foods retrieved successfully"
	MessageSuccessEditFood        = "food updated successfully"
	MessageSuccessDeleteFood      = "food deleted successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"

	MessageFailedAddFood         = "failed to add food"
	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedEditFood        = "failed to update food"
	MessageFailedDeleteFood      = "failed to delete food"
	MessageFailedUploadFoodImage = "failed to upload food image"

	ErrFoodNotFound      = errors.New("food not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
)

type (
	AddFoodRequest struct {
		FoodName        string `json:"food_name" validate:"required"`
		FoodImage       string `json:"food_image" validate:"omitempty"`
		FoodQuantity    int    `json:"food_quantity" validate:"required,min=1"`
		PickupLocation  string `json:"pickup_location" validate:"required"`
		ExpiredAt       string `json:"expired_at" validate:"required"`
		AdditionalNotes string `json:"additional_notes" validate:"omitempty"`
		DonorEmail      string `json:"donor_email" validate:"required,email"`
		DonorName       string `json:"donor_name" validate:"required"`
		DonorImage      string `json:"donor_image" validate:"omitempty"`
		Status          string `json:"status" validate:"omitempty,oneof=available delivered"`
	}

	AddFoodResponse struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}

	// EditFood is a full document replace, so every stored field is
	// expected in the payload.
	EditFoodRequest struct {
		FoodName        string `json:"food_name" validate:"required"`
		FoodImage       string `json:"food_image" validate:"omitempty"`
		FoodQuantity    int    `json:"food_quantity" validate:"required,min=1"`
		PickupLocation  string `json:"pickup_location" validate:"required"`
		ExpiredAt       string `json:"expired_at" validate:"required"`
		AdditionalNotes string `json:"additional_notes" validate:"omitempty"`
		DonorEmail      string `json:"donor_email" validate:"required,email"`
		DonorName       string `json:"donor_name" validate:"required"`
		DonorImage      string `json:"donor_image" validate:"omitempty"`
		Status          string `json:"status" validate:"required,oneof=available delivered"`
	}

	FoodFilter struct {
		ID         string
		DonorEmail string
		Status     string
		SortBy     string
		SortOrder  string
		Limit      int
	}

	FoodResponse struct {
		ID              string    `json:"id"`
		FoodName        string    `json:"food_name"`
		FoodImage       string    `json:"food_image,omitempty"`
		FoodQuantity    int       `json:"food_quantity"`
		PickupLocation  string    `json:"pickup_location"`
		ExpiredAt       time.Time `json:"expired_at"`
		AdditionalNotes string    `json:"additional_notes,omitempty"`
		DonorEmail      string    `json:"donor_email"`
		DonorName       string    `json:"donor_name"`
		DonorImage      string    `json:"donor_image,omitempty"`
		Status          string    `json:"status"`
		CreatedAt       time.Time `json:"created_at"`
	}

	DeleteFoodResponse struct {
		DeletedFoods    int64 `json:"deleted_foods"`
		DeletedRequests int64 `json:"deleted_requests"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadFoodImageResponse struct {
		FoodID   string `json:"food_id"`
		ImageURL string `json:"image_url"`
	}
)
