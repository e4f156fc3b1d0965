package entities

import (
	"time"

	"github.com/google/uuid"
)

type Food struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodName        string    `json:"food_name"`
	FoodImage       string    `json:"food_image,omitempty"`
	FoodQuantity    int       `json:"food_quantity"`
	PickupLocation  string    `json:"pickup_location"`
	ExpiredAt       time.Time `json:"expired_at"`
	AdditionalNotes string    `json:"additional_notes,omitempty"`
	DonorEmail      string    `gorm:"index" json:"donor_email"`
	DonorName       string    `json:"donor_name"`
	DonorImage      string    `json:"donor_image,omitempty"`
	Status          string    `json:"status"` // "available", "delivered"

	Timestamp
}
