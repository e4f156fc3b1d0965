package entities

import (
	"time"

	"github.com/google/uuid"
)

// Request references its Food by denormalized id, not a foreign key; the
// cascade on food deletion is issued explicitly by the food service.
type Request struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID         string    `gorm:"index" json:"food_id"`
	FoodName       string    `json:"food_name"`
	FoodImage      string    `json:"food_image,omitempty"`
	RequesterEmail string    `gorm:"index" json:"requester_email"`
	RequesterName  string    `json:"requester_name"`
	RequesterImage string    `json:"requester_image,omitempty"`
	DonorEmail     string    `gorm:"index" json:"donor_email"`
	DonorName      string    `json:"donor_name"`
	PickupLocation string    `json:"pickup_location"`
	ExpiredAt      time.Time `json:"expired_at"`
	RequestDate    time.Time `json:"request_date"`
	Message        string    `json:"message,omitempty"`
	Status         string    `json:"status"` // "pending", "delivered", "canceled"

	Timestamp
}
