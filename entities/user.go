package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	Name         string     `json:"name"`
	Dp           string     `json:"dp,omitempty"` // avatar URL from the auth provider
	LastModified *time.Time `json:"last_modified,omitempty"`

	Timestamp
}
