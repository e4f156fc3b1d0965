package domain

import (
	"errors"
	"time"
)

const (
	UserOutcomeAdded   = "added"
	UserOutcomeUpdated = "updated"
)

var (
	MessageSuccessUpsertUser = "user upserted successfully"
	MessageSuccessGetUser    = "user retrieved successfully"

	MessageFailedUpsertUser = "failed to upsert user"
	MessageFailedGetUser    = "failed to retrieve user"

	ErrUserNotFound = errors.New("user not found")
)

type (
	UpsertUserRequest struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
		Dp    string `json:"dp" validate:"omitempty"`
	}

	// Outcome is "added" on first insert and "updated" afterwards; the
	// signed credential travels only in the access_token cookie.
	UpsertUserResponse struct {
		User string `json:"user"`
	}

	UserResponse struct {
		ID           string     `json:"id"`
		Email        string     `json:"email"`
		Name         string     `json:"name"`
		Dp           string     `json:"dp,omitempty"`
		LastModified *time.Time `json:"last_modified,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
	}
)
