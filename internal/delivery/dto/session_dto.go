package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSessionRequest struct {
	ClientID    uuid.UUID  `json:"client_id" validate:"required"`
	PackageID   *uuid.UUID `json:"package_id" validate:"omitempty"`
	SessionDate string     `json:"session_date" validate:"required"` // Format: YYYY-MM-DD
	SessionTime string     `json:"session_time" validate:"required"` // Format: HH:MM
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// Response DTOs

type SessionResponse struct {
	ID          uuid.UUID  `json:"id"`
	ClientID    uuid.UUID  `json:"client_id"`
	ClientName  string     `json:"client_name,omitempty"`
	PackageID   *uuid.UUID `json:"package_id,omitempty"`
	SessionDate string     `json:"session_date"`
	SessionTime string     `json:"session_time"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

type ConsumedSessionResponse struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"client_id"`
	PackageID  uuid.UUID `json:"package_id"`
	ConsumedAt time.Time `json:"consumed_at"`
	Note       string    `json:"note,omitempty"`
	Origin     string    `json:"origin"`
}
