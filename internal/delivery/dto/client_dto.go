package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateClientRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	NationalID string `json:"national_id" validate:"omitempty,max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,min=6,max=50"`
	Notes      string `json:"notes" validate:"omitempty"`
	BirthDate  string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender     string `json:"gender" validate:"omitempty,oneof=female male other prefer_not_to_say"`
}

type UpdateClientRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	NationalID string `json:"national_id" validate:"omitempty,max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,min=6,max=50"`
	Notes      string `json:"notes" validate:"omitempty"`
	BirthDate  string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender     string `json:"gender" validate:"omitempty,oneof=female male other prefer_not_to_say"`
	Status     string `json:"status" validate:"required,oneof=new active inactive"`
}

// Response DTOs

type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	NationalID string    `json:"national_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	BirthDate  string    `json:"birth_date,omitempty"`
	Age        *int      `json:"age,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// ClientStatsResponse is the derived per-client view: current/queued
// packages, consumption counters and the computed activity state.
// Recomputed on every request, never cached.
type ClientStatsResponse struct {
	Client            ClientResponse            `json:"client"`
	CurrentPackage    *PackageResponse          `json:"current_package,omitempty"`
	QueuedPackages    []PackageResponse         `json:"queued_packages"`
	PackagesTotal     int                       `json:"packages_total"`
	PackagesActive    int                       `json:"packages_active"`
	PackagesQueued    int                       `json:"packages_queued"`
	SessionsTotal     int                       `json:"sessions_total"`
	SessionsUsed      int                       `json:"sessions_used"`
	SessionsRemaining int                       `json:"sessions_remaining"`
	ComputedStatus    string                    `json:"computed_status"`
	IsNew             bool                      `json:"is_new"`
	ActiveExpiryDate  string                    `json:"active_expiry_date,omitempty"`
	PackageExpired    bool                      `json:"package_expired"`
	ScheduledCount    int                       `json:"scheduled_count"`
	RecentBurns       []ConsumedSessionResponse `json:"recent_burns"`
}
