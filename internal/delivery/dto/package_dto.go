package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePackageRequest struct {
	ClientID      uuid.UUID       `json:"client_id" validate:"required"`
	TotalSessions int             `json:"total_sessions" validate:"required,min=1"`
	Price         decimal.Decimal `json:"price" validate:"omitempty"`
	StartDate     string          `json:"start_date" validate:"omitempty"`  // Format: YYYY-MM-DD
	ExpiryDate    string          `json:"expiry_date" validate:"omitempty"` // Format: YYYY-MM-DD
}

type BurnSessionRequest struct {
	Note string `json:"note" validate:"omitempty,max=500"`
}

type ExtendExpiryRequest struct {
	ExpiryDate string `json:"expiry_date" validate:"required"` // Format: YYYY-MM-DD
}

// Response DTOs

type PackageResponse struct {
	ID            uuid.UUID       `json:"id"`
	ClientID      uuid.UUID       `json:"client_id"`
	ClientName    string          `json:"client_name,omitempty"`
	TotalSessions int             `json:"total_sessions"`
	UsedSessions  int             `json:"used_sessions"`
	Remaining     int             `json:"remaining"`
	Status        string          `json:"status"`
	Price         decimal.Decimal `json:"price"`
	StartDate     string          `json:"start_date,omitempty"`
	ExpiryDate    string          `json:"expiry_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
	Total    int               `json:"total"`
}

type BurnSessionResponse struct {
	Package         PackageResponse         `json:"package"`
	ConsumedSession ConsumedSessionResponse `json:"consumed_session"`
}
