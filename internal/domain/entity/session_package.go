package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageStatus represents the lifecycle state of a session package
type PackageStatus string

const (
	PackageStatusActive    PackageStatus = "active"
	PackageStatusCompleted PackageStatus = "completed"
)

// SessionPackage is a prepaid block of sessions for one client,
// drawn down one burn at a time.
type SessionPackage struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	TotalSessions int             `gorm:"not null" json:"total_sessions"`
	UsedSessions  int             `gorm:"not null;default:0" json:"used_sessions"`
	Status        PackageStatus   `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	StartDate     *time.Time      `gorm:"type:date" json:"start_date,omitempty"`
	ExpiryDate    *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (SessionPackage) TableName() string {
	return "session_packages"
}

// IsExhausted checks if every prepaid session has been consumed
func (p *SessionPackage) IsExhausted() bool {
	return p.UsedSessions >= p.TotalSessions
}

// Remaining returns the number of unconsumed sessions, never negative
func (p *SessionPackage) Remaining() int {
	remaining := p.TotalSessions - p.UsedSessions
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsExpired reports whether the package's expiry date is strictly
// before the given instant. Packages without an expiry never expire.
func (p *SessionPackage) IsExpired(at time.Time) bool {
	return p.ExpiryDate != nil && p.ExpiryDate.Before(at)
}

// Consume increments the used counter by one and flips the package to
// completed once the counter reaches the total. The counter saturates:
// calling Consume on an exhausted package is a no-op.
func (p *SessionPackage) Consume() {
	if p.IsExhausted() {
		return
	}
	p.UsedSessions++
	if p.UsedSessions >= p.TotalSessions {
		p.Status = PackageStatusCompleted
	}
}
