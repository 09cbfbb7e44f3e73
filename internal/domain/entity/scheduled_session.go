package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the status of a scheduled session
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// ScheduledSession is a calendar appointment for a client, optionally
// linked to the package it will eventually be burned against.
type ScheduledSession struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"client_id"`
	PackageID   *uuid.UUID    `gorm:"type:uuid;index" json:"package_id,omitempty"`
	SessionDate time.Time     `gorm:"type:date;not null;index" json:"session_date"`
	SessionTime string        `gorm:"type:varchar(5);not null" json:"session_time"`
	Status      SessionStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (ScheduledSession) TableName() string {
	return "scheduled_sessions"
}

// IsScheduled checks if the session is still pending
func (s *ScheduledSession) IsScheduled() bool {
	return s.Status == SessionStatusScheduled
}

// CanTransitionTo reports whether the session may move to the target
// status. Completed and cancelled are terminal.
func (s *ScheduledSession) CanTransitionTo(target SessionStatus) bool {
	if s.Status != SessionStatusScheduled {
		return false
	}
	return target == SessionStatusCompleted || target == SessionStatusCancelled
}
