package entity

import (
	"time"

	"github.com/google/uuid"
)

const ConsumedOriginManual = "manual"

// ConsumedSession is the burn event: one session recorded as consumed
// against a client's package.
type ConsumedSession struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	PackageID  uuid.UUID `gorm:"type:uuid;not null;index" json:"package_id"`
	ConsumedAt time.Time `gorm:"not null;index" json:"consumed_at"`
	Note       string    `gorm:"type:text" json:"note,omitempty"`
	Origin     string    `gorm:"type:varchar(20);not null;default:'manual'" json:"origin"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ConsumedSession) TableName() string {
	return "consumed_sessions"
}
