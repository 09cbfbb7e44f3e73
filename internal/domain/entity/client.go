package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientStatus is the manually-set classification tag on a client.
// It is independent of the computed active/inactive state derived
// from the client's packages.
type ClientStatus string

const (
	ClientStatusNew      ClientStatus = "new"
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

type Gender string

const (
	GenderFemale         Gender = "female"
	GenderMale           Gender = "male"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

// Client represents one coachee/patient, owned by exactly one practitioner.
type Client struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	FullName   string       `gorm:"type:varchar(255);not null" json:"full_name"`
	NationalID string       `gorm:"type:varchar(20)" json:"national_id,omitempty"`
	Email      string       `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone      string       `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Notes      string       `gorm:"type:text" json:"notes,omitempty"`
	BirthDate  *time.Time   `gorm:"type:date" json:"birth_date,omitempty"`
	Gender     Gender       `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Status     ClientStatus `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

// Age returns the client's age in full years at the given instant,
// or nil when no birth date is recorded.
func (c *Client) Age(at time.Time) *int {
	if c.BirthDate == nil {
		return nil
	}
	years := at.Year() - c.BirthDate.Year()
	anniversary := c.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return &years
}
