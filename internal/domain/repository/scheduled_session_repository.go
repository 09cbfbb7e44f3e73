package repository

import (
	"time"

	"coaching-practice-manager/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduledSessionRepository interface {
	Create(db *gorm.DB, session *entity.ScheduledSession) error
	FindByID(db *gorm.DB, id, userID uuid.UUID) (*entity.ScheduledSession, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.ScheduledSession, error)
	FindByClientID(db *gorm.DB, clientID, userID uuid.UUID) ([]entity.ScheduledSession, error)
	FindUpcoming(db *gorm.DB, userID uuid.UUID, from time.Time, limit int) ([]entity.ScheduledSession, error)
	UpdateStatus(db *gorm.DB, id, userID uuid.UUID, status entity.SessionStatus) (int64, error)
	Delete(db *gorm.DB, id, userID uuid.UUID) (int64, error)
	DeleteByClientID(db *gorm.DB, clientID, userID uuid.UUID) error
	DeleteByPackageID(db *gorm.DB, packageID, userID uuid.UUID) error
	CountByUserAndStatus(db *gorm.DB, userID uuid.UUID, status entity.SessionStatus) (int64, error)
}
