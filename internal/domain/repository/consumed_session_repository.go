package repository

import (
	"coaching-practice-manager/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsumedSessionRepository interface {
	Create(db *gorm.DB, session *entity.ConsumedSession) error
	FindByClientID(db *gorm.DB, clientID, userID uuid.UUID) ([]entity.ConsumedSession, error)
	DeleteByClientID(db *gorm.DB, clientID, userID uuid.UUID) error
	DeleteByPackageID(db *gorm.DB, packageID, userID uuid.UUID) error
}
