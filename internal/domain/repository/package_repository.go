package repository

import (
	"time"

	"coaching-practice-manager/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PackageRepository interface {
	Create(db *gorm.DB, pkg *entity.SessionPackage) error
	FindByID(db *gorm.DB, id, userID uuid.UUID) (*entity.SessionPackage, error)
	// FindByIDForUpdate locks the package row for the duration of the
	// surrounding transaction so two concurrent burns cannot both read
	// the same used counter.
	FindByIDForUpdate(db *gorm.DB, id, userID uuid.UUID) (*entity.SessionPackage, error)
	FindByClientID(db *gorm.DB, clientID, userID uuid.UUID) ([]entity.SessionPackage, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.SessionPackage, error)
	Update(db *gorm.DB, pkg *entity.SessionPackage) error
	UpdateExpiry(db *gorm.DB, id, userID uuid.UUID, expiryDate time.Time) (int64, error)
	Delete(db *gorm.DB, id, userID uuid.UUID) (int64, error)
	DeleteByClientID(db *gorm.DB, clientID, userID uuid.UUID) error
	CountActiveByUser(db *gorm.DB, userID uuid.UUID) (int64, error)
}
