package repository

import (
	"coaching-practice-manager/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(db *gorm.DB, client *entity.Client) error
	FindByID(db *gorm.DB, id, userID uuid.UUID) (*entity.Client, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Client, error)
	Update(db *gorm.DB, client *entity.Client) error
	Delete(db *gorm.DB, id, userID uuid.UUID) (int64, error)
	CountByUser(db *gorm.DB, userID uuid.UUID) (int64, error)
}
