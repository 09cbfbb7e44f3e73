package repository

import (
	"coaching-practice-manager/internal/domain/entity"
	domainRepo "coaching-practice-manager/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consumedSessionRepository struct{}

func NewConsumedSessionRepository() domainRepo.ConsumedSessionRepository {
	return &consumedSessionRepository{}
}

func (r *consumedSessionRepository) Create(db *gorm.DB, session *entity.ConsumedSession) error {
	return db.Create(session).Error
}

func (r *consumedSessionRepository) FindByClientID(db *gorm.DB, clientID, userID uuid.UUID) ([]entity.ConsumedSession, error) {
	var sessions []entity.ConsumedSession
	err := db.Where("client_id = ? AND user_id = ?", clientID, userID).
		Order("consumed_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *consumedSessionRepository) DeleteByClientID(db *gorm.DB, clientID, userID uuid.UUID) error {
	return db.Where("client_id = ? AND user_id = ?", clientID, userID).
		Delete(&entity.ConsumedSession{}).Error
}

func (r *consumedSessionRepository) DeleteByPackageID(db *gorm.DB, packageID, userID uuid.UUID) error {
	return db.Where("package_id = ? AND user_id = ?", packageID, userID).
		Delete(&entity.ConsumedSession{}).Error
}
