package repository

import (
	"errors"

	"coaching-practice-manager/internal/domain/entity"
	domainRepo "coaching-practice-manager/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientRepository struct{}

func NewClientRepository() domainRepo.ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Create(db *gorm.DB, client *entity.Client) error {
	return db.Create(client).Error
}

func (r *clientRepository) FindByID(db *gorm.DB, id, userID uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Client, error) {
	var clients []entity.Client
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Update(db *gorm.DB, client *entity.Client) error {
	return db.Save(client).Error
}

// Delete removes the client row. Returns affected rows: 0 means the
// id does not exist or belongs to another user.
func (r *clientRepository) Delete(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Client{})
	return result.RowsAffected, result.Error
}

func (r *clientRepository) CountByUser(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Client{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
