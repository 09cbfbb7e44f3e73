package repository

import (
	"errors"
	"time"

	"coaching-practice-manager/internal/domain/entity"
	domainRepo "coaching-practice-manager/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type packageRepository struct{}

func NewPackageRepository() domainRepo.PackageRepository {
	return &packageRepository{}
}

func (r *packageRepository) Create(db *gorm.DB, pkg *entity.SessionPackage) error {
	return db.Create(pkg).Error
}

func (r *packageRepository) FindByID(db *gorm.DB, id, userID uuid.UUID) (*entity.SessionPackage, error) {
	var pkg entity.SessionPackage
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE, so it must run
// inside a transaction.
func (r *packageRepository) FindByIDForUpdate(db *gorm.DB, id, userID uuid.UUID) (*entity.SessionPackage, error) {
	var pkg entity.SessionPackage
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) FindByClientID(db *gorm.DB, clientID, userID uuid.UUID) ([]entity.SessionPackage, error) {
	var pkgs []entity.SessionPackage
	err := db.Where("client_id = ? AND user_id = ?", clientID, userID).
		Order("start_date ASC NULLS FIRST, created_at ASC").
		Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.SessionPackage, error) {
	var pkgs []entity.SessionPackage
	err := db.Preload("Client").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepository) Update(db *gorm.DB, pkg *entity.SessionPackage) error {
	return db.Save(pkg).Error
}

// UpdateExpiry touches only the expiry date column. Returns affected
// rows: 0 means the package is not owned by the user.
func (r *packageRepository) UpdateExpiry(db *gorm.DB, id, userID uuid.UUID, expiryDate time.Time) (int64, error) {
	result := db.Model(&entity.SessionPackage{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("expiry_date", expiryDate)
	return result.RowsAffected, result.Error
}

func (r *packageRepository) Delete(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.SessionPackage{})
	return result.RowsAffected, result.Error
}

func (r *packageRepository) DeleteByClientID(db *gorm.DB, clientID, userID uuid.UUID) error {
	return db.Where("client_id = ? AND user_id = ?", clientID, userID).
		Delete(&entity.SessionPackage{}).Error
}

func (r *packageRepository) CountActiveByUser(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.SessionPackage{}).
		Where("user_id = ? AND status = ?", userID, entity.PackageStatusActive).
		Count(&count).Error
	return count, err
}
