package repository

import (
	"errors"
	"time"

	"coaching-practice-manager/internal/domain/entity"
	domainRepo "coaching-practice-manager/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduledSessionRepository struct{}

func NewScheduledSessionRepository() domainRepo.ScheduledSessionRepository {
	return &scheduledSessionRepository{}
}

func (r *scheduledSessionRepository) Create(db *gorm.DB, session *entity.ScheduledSession) error {
	return db.Create(session).Error
}

func (r *scheduledSessionRepository) FindByID(db *gorm.DB, id, userID uuid.UUID) (*entity.ScheduledSession, error) {
	var session entity.ScheduledSession
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *scheduledSessionRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.ScheduledSession, error) {
	var sessions []entity.ScheduledSession
	err := db.Preload("Client").
		Where("user_id = ?", userID).
		Order("session_date ASC, session_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *scheduledSessionRepository) FindByClientID(db *gorm.DB, clientID, userID uuid.UUID) ([]entity.ScheduledSession, error) {
	var sessions []entity.ScheduledSession
	err := db.Where("client_id = ? AND user_id = ?", clientID, userID).
		Order("session_date ASC, session_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *scheduledSessionRepository) FindUpcoming(db *gorm.DB, userID uuid.UUID, from time.Time, limit int) ([]entity.ScheduledSession, error) {
	var sessions []entity.ScheduledSession
	err := db.Preload("Client").
		Where("user_id = ? AND status = ? AND session_date >= ?", userID, entity.SessionStatusScheduled, from).
		Order("session_date ASC, session_time ASC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateStatus transitions a session out of scheduled. The status
// filter makes the update a no-op when the session is already
// terminal, so a double-complete cannot race.
func (r *scheduledSessionRepository) UpdateStatus(db *gorm.DB, id, userID uuid.UUID, status entity.SessionStatus) (int64, error) {
	result := db.Model(&entity.ScheduledSession{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, entity.SessionStatusScheduled).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *scheduledSessionRepository) Delete(db *gorm.DB, id, userID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.ScheduledSession{})
	return result.RowsAffected, result.Error
}

func (r *scheduledSessionRepository) DeleteByClientID(db *gorm.DB, clientID, userID uuid.UUID) error {
	return db.Where("client_id = ? AND user_id = ?", clientID, userID).
		Delete(&entity.ScheduledSession{}).Error
}

func (r *scheduledSessionRepository) DeleteByPackageID(db *gorm.DB, packageID, userID uuid.UUID) error {
	return db.Where("package_id = ? AND user_id = ?", packageID, userID).
		Delete(&entity.ScheduledSession{}).Error
}

func (r *scheduledSessionRepository) CountByUserAndStatus(db *gorm.DB, userID uuid.UUID, status entity.SessionStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.ScheduledSession{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}
