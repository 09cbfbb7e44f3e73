package usecase

import (
	"context"
	"errors"
	"time"

	"coaching-practice-manager/internal/converter"
	"coaching-practice-manager/internal/delivery/dto"
	"coaching-practice-manager/internal/delivery/http/middleware"
	"coaching-practice-manager/internal/domain/entity"
	"coaching-practice-manager/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionNotPending = errors.New("session is no longer scheduled")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	ListSessions(ctx context.Context) (*dto.SessionListResponse, error)
	UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, req *dto.UpdateSessionStatusRequest) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

type sessionUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	clientRepo  repository.ClientRepository
	packageRepo repository.PackageRepository
	sessionRepo repository.ScheduledSessionRepository
}

func NewSessionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	packageRepo repository.PackageRepository,
	sessionRepo repository.ScheduledSessionRepository,
) SessionUsecase {
	return &sessionUsecase{
		db:          db,
		log:         log,
		clientRepo:  clientRepo,
		packageRepo: packageRepo,
		sessionRepo: sessionRepo,
	}
}

// CreateSession schedules a session for a client. A package reference
// records which package the session will eventually be burned
// against; scheduling never consumes a session, only an explicit burn
// does.
func (u *sessionUsecase) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	db := u.db.WithContext(ctx)

	client, err := u.clientRepo.FindByID(db, req.ClientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", req.ClientID, err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if req.PackageID != nil {
		pkg, err := u.packageRepo.FindByID(db, *req.PackageID, userID)
		if err != nil {
			u.log.Warnf("Failed to find package %s: %+v", *req.PackageID, err)
			return nil, err
		}
		if pkg == nil || pkg.ClientID != req.ClientID {
			return nil, ErrPackageNotFound
		}
	}

	sessionDate, err := time.Parse("2006-01-02", req.SessionDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.SessionTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	session := &entity.ScheduledSession{
		UserID:      userID,
		ClientID:    req.ClientID,
		PackageID:   req.PackageID,
		SessionDate: sessionDate,
		SessionTime: req.SessionTime,
		Status:      entity.SessionStatusScheduled,
	}

	if err := u.sessionRepo.Create(db, session); err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	session.Client = *client
	u.log.Infof("Session scheduled: id=%s, client=%s, date=%s %s",
		session.ID, session.ClientID, req.SessionDate, req.SessionTime)
	return converter.SessionToResponse(session), nil
}

func (u *sessionUsecase) ListSessions(ctx context.Context) (*dto.SessionListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	sessions, err := u.sessionRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list sessions for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.SessionListResponse{
		Sessions: converter.SessionsToResponses(sessions),
		Total:    len(sessions),
	}, nil
}

// UpdateSessionStatus moves a scheduled session to completed or
// cancelled. Both targets are terminal.
func (u *sessionUsecase) UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, req *dto.UpdateSessionStatusRequest) (*dto.SessionResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	db := u.db.WithContext(ctx)

	session, err := u.sessionRepo.FindByID(db, sessionID, userID)
	if err != nil {
		u.log.Warnf("Failed to find session %s: %+v", sessionID, err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	target := entity.SessionStatus(req.Status)
	if !session.CanTransitionTo(target) {
		return nil, ErrSessionNotPending
	}

	rows, err := u.sessionRepo.UpdateStatus(db, sessionID, userID, target)
	if err != nil {
		u.log.Warnf("Failed to update session %s status: %+v", sessionID, err)
		return nil, err
	}
	if rows == 0 {
		// Lost the race with a concurrent transition
		return nil, ErrSessionNotPending
	}

	session.Status = target
	u.log.Infof("Session %s: id=%s, client=%s", target, sessionID, session.ClientID)
	return converter.SessionToResponse(session), nil
}

// DeleteSession removes a scheduled session. It has no dependents, so
// no cascade is needed.
func (u *sessionUsecase) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	rows, err := u.sessionRepo.Delete(u.db.WithContext(ctx), sessionID, userID)
	if err != nil {
		u.log.Warnf("Failed to delete session %s: %+v", sessionID, err)
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}

	u.log.Infof("Session deleted: id=%s, user=%s", sessionID, userID)
	return nil
}
