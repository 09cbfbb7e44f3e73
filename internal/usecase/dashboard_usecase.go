package usecase

import (
	"context"
	"time"

	"coaching-practice-manager/internal/converter"
	"coaching-practice-manager/internal/delivery/dto"
	"coaching-practice-manager/internal/delivery/http/middleware"
	"coaching-practice-manager/internal/domain/entity"
	"coaching-practice-manager/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const upcomingSessionLimit = 5

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}

type dashboardUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	clientRepo  repository.ClientRepository
	packageRepo repository.PackageRepository
	sessionRepo repository.ScheduledSessionRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	packageRepo repository.PackageRepository,
	sessionRepo repository.ScheduledSessionRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:          db,
		log:         log,
		clientRepo:  clientRepo,
		packageRepo: packageRepo,
		sessionRepo: sessionRepo,
	}
}

// GetSummary recomputes the practice overview from the store on every
// call; nothing here is cached.
func (u *dashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	db := u.db.WithContext(ctx)

	totalClients, err := u.clientRepo.CountByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to count clients for user %s: %+v", userID, err)
		return nil, err
	}

	scheduledCount, err := u.sessionRepo.CountByUserAndStatus(db, userID, entity.SessionStatusScheduled)
	if err != nil {
		u.log.Warnf("Failed to count scheduled sessions for user %s: %+v", userID, err)
		return nil, err
	}

	completedCount, err := u.sessionRepo.CountByUserAndStatus(db, userID, entity.SessionStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to count completed sessions for user %s: %+v", userID, err)
		return nil, err
	}

	activePackages, err := u.packageRepo.CountActiveByUser(db, userID)
	if err != nil {
		u.log.Warnf("Failed to count active packages for user %s: %+v", userID, err)
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	upcoming, err := u.sessionRepo.FindUpcoming(db, userID, today, upcomingSessionLimit)
	if err != nil {
		u.log.Warnf("Failed to load upcoming sessions for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		TotalClients:      totalClients,
		ScheduledSessions: scheduledCount,
		ActivePackages:    activePackages,
		CompletedSessions: completedCount,
		UpcomingSessions:  converter.SessionsToResponses(upcoming),
	}, nil
}
