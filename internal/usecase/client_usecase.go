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
	"coaching-practice-manager/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type ClientUsecase interface {
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, clientID uuid.UUID) (*dto.ClientResponse, error)
	ListClients(ctx context.Context) (*dto.ClientListResponse, error)
	UpdateClient(ctx context.Context, clientID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, clientID uuid.UUID) error
	GetClientStats(ctx context.Context, clientID uuid.UUID) (*dto.ClientStatsResponse, error)
}

type clientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clientRepo   repository.ClientRepository
	packageRepo  repository.PackageRepository
	sessionRepo  repository.ScheduledSessionRepository
	consumedRepo repository.ConsumedSessionRepository
	statsService *service.ClientStatsService
}

func NewClientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	packageRepo repository.PackageRepository,
	sessionRepo repository.ScheduledSessionRepository,
	consumedRepo repository.ConsumedSessionRepository,
	statsService *service.ClientStatsService,
) ClientUsecase {
	return &clientUsecase{
		db:           db,
		log:          log,
		clientRepo:   clientRepo,
		packageRepo:  packageRepo,
		sessionRepo:  sessionRepo,
		consumedRepo: consumedRepo,
		statsService: statsService,
	}
}

func (u *clientUsecase) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// New clients always start with the manual tag "new"
	client := &entity.Client{
		UserID:     userID,
		FullName:   req.FullName,
		NationalID: req.NationalID,
		Email:      req.Email,
		Phone:      req.Phone,
		Notes:      req.Notes,
		BirthDate:  birthDate,
		Gender:     entity.Gender(req.Gender),
		Status:     entity.ClientStatusNew,
	}

	if err := u.clientRepo.Create(u.db.WithContext(ctx), client); err != nil {
		u.log.Warnf("Failed to create client: %+v", err)
		return nil, err
	}

	u.log.Infof("Client created: id=%s, user=%s", client.ID, userID)
	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) GetClient(ctx context.Context, clientID uuid.UUID) (*dto.ClientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), clientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", clientID, err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) ListClients(ctx context.Context) (*dto.ClientListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	clients, err := u.clientRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list clients for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.ClientListResponse{
		Clients: converter.ClientsToResponses(clients),
		Total:   len(clients),
	}, nil
}

func (u *clientUsecase) UpdateClient(ctx context.Context, clientID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), clientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", clientID, err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	client.FullName = req.FullName
	client.NationalID = req.NationalID
	client.Email = req.Email
	client.Phone = req.Phone
	client.Notes = req.Notes
	client.BirthDate = birthDate
	client.Gender = entity.Gender(req.Gender)
	client.Status = entity.ClientStatus(req.Status)

	if err := u.clientRepo.Update(u.db.WithContext(ctx), client); err != nil {
		u.log.Warnf("Failed to update client %s: %+v", clientID, err)
		return nil, err
	}

	return converter.ClientToResponse(client), nil
}

// DeleteClient removes the client and every dependent row (packages,
// scheduled sessions, consumed sessions) in a single transaction,
// dependents first so foreign keys never dangle.
func (u *clientUsecase) DeleteClient(ctx context.Context, clientID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.consumedRepo.DeleteByClientID(tx, clientID, userID); err != nil {
		u.log.Warnf("Failed to delete consumed sessions for client %s: %+v", clientID, err)
		return err
	}

	if err := u.sessionRepo.DeleteByClientID(tx, clientID, userID); err != nil {
		u.log.Warnf("Failed to delete scheduled sessions for client %s: %+v", clientID, err)
		return err
	}

	if err := u.packageRepo.DeleteByClientID(tx, clientID, userID); err != nil {
		u.log.Warnf("Failed to delete packages for client %s: %+v", clientID, err)
		return err
	}

	rows, err := u.clientRepo.Delete(tx, clientID, userID)
	if err != nil {
		u.log.Warnf("Failed to delete client %s: %+v", clientID, err)
		return err
	}
	if rows == 0 {
		return ErrClientNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit client deletion: %+v", err)
		return err
	}

	u.log.Infof("Client deleted: id=%s, user=%s", clientID, userID)
	return nil
}

func (u *clientUsecase) GetClientStats(ctx context.Context, clientID uuid.UUID) (*dto.ClientStatsResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	db := u.db.WithContext(ctx)

	client, err := u.clientRepo.FindByID(db, clientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", clientID, err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	pkgs, err := u.packageRepo.FindByClientID(db, clientID, userID)
	if err != nil {
		u.log.Warnf("Failed to load packages for client %s: %+v", clientID, err)
		return nil, err
	}

	scheduled, err := u.sessionRepo.FindByClientID(db, clientID, userID)
	if err != nil {
		u.log.Warnf("Failed to load scheduled sessions for client %s: %+v", clientID, err)
		return nil, err
	}

	consumed, err := u.consumedRepo.FindByClientID(db, clientID, userID)
	if err != nil {
		u.log.Warnf("Failed to load consumed sessions for client %s: %+v", clientID, err)
		return nil, err
	}

	return u.statsService.Build(client, pkgs, scheduled, consumed, time.Now()), nil
}

// parseOptionalDate parses YYYY-MM-DD, returning nil for the empty string.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
