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
	ErrPackageNotFound  = errors.New("package not found")
	ErrPackageExhausted = errors.New("package has no remaining sessions")
	ErrMissingExpiry    = errors.New("expiry date is required")
)

type PackageUsecase interface {
	CreatePackage(ctx context.Context, req *dto.CreatePackageRequest) (*dto.PackageResponse, error)
	ListPackages(ctx context.Context) (*dto.PackageListResponse, error)
	ListClientPackages(ctx context.Context, clientID uuid.UUID) (*dto.PackageListResponse, error)
	BurnSession(ctx context.Context, packageID uuid.UUID, req *dto.BurnSessionRequest) (*dto.BurnSessionResponse, error)
	ExtendExpiry(ctx context.Context, packageID uuid.UUID, req *dto.ExtendExpiryRequest) (*dto.PackageResponse, error)
	DeletePackage(ctx context.Context, packageID uuid.UUID) error
}

type packageUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clientRepo   repository.ClientRepository
	packageRepo  repository.PackageRepository
	sessionRepo  repository.ScheduledSessionRepository
	consumedRepo repository.ConsumedSessionRepository
}

func NewPackageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clientRepo repository.ClientRepository,
	packageRepo repository.PackageRepository,
	sessionRepo repository.ScheduledSessionRepository,
	consumedRepo repository.ConsumedSessionRepository,
) PackageUsecase {
	return &packageUsecase{
		db:           db,
		log:          log,
		clientRepo:   clientRepo,
		packageRepo:  packageRepo,
		sessionRepo:  sessionRepo,
		consumedRepo: consumedRepo,
	}
}

func (u *packageUsecase) CreatePackage(ctx context.Context, req *dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	// The package must belong to one of the caller's clients
	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), req.ClientID, userID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", req.ClientID, err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	expiryDate, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	pkg := &entity.SessionPackage{
		UserID:        userID,
		ClientID:      req.ClientID,
		TotalSessions: req.TotalSessions,
		UsedSessions:  0,
		Status:        entity.PackageStatusActive,
		Price:         req.Price,
		StartDate:     startDate,
		ExpiryDate:    expiryDate,
	}

	if err := u.packageRepo.Create(u.db.WithContext(ctx), pkg); err != nil {
		u.log.Warnf("Failed to create package: %+v", err)
		return nil, err
	}

	u.log.Infof("Package created: id=%s, client=%s, total=%d", pkg.ID, pkg.ClientID, pkg.TotalSessions)
	return converter.PackageToResponse(pkg), nil
}

func (u *packageUsecase) ListPackages(ctx context.Context) (*dto.PackageListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	pkgs, err := u.packageRepo.FindAllByUser(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list packages for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PackageListResponse{
		Packages: converter.PackagesToResponses(pkgs),
		Total:    len(pkgs),
	}, nil
}

func (u *packageUsecase) ListClientPackages(ctx context.Context, clientID uuid.UUID) (*dto.PackageListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), clientID, userID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	pkgs, err := u.packageRepo.FindByClientID(u.db.WithContext(ctx), clientID, userID)
	if err != nil {
		u.log.Warnf("Failed to list packages for client %s: %+v", clientID, err)
		return nil, err
	}

	return &dto.PackageListResponse{
		Packages: converter.PackagesToResponses(pkgs),
		Total:    len(pkgs),
	}, nil
}

// BurnSession records one consumed session against a package and
// increments its used counter. Both writes happen in one transaction
// with the package row locked, so two concurrent burns cannot read
// the same counter value and lose an increment.
func (u *packageUsecase) BurnSession(ctx context.Context, packageID uuid.UUID, req *dto.BurnSessionRequest) (*dto.BurnSessionResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	pkg, err := u.packageRepo.FindByIDForUpdate(tx, packageID, userID)
	if err != nil {
		u.log.Warnf("Failed to lock package %s: %+v", packageID, err)
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	if pkg.IsExhausted() {
		return nil, ErrPackageExhausted
	}

	burn := &entity.ConsumedSession{
		UserID:     userID,
		ClientID:   pkg.ClientID,
		PackageID:  pkg.ID,
		ConsumedAt: time.Now(),
		Note:       req.Note,
		Origin:     entity.ConsumedOriginManual,
	}
	if err := u.consumedRepo.Create(tx, burn); err != nil {
		u.log.Warnf("Failed to insert consumed session for package %s: %+v", packageID, err)
		return nil, err
	}

	pkg.Consume()
	if err := u.packageRepo.Update(tx, pkg); err != nil {
		u.log.Warnf("Failed to update package counter %s: %+v", packageID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit burn: %+v", err)
		return nil, err
	}

	u.log.Infof("Session burned: package=%s, used=%d/%d, status=%s",
		pkg.ID, pkg.UsedSessions, pkg.TotalSessions, pkg.Status)

	return &dto.BurnSessionResponse{
		Package:         *converter.PackageToResponse(pkg),
		ConsumedSession: *converter.ConsumedSessionToResponse(burn),
	}, nil
}

// ExtendExpiry updates only the expiry date of a package.
func (u *packageUsecase) ExtendExpiry(ctx context.Context, packageID uuid.UUID, req *dto.ExtendExpiryRequest) (*dto.PackageResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if req.ExpiryDate == "" {
		return nil, ErrMissingExpiry
	}
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	rows, err := u.packageRepo.UpdateExpiry(db, packageID, userID, expiryDate)
	if err != nil {
		u.log.Warnf("Failed to extend package %s: %+v", packageID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPackageNotFound
	}

	pkg, err := u.packageRepo.FindByID(db, packageID, userID)
	if err != nil {
		u.log.Warnf("Failed to reload package %s: %+v", packageID, err)
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	u.log.Infof("Package extended: id=%s, expiry=%s", packageID, req.ExpiryDate)
	return converter.PackageToResponse(pkg), nil
}

// DeletePackage cascade-deletes the package's consumed and scheduled
// sessions before the package row itself, all in one transaction.
func (u *packageUsecase) DeletePackage(ctx context.Context, packageID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.consumedRepo.DeleteByPackageID(tx, packageID, userID); err != nil {
		u.log.Warnf("Failed to delete consumed sessions for package %s: %+v", packageID, err)
		return err
	}

	if err := u.sessionRepo.DeleteByPackageID(tx, packageID, userID); err != nil {
		u.log.Warnf("Failed to delete scheduled sessions for package %s: %+v", packageID, err)
		return err
	}

	rows, err := u.packageRepo.Delete(tx, packageID, userID)
	if err != nil {
		u.log.Warnf("Failed to delete package %s: %+v", packageID, err)
		return err
	}
	if rows == 0 {
		return ErrPackageNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit package deletion: %+v", err)
		return err
	}

	u.log.Infof("Package deleted: id=%s, user=%s", packageID, userID)
	return nil
}
