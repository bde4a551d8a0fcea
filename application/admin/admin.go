package admin

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/course-platform/cmd/config"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
	adminrepo "github.com/muhammadheryan/course-platform/repository/admin"
	catalogrepo "github.com/muhammadheryan/course-platform/repository/catalog"
	purchaserepo "github.com/muhammadheryan/course-platform/repository/purchase"
	redisrepo "github.com/muhammadheryan/course-platform/repository/redis"
	userrepo "github.com/muhammadheryan/course-platform/repository/user"
	"github.com/muhammadheryan/course-platform/utils/errors"
	"github.com/muhammadheryan/course-platform/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	Me(ctx context.Context, adminID uint64) (*model.AdminEntity, error)
	List(ctx context.Context) ([]model.AdminEntity, error)
	Create(ctx context.Context, creatorID uint64, req *model.CreateAdminRequest) (*model.AdminEntity, error)
	Delete(ctx context.Context, requesterID, targetID uint64) error
	UpdateProfile(ctx context.Context, adminID uint64, req *model.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, adminID uint64, req *model.ChangePasswordRequest) error
	Stats(ctx context.Context) (*model.StatsResponse, error)
}

type adminAppImpl struct {
	config       *config.Config
	adminRepo    adminrepo.AdminRepository
	redisRepo    redisrepo.Repository
	userRepo     userrepo.UserRepository
	catalogRepo  catalogrepo.CatalogRepository
	purchaseRepo purchaserepo.PurchaseRepository
}

func NewAdminApp(
	cfg *config.Config,
	adminRepo adminrepo.AdminRepository,
	redisRepo redisrepo.Repository,
	userRepo userrepo.UserRepository,
	catalogRepo catalogrepo.CatalogRepository,
	purchaseRepo purchaserepo.PurchaseRepository,
) AdminApp {
	return &adminAppImpl{
		config:       cfg,
		adminRepo:    adminRepo,
		redisRepo:    redisRepo,
		userRepo:     userRepo,
		catalogRepo:  catalogRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *adminAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err adminRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(admin.ID, admin.Username)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	if err := s.redisRepo.SetSession(ctx, jti, admin.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.adminRepo.TouchLastLogin(ctx, admin.ID); err != nil {
		logger.Warn("[Login] err TouchLastLogin", zap.Error(err))
	}

	return &model.LoginResponse{
		ID:       admin.ID,
		Username: admin.Username,
		FullName: admin.FullName,
		Token:    token,
	}, nil
}

func (s *adminAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	adminID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid admin id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	sessionAdminID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if sessionAdminID != adminID {
		return 0, fmt.Errorf("token does not match admin session")
	}

	return adminID, nil
}

func (s *adminAppImpl) Me(ctx context.Context, adminID uint64) (*model.AdminEntity, error) {
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: adminID})
	if err != nil {
		logger.Error("[Me] err adminRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return admin, nil
}

func (s *adminAppImpl) List(ctx context.Context) ([]model.AdminEntity, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		logger.Error("[List] err adminRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return admins, nil
}

func (s *adminAppImpl) Create(ctx context.Context, creatorID uint64, req *model.CreateAdminRequest) (*model.AdminEntity, error) {
	existing, err := s.adminRepo.Get(ctx, &model.AdminFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Create] err adminRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Create] err bcrypt.GenerateFromPassword", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.AdminEntity{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		CreatedBy:    &creatorID,
	}
	if req.FullName != "" {
		entity.FullName = &req.FullName
	}

	entity, err = s.adminRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err adminRepo.Create", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

// Delete refuses the protected super admin and self-deletion; both would
// lock an operator (or everyone) out.
func (s *adminAppImpl) Delete(ctx context.Context, requesterID, targetID uint64) error {
	if targetID == constant.SuperAdminID {
		return errors.SetCustomError(constant.ErrProtectedAdmin)
	}
	if targetID == requesterID {
		return errors.SetCustomError(constant.ErrSelfDelete)
	}

	target, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: targetID})
	if err != nil {
		logger.Error("[Delete] err adminRepo.Get", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if target == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.adminRepo.Delete(ctx, targetID); err != nil {
		logger.Error("[Delete] err adminRepo.Delete", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) UpdateProfile(ctx context.Context, adminID uint64, req *model.UpdateProfileRequest) error {
	if err := s.adminRepo.UpdateFullName(ctx, adminID, req.FullName); err != nil {
		logger.Error("[UpdateProfile] err UpdateFullName", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) ChangePassword(ctx context.Context, adminID uint64, req *model.ChangePasswordRequest) error {
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{ID: adminID})
	if err != nil {
		logger.Error("[ChangePassword] err adminRepo.Get", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if admin == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.SetCustomError(constant.ErrInvalidPassword)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ChangePassword] err bcrypt.GenerateFromPassword", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.adminRepo.UpdatePasswordHash(ctx, adminID, string(hashedPassword)); err != nil {
		logger.Error("[ChangePassword] err UpdatePasswordHash", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) Stats(ctx context.Context) (*model.StatsResponse, error) {
	stats := &model.StatsResponse{}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		logger.Error("[Stats] err userRepo.Count", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stats.TotalCourses, err = s.catalogRepo.Count(ctx); err != nil {
		logger.Error("[Stats] err catalogRepo.Count", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stats.PendingPayments, err = s.purchaseRepo.CountByStatus(ctx, constant.PurchaseStatusAwaitingConfirmation); err != nil {
		logger.Error("[Stats] err CountByStatus awaiting", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stats.ConfirmedPayments, err = s.purchaseRepo.CountByStatus(ctx, constant.PurchaseStatusPaid); err != nil {
		logger.Error("[Stats] err CountByStatus paid", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stats.TotalRevenue, err = s.purchaseRepo.SumPaidAmount(ctx); err != nil {
		logger.Error("[Stats] err SumPaidAmount", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}

// generateJWT creates a JWT token for the admin
func (s *adminAppImpl) generateJWT(adminID uint64, username string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", adminID),
		"username": username,
		"exp":      jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		"iat":      jwt.NewNumericDate(time.Now()),
		"jti":      newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, newUUID.String(), nil
}
