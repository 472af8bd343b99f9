package service

import (
	"errors"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/repository"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/bcrypt"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/jwt"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/ratelimit"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	adminRepo *repository.AdminRepository
	limiter   *ratelimit.Limiter
	logger    *zap.Logger
}

func NewAuthService(adminRepo *repository.AdminRepository, limiter *ratelimit.Limiter, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{adminRepo: adminRepo, limiter: limiter, logger: logger}
}

// Login e-posta/şifre doğrular ve oturum token'ı üretir. Deneme sınırı IP
// bazlıdır; var olmayan hesap ile yanlış şifre aynı hatayı döner.
func (s *AuthService) Login(req models.LoginRequest, clientIP string) (*models.AuthResponse, error) {
	if !s.limiter.Allow("login:" + clientIP) {
		return nil, ErrRateLimited
	}

	admin, err := s.adminRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(admin.Password, req.Password); err != nil {
		s.logger.Warn("başarısız giriş denemesi", zap.String("email", req.Email), zap.String("ip", clientIP))
		return nil, ErrInvalidCredential
	}

	if !admin.IsActive {
		return nil, ErrInactiveAdmin
	}

	token, err := jwt.GenerateToken(admin.Email, admin.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, Admin: *admin}, nil
}
