package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/users/models"
)

// Service сервис регистрации и аутентификации пользователей
type Service struct {
	userRepo UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей.
// secret и tokenTTL приходят из конфигурации сервиса.
func NewService(userRepo UserRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя с ролью user.
// Пароль хранится только в виде bcrypt хеша.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: registering user email=%s", req.Email)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// Login аутентифицирует пользователя и возвращает JWT токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	s.logger.Info("Login: authenticating email=%s", req.Email)

	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// AdminLogin аутентифицирует администратора.
// Пользователю без роли admin токен не выдается.
func (s *Service) AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	s.logger.Info("AdminLogin: authenticating email=%s", req.Email)

	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	if !user.Role.IsAdmin() {
		s.logger.Warn("AdminLogin: user id=%d is not an admin", user.ID)
		return nil, ErrNotAdmin
	}

	return s.issueToken(user)
}

// authenticate проверяет пару email/пароль
func (s *Service) authenticate(ctx context.Context, req *models.LoginRequest) (*domain.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("authenticate: email=%s not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("authenticate: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: authenticate - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("authenticate: wrong password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// issueToken подписывает JWT токен с идентификацией пользователя
func (s *Service) issueToken(user *domain.User) (*models.TokenResponse, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("issueToken: failed to sign token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issueToken - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("issueToken: token issued for user id=%d, role=%s", user.ID, user.Role)
	return &models.TokenResponse{
		AccessToken: token,
		User:        *models.FromDomainUser(user),
	}, nil
}

// validateRegisterRequest валидирует запрос на регистрацию
func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
