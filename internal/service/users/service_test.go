package users

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/users/models"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	nextID int64
	users  map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	f.nextID++
	stored := *user
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.users[stored.Email] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewService(repo, testSecret, 24*time.Hour, nopLogger{}), repo
}

func addAdmin(t *testing.T, repo *fakeUserRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &domain.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	require.NoError(t, err)
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Ivan",
		Email:    "Ivan@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "user", resp.Role)
	// Email нормализуется к нижнему регистру
	assert.Equal(t, "ivan@example.com", resp.Email)

	// Пароль хранится только в виде bcrypt хеша
	stored := repo.users["ivan@example.com"]
	require.NotNil(t, stored)
	assert.NotContains(t, stored.PasswordHash, "secret123")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, _ := newTestService()

	req := &models.RegisterRequest{Name: "Ivan", Email: "ivan@example.com", Password: "secret123"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty name", models.RegisterRequest{Email: "a@b.com", Password: "secret123"}},
		{"bad email", models.RegisterRequest{Name: "Ivan", Email: "not-an-email", Password: "secret123"}},
		{"short password", models.RegisterRequest{Name: "Ivan", Email: "a@b.com", Password: "123"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "ivan@example.com", resp.User.Email)

	// Токен подписан нашим секретом и несет идентификацию пользователя
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(resp.User.ID), claims["sub"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, "ivan@example.com", claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Неверный пароль и неизвестный email дают одну и ту же ошибку
	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "ivan@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLogin(t *testing.T) {
	svc, repo := newTestService()
	addAdmin(t, repo, "admin@example.com", "admin123")

	resp, err := svc.AdminLogin(context.Background(), &models.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestAdminLogin_NotAdmin(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.AdminLogin(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "secret123",
	})
	require.ErrorIs(t, err, ErrNotAdmin)
}
