package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"eterno_memorial/internal/domain/models"
	"eterno_memorial/internal/repository"
	"eterno_memorial/internal/storage/session"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemorialRepository struct {
	mock.Mock
}

func (m *MockMemorialRepository) Login(ctx context.Context, email, senha string) (models.LoginResult, error) {
	args := m.Called(ctx, email, senha)
	return args.Get(0).(models.LoginResult), args.Error(1)
}

func (m *MockMemorialRepository) ListMemorials(ctx context.Context) ([]models.Memorial, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Memorial), args.Error(1)
}

func (m *MockMemorialRepository) GetMemorialBySlug(ctx context.Context, slug string) (models.Memorial, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Memorial), args.Error(1)
}

func (m *MockMemorialRepository) CreateMemorial(ctx context.Context, input repository.MemorialInput) (models.Memorial, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Memorial), args.Error(1)
}

func (m *MockMemorialRepository) UpdateMemorial(ctx context.Context, slug string, input repository.MemorialInput) (models.Memorial, error) {
	args := m.Called(ctx, slug, input)
	return args.Get(0).(models.Memorial), args.Error(1)
}

func (m *MockMemorialRepository) DeleteMemorial(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockMemorialRepository) ListComments(ctx context.Context, slug string, pagina, porPagina int) (models.ComentariosPage, error) {
	args := m.Called(ctx, slug, pagina, porPagina)
	return args.Get(0).(models.ComentariosPage), args.Error(1)
}

func (m *MockMemorialRepository) CreateComment(ctx context.Context, slug, nome, texto string) (models.Comentario, error) {
	args := m.Called(ctx, slug, nome, texto)
	return args.Get(0).(models.Comentario), args.Error(1)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"exp": float64(exp.Unix()),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestAuth_LoginStoresToken(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMemorialRepository)
	sess := session.NewMemory()

	mockRepo.On("Login", ctx, "admin@eterno.com", "senha123").Return(models.LoginResult{
		Token: "tok-123",
		User:  models.User{Email: "admin@eterno.com", Name: "Admin"},
	}, nil).Once()

	a := New(slog.Default(), mockRepo, sess)

	user, err := a.Login(ctx, "admin@eterno.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Name)

	token, err := sess.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	mockRepo.AssertExpectations(t)
}

func TestAuth_LoginFailureLeavesSessionEmpty(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMemorialRepository)
	sess := session.NewMemory()

	mockRepo.On("Login", ctx, "admin@eterno.com", "errada").
		Return(models.LoginResult{}, errors.New("credenciais inválidas")).Once()

	a := New(slog.Default(), mockRepo, sess)

	_, err := a.Login(ctx, "admin@eterno.com", "errada")
	require.Error(t, err)

	_, err = sess.Token(ctx)
	assert.Error(t, err)
	assert.False(t, a.IsAuthenticated(ctx))
}

func TestAuth_LogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	sess := session.NewMemory()
	require.NoError(t, sess.SetToken(ctx, "tok-123"))

	a := New(slog.Default(), new(MockMemorialRepository), sess)

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.IsAuthenticated(ctx))
}

func TestAuth_IsAuthenticated(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"no token", "", false},
		{"opaque token", "opaque-token", true},
		{"live jwt", signedToken(t, time.Now().Add(time.Hour)), true},
		{"expired jwt", signedToken(t, time.Now().Add(-time.Hour)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.NewMemory()
			if tt.token != "" {
				require.NoError(t, sess.SetToken(ctx, tt.token))
			}

			a := New(slog.Default(), new(MockMemorialRepository), sess)
			assert.Equal(t, tt.want, a.IsAuthenticated(ctx))
		})
	}
}
