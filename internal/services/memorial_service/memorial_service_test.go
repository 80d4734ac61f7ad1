package services

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"eterno_memorial/internal/config"
	"eterno_memorial/internal/domain/models"
	"eterno_memorial/internal/repository"
	media "eterno_memorial/internal/services/media_service"

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

func newService(repo repository.MemorialRepository) *MemorialService {
	mediaSvc := media.NewMediaService(slog.Default(), config.MediaConfig{
		MaxVideoSize:      50 * 1024 * 1024,
		AllowedVideoTypes: []string{"video/mp4", "video/webm", "video/quicktime"},
	})
	return NewMemorialService(slog.Default(), repo, mediaSvc)
}

func TestMemorialService_CreateGeneratesSlug(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMemorialRepository)
	svc := newService(mockRepo)

	var got repository.MemorialInput
	mockRepo.On("CreateMemorial", ctx, mock.AnythingOfType("repository.MemorialInput")).
		Run(func(args mock.Arguments) {
			got = args.Get(1).(repository.MemorialInput)
		}).
		Return(models.Memorial{ID: "1", Slug: "jose_da_silva"}, nil).Once()

	_, err := svc.Create(ctx, FormInput{
		Nome:      "José da Silva",
		Biografia: "Uma vida dedicada à família.",
		FotoMain:  &media.BytesFile{FileName: "main.jpg", MIMEType: "image/jpeg", Content: []byte("x")},
		NovasFotos: []media.File{
			&media.BytesFile{FileName: "a.jpg", MIMEType: "image/jpeg", Content: []byte("a")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "jose_da_silva", got.Slug)
	assert.True(t, strings.HasPrefix(got.FotoMainURL, "data:image/jpeg;base64,"))
	require.Len(t, got.GaleriaFotos, 1)
	assert.Empty(t, got.GaleriaVideos)
	mockRepo.AssertExpectations(t)
}

func TestMemorialService_CreateAbortsOnIngestError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMemorialRepository)
	svc := newService(mockRepo)

	_, err := svc.Create(ctx, FormInput{
		Nome:      "José da Silva",
		Biografia: "bio",
		NovosVideos: []media.File{
			&media.BytesFile{FileName: "huge.mp4", MIMEType: "video/mp4", DeclaredSize: 60 * 1024 * 1024},
		},
	})
	require.Error(t, err)
	assert.True(t, models.IsIngestError(err))
	assert.Contains(t, err.Error(), "huge.mp4")

	mockRepo.AssertNotCalled(t, "CreateMemorial")
}

func TestMemorialService_UpdateFreezesSlug(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMemorialRepository)
	svc := newService(mockRepo)

	var got repository.MemorialInput
	mockRepo.On("UpdateMemorial", ctx, "jose_da_silva", mock.AnythingOfType("repository.MemorialInput")).
		Run(func(args mock.Arguments) {
			got = args.Get(2).(repository.MemorialInput)
		}).
		Return(models.Memorial{ID: "1", Slug: "jose_da_silva"}, nil).Once()

	_, err := svc.Update(ctx, "jose_da_silva", FormInput{
		Nome:         "José Renamed Completely",
		Biografia:    "bio",
		Slug:         "attempted_override",
		FotoMainURL:  "https://cdn/old.jpg",
		GaleriaFotos: []string{"https://cdn/1.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "jose_da_silva", got.Slug, "edits never rename the slug")
	assert.Equal(t, "https://cdn/old.jpg", got.FotoMainURL, "no new file keeps the current photo")
	assert.Equal(t, []string{"https://cdn/1.jpg"}, got.GaleriaFotos)
	mockRepo.AssertExpectations(t)
}

func TestMemorialService_Validation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMemorialRepository)
	svc := newService(mockRepo)

	longCausa := strings.Repeat("a", models.MaxCausaMorteLen+1)

	tests := []struct {
		name  string
		input FormInput
	}{
		{"missing nome", FormInput{Biografia: "bio"}},
		{"missing biografia", FormInput{Nome: "José"}},
		{"bad color", FormInput{Nome: "José", Biografia: "bio", CorPrincipal: "red"}},
		{"causaMorte too long", FormInput{Nome: "José", Biografia: "bio", CausaMorte: &longCausa}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.Error(t, err)
		})
	}

	mockRepo.AssertNotCalled(t, "CreateMemorial")
}

func TestMemorialService_Delete(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMemorialRepository)
	svc := newService(mockRepo)

	mockRepo.On("DeleteMemorial", ctx, "jose_da_silva").Return(nil).Once()

	require.NoError(t, svc.Delete(ctx, "jose_da_silva"))
	mockRepo.AssertExpectations(t)
}
