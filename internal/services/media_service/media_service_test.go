package services

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"testing"

	"eterno_memorial/internal/config"
	"eterno_memorial/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMediaConfig() config.MediaConfig {
	return config.MediaConfig{
		MaxVideoSize:      50 * 1024 * 1024,
		AllowedVideoTypes: []string{"video/mp4", "video/webm", "video/quicktime"},
	}
}

type brokenFile struct {
	BytesFile
}

func (f *brokenFile) Open() (io.ReadCloser, error) {
	return nil, errors.New("disk gone")
}

func TestMediaService_IngestBatch(t *testing.T) {
	ctx := context.Background()
	svc := NewMediaService(slog.Default(), testMediaConfig())

	tests := []struct {
		name         string
		files        []File
		kind         models.MediaType
		wantAccepted int
		wantErrors   []string
	}{
		{
			name: "all photos accepted",
			files: []File{
				&BytesFile{FileName: "a.jpg", MIMEType: "image/jpeg", Content: []byte("aaa")},
				&BytesFile{FileName: "b.png", MIMEType: "image/png", Content: []byte("bbb")},
			},
			kind:         models.MediaTypePhoto,
			wantAccepted: 2,
		},
		{
			name: "non-image rejected from photo batch",
			files: []File{
				&BytesFile{FileName: "a.jpg", MIMEType: "image/jpeg", Content: []byte("aaa")},
				&BytesFile{FileName: "notes.txt", MIMEType: "text/plain", Content: []byte("x")},
			},
			kind:         models.MediaTypePhoto,
			wantAccepted: 1,
			wantErrors:   []string{"notes.txt"},
		},
		{
			name: "video type outside allow-list rejected despite small size",
			files: []File{
				&BytesFile{FileName: "clip.avi", MIMEType: "video/avi", Content: []byte("v")},
			},
			kind:       models.MediaTypeVideo,
			wantErrors: []string{"clip.avi"},
		},
		{
			name: "oversized video rejected",
			files: []File{
				&BytesFile{FileName: "ok.mp4", MIMEType: "video/mp4", Content: []byte("v")},
				&BytesFile{FileName: "huge.mp4", MIMEType: "video/mp4", DeclaredSize: 60 * 1024 * 1024},
			},
			kind:         models.MediaTypeVideo,
			wantAccepted: 1,
			wantErrors:   []string{"huge.mp4"},
		},
		{
			name: "read failure becomes an ingest error, not a crash",
			files: []File{
				&brokenFile{BytesFile{FileName: "gone.jpg", MIMEType: "image/jpeg"}},
			},
			kind:       models.MediaTypePhoto,
			wantErrors: []string{"gone.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.IngestBatch(ctx, tt.files, tt.kind)
			require.NoError(t, err)

			assert.Len(t, result.Accepted, tt.wantAccepted)
			require.Len(t, result.Errors, len(tt.wantErrors))
			for i, name := range tt.wantErrors {
				assert.Equal(t, name, result.Errors[i].FileName)
			}
		})
	}
}

func TestMediaService_IngestBatch_OrderPreserved(t *testing.T) {
	ctx := context.Background()
	svc := NewMediaService(slog.Default(), testMediaConfig())

	files := make([]File, 0, 8)
	for _, c := range []string{"one", "two", "three", "four", "five", "six", "seven", "eight"} {
		files = append(files, &BytesFile{FileName: c + ".jpg", MIMEType: "image/jpeg", Content: []byte(c)})
	}

	result, err := svc.IngestBatch(ctx, files, models.MediaTypePhoto)
	require.NoError(t, err)
	require.Len(t, result.Accepted, len(files))

	// concurrent encoding must not reorder results
	for i, want := range []string{"one", "two", "three", "four", "five", "six", "seven", "eight"} {
		expected := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte(want))
		assert.Equal(t, expected, result.Accepted[i])
	}
}

func TestMediaService_IngestGalleries_MixedBatch(t *testing.T) {
	ctx := context.Background()
	svc := NewMediaService(slog.Default(), testMediaConfig())

	result, err := svc.IngestGalleries(ctx,
		[]File{&BytesFile{FileName: "retrato.jpg", MIMEType: "image/jpeg", DeclaredSize: 2 * 1024 * 1024, Content: []byte("img")}},
		[]File{&BytesFile{FileName: "festa.mp4", MIMEType: "video/mp4", DeclaredSize: 60 * 1024 * 1024}},
	)
	require.NoError(t, err)

	assert.Len(t, result.Fotos, 1)
	assert.Empty(t, result.Videos)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "festa.mp4", result.Errors[0].FileName)
	assert.Contains(t, result.ErrorMessage(), "festa.mp4")
}

func TestMediaService_IngestOne(t *testing.T) {
	ctx := context.Background()
	svc := NewMediaService(slog.Default(), testMediaConfig())

	payload, err := svc.IngestOne(ctx, &BytesFile{FileName: "main.jpg", MIMEType: "image/jpeg", Content: []byte("xyz")}, models.MediaTypePhoto)
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte("xyz")), payload)

	_, err = svc.IngestOne(ctx, &BytesFile{FileName: "doc.pdf", MIMEType: "application/pdf", Content: []byte("p")}, models.MediaTypePhoto)
	require.Error(t, err)
	assert.True(t, models.IsIngestError(err))
}
