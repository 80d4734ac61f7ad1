package services

import (
	"testing"

	"eterno_memorial/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func galleryMemorial(fotos, videos []string) models.Memorial {
	return models.Memorial{
		Slug:          "jose_silva",
		GaleriaFotos:  fotos,
		GaleriaVideos: videos,
	}
}

func TestGalleryIndex_MergeOrder(t *testing.T) {
	g := New(galleryMemorial(
		[]string{"f0", "f1", "f2"},
		[]string{"v0", "v1"},
	))

	items := g.Items()
	require.Len(t, items, 5)

	for i := 0; i < 3; i++ {
		assert.Equal(t, models.MediaTypePhoto, items[i].Kind)
		assert.Equal(t, i, items[i].OriginalIndex)
	}
	for i := 3; i < 5; i++ {
		assert.Equal(t, models.MediaTypeVideo, items[i].Kind)
		assert.Equal(t, i-3, items[i].OriginalIndex)
	}
	assert.Equal(t, "v0", items[3].URL)
}

func TestGalleryIndex_CyclicNavigation(t *testing.T) {
	g := New(galleryMemorial([]string{"f0", "f1"}, []string{"v0"}))
	n := len(g.Items())

	for start := 0; start < n; start++ {
		g.Select(start)
		for i := 0; i < n; i++ {
			g.Next()
		}
		assert.Equal(t, start, g.Position(), "n nexts from %d should wrap home", start)
	}

	g.Select(0)
	g.Previous()
	assert.Equal(t, n-1, g.Position())

	g.Next()
	assert.Equal(t, 0, g.Position())
}

func TestGalleryIndex_SelectBounds(t *testing.T) {
	g := New(galleryMemorial([]string{"f0", "f1"}, nil))

	g.Select(5)
	assert.Equal(t, -1, g.Position(), "out-of-range select on a closed gallery stays closed")

	g.Select(1)
	require.Equal(t, 1, g.Position())

	g.Select(-1)
	assert.Equal(t, 1, g.Position(), "out-of-range select keeps the current cursor")

	g.Select(2)
	assert.Equal(t, 1, g.Position())
}

func TestGalleryIndex_CloseAndReopen(t *testing.T) {
	g := New(galleryMemorial([]string{"f0"}, []string{"v0"}))

	_, ok := g.Current()
	assert.False(t, ok)

	g.Select(1)
	item, ok := g.Current()
	require.True(t, ok)
	assert.Equal(t, "v0", item.URL)

	g.Close()
	_, ok = g.Current()
	assert.False(t, ok)

	// re-enterable after close
	g.Select(0)
	assert.Equal(t, 0, g.Position())
}

func TestGalleryIndex_Empty(t *testing.T) {
	g := New(galleryMemorial(nil, nil))

	assert.True(t, g.IsEmpty())

	g.Select(0)
	g.Next()
	g.Previous()
	assert.Equal(t, -1, g.Position())
	_, ok := g.Current()
	assert.False(t, ok)
}
