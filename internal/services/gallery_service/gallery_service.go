package services

import (
	"sync"

	"eterno_memorial/internal/domain/models"
)

// GalleryIndex merges a memorial's photo and video lists into one navigable
// sequence and tracks the lightbox cursor. Two states exist: closed (no
// selection) and open at a position; navigation wraps around both ends and
// only Close returns to the closed state. The index is re-enterable for the
// lifetime of the displayed memorial.
type GalleryIndex struct {
	mu       sync.Mutex
	items    []models.MediaItem
	position int
	open     bool
}

// New builds the index for one memorial: photos first, then videos, each
// keeping its position within its own source list.
func New(memorial models.Memorial) *GalleryIndex {
	return &GalleryIndex{
		items: memorial.Galeria(),
	}
}

// Items returns the merged sequence in navigation order.
func (g *GalleryIndex) Items() []models.MediaItem {
	return g.items
}

// IsEmpty reports whether there is anything to render; an empty gallery has
// no reachable transitions.
func (g *GalleryIndex) IsEmpty() bool {
	return len(g.items) == 0
}

// Select opens the lightbox at position. Out-of-range positions are a
// no-op, leaving the current state untouched.
func (g *GalleryIndex) Select(position int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if position < 0 || position >= len(g.items) {
		return
	}
	g.position = position
	g.open = true
}

// Next advances the cursor, wrapping from the last item to the first.
func (g *GalleryIndex) Next() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.open {
		return
	}
	g.position = (g.position + 1) % len(g.items)
}

// Previous moves the cursor back, wrapping from the first item to the last.
func (g *GalleryIndex) Previous() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.open {
		return
	}
	g.position = (g.position - 1 + len(g.items)) % len(g.items)
}

// Close clears the selection.
func (g *GalleryIndex) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.open = false
	g.position = 0
}

// Current returns the selected item, or false when the lightbox is closed.
func (g *GalleryIndex) Current() (models.MediaItem, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.open {
		return models.MediaItem{}, false
	}
	return g.items[g.position], true
}

// Position returns the cursor, or -1 when closed.
func (g *GalleryIndex) Position() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.open {
		return -1
	}
	return g.position
}
