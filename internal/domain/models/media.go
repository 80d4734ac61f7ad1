package models

import (
	"fmt"
	"strings"
)

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

// MIMEPrefix is the declared-type prefix a file of this kind must carry.
func (t MediaType) MIMEPrefix() string {
	switch t {
	case MediaTypePhoto:
		return "image/"
	case MediaTypeVideo:
		return "video/"
	}
	return ""
}

func (t MediaType) Valid() bool {
	return t == MediaTypePhoto || t == MediaTypeVideo
}

// MediaItem is one entry of the merged photo+video gallery sequence.
// OriginalIndex is the position inside the item's own source list, not the
// merged position used for navigation.
type MediaItem struct {
	URL           string
	Kind          MediaType
	OriginalIndex int
}

// IngestError reports one rejected or unreadable file from an ingestion
// batch. Every file is evaluated independently, so one batch can carry
// several of these.
type IngestError struct {
	FileName string
	Reason   string
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("%s: %s", e.FileName, e.Reason)
}

// IngestErrors aggregates a batch's failures into one user-facing message.
type IngestErrors []*IngestError

func (e IngestErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// IsIngestError reports whether err came out of the ingestion pipeline.
func IsIngestError(err error) bool {
	if err == nil {
		return false
	}
	switch err.(type) {
	case *IngestError, IngestErrors:
		return true
	}
	return false
}
