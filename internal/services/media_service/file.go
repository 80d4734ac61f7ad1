package services

import (
	"bytes"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// OSFile adapts a local file to the pipeline's File interface. The declared
// MIME type comes from the extension, matching what a browser file picker
// would report.
type OSFile struct {
	path string
	size int64
}

func NewOSFile(path string) (*OSFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &OSFile{path: path, size: info.Size()}, nil
}

func (f *OSFile) Name() string { return filepath.Base(f.path) }
func (f *OSFile) Size() int64  { return f.size }

func (f *OSFile) ContentType() string {
	ext := strings.ToLower(filepath.Ext(f.path))
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	// .mov carries the quicktime type browsers declare for it
	if ext == ".mov" {
		return "video/quicktime"
	}
	return "application/octet-stream"
}

func (f *OSFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

// BytesFile is an in-memory File, used by tests and anywhere content is
// already loaded.
type BytesFile struct {
	FileName string
	MIMEType string
	Content  []byte

	// DeclaredSize overrides len(Content) when set, so oversized files can
	// be represented without allocating their bytes.
	DeclaredSize int64
}

func (f *BytesFile) Name() string        { return f.FileName }
func (f *BytesFile) ContentType() string { return f.MIMEType }

func (f *BytesFile) Size() int64 {
	if f.DeclaredSize > 0 {
		return f.DeclaredSize
	}
	return int64(len(f.Content))
}

func (f *BytesFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.Content)), nil
}
