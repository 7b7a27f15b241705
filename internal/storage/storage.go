// Package storage owns the uploads directory: it writes incoming multipart
// files under generated names, removes files that are no longer referenced,
// and turns stored relative paths into public URLs.
//
// A file on disk and the record referencing it are two separate writes with
// no transaction between them. Callers limit the inconsistency window with
// compensating deletes (remove the file when the record write fails), but a
// crash between the two steps can still leave an orphan on either side.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the path under which stored files are served and the prefix
// every managed file reference starts with.
const URLPrefix = "/uploads"

// Stored describes a file that has been written to the uploads directory.
type Stored struct {
	Path string // relative reference, "/uploads/<name>"
	Size int64  // bytes
}

type Storage struct {
	dir     string
	baseURL string
}

// New creates a Storage rooted at dir. The directory is created if missing.
// baseURL is prefixed to relative references by PublicURL.
func New(dir, baseURL string) (*Storage, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Storage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *Storage) Dir() string { return s.dir }

// Save writes the uploaded file to the uploads directory under a generated
// name (timestamp + uuid + original extension) and returns its reference.
func (s *Storage) Save(fh *multipart.FileHeader) (Stored, error) {
	src, err := fh.Open()
	if err != nil {
		return Stored{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.New().String(), filepath.Ext(fh.Filename))
	absPath := filepath.Join(s.dir, name)

	dst, err := os.Create(absPath)
	if err != nil {
		return Stored{}, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(absPath)
		return Stored{}, fmt.Errorf("write file: %w", err)
	}

	return Stored{Path: URLPrefix + "/" + name, Size: size}, nil
}

// Remove deletes the file a reference points to. Only references under the
// managed prefix are touched; anything else (placeholder images, external
// URLs) is left alone. Returns nil when there is nothing to do.
func (s *Storage) Remove(ref string) error {
	if !Managed(ref) {
		return nil
	}
	// basename only, so a crafted reference cannot escape the uploads dir
	return os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
}

// PublicURL rewrites a stored relative reference to an absolute URL.
// References that are already absolute pass through unchanged.
func (s *Storage) PublicURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return s.baseURL + ref
}

// Managed reports whether a reference points into the uploads directory.
func Managed(ref string) bool {
	return strings.HasPrefix(ref, URLPrefix+"/")
}
