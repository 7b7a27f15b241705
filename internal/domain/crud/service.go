// Package crud implements the one controller pattern shared by every entity
// in the site: list/get/create/update/delete over a gorm table, with an
// optional attached file whose lifecycle is reconciled against the record's
// file-reference field.
//
// File and record are a dual write with no transaction. Create writes the
// file first and removes it again when the record write fails. Update writes
// the record first and deletes the replaced file only after success, so a
// failed update never loses the old file; a freshly saved new file is removed
// on failure the same way Create does it. Delete removes the file best-effort
// before the row. A crash between any two steps can still orphan a file —
// that window is accepted, not hidden.
package crud

import (
	"context"
	"log"
	"mime/multipart"
	"os"

	"assovol/internal/storage"
)

// FileCarrier exposes an entity's file-reference field to the generic
// service. Entities without an attached file return "" and ignore sets.
type FileCarrier interface {
	FileRef() string
	SetFileRef(string)
}

// Record constrains PT to "pointer to the entity type" so the service can
// construct and mutate records generically.
type Record[T any] interface {
	*T
	FileCarrier
}

// Descriptor is the per-entity configuration that turns the generic service
// into a concrete controller.
type Descriptor struct {
	// Name appears in not-found and log messages ("News", "Project").
	Name string
	// RequireUpload makes Create fail with ErrFileRequired when the request
	// carries neither a file nor a caller-supplied reference.
	RequireUpload bool
	// DefaultFileRef is used when Create receives no file and no caller
	// reference, e.g. a placeholder image path.
	DefaultFileRef string
	// SortBy orders List results, e.g. "date DESC" or "created_at DESC".
	SortBy string
}

// OnStored lets a caller derive record fields from the saved file (the
// Document controller fills its human-readable size from it).
type OnStored[T any] func(record *T, stored storage.Stored)

type Service[T any, PT Record[T]] struct {
	repo  *Repository[T]
	store *storage.Storage
	desc  Descriptor
}

func NewService[T any, PT Record[T]](repo *Repository[T], store *storage.Storage, desc Descriptor) *Service[T, PT] {
	return &Service[T, PT]{repo: repo, store: store, desc: desc}
}

// List returns all records in descriptor order with file references
// rewritten to absolute URLs.
func (s *Service[T, PT]) List(ctx context.Context) ([]*T, error) {
	records, err := s.repo.List(ctx, s.desc.SortBy)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		s.rewriteURL(r)
	}
	return records, nil
}

// Get returns one record or ErrNotFound, file reference rewritten.
func (s *Service[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.rewriteURL(record)
	return record, nil
}

// Create resolves the record's file reference (uploaded file, then caller
// reference, then descriptor default) and persists it. When the record write
// fails after a file was saved, the file is removed again so no orphan
// survives a rejected create.
func (s *Service[T, PT]) Create(ctx context.Context, record PT, upload *multipart.FileHeader, callerRef string, onStored OnStored[T]) error {
	var saved *storage.Stored
	switch {
	case upload != nil:
		stored, err := s.store.Save(upload)
		if err != nil {
			return err
		}
		saved = &stored
		record.SetFileRef(stored.Path)
		if onStored != nil {
			onStored((*T)(record), stored)
		}
	case callerRef != "":
		record.SetFileRef(callerRef)
	case s.desc.RequireUpload:
		return ErrFileRequired
	case s.desc.DefaultFileRef != "":
		record.SetFileRef(s.desc.DefaultFileRef)
	}

	if err := s.repo.Create(ctx, (*T)(record)); err != nil {
		if saved != nil {
			s.cleanup(saved.Path)
		}
		return err
	}

	s.rewriteURL((*T)(record))
	return nil
}

// Update loads the record, applies the partial field changes, stores a new
// file when one was uploaded, and persists. The old file is deleted only
// after the record write succeeded; if the write fails the new file is
// removed and the record keeps referencing the old one.
func (s *Service[T, PT]) Update(ctx context.Context, id int64, upload *multipart.FileHeader, apply func(PT), onStored OnStored[T]) (*T, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldRef := PT(record).FileRef()

	if apply != nil {
		apply(PT(record))
	}

	var saved *storage.Stored
	if upload != nil {
		stored, err := s.store.Save(upload)
		if err != nil {
			return nil, err
		}
		saved = &stored
		PT(record).SetFileRef(stored.Path)
		if onStored != nil {
			onStored(record, stored)
		}
	}

	if err := s.repo.Save(ctx, record); err != nil {
		if saved != nil {
			s.cleanup(saved.Path)
		}
		return nil, err
	}

	if saved != nil && oldRef != saved.Path {
		s.cleanup(oldRef)
	}

	s.rewriteURL(record)
	return record, nil
}

// Delete removes the referenced file (best-effort, the row is deleted
// regardless) and then the record. Returns ErrNotFound for an absent id.
func (s *Service[T, PT]) Delete(ctx context.Context, id int64) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if ref := PT(record).FileRef(); ref != "" {
		s.cleanup(ref)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service[T, PT]) rewriteURL(record *T) {
	if ref := PT(record).FileRef(); ref != "" {
		PT(record).SetFileRef(s.store.PublicURL(ref))
	}
}

// cleanup deletes a stored file and only logs on failure; storage leakage is
// an accepted failure mode, a broken response is not.
func (s *Service[T, PT]) cleanup(ref string) {
	if err := s.store.Remove(ref); err != nil && !os.IsNotExist(err) {
		log.Printf("file_cleanup_failed entity=%s ref=%s error=%v", s.desc.Name, ref, err)
	}
}
