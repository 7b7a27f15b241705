package crud

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository is a gorm-backed store shared by every entity. Records are the
// exclusive property of the database; nothing is cached between requests.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) List(ctx context.Context, order string) ([]*T, error) {
	var records []*T
	q := r.db.WithContext(ctx)
	if order != "" {
		q = q.Order(order)
	}
	err := q.Find(&records).Error
	return records, err
}

func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository[T]) Save(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}
