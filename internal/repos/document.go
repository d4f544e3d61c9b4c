package repos

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/dbctx"
)

// DocumentRepo is the narrow persistence surface the command layer
// consumes: fetch one aggregate, persist one aggregate atomically.
type DocumentRepo[T any] interface {
	Get(dbc dbctx.Context, id uuid.UUID) (*T, error)
	GetAll(dbc dbctx.Context) ([]*T, error)
	Upsert(dbc dbctx.Context, doc *T) (*T, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type documentRepo[T any] struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDocumentRepo[T any](db *gorm.DB, baseLog *logger.Logger, name string) DocumentRepo[T] {
	return &documentRepo[T]{
		db:  db,
		log: baseLog.With("repo", name),
	}
}

func (r *documentRepo[T]) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *documentRepo[T]) Get(dbc dbctx.Context, id uuid.UUID) (*T, error) {
	var doc T
	err := r.conn(dbc).WithContext(dbc.Ctx).
		Where("id = ?", id).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo[T]) GetAll(dbc dbctx.Context) ([]*T, error) {
	var docs []*T
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Where("deleted IS NULL").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo[T]) Upsert(dbc dbctx.Context, doc *T) (*T, error) {
	if err := r.conn(dbc).WithContext(dbc.Ctx).Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *documentRepo[T]) Delete(dbc dbctx.Context, id uuid.UUID) error {
	var doc T
	return r.conn(dbc).WithContext(dbc.Ctx).
		Where("id = ?", id).
		Delete(&doc).Error
}
