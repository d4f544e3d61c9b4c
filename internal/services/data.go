package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/laingsimon/courage-scores/internal/commands"
	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/pkg/dbctx"
	"github.com/laingsimon/courage-scores/internal/repos"
)

// AggregatePtr constrains PT to "pointer to the aggregate struct" so the
// service can both allocate new aggregates and reach their audit fields.
type AggregatePtr[T any] interface {
	commands.Audited
	*T
}

// DataService is the shared orchestration for every simple aggregate:
// fetch the current document, run the aggregate's command against it, and
// persist the outcome in a single transaction. Only the command differs
// per aggregate type.
type DataService[T any, PT AggregatePtr[T], D dtos.Update] struct {
	db        *gorm.DB
	log       *logger.Logger
	repo      repos.DocumentRepo[T]
	apply     func(dbc dbctx.Context, agg PT, dto D) (*commands.ActionResult[PT], error)
	canManage func(ctxutil.Access) bool
	dataType  string
	publisher Publisher
}

func NewDataService[T any, PT AggregatePtr[T], D dtos.Update](
	db *gorm.DB,
	log *logger.Logger,
	repo repos.DocumentRepo[T],
	apply func(dbc dbctx.Context, agg PT, dto D) (*commands.ActionResult[PT], error),
	canManage func(ctxutil.Access) bool,
	dataType string,
	publisher Publisher,
) *DataService[T, PT, D] {
	return &DataService[T, PT, D]{
		db:        db,
		log:       log.With("service", dataType+"Service"),
		repo:      repo,
		apply:     apply,
		canManage: canManage,
		dataType:  dataType,
		publisher: publisher,
	}
}

func (s *DataService[T, PT, D]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.Get(dbctx.Context{Ctx: ctx}, id)
}

func (s *DataService[T, PT, D]) GetAll(ctx context.Context) ([]*T, error) {
	return s.repo.GetAll(dbctx.Context{Ctx: ctx})
}

// Upsert runs the aggregate's command and commits its outcome atomically.
// A zero id creates a new aggregate.
func (s *DataService[T, PT, D]) Upsert(ctx context.Context, id uuid.UUID, dto D) (*commands.ActionResult[PT], error) {
	if denied := s.denied(ctx); denied != nil {
		return denied, nil
	}

	var result *commands.ActionResult[PT]
	err := s.inTransaction(ctx, func(dbc dbctx.Context) error {
		agg, err := s.fetchOrNew(dbc, id)
		if err != nil {
			return err
		}
		result, err = s.apply(dbc, agg, dto)
		if err != nil || !result.Success {
			return err
		}
		return s.persist(dbc, agg, result)
	})
	if err != nil {
		return nil, err
	}

	if result.Success && s.publisher != nil {
		s.publisher.Publish(ctx, result.Result.Audit().ID, s.dataType, result.Result)
	}
	return result, nil
}

// Delete soft-deletes the aggregate; the row survives but accepts no
// further updates.
func (s *DataService[T, PT, D]) Delete(ctx context.Context, id uuid.UUID) (*commands.ActionResult[PT], error) {
	if denied := s.denied(ctx); denied != nil {
		return denied, nil
	}

	var result *commands.ActionResult[PT]
	err := s.inTransaction(ctx, func(dbc dbctx.Context) error {
		existing, err := s.repo.Get(dbc, id)
		if err != nil {
			return err
		}
		if existing == nil {
			result = commands.Unsuccessful[PT](s.dataType + " not found")
			return nil
		}
		result = commands.ApplyDelete(PT(existing), ctxutil.UserName(dbc.Ctx))
		if !result.Success {
			return nil
		}
		return s.persist(dbc, PT(existing), result)
	})
	if err != nil {
		return nil, err
	}

	if result.Success && s.publisher != nil {
		s.publisher.Publish(ctx, id, s.dataType+"Deleted", nil)
	}
	return result, nil
}

func (s *DataService[T, PT, D]) fetchOrNew(dbc dbctx.Context, id uuid.UUID) (PT, error) {
	if id != uuid.Nil {
		existing, err := s.repo.Get(dbc, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return PT(existing), nil
		}
	}
	return PT(new(T)), nil
}

func (s *DataService[T, PT, D]) persist(dbc dbctx.Context, agg PT, result *commands.ActionResult[PT]) error {
	if result.Delete {
		return s.repo.Delete(dbc, agg.Audit().ID)
	}
	_, err := s.repo.Upsert(dbc, (*T)(agg))
	return err
}

func (s *DataService[T, PT, D]) denied(ctx context.Context) *commands.ActionResult[PT] {
	if s.canManage == nil {
		return nil
	}
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || !s.canManage(rd.Access) {
		return commands.Unsuccessful[PT]("Not permitted")
	}
	return nil
}

func (s *DataService[T, PT, D]) inTransaction(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if s.db == nil {
		return fn(dbctx.Context{Ctx: ctx})
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
