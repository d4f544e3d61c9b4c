package commands

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/types"
)

// Audited is satisfied by a pointer to any aggregate embedding
// types.AuditedEntity.
type Audited interface {
	Audit() *types.AuditedEntity
}

// UpdateHook performs the type-specific field merge once the generic
// pre-conditions have passed. Hooks mutate the aggregate in place and
// report business failures through the returned ActionResult.
type UpdateHook[T Audited, D dtos.Update] func(ctx context.Context, agg T, dto D) (*ActionResult[T], error)

// ErrNoUpdateData indicates the command was invoked without its update
// payload. This is programmer misuse, not a user-facing failure; it is
// returned as a plain error and expected to crash the request.
var ErrNoUpdateData = errors.New("update data was not supplied")

// ApplyUpdate is the optimistic-concurrency wrapper shared by every
// mutable aggregate. It validates the soft-delete marker and concurrency
// token, mints an id on first save, then delegates the actual field merge
// to hook. No partial mutation happens on a conflict.
func ApplyUpdate[T Audited, D dtos.Update](ctx context.Context, agg T, dto D, user string, hook UpdateHook[T, D]) (*ActionResult[T], error) {
	if isNilValue(dto) {
		return nil, ErrNoUpdateData
	}

	audit := agg.Audit()
	name := entityName(agg)

	if audit.Deleted != nil {
		return Unsuccessful[T](fmt.Sprintf("Cannot update a deleted %s", name)), nil
	}

	create := audit.ID == uuid.Nil
	if create {
		audit.ID = uuid.New()
	} else {
		last := dto.GetLastUpdated()
		if last == nil || !last.Equal(audit.Updated) {
			editor := audit.Editor
			if editor == "" {
				editor = audit.Author
			}
			return Unsuccessful[T](fmt.Sprintf(
				"Unable to update %s, %s updated it before you at %s",
				name, editor, audit.Updated.UTC().Format(time.RFC3339))), nil
		}
	}

	result, err := hook(ctx, agg, dto)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	now := time.Now().UTC()
	if create {
		audit.Created = now
		audit.Author = user
	}
	audit.Updated = now
	audit.Editor = user

	if len(result.Messages) == 0 {
		if create {
			result.Messages = []string{fmt.Sprintf("%s created", name)}
		} else {
			result.Messages = []string{fmt.Sprintf("%s updated", name)}
		}
	}
	if isNilValue(result.Result) {
		result.Result = agg
	}
	return result, nil
}

// ApplyDelete soft-deletes an aggregate: the row is kept but accepts no
// further updates.
func ApplyDelete[T Audited](agg T, user string) *ActionResult[T] {
	audit := agg.Audit()
	name := entityName(agg)
	if audit.Deleted != nil {
		return Unsuccessful[T](fmt.Sprintf("%s has already been deleted", name))
	}
	now := time.Now().UTC()
	audit.Deleted = &now
	audit.Remover = user
	audit.Updated = now
	audit.Editor = user
	return Successful(agg, fmt.Sprintf("%s deleted", name))
}

func entityName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
