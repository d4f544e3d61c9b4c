package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type requestDataKey struct{}

// Access captures what the signed-in user is allowed to manage. Every flag
// defaults to false for anonymous requests.
type Access struct {
	ManageDivisions   bool
	ManageSeasons     bool
	ManageTeams       bool
	ManageGames       bool
	ManageTournaments bool
	ManageNotes       bool
	RecordScores      bool
}

type RequestData struct {
	UserID uuid.UUID
	Name   string
	Emails string
	Access Access
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// UserName returns the display name of the signed-in user, or "unknown"
// when the request carries no identity. Audit columns are never empty.
func UserName(ctx context.Context) string {
	rd := GetRequestData(ctx)
	if rd == nil || rd.Name == "" {
		return "unknown"
	}
	return rd.Name
}
