package commands

import (
	"context"
	"strings"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/types"
)

type FixtureDateNoteCommand struct {
	log *logger.Logger
}

func NewFixtureDateNoteCommand(log *logger.Logger) *FixtureDateNoteCommand {
	return &FixtureDateNoteCommand{log: log.With("command", "FixtureDateNoteCommand")}
}

func (c *FixtureDateNoteCommand) Update(ctx context.Context, note *types.FixtureDateNote, dto *dtos.EditFixtureDateNoteDto) (*ActionResult[*types.FixtureDateNote], error) {
	return ApplyUpdate(ctx, note, dto, ctxutil.UserName(ctx), c.applyUpdates)
}

func (c *FixtureDateNoteCommand) applyUpdates(_ context.Context, note *types.FixtureDateNote, dto *dtos.EditFixtureDateNoteDto) (*ActionResult[*types.FixtureDateNote], error) {
	if strings.TrimSpace(dto.Note) == "" {
		return Unsuccessful[*types.FixtureDateNote]("A note must be supplied"), nil
	}
	if !note.Date.IsZero() && !note.Date.Equal(dto.Date) {
		c.log.Debug("Fixture note moved", "noteId", note.ID, "from", note.Date, "to", dto.Date)
	}
	note.Date = dto.Date
	note.Note = dto.Note
	note.SeasonID = dto.SeasonID
	note.DivisionID = dto.DivisionID
	return Successful(note), nil
}
