package commands

import (
	"context"

	"gorm.io/datatypes"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/types"
)

// ErrorDetailCommand records reported errors. Reports are add-only but
// still flow through the generic wrapper so they pick up audit fields.
type ErrorDetailCommand struct {
	log *logger.Logger
}

func NewErrorDetailCommand(log *logger.Logger) *ErrorDetailCommand {
	return &ErrorDetailCommand{log: log.With("command", "ErrorDetailCommand")}
}

func (c *ErrorDetailCommand) Update(ctx context.Context, detail *types.ErrorDetail, dto *dtos.AddErrorDetailDto) (*ActionResult[*types.ErrorDetail], error) {
	return ApplyUpdate(ctx, detail, dto, ctxutil.UserName(ctx), c.applyUpdates)
}

func (c *ErrorDetailCommand) applyUpdates(_ context.Context, detail *types.ErrorDetail, dto *dtos.AddErrorDetailDto) (*ActionResult[*types.ErrorDetail], error) {
	if dto.Message == "" {
		return Unsuccessful[*types.ErrorDetail]("An error message must be supplied"), nil
	}
	detail.Source = dto.Source
	detail.Time = dto.Time
	detail.Message = dto.Message
	detail.Stack = datatypes.JSON(dto.Stack)
	detail.Type = dto.Type
	detail.UserName = dto.UserName
	detail.UserAgent = dto.UserAgent
	detail.URL = dto.URL
	c.log.Debug("Error report recorded", "source", dto.Source, "type", dto.Type)
	return Successful(detail), nil
}
