package commands

import (
	"context"
	"strings"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/types"
)

type DivisionCommand struct {
	log *logger.Logger
}

func NewDivisionCommand(log *logger.Logger) *DivisionCommand {
	return &DivisionCommand{log: log.With("command", "DivisionCommand")}
}

func (c *DivisionCommand) Update(ctx context.Context, division *types.Division, dto *dtos.EditDivisionDto) (*ActionResult[*types.Division], error) {
	return ApplyUpdate(ctx, division, dto, ctxutil.UserName(ctx), c.applyUpdates)
}

func (c *DivisionCommand) applyUpdates(_ context.Context, division *types.Division, dto *dtos.EditDivisionDto) (*ActionResult[*types.Division], error) {
	if strings.TrimSpace(dto.Name) == "" {
		return Unsuccessful[*types.Division]("Division name must be supplied"), nil
	}
	name := strings.TrimSpace(dto.Name)
	if division.Name != "" && division.Name != name {
		c.log.Debug("Division renamed", "from", division.Name, "to", name)
	}
	division.Name = name
	return Successful(division), nil
}
