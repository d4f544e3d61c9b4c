package commands

import (
	"context"

	"gorm.io/datatypes"

	"github.com/laingsimon/courage-scores/internal/dtos"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
	"github.com/laingsimon/courage-scores/internal/types"
)

// SaygCommand updates a score-as-you-go session. Leg detail is recorded
// by the scoring UI and stored opaquely.
type SaygCommand struct {
	log *logger.Logger
}

func NewSaygCommand(log *logger.Logger) *SaygCommand {
	return &SaygCommand{log: log.With("command", "SaygCommand")}
}

func (c *SaygCommand) Update(ctx context.Context, sayg *types.RecordedScoreAsYouGo, dto *dtos.UpdateRecordedScoreAsYouGoDto) (*ActionResult[*types.RecordedScoreAsYouGo], error) {
	return ApplyUpdate(ctx, sayg, dto, ctxutil.UserName(ctx), c.applyUpdates)
}

func (c *SaygCommand) applyUpdates(_ context.Context, sayg *types.RecordedScoreAsYouGo, dto *dtos.UpdateRecordedScoreAsYouGoDto) (*ActionResult[*types.RecordedScoreAsYouGo], error) {
	if dto.StartingScore <= 0 {
		return Unsuccessful[*types.RecordedScoreAsYouGo]("Starting score must be positive"), nil
	}
	if dto.NumberOfLegs <= 0 {
		return Unsuccessful[*types.RecordedScoreAsYouGo]("Number of legs must be positive"), nil
	}
	sayg.YourName = dto.YourName
	sayg.OpponentName = dto.OpponentName
	sayg.StartingScore = dto.StartingScore
	sayg.NumberOfLegs = dto.NumberOfLegs
	sayg.HomeScore = dto.HomeScore
	sayg.AwayScore = dto.AwayScore
	if dto.Legs != nil {
		sayg.Legs = datatypes.JSON(dto.Legs)
	}
	return Successful(sayg), nil
}

// Delete soft-deletes the session and tells the caller to remove it from
// the store.
func (c *SaygCommand) Delete(ctx context.Context, sayg *types.RecordedScoreAsYouGo) *ActionResult[*types.RecordedScoreAsYouGo] {
	result := ApplyDelete(sayg, ctxutil.UserName(ctx))
	if result.Success {
		result.Delete = true
		c.log.Debug("Sayg session deleted", "saygId", sayg.ID)
	}
	return result
}
