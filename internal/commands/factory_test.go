package commands

import (
	"testing"

	"github.com/laingsimon/courage-scores/internal/logger"
)

func TestFactory_ResolvesRegisteredCommand(t *testing.T) {
	factory := NewFactory(logger.NewNop())
	Register(factory, func() *TournamentCommand {
		return NewTournamentCommand(logger.NewNop())
	})

	cmd := GetCommand[*TournamentCommand](factory)
	if cmd == nil {
		t.Fatal("expected a command instance")
	}
}

func TestFactory_ReturnsFreshInstances(t *testing.T) {
	factory := NewFactory(logger.NewNop())
	Register(factory, func() *TournamentCommand {
		return NewTournamentCommand(logger.NewNop())
	})

	first := GetCommand[*TournamentCommand](factory)
	second := GetCommand[*TournamentCommand](factory)
	if first == second {
		t.Error("expected each lookup to build a fresh instance")
	}
}

func TestFactory_UnresolvedTypePanics(t *testing.T) {
	factory := NewFactory(logger.NewNop())

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unregistered command type")
		}
	}()
	GetCommand[*PatchTournamentCommand](factory)
}
