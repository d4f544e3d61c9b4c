package commands

import (
	"fmt"
	"reflect"

	"github.com/laingsimon/courage-scores/internal/logger"
)

// Factory resolves command instances by type so that one command can
// invoke another as a sub-step without knowing its dependencies. An
// unresolved type is a configuration error and panics at lookup;
// business logic never sees it.
type Factory struct {
	log      *logger.Logger
	builders map[reflect.Type]func() any
}

func NewFactory(log *logger.Logger) *Factory {
	return &Factory{
		log:      log.With("component", "CommandFactory"),
		builders: make(map[reflect.Type]func() any),
	}
}

// Register records a builder for command type T.
func Register[T any](f *Factory, build func() T) {
	var zero T
	key := reflect.TypeOf(&zero).Elem()
	f.builders[key] = func() any { return build() }
}

// GetCommand returns a freshly built command of type T.
func GetCommand[T any](f *Factory) T {
	var zero T
	key := reflect.TypeOf(&zero).Elem()
	build, ok := f.builders[key]
	if !ok {
		panic(fmt.Sprintf("no command registered for type %s", key))
	}
	return build().(T)
}
