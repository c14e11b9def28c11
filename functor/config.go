package functor

import (
	"github.com/on-the-ground/rllt/internal/logging"
	"github.com/on-the-ground/rllt/timeit"
	"go.uber.org/zap"
)

// Config holds the optional diagnostics of a Functor.
// Composed functors inherit the config of the functor they came from.
type Config struct {
	Logger    *zap.Logger       // default: no-op
	LogCalls  bool              // emit LogCall after every computation run
	Stopwatch *timeit.Stopwatch // times computation runs, cache hits excluded
}

func NewConfig(logger *zap.Logger, logCalls bool, stopwatch *timeit.Stopwatch) Config {
	return Config{
		Logger:    logging.OrNop(logger),
		LogCalls:  logCalls,
		Stopwatch: stopwatch,
	}
}

// normalizeConfig accepts zero or one Config. Panics if more than one is passed.
func normalizeConfig(config []Config) Config {
	switch len(config) {
	case 1:
		return NewConfig(config[0].Logger, config[0].LogCalls, config[0].Stopwatch)
	case 0:
		return NewConfig(nil, false, nil)
	default:
		panic("functor: only one or zero configs allowed")
	}
}
