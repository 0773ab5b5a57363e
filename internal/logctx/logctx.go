// Package logctx carries a zerolog logger through context.Context so that
// benchmark fields (run_id, scenario, algorithm, size) attached by the
// scenario runner show up on every log line emitted further down the stack.
//
// Usage:
//
//	ctx := logctx.WithLogger(ctx, logging.WithPhase("benchmark"))
//	ctx = logctx.WithScenario(ctx, sc.ID())
//	ctx = logctx.WithInt(ctx, "size", 5000)
//	log := logctx.FromContext(ctx)
//	log.Debug().Msg("trial finished")
package logctx

import (
	"context"

	"github.com/eunmann/sort-eval/pkg/logging"
	"github.com/rs/zerolog"
)

type loggerKey struct{}

// Field names shared by every component that enriches the context logger.
const (
	FieldRunID     = "run_id"
	FieldScenario  = "scenario"
	FieldAlgorithm = "algorithm"
	FieldSize      = "size"
)

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext extracts the logger from the context. If the context is nil
// or carries no logger, the process-wide logger from pkg/logging is used.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
			return logger
		}
	}
	return *logging.L()
}

// WithStr returns a new context whose logger has the string field added.
func WithStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, logger)
}

// WithInt returns a new context whose logger has the int field added.
func WithInt(ctx context.Context, key string, value int) context.Context {
	logger := FromContext(ctx).With().Int(key, value).Logger()
	return WithLogger(ctx, logger)
}

// WithRunID tags all subsequent log lines with the benchmark run id.
func WithRunID(ctx context.Context, runID string) context.Context {
	return WithStr(ctx, FieldRunID, runID)
}

// WithScenario tags all subsequent log lines with the scenario id.
func WithScenario(ctx context.Context, scenarioID string) context.Context {
	return WithStr(ctx, FieldScenario, scenarioID)
}

// WithAlgorithm tags all subsequent log lines with the algorithm name.
func WithAlgorithm(ctx context.Context, name string) context.Context {
	return WithStr(ctx, FieldAlgorithm, name)
}
