package logctx

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/eunmann/sort-eval/pkg/logging"
	"github.com/rs/zerolog"
)

func TestFromContext_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(zerolog.New(&buf))

	//nolint:staticcheck // nil context is part of the contract
	logger := FromContext(nil)
	logger.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("expected fallback to the package logger")
	}
}

func TestFromContext_ContextWithoutLogger(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(zerolog.New(&buf).With().Str("origin", "global").Logger())

	log := FromContext(context.Background())
	log.Info().Msg("test")

	if !strings.Contains(buf.String(), `"origin":"global"`) {
		t.Errorf("expected global logger output, got: %s", buf.String())
	}
}

func TestWithLogger_AndFromContext(t *testing.T) {
	var buf bytes.Buffer
	customLogger := zerolog.New(&buf).With().Str("custom", "field").Logger()

	ctx := WithLogger(context.Background(), customLogger)
	log := FromContext(ctx)
	log.Info().Msg("test")

	if !strings.Contains(buf.String(), `"custom":"field"`) {
		t.Errorf("expected custom field in output, got: %s", buf.String())
	}
}

func TestWithLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer

	//nolint:staticcheck // nil context is part of the contract
	ctx := WithLogger(nil, zerolog.New(&buf))
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	log := FromContext(ctx)
	log.Info().Msg("test")
	if buf.Len() == 0 {
		t.Error("expected logger to produce output")
	}
}

func TestWithInt(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), zerolog.New(&buf))

	ctx = WithInt(ctx, FieldSize, 5000)
	log := FromContext(ctx)
	log.Info().Msg("test")

	if !strings.Contains(buf.String(), `"size":5000`) {
		t.Errorf("expected size field in output, got: %s", buf.String())
	}
}

func TestChainedContexts(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), zerolog.New(&buf))

	ctx = WithRunID(ctx, "run-1")
	ctx = WithScenario(ctx, "uniform/runtime/size")
	ctx = WithAlgorithm(ctx, "QuickSort")

	log := FromContext(ctx)
	log.Info().Msg("test")

	output := buf.String()
	for _, want := range []string{
		`"run_id":"run-1"`,
		`"scenario":"uniform/runtime/size"`,
		`"algorithm":"QuickSort"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}
