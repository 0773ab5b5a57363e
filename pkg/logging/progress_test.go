package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestProgressTracker_BasicOperations(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	pt := NewProgressTracker("test_phase", 10, log)

	pt.RecordCompletion(100 * time.Millisecond)
	pt.RecordCompletion(150 * time.Millisecond)
	pt.RecordFailure()

	completed, failed, total := pt.Progress()
	if completed != 2 {
		t.Errorf("expected completed=2, got %d", completed)
	}
	if failed != 1 {
		t.Errorf("expected failed=1, got %d", failed)
	}
	if total != 10 {
		t.Errorf("expected total=10, got %d", total)
	}

	pct := pt.ProgressPct()
	if pct != 30.0 { // (2+1)/10 * 100
		t.Errorf("expected progress 30%%, got %.1f%%", pct)
	}
}

func TestProgressTracker_ETA(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	pt := NewProgressTracker("test_phase", 10, log)

	pt.RecordCompletion(100 * time.Millisecond)
	pt.RecordCompletion(100 * time.Millisecond)

	// 8 remaining at 100ms each
	if eta := pt.ETA(); eta != 800*time.Millisecond {
		t.Errorf("expected ETA 800ms, got %v", eta)
	}
}

func TestProgressTracker_MovingWindow(t *testing.T) {
	pt := NewProgressTracker("test_phase", 100, zerolog.Nop())

	pt.RecordCompletion(10 * time.Second)
	for range 4 {
		pt.RecordCompletion(time.Second)
	}

	// The 10s outlier has been pushed out of the window.
	if eta := pt.ETA(); eta != 95*time.Second {
		t.Errorf("expected ETA 95s, got %v", eta)
	}
}

func TestProgressTracker_ZeroTotal(t *testing.T) {
	pt := NewProgressTracker("test_phase", 0, zerolog.Nop())

	if pct := pt.ProgressPct(); pct != 100.0 {
		t.Errorf("expected 100%% for zero total, got %.1f%%", pct)
	}
	if eta := pt.ETA(); eta != 0 {
		t.Errorf("expected 0 ETA for zero total, got %v", eta)
	}
}

func TestCompletionEvent_BasicFields(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	SetPrettyMode(false)

	NewCompletionEvent(log, "test_event", "test_phase", 500*time.Millisecond).
		Str("key", "value").
		Int("count", 42).
		Int64("big_count", 1000000).
		Log("test message")

	output := buf.String()
	for _, want := range []string{
		`"event":"test_event"`,
		`"phase":"test_phase"`,
		`"duration_ms":500`,
		`"key":"value"`,
		`"count":42`,
		`"big_count":1000000`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "duration_h") {
		t.Errorf("unexpected human field outside pretty mode: %s", output)
	}
}

func TestCompletionEvent_PrettyCompanions(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	SetPrettyMode(true)
	defer SetPrettyMode(false)

	NewCompletionEvent(log, "test_event", "test_phase", time.Second).
		Bytes("heap", 1073741824).
		Count("inversions", 1500000).
		Log("test message")

	output := buf.String()
	for _, want := range []string{
		`"heap_h":"1.00 GiB"`,
		`"inversions_h":"1.50M"`,
		`"duration_h":"1.00s"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestCompletionEvent_LogDebugFiltered(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)

	NewCompletionEvent(log, "test_event", "test_phase", time.Millisecond).LogDebug("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got: %s", buf.String())
	}
}

func TestCompletionEvent_ProgressFromTracker(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	pt := NewProgressTracker("run", 4, log)
	pt.RecordCompletion(time.Second)

	ScenarioComplete(log, "run", time.Second).ProgressFromTracker(pt).Log("done")

	output := buf.String()
	for _, want := range []string{
		`"event":"scenario_completed"`,
		`"completed":1`,
		`"total":4`,
		`"progress_pct":25`,
		`"eta_ms":3000`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestScenarioStarted(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	ScenarioStarted(log, "run", "uniform/runtime/size", 2, 16)

	output := buf.String()
	for _, want := range []string{
		`"event":"scenario_started"`,
		`"scenario_id":"uniform/runtime/size"`,
		`"scenarios_complete":2`,
		`"scenarios_total":16`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}
