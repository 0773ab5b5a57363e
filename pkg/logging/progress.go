package logging

import (
	"sync"
	"time"

	"github.com/eunmann/sort-eval/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// ProgressTracker tracks scenario progress with ETA calculation.
// It is safe for concurrent use.
type ProgressTracker struct {
	mu        sync.Mutex
	total     int64
	completed int64
	failed    int64
	log       zerolog.Logger
	phase     string

	// For moving average of item durations
	recentDurations []time.Duration
	maxRecent       int
}

// NewProgressTracker creates a new progress tracker.
func NewProgressTracker(phase string, total int64, log zerolog.Logger) *ProgressTracker {
	return &ProgressTracker{
		total:           total,
		log:             log,
		phase:           phase,
		recentDurations: make([]time.Duration, 0, 4),
		maxRecent:       4,
	}
}

// RecordCompletion records that an item completed with the given duration.
func (pt *ProgressTracker) RecordCompletion(d time.Duration) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.completed++
	if len(pt.recentDurations) >= pt.maxRecent {
		pt.recentDurations = pt.recentDurations[1:]
	}
	pt.recentDurations = append(pt.recentDurations, d)
}

// RecordFailure records that an item failed. Failed items count as done.
func (pt *ProgressTracker) RecordFailure() {
	pt.mu.Lock()
	pt.failed++
	pt.mu.Unlock()
}

// Progress returns current progress stats.
func (pt *ProgressTracker) Progress() (completed, failed, total int64) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.completed, pt.failed, pt.total
}

// ProgressPct returns the progress percentage (0-100).
func (pt *ProgressTracker) ProgressPct() float64 {
	completed, failed, total := pt.Progress()
	if total == 0 {
		return 100.0
	}
	return float64(completed+failed) * 100.0 / float64(total)
}

// ETA returns the estimated time remaining from the moving average of
// recent completions.
func (pt *ProgressTracker) ETA() time.Duration {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.completed == 0 {
		return 0
	}
	remaining := pt.total - pt.completed - pt.failed
	if remaining <= 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range pt.recentDurations {
		sum += d
	}
	avg := sum / time.Duration(len(pt.recentDurations))
	return avg * time.Duration(remaining)
}

// CompletionEvent helps build consistent completion log events.
type CompletionEvent struct {
	log     zerolog.Logger
	event   string
	phase   string
	elapsed time.Duration
	fields  map[string]interface{}
}

// NewCompletionEvent creates a new completion event builder.
func NewCompletionEvent(log zerolog.Logger, event, phase string, elapsed time.Duration) *CompletionEvent {
	return &CompletionEvent{
		log:     log,
		event:   event,
		phase:   phase,
		elapsed: elapsed,
		fields:  make(map[string]interface{}),
	}
}

// Str adds a string field.
func (ce *CompletionEvent) Str(key, val string) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Int adds an int field.
func (ce *CompletionEvent) Int(key string, val int) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Int64 adds an int64 field.
func (ce *CompletionEvent) Int64(key string, val int64) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Float64 adds a float64 field.
func (ce *CompletionEvent) Float64(key string, val float64) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Bytes adds byte count with optional human-readable companion.
func (ce *CompletionEvent) Bytes(key string, bytes int64) *CompletionEvent {
	ce.fields[key] = bytes
	if IsPrettyMode() {
		ce.fields[key+"_h"] = humanfmt.Bytes(bytes)
	}
	return ce
}

// Count adds count with optional human-readable companion.
func (ce *CompletionEvent) Count(key string, n int64) *CompletionEvent {
	ce.fields[key] = n
	if IsPrettyMode() {
		ce.fields[key+"_h"] = humanfmt.Count(n)
	}
	return ce
}

// ProgressFromTracker adds progress fields from a ProgressTracker.
func (ce *CompletionEvent) ProgressFromTracker(pt *ProgressTracker) *CompletionEvent {
	completed, failed, total := pt.Progress()
	ce.fields["completed"] = completed
	ce.fields["failed"] = failed
	ce.fields["total"] = total
	if total > 0 {
		ce.fields["progress_pct"] = float64(completed+failed) * 100.0 / float64(total)
	}
	if eta := pt.ETA(); eta > 0 {
		ce.fields["eta_ms"] = eta.Milliseconds()
		if IsPrettyMode() {
			ce.fields["eta_h"] = humanfmt.Duration(eta)
		}
	}
	return ce
}

// Log emits the completion event.
func (ce *CompletionEvent) Log(msg string) {
	ce.emit(ce.log.Info(), msg)
}

// LogDebug emits the completion event at debug level.
func (ce *CompletionEvent) LogDebug(msg string) {
	ce.emit(ce.log.Debug(), msg)
}

func (ce *CompletionEvent) emit(e *zerolog.Event, msg string) {
	e = e.Str("event", ce.event).
		Str("phase", ce.phase).
		Int64("duration_ms", ce.elapsed.Milliseconds())

	if IsPrettyMode() {
		e = e.Str("duration_h", humanfmt.Duration(ce.elapsed))
	}

	for k, v := range ce.fields {
		e = e.Interface(k, v)
	}

	e.Msg(msg)
}

// ScenarioComplete logs a scenario (one chart) completion event.
func ScenarioComplete(log zerolog.Logger, phase string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "scenario_completed", phase, elapsed)
}

// SeriesComplete logs the completion of one x-value across all algorithms.
func SeriesComplete(log zerolog.Logger, phase string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "series_point_completed", phase, elapsed)
}

// DatasetLoaded logs a dataset ingestion completion event.
func DatasetLoaded(log zerolog.Logger, phase string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "dataset_loaded", phase, elapsed)
}

// ReportWritten logs a report file creation event.
func ReportWritten(log zerolog.Logger, phase string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "report_written", phase, elapsed)
}

// ScenarioStarted logs a scenario start event (no duration, no progress_pct).
func ScenarioStarted(log zerolog.Logger, phase string, scenarioID string, done, total int64) {
	log.Info().
		Str("event", "scenario_started").
		Str("phase", phase).
		Str("scenario_id", scenarioID).
		Int64("scenarios_complete", done).
		Int64("scenarios_total", total).
		Msg("scenario started")
}
