package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksFetchesPerResource(t *testing.T) {
	rec := NewRecorder()

	rec.RecordFetch("teams", 20*time.Millisecond, nil)
	rec.RecordFetch("teams", 35*time.Millisecond, errors.New("upstream down"))
	rec.RecordFetch("roster", 5*time.Millisecond, nil)

	if got := rec.FetchCount("teams"); got != 2 {
		t.Fatalf("expected 2 teams fetches, got %d", got)
	}
	if got := rec.FetchErrors("teams"); got != 1 {
		t.Fatalf("expected 1 teams error, got %d", got)
	}
	if got := rec.LastFetchLatency("teams"); got != 35*time.Millisecond {
		t.Fatalf("expected last latency to win, got %v", got)
	}
	if got := rec.FetchCount("roster"); got != 1 {
		t.Fatalf("expected 1 roster fetch, got %d", got)
	}
	if got := rec.FetchErrors("roster"); got != 0 {
		t.Fatalf("expected no roster errors, got %d", got)
	}
}

func TestRecorderSnapshotUnknownResource(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.Snapshot("game_feed"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordFetch("teams", time.Millisecond, nil)
	if got := rec.FetchCount("teams"); got != 0 {
		t.Fatalf("expected 0 from nil recorder, got %d", got)
	}
	if snap := rec.Snapshot("teams"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestSetupDisabledReturnsWorkingRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even with telemetry disabled")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}

	rec.RecordFetch("schedule", 10*time.Millisecond, nil)
	if got := rec.FetchCount("schedule"); got != 1 {
		t.Fatalf("expected recorder to count fetches, got %d", got)
	}

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}
