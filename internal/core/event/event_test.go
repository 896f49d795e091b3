package event

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	e := New(ShiftCreated, "shift", "sh-1", "u-1", at, nil)

	if e.ID == "" {
		t.Fatal("expected generated id")
	}
	if e.Payload == nil {
		t.Fatal("expected non-nil payload")
	}
	if e.Name != ShiftCreated || e.AggregateID != "sh-1" || !e.OccurredAt.Equal(at) {
		t.Fatalf("unexpected event: %+v", e)
	}
	if other := New(ShiftCreated, "shift", "sh-1", "u-1", at, nil); other.ID == e.ID {
		t.Fatal("expected unique ids")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	if r.Events() != nil {
		t.Fatal("expected nil events when empty")
	}

	r.Record(New(ShiftCreated, "shift", "sh-1", "", time.Time{}, nil))
	r.Record(New(ShiftOffered, "shift", "sh-1", "", time.Time{}, nil))

	got := r.Events()
	if len(got) != 2 || got[1].Name != ShiftOffered {
		t.Fatalf("unexpected events: %+v", got)
	}

	got[0].Name = "mutated"
	if r.Events()[0].Name != ShiftCreated {
		t.Fatal("Events must return a copy")
	}

	r.Reset()
	if r.Events() != nil {
		t.Fatal("expected reset")
	}
}
