package notify

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestCenter_ShowQueuesSanitizedPlainText(t *testing.T) {
	center := NewCenter()

	shown := center.Show(`<script>alert(1)</script>Thank you! We received your <b>request</b>.`, KindSuccess)
	if shown.Message != "Thank you! We received your request." {
		t.Fatalf("expected markup stripped, got %q", shown.Message)
	}
	if shown.Role != "alert" || shown.Live != "polite" {
		t.Fatalf("expected ARIA live-region metadata, got role=%q live=%q", shown.Role, shown.Live)
	}
	if shown.ID == "" {
		t.Fatal("expected a generated notification id")
	}

	active := center.Active()
	if len(active) != 1 {
		t.Fatalf("expected 1 active notification, got %d", len(active))
	}
	if diff := cmp.Diff(shown, active[0]); diff != "" {
		t.Fatalf("queued notification mismatch (-want +got):\n%s", diff)
	}
}

func TestCenter_NotificationsExpireAfterTTL(t *testing.T) {
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	center := NewCenter(
		WithTTL(6*time.Second),
		WithClock(func() time.Time { return current }),
	)

	center.Show("first", KindInfo)
	current = current.Add(3 * time.Second)
	center.Show("second", KindError)

	if got := len(center.Active()); got != 2 {
		t.Fatalf("expected both notifications active, got %d", got)
	}

	current = current.Add(4 * time.Second)
	active := center.Active()
	if len(active) != 1 || active[0].Message != "second" {
		t.Fatalf("expected only the second notification to survive, got %#v", active)
	}

	current = current.Add(6 * time.Second)
	if got := center.Active(); got != nil {
		t.Fatalf("expected all notifications expired, got %#v", got)
	}
}

func TestCenter_SweepReclaimsExpiredWithoutReads(t *testing.T) {
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	center := NewCenter(
		WithTTL(6*time.Second),
		WithClock(func() time.Time { return current }),
	)

	var sweeps []func()
	center.after = func(d time.Duration, fn func()) {
		if d != 6*time.Second {
			t.Errorf("sweep scheduled after %v, want TTL", d)
		}
		sweeps = append(sweeps, fn)
	}

	center.Show("first", KindInfo)
	if len(sweeps) != 1 {
		t.Fatalf("expected one scheduled sweep, got %d", len(sweeps))
	}

	current = current.Add(7 * time.Second)
	sweeps[0]()

	center.mu.Lock()
	queued := len(center.queue)
	center.mu.Unlock()
	if queued != 0 {
		t.Fatalf("expected queue emptied by sweep, got %d entries", queued)
	}
}

func TestCenter_Dismiss(t *testing.T) {
	center := NewCenter()
	first := center.Show("first", KindInfo)
	center.Show("second", KindInfo)

	center.Dismiss(first.ID)
	center.Dismiss("not-a-real-id")

	active := center.Active()
	if len(active) != 1 || active[0].Message != "second" {
		t.Fatalf("expected only the second notification, got %#v", active)
	}
}

func TestCenter_DefaultKindIsInfo(t *testing.T) {
	center := NewCenter()
	if got := center.Show("hello", ""); got.Kind != KindInfo {
		t.Fatalf("expected info kind, got %q", got.Kind)
	}
}

func TestDiscard_DropsMessages(t *testing.T) {
	notifier := Discard()
	shown := notifier.Show("<i>quiet</i>", KindError)
	if shown.Message != "quiet" {
		t.Fatalf("expected sanitized message, got %q", shown.Message)
	}
}
