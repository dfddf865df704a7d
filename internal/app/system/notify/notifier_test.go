package notify_test

import (
	"testing"
	"time"

	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/testutil"
	"go.uber.org/zap"
)

var epoch = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func newNotifier(t *testing.T) (*notify.Notifier, *testutil.FakeClock) {
	t.Helper()
	clk := testutil.NewFakeClock(epoch)
	return notify.New(clk, notify.DefaultTTL, zap.NewNop()), clk
}

func TestShow_VisibleImmediately(t *testing.T) {
	n, _ := newNotifier(t)

	b := n.Show("School added successfully!", notify.Success)

	active := n.Active()
	if len(active) != 1 || active[0].ID != b.ID {
		t.Fatalf("expected banner to be active, got %+v", active)
	}
	if active[0].Severity != notify.Success {
		t.Errorf("Severity = %q, want success", active[0].Severity)
	}
	if !b.ExpiresAt.Equal(epoch.Add(5 * time.Second)) {
		t.Errorf("ExpiresAt = %v", b.ExpiresAt)
	}
}

func TestShow_NewestFirst(t *testing.T) {
	n, _ := newNotifier(t)

	first := n.Show("first", notify.Info)
	second := n.Show("second", notify.Success)

	active := n.Active()
	if len(active) != 2 || active[0].ID != second.ID || active[1].ID != first.ID {
		t.Errorf("expected newest first, got %+v", active)
	}
}

func TestShow_ExpiresAfterTTL(t *testing.T) {
	n, clk := newNotifier(t)
	n.Show("Event deleted successfully!", notify.Success)

	clk.Advance(4999 * time.Millisecond)
	if len(n.Active()) != 1 {
		t.Fatal("banner removed before its TTL elapsed")
	}
	if clk.Pending() != 1 {
		t.Errorf("pending timers = %d, want 1", clk.Pending())
	}

	clk.Advance(time.Millisecond)
	if len(n.Active()) != 0 {
		t.Error("banner still present after 5 seconds")
	}
}

func TestDismiss_BeforeTimerIsSafe(t *testing.T) {
	n, clk := newNotifier(t)
	b := n.Show("Editing school: X", notify.Info)

	if !n.Dismiss(b.ID) {
		t.Fatal("Dismiss returned false for an active banner")
	}
	if len(n.Active()) != 0 {
		t.Fatal("banner still active after dismissal")
	}

	// The expiry timer still fires; it must be a harmless no-op.
	clk.Advance(10 * time.Second)
	if len(n.Active()) != 0 {
		t.Error("unexpected banners after timer fired")
	}
	if n.Dismiss(b.ID) {
		t.Error("second Dismiss should report nothing removed")
	}
}

func TestDismiss_OnlyTargetBanner(t *testing.T) {
	n, clk := newNotifier(t)
	a := n.Show("a", notify.Info)
	clk.Advance(2 * time.Second)
	b := n.Show("b", notify.Info)

	n.Dismiss(b.ID)
	active := n.Active()
	if len(active) != 1 || active[0].ID != a.ID {
		t.Fatalf("expected only banner a, got %+v", active)
	}

	clk.Advance(3 * time.Second)
	if len(n.Active()) != 0 {
		t.Error("banner a should have expired")
	}
}

func TestNew_DefaultTTL(t *testing.T) {
	n := notify.New(testutil.NewFakeClock(epoch), 0, zap.NewNop())
	if n.TTL() != notify.DefaultTTL {
		t.Errorf("TTL = %v, want %v", n.TTL(), notify.DefaultTTL)
	}
}
