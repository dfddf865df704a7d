package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/stemboard/internal/app/admin"
	"github.com/dalemusser/stemboard/internal/app/store/mockdata"
	"github.com/dalemusser/stemboard/internal/app/store/state"
	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/app/system/screen"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Epoch is the fake clock's starting time in fixtures.
var Epoch = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures bundles a controller with the collaborators tests inspect.
type Fixtures struct {
	State      *state.State
	Screen     *screen.Screen
	Clock      *FakeClock
	Notifier   *notify.Notifier
	Controller *admin.Controller
}

// NewFixtures builds an initialized controller over the three-per-kind
// seed dataset, drawing into a fresh screen and driven by a fake clock.
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	return NewFixturesWith(t, mockdata.Seed())
}

// NewFixturesWith is NewFixtures over ds.
func NewFixturesWith(t *testing.T, ds mockdata.Dataset) *Fixtures {
	t.Helper()

	logger := zap.NewNop()
	clk := NewFakeClock(Epoch)
	st := state.New(ds)
	scr := screen.New()
	notes := notify.New(clk, notify.DefaultTTL, logger)
	ctrl := admin.New(st, scr, notes, clk, nil, logger)
	ctrl.Init()

	return &Fixtures{
		State:      st,
		Screen:     scr,
		Clock:      clk,
		Notifier:   notes,
		Controller: ctrl,
	}
}

// Dialogs is a scripted admin.Dialogs. Every Confirm returns Answer.
type Dialogs struct {
	Answer   bool
	Confirms []string
	Alerts   []string
}

// Accept returns dialogs that confirm every prompt.
func Accept() *Dialogs { return &Dialogs{Answer: true} }

// Decline returns dialogs that cancel every prompt.
func Decline() *Dialogs { return &Dialogs{Answer: false} }

func (d *Dialogs) Confirm(message string) bool {
	d.Confirms = append(d.Confirms, message)
	return d.Answer
}

func (d *Dialogs) Alert(message string) {
	d.Alerts = append(d.Alerts, message)
}
