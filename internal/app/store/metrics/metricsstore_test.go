package metricsstore_test

import (
	"strings"
	"testing"

	metricsstore "github.com/dalemusser/stemboard/internal/app/store/metrics"
	"github.com/dalemusser/stemboard/internal/app/store/mockdata"
	"github.com/dalemusser/stemboard/internal/app/store/state"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFetchDashboardCounts_Empty(t *testing.T) {
	counts := metricsstore.FetchDashboardCounts(state.New(mockdata.Empty()))

	if counts != (metricsstore.Counts{}) {
		t.Errorf("expected all zero counts, got %+v", counts)
	}
}

func TestFetchDashboardCounts_WithData(t *testing.T) {
	st := state.New(mockdata.Seed())
	st.Messages.Append(models.Message{ID: 4, Name: "New"})
	st.Events.Remove(2)

	counts := metricsstore.FetchDashboardCounts(st)

	if counts.Schools != 3 {
		t.Errorf("Schools: got %d, want 3", counts.Schools)
	}
	if counts.Events != 2 {
		t.Errorf("Events: got %d, want 2", counts.Events)
	}
	if counts.Team != 3 {
		t.Errorf("Team: got %d, want 3", counts.Team)
	}
	if counts.Messages != 4 {
		t.Errorf("Messages: got %d, want 4", counts.Messages)
	}
}

func TestGauges_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	g, err := metricsstore.NewGauges(reg)
	if err != nil {
		t.Fatalf("NewGauges: %v", err)
	}

	g.Observe(metricsstore.Counts{Schools: 4, Events: 2, Team: 3, Messages: 1})

	expected := `
# HELP stemboard_records Number of records currently held per dashboard collection.
# TYPE stemboard_records gauge
stemboard_records{kind="events"} 2
stemboard_records{kind="messages"} 1
stemboard_records{kind="schools"} 4
stemboard_records{kind="team"} 3
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "stemboard_records"); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestNewGauges_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := metricsstore.NewGauges(reg); err != nil {
		t.Fatalf("first NewGauges: %v", err)
	}
	if _, err := metricsstore.NewGauges(reg); err == nil {
		t.Error("expected second registration to fail")
	}
}
