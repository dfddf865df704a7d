package metricsstore

import (
	"github.com/dalemusser/stemboard/internal/app/store/state"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Counts is the set of totals shown in the dashboard's summary cards.
type Counts struct {
	Schools  int
	Events   int
	Team     int
	Messages int
}

// Of returns the counter for kind k.
func (c Counts) Of(k models.Kind) int {
	switch k {
	case models.KindSchool:
		return c.Schools
	case models.KindEvent:
		return c.Events
	case models.KindTeamMember:
		return c.Team
	case models.KindMessage:
		return c.Messages
	}
	return 0
}

// FetchDashboardCounts recomputes every counter from the collection lengths.
// It is never incremental.
func FetchDashboardCounts(st *state.State) Counts {
	return Counts{
		Schools:  st.Schools.Len(),
		Events:   st.Events.Len(),
		Team:     st.Team.Len(),
		Messages: st.Messages.Len(),
	}
}

// Gauges mirrors the dashboard counters into Prometheus.
type Gauges struct {
	records *prometheus.GaugeVec
}

// NewGauges creates the stemboard_records gauge and registers it with reg.
// A nil reg skips registration, which keeps tests isolated.
func NewGauges(reg prometheus.Registerer) (*Gauges, error) {
	g := &Gauges{
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "stemboard",
			Name:      "records",
			Help:      "Number of records currently held per dashboard collection.",
		}, []string{"kind"}),
	}
	if reg != nil {
		if err := reg.Register(g.records); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Observe sets one gauge per kind from c.
func (g *Gauges) Observe(c Counts) {
	for _, k := range models.Kinds {
		g.records.WithLabelValues(string(k)).Set(float64(c.Of(k)))
	}
}

// Collector exposes the underlying vector for tests and custom registries.
func (g *Gauges) Collector() prometheus.Collector {
	return g.records
}
