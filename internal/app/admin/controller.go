// internal/app/admin/controller.go
package admin

import (
	"strings"
	"sync"

	metricsstore "github.com/dalemusser/stemboard/internal/app/store/metrics"
	"github.com/dalemusser/stemboard/internal/app/store/state"
	"github.com/dalemusser/stemboard/internal/app/system/clock"
	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"go.uber.org/zap"
)

// Controller is the dashboard controller. It owns the record collections,
// redraws tables and counters through its Renderer after every change and
// reports outcomes as notification banners.
//
// Every exported method takes the controller lock and runs to completion, so
// concurrent requests see the same ordering a single UI thread would.
type Controller struct {
	mu sync.Mutex

	st     *state.State
	ui     Renderer
	notes  *notify.Notifier
	clock  clock.Clock
	gauges *metricsstore.Gauges
	log    *zap.Logger

	section models.Section
}

// New wires a controller. gauges may be nil; a nil clock uses the system clock.
func New(st *state.State, ui Renderer, notes *notify.Notifier, clk clock.Clock, gauges *metricsstore.Gauges, logger *zap.Logger) *Controller {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Controller{
		st:      st,
		ui:      ui,
		notes:   notes,
		clock:   clk,
		gauges:  gauges,
		log:     logger,
		section: models.DefaultSection,
	}
}

// Init draws the whole dashboard: counters, all four tables and the default
// section.
func (c *Controller) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.updateStats()
	c.loadSchools()
	c.loadEvents()
	c.loadTeam()
	c.loadMessages()
	c.ui.SetActiveLink(c.section)
	c.ui.ShowSection(c.section)
}

// Navigate handles a click on a navigation link. href is the link target
// ("#events"). The link becomes the only active one and its section the only
// visible one; a target that names no section hides them all.
func (c *Controller) Navigate(href string) models.Section {
	c.mu.Lock()
	defer c.mu.Unlock()

	sec := SectionFromHref(href)
	c.ui.SetActiveLink(sec)
	if sec.Known() {
		c.ui.ShowSection(sec)
	} else {
		c.log.Debug("navigate: unknown section", zap.String("href", href))
		c.ui.ShowSection("")
	}
	c.section = sec
	return sec
}

// SectionFromHref returns the section a navigation link points at.
func SectionFromHref(href string) models.Section {
	return models.Section(strings.TrimPrefix(strings.TrimSpace(href), "#"))
}

// ActiveSection returns the section shown by the last navigation.
func (c *Controller) ActiveSection() models.Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.section
}

// UpdateStats recomputes and redraws the summary counters.
func (c *Controller) UpdateStats() metricsstore.Counts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateStats()
}

// Counters returns the current counter values without redrawing.
func (c *Controller) Counters() metricsstore.Counts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return metricsstore.FetchDashboardCounts(c.st)
}

// CounterCheck returns the counters computed from the collections and the
// values the renderer last drew, read together under the controller lock.
// ok is false when the renderer cannot report its counters.
func (c *Controller) CounterCheck() (actual, shown metricsstore.Counts, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actual = metricsstore.FetchDashboardCounts(c.st)
	cr, ok := c.ui.(CounterReader)
	if !ok {
		return actual, metricsstore.Counts{}, false
	}
	return actual, cr.Counters(), true
}

// Load redraws the table for kind.
func (c *Controller) Load(kind models.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load(kind)
}

// Notifier exposes the banner list the controller posts to.
func (c *Controller) Notifier() *notify.Notifier {
	return c.notes
}

func (c *Controller) load(kind models.Kind) {
	switch kind {
	case models.KindSchool:
		c.loadSchools()
	case models.KindEvent:
		c.loadEvents()
	case models.KindTeamMember:
		c.loadTeam()
	case models.KindMessage:
		c.loadMessages()
	}
}

func (c *Controller) updateStats() metricsstore.Counts {
	counts := metricsstore.FetchDashboardCounts(c.st)
	c.ui.RenderCounters(counts)
	if c.gauges != nil {
		c.gauges.Observe(counts)
	}
	return counts
}

// checkNextID logs when a freshly assigned id is already taken. Ids come
// from the collection length, so a delete followed by an add can repeat one.
func (c *Controller) checkNextID(kind models.Kind, id int, taken bool) {
	if taken {
		c.log.Warn("assigned id already in use",
			zap.String("kind", string(kind)),
			zap.Int("id", id))
	}
}

func (c *Controller) notFound(op string, kind models.Kind, id int) {
	c.log.Debug(op+": no record with id",
		zap.String("kind", string(kind)),
		zap.Int("id", id))
}

func (c *Controller) today() string {
	return c.clock.Now().Format("2006-01-02")
}
