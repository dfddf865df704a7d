// internal/app/features/dashboard/page.go
package dashboard

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/stemboard/internal/app/admin"
	metricsstore "github.com/dalemusser/stemboard/internal/app/store/metrics"
	"github.com/dalemusser/stemboard/internal/app/system/normalize"
	"github.com/dalemusser/stemboard/internal/app/system/viewdata"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type navItem struct {
	Section models.Section
	Label   string
	Icon    string
	Active  bool
}

var navItems = []navItem{
	{Section: models.SectionDashboard, Label: "Dashboard", Icon: "bi-speedometer2"},
	{Section: models.SectionSchools, Label: "Schools", Icon: "bi-building"},
	{Section: models.SectionEvents, Label: "Events", Icon: "bi-calendar-event"},
	{Section: models.SectionTeam, Label: "Team", Icon: "bi-people"},
	{Section: models.SectionMessages, Label: "Messages", Icon: "bi-envelope"},
}

type tableData struct {
	Kind      models.Kind
	BodyID    string
	Headers   []string
	Rows      []admin.RowView
	CSRFToken string
}

var tableHeaders = map[models.Kind][]string{
	models.KindSchool:     {"School", "Students", "Clubs", "Status", "Actions"},
	models.KindEvent:      {"Event", "Date", "Type", "Status", "Actions"},
	models.KindTeamMember: {"Member", "Role", "Status", "Actions"},
	models.KindMessage:    {"Name", "Email", "Message", "Date", "Actions"},
}

func newTable(kind models.Kind, rows []admin.RowView, csrfToken string) tableData {
	return tableData{
		Kind:      kind,
		BodyID:    string(kind) + "-table-body",
		Headers:   tableHeaders[kind],
		Rows:      rows,
		CSRFToken: csrfToken,
	}
}

type recentVM struct {
	ID      int
	Name    string
	Email   string
	Preview string
	Date    string
	Unread  bool
}

type pageData struct {
	viewdata.BaseVM

	Section  models.Section
	Nav      []navItem
	Counters metricsstore.Counts
	Stats    admin.MessageStats
	Recent   []recentVM

	Schools  tableData
	Events   tableData
	Team     tableData
	Messages tableData

	// Creation dialog to show open, with the values and error of a
	// rejected submission.
	OpenDialog string
	Form       map[string]string
	FormError  []string
}

// ServePage handles GET /. ?section= navigates, ?dialog= opens a creation
// modal. Without ?section= the browser's remembered section is shown and the
// controller's section is left alone.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	want := string(models.DefaultSection)
	if h.Sessions != nil {
		if sec, ok := h.Sessions.Section(r); ok {
			want = string(sec)
		}
	}
	clicked := normalize.QueryParam(q.Get("section"))
	if clicked != "" {
		want = clicked
	}
	sec := admin.SectionFromHref(want)
	if clicked != "" {
		h.Ctrl.Navigate("#" + clicked)
	}
	if sec.Known() && h.Sessions != nil {
		if err := h.Sessions.SaveSection(w, r, sec); err != nil {
			h.Log.Warn("save section failed", zap.Error(err))
		}
	}

	dialog := ""
	if id := normalize.QueryParam(q.Get("dialog")); id != "" {
		if _, ok := modalKind(id); ok {
			h.Screen.OpenDialog(id)
			dialog = id
		}
	}

	h.renderPage(w, r, sec, dialog, nil, nil)
}

// renderPage draws the dashboard from the current screen.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, sec models.Section, dialog string, form url.Values, formErrs []string) {
	data := h.buildPage(r, sec, dialog, form, formErrs)
	templates.Render(w, r, "dashboard", data)
}

func (h *Handler) buildPage(r *http.Request, sec models.Section, dialog string, form url.Values, formErrs []string) pageData {
	snap := h.Screen.Snapshot()

	visible := sec
	if !visible.Known() {
		visible = ""
	}

	nav := make([]navItem, len(navItems))
	copy(nav, navItems)
	for i := range nav {
		nav[i].Active = nav[i].Section == sec
	}

	base := viewdata.NewBaseVM(r, "Admin Dashboard", "/")
	data := pageData{
		BaseVM:   base,
		Section:  visible,
		Nav:      nav,
		Counters: snap.Counters,
		Stats:    h.Ctrl.Stats(),
		Schools:  newTable(models.KindSchool, snap.Tables[models.KindSchool], base.CSRFToken),
		Events:   newTable(models.KindEvent, snap.Tables[models.KindEvent], base.CSRFToken),
		Team:     newTable(models.KindTeamMember, snap.Tables[models.KindTeamMember], base.CSRFToken),
		Messages: newTable(models.KindMessage, snap.Tables[models.KindMessage], base.CSRFToken),

		OpenDialog: dialog,
		Form:       map[string]string{},
		FormError:  formErrs,
	}
	for k := range form {
		data.Form[k] = form.Get(k)
	}
	for _, m := range h.Ctrl.RecentMessages(admin.RecentLimit) {
		row := admin.MessageRow(m)
		data.Recent = append(data.Recent, recentVM{
			ID:      m.ID,
			Name:    m.Name,
			Email:   m.Email,
			Preview: row.Columns[1],
			Date:    row.Columns[2],
			Unread:  row.Unread,
		})
	}
	return data
}
