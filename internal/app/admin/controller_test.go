package admin_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/dalemusser/stemboard/internal/app/admin"
	"github.com/dalemusser/stemboard/internal/app/store/mockdata"
	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/dalemusser/stemboard/internal/testutil"
)

func schoolForm() url.Values {
	return url.Values{
		"name":          {"X"},
		"description":   {"Y"},
		"student_count": {"10"},
		"club_count":    {"2"},
		"icon":          {"bi-building"},
	}
}

func eventForm() url.Values {
	return url.Values{
		"title":       {"Coding Bootcamp"},
		"description": {"Two days of Go."},
		"event_date":  {"2024-12-01"},
		"event_type":  {"workshop"},
		"status":      {"upcoming"},
	}
}

func teamForm() url.Values {
	return url.Values{
		"name":        {"Selam Worku"},
		"role":        {"Treasurer"},
		"description": {"Keeps the books."},
		"image":       {"/static/img/team/treasurer.webp"},
	}
}

func TestInit_DrawsEverything(t *testing.T) {
	f := testutil.NewFixtures(t)

	counts := f.Screen.Counters()
	if counts.Schools != 3 || counts.Events != 3 || counts.Team != 3 || counts.Messages != 3 {
		t.Errorf("counters = %+v, want 3 of each", counts)
	}
	for _, k := range models.Kinds {
		if got := len(f.Screen.Rows(k)); got != 3 {
			t.Errorf("%s rows = %d, want 3", k, got)
		}
	}
	if f.Screen.Visible() != models.SectionDashboard {
		t.Errorf("visible = %q, want dashboard", f.Screen.Visible())
	}
}

func TestAdd_IncrementsLengthAndCounter(t *testing.T) {
	tests := []struct {
		kind models.Kind
		form url.Values
	}{
		{models.KindSchool, schoolForm()},
		{models.KindEvent, eventForm()},
		{models.KindTeamMember, teamForm()},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			f := testutil.NewFixtures(t)
			before := f.State.Len(tt.kind)

			if _, ok := f.Controller.Add(tt.kind, tt.form); !ok {
				t.Fatalf("Add(%s) not supported", tt.kind)
			}

			after := f.State.Len(tt.kind)
			if after != before+1 {
				t.Errorf("length = %d, want %d", after, before+1)
			}
			if got := f.Screen.Counters().Of(tt.kind); got != after {
				t.Errorf("counter = %d, want %d", got, after)
			}
			if got := len(f.Screen.Rows(tt.kind)); got != after {
				t.Errorf("rows = %d, want %d", got, after)
			}
		})
	}
}

func TestAddSchool_Scenario(t *testing.T) {
	f := testutil.NewFixtures(t)

	s := f.Controller.AddSchool(schoolForm())

	if f.State.Schools.Len() != 4 {
		t.Fatalf("schools = %d, want 4", f.State.Schools.Len())
	}
	if s.ID != 4 {
		t.Errorf("id = %d, want 4", s.ID)
	}
	if s.Status != models.StatusActive {
		t.Errorf("status = %q, want active", s.Status)
	}
	if s.StudentCount != models.Int(10) || s.ClubCount != models.Int(2) {
		t.Errorf("counts = %v/%v, want 10/2", s.StudentCount, s.ClubCount)
	}
}

func TestAddSchool_ClosesDialogAndResetsForm(t *testing.T) {
	f := testutil.NewFixtures(t)
	f.Screen.OpenDialog(admin.AddSchoolModal)

	f.Controller.AddSchool(schoolForm())

	if f.Screen.DialogOpen(admin.AddSchoolModal) {
		t.Error("addSchoolModal still open")
	}
	if f.Screen.FormResets(admin.AddSchoolForm) != 1 {
		t.Errorf("addSchoolForm resets = %d, want 1", f.Screen.FormResets(admin.AddSchoolForm))
	}
	active := f.Notifier.Active()
	if len(active) != 1 || active[0].Message != "School added successfully!" || active[0].Severity != notify.Success {
		t.Errorf("banners = %+v", active)
	}
}

func TestAddSchool_BadNumbersBecomeNaN(t *testing.T) {
	f := testutil.NewFixtures(t)
	form := schoolForm()
	form.Set("student_count", "lots")
	form.Set("club_count", "")

	s := f.Controller.AddSchool(form)

	if s.StudentCount.Valid || s.ClubCount.Valid {
		t.Fatalf("expected invalid counts, got %+v", s)
	}
	row := f.Screen.Rows(models.KindSchool)[3]
	if row.Columns[0] != "NaN+" || row.Columns[1] != "NaN" {
		t.Errorf("row columns = %v", row.Columns)
	}
}

func TestAddTeamMember_ForcedActive(t *testing.T) {
	f := testutil.NewFixtures(t)
	form := teamForm()
	form.Set("status", "inactive")

	m := f.Controller.AddTeamMember(form)
	if m.Status != models.StatusActive {
		t.Errorf("status = %q, want active", m.Status)
	}
}

func TestAddEvent_StatusFromForm(t *testing.T) {
	f := testutil.NewFixtures(t)
	form := eventForm()
	form.Set("status", "completed")
	if e := f.Controller.AddEvent(form); e.Status != models.EventCompleted {
		t.Errorf("status = %q, want completed", e.Status)
	}

	form.Del("status")
	if e := f.Controller.AddEvent(form); e.Status != models.EventUpcoming {
		t.Errorf("blank status = %q, want upcoming", e.Status)
	}
}

func TestDelete_ConfirmedRemovesRecord(t *testing.T) {
	for _, kind := range models.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			f := testutil.NewFixtures(t)
			dlg := testutil.Accept()

			if !f.Controller.Delete(kind, 1, dlg) {
				t.Fatal("Delete reported nothing removed")
			}
			if len(dlg.Confirms) != 1 {
				t.Errorf("confirm prompts = %d, want 1", len(dlg.Confirms))
			}

			rows := f.Screen.Rows(kind)
			if len(rows) != f.State.Len(kind) {
				t.Errorf("rows = %d, length = %d", len(rows), f.State.Len(kind))
			}
			for _, r := range rows {
				if r.ID == 1 {
					t.Error("row with id 1 still rendered")
				}
			}
			if got := f.Screen.Counters().Of(kind); got != 2 {
				t.Errorf("counter = %d, want 2", got)
			}
		})
	}
}

func TestDeleteEvent_Scenario(t *testing.T) {
	f := testutil.NewFixtures(t)

	f.Controller.DeleteEvent(2, testutil.Accept())

	events := f.Controller.Events()
	if len(events) != 2 || events[0].ID != 1 || events[1].ID != 3 {
		t.Errorf("events = %+v, want ids 1 and 3", events)
	}
	if f.Screen.Counters().Events != 2 {
		t.Errorf("events counter = %d, want 2", f.Screen.Counters().Events)
	}
}

func TestDelete_Declined(t *testing.T) {
	f := testutil.NewFixtures(t)
	dlg := testutil.Decline()

	if f.Controller.DeleteSchool(1, dlg) {
		t.Error("declined delete removed a record")
	}
	if f.State.Schools.Len() != 3 {
		t.Errorf("schools = %d, want 3", f.State.Schools.Len())
	}
	if dlg.Confirms[0] != "Are you sure you want to delete this school?" {
		t.Errorf("prompt = %q", dlg.Confirms[0])
	}
	if len(f.Notifier.Active()) != 0 {
		t.Error("declined delete showed a banner")
	}
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	for _, kind := range models.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			f := testutil.NewFixtures(t)
			before := f.Screen.Counters()

			if f.Controller.Delete(kind, 42, testutil.Accept()) {
				t.Error("Delete of unknown id reported a removal")
			}
			if f.State.Len(kind) != 3 {
				t.Errorf("length = %d, want 3", f.State.Len(kind))
			}
			if f.Screen.Counters() != before {
				t.Errorf("counters changed: %+v -> %+v", before, f.Screen.Counters())
			}
			if n := len(f.Notifier.Active()); n != 0 {
				t.Errorf("banners = %d, want none for an unknown id", n)
			}
		})
	}
}

func TestEdit_NeverMutates(t *testing.T) {
	f := testutil.NewFixtures(t)
	schools := f.Controller.Schools()
	events := f.Controller.Events()
	team := f.Controller.Team()

	for _, kind := range []models.Kind{models.KindSchool, models.KindEvent, models.KindTeamMember} {
		for _, id := range []int{1, 2, 3, 99} {
			f.Controller.Edit(kind, id)
		}
	}

	if !equalSchools(schools, f.Controller.Schools()) {
		t.Error("schools changed after edit")
	}
	if len(events) != len(f.Controller.Events()) || len(team) != len(f.Controller.Team()) {
		t.Error("collections changed after edit")
	}
}

func TestEditSchool_ShowsInfoBanner(t *testing.T) {
	f := testutil.NewFixtures(t)

	f.Controller.EditSchool(2)
	f.Controller.EditSchool(99)

	active := f.Notifier.Active()
	if len(active) != 1 {
		t.Fatalf("banners = %d, want 1", len(active))
	}
	if active[0].Message != "Editing school: Ethiopian Science Academy" || active[0].Severity != notify.Info {
		t.Errorf("banner = %+v", active[0])
	}
}

func TestEdit_MessagesUnsupported(t *testing.T) {
	f := testutil.NewFixtures(t)
	if f.Controller.Edit(models.KindMessage, 1) {
		t.Error("messages should not be editable")
	}
}

// Ids come from the collection length, so deleting and re-adding can hand
// out an id that is still in use. The behavior is kept and logged.
func TestAddAfterDelete_RepeatsID(t *testing.T) {
	f := testutil.NewFixtures(t)

	first := f.Controller.AddSchool(schoolForm())
	f.Controller.DeleteSchool(1, testutil.Accept())
	second := f.Controller.AddSchool(schoolForm())

	if first.ID != 4 || second.ID != 4 {
		t.Fatalf("ids = %d, %d; want 4, 4", first.ID, second.ID)
	}
	dupes := 0
	for _, s := range f.Controller.Schools() {
		if s.ID == 4 {
			dupes++
		}
	}
	if dupes != 2 {
		t.Errorf("schools with id 4 = %d, want 2", dupes)
	}
}

func TestBanner_ExpiresAfterFiveSeconds(t *testing.T) {
	f := testutil.NewFixtures(t)

	f.Controller.AddEvent(eventForm())
	if len(f.Notifier.Active()) != 1 {
		t.Fatal("banner not visible right after the mutation")
	}

	f.Clock.Advance(4 * time.Second)
	if len(f.Notifier.Active()) != 1 {
		t.Fatal("banner gone before five seconds")
	}
	f.Clock.Advance(time.Second)
	if len(f.Notifier.Active()) != 0 {
		t.Error("banner still visible after five seconds")
	}
}

func TestBanner_ManualDismissThenTimer(t *testing.T) {
	f := testutil.NewFixtures(t)

	f.Controller.DeleteTeamMember(3, testutil.Accept())
	b := f.Notifier.Active()[0]
	if !f.Notifier.Dismiss(b.ID) {
		t.Fatal("Dismiss returned false")
	}

	f.Clock.Advance(10 * time.Second)
	if len(f.Notifier.Active()) != 0 {
		t.Error("dismissed banner came back")
	}
}

func TestNavigate(t *testing.T) {
	f := testutil.NewFixtures(t)

	sec := f.Controller.Navigate("#events")
	if sec != models.SectionEvents {
		t.Errorf("Navigate returned %q", sec)
	}
	if f.Screen.Visible() != models.SectionEvents || f.Screen.Active() != models.SectionEvents {
		t.Errorf("visible=%q active=%q", f.Screen.Visible(), f.Screen.Active())
	}

	f.Controller.Navigate("#team")
	if f.Screen.Visible() != models.SectionTeam {
		t.Errorf("last click should win, visible=%q", f.Screen.Visible())
	}

	f.Controller.Navigate("#nowhere")
	if f.Screen.Visible() != "" {
		t.Errorf("unknown section should hide all, visible=%q", f.Screen.Visible())
	}
	if f.Controller.ActiveSection() != "nowhere" {
		t.Errorf("ActiveSection = %q", f.Controller.ActiveSection())
	}
}

func TestCounterCheck(t *testing.T) {
	f := testutil.NewFixtures(t)
	f.Controller.AddEvent(url.Values{"title": {"Robotics Night"}, "event_date": {"2024-03-01"}})

	actual, shown, ok := f.Controller.CounterCheck()
	if !ok {
		t.Fatal("screen should report its counters")
	}
	if actual != shown || actual.Events != 4 {
		t.Errorf("actual=%+v shown=%+v", actual, shown)
	}
}

func TestSectionFromHref(t *testing.T) {
	tests := []struct {
		href string
		want models.Section
	}{
		{"#events", models.SectionEvents},
		{"  #team ", models.SectionTeam},
		{"messages", models.SectionMessages},
		{"#nowhere", "nowhere"},
	}
	for _, tt := range tests {
		if got := admin.SectionFromHref(tt.href); got != tt.want {
			t.Errorf("SectionFromHref(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}

func TestNewFixturesWith_Empty(t *testing.T) {
	f := testutil.NewFixturesWith(t, mockdata.Empty())
	s := f.Controller.AddSchool(schoolForm())
	if s.ID != 1 {
		t.Errorf("first id = %d, want 1", s.ID)
	}
}

func equalSchools(a, b []models.School) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
