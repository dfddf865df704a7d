// internal/app/features/dashboard/dialogs.go
package dashboard

import "github.com/dalemusser/stemboard/internal/app/admin"

// requestDialogs answers the controller's prompts from what the request
// already carries: a delete form posts confirm=yes once the admin has
// accepted the confirmation page. Alerts are kept for the response.
type requestDialogs struct {
	confirmed bool
	prompts   []string
	alerts    []string
}

var _ admin.Dialogs = (*requestDialogs)(nil)

func (d *requestDialogs) Confirm(message string) bool {
	d.prompts = append(d.prompts, message)
	return d.confirmed
}

func (d *requestDialogs) Alert(message string) {
	d.alerts = append(d.alerts, message)
}

func (d *requestDialogs) prompt() string {
	if len(d.prompts) == 0 {
		return ""
	}
	return d.prompts[0]
}

func (d *requestDialogs) alert() string {
	if len(d.alerts) == 0 {
		return ""
	}
	return d.alerts[0]
}
