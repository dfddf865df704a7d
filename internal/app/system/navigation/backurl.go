// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// ExcludedSubpaths are subpath patterns to reject (e.g., "/edit", "/delete").
	// These prevent redirect loops back to action endpoints.
	ExcludedSubpaths []string

	// ExcludeID rejects return URLs naming this record id, so a redirect
	// never lands on a record that was just removed.
	ExcludeID string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks both the query parameter and form value for "return", validates
// the URL is safe (not an open redirect), and excludes specified subpaths to
// prevent redirect loops.
//
// Example usage:
//
//	url := navigation.SafeBackURL(r, navigation.DashboardBackURL("events", id))
//	http.Redirect(w, r, url, http.StatusSeeOther)
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), opts.ExcludeID, "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), opts.ExcludeID, "")
	}

	if ret != "" {
		valid := true
		for _, excluded := range opts.ExcludedSubpaths {
			if strings.Contains(ret, excluded) {
				valid = false
				break
			}
		}
		if valid {
			return ret
		}
	}

	return opts.Fallback
}

// actionSubpaths are the dashboard's POST-only endpoints.
var actionSubpaths = []string{"/edit", "/delete", "/read", "/unread", "/dismiss"}

// DashboardBackURL returns options that fall back to section on the
// dashboard. A non-empty id is excluded from the return URL.
func DashboardBackURL(section, id string) BackURLOptions {
	return BackURLOptions{
		ExcludedSubpaths: actionSubpaths,
		ExcludeID:        id,
		Fallback:         "/?section=" + section,
	}
}
