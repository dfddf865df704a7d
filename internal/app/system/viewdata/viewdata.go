// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is shown in the page title and navbar.
const DefaultSiteName = "STEM Society Admin"

// BannerVM represents a notification banner for display in templates.
type BannerVM struct {
	ID       string
	Message  string
	Severity string // success, info, danger
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// Notification banners, newest first
	Banners []BannerVM
}

// BannerLoader returns the banners currently visible.
// This is set by bootstrap to avoid circular dependencies.
type BannerLoader func() []BannerVM

var bannerLoader BannerLoader

// SetBannerLoader sets the function used to load active banners.
// Call this once at startup from bootstrap.
func SetBannerLoader(loader BannerLoader) {
	bannerLoader = loader
}

// NotifierBanners adapts n's active banners for page view models.
func NotifierBanners(n *notify.Notifier) BannerLoader {
	return func() []BannerVM {
		active := n.Active()
		out := make([]BannerVM, 0, len(active))
		for _, b := range active {
			out = append(out, BannerVM{ID: b.ID, Message: b.Message, Severity: string(b.Severity)})
		}
		return out
	}
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    DefaultSiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
	if bannerLoader != nil {
		vm.Banners = bannerLoader()
	}
	return vm
}
