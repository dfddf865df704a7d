// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/stemboard/internal/app/admin"
	contactfeature "github.com/dalemusser/stemboard/internal/app/features/contact"
	dashboardfeature "github.com/dalemusser/stemboard/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/stemboard/internal/app/features/errors"
	healthfeature "github.com/dalemusser/stemboard/internal/app/features/health"
	metricsstore "github.com/dalemusser/stemboard/internal/app/store/metrics"
	"github.com/dalemusser/stemboard/internal/app/system/clock"
	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/app/system/screen"
	"github.com/dalemusser/stemboard/internal/app/system/viewdata"
	"github.com/dalemusser/stemboard/internal/app/system/websession"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the in-memory state, and any
// Startup hooks are ready. It boots the template engine, builds the
// dashboard controller over deps.State, draws the initial dashboard and
// mounts the feature routers: the admin dashboard at /, the public contact
// form, health and metrics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := websession.New(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	gauges, err := metricsstore.NewGauges(reg)
	if err != nil {
		logger.Error("metrics registration failed", zap.Error(err))
		return nil, err
	}

	clk := deps.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	notes := notify.New(clk, appCfg.NotificationTTL, logger)
	scr := screen.New()
	ctrl := admin.New(deps.State, scr, notes, clk, gauges, logger)
	ctrl.Init()
	viewdata.SetBannerLoader(viewdata.NotifierBanners(notes))

	r := chi.NewRouter()
	r.Use(securityHeaders)
	r.Use(csrfProtect([]byte(appCfg.CSRFKey), secure))

	// Error pages; set before mounting so sub-routers inherit them.
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(ctrl, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if appCfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	// Public contact form
	contactHandler := contactfeature.NewHandler(ctrl, deps.Limiter, sessionMgr, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Admin dashboard
	dashboardHandler := dashboardfeature.NewHandler(ctrl, scr, sessionMgr, logger)
	r.Mount("/", dashboardfeature.Routes(dashboardHandler))

	return r, nil
}

// csrfProtect wraps gorilla/csrf. Outside production the site is served
// over plain http, so requests are marked plaintext for the origin checks.
func csrfProtect(key []byte, secure bool) func(http.Handler) http.Handler {
	protect := csrf.Protect(key,
		csrf.Secure(secure),
		csrf.Path("/"),
	)
	return func(next http.Handler) http.Handler {
		h := protect(next)
		if secure {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

// securityHeaders sets the baseline response headers for every page.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
