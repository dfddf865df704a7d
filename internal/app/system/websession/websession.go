// Package websession keeps per-browser UI state in a signed cookie: the
// dashboard section the admin last opened and one-shot flash messages for
// the public contact page.
package websession

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// ErrNoStore is returned when a Manager was built without a cookie store.
var ErrNoStore = errors.New("websession: session store not initialized")

const sectionKey = "section"

// Manager reads and writes the UI session cookie.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// New creates a Manager signing cookies with sessionKey. The `secure` flag
// controls whether cookies are marked Secure and which SameSite mode is used:
// Secure + SameSite=None in production, Lax over plain http in dev.
func New(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = "stemboard-session"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   86400 * 30,
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Manager{store: store, name: name, log: logger}, nil
}

// Name returns the cookie name.
func (m *Manager) Name() string {
	return m.name
}

// session returns the request's session. A cookie that no longer decodes
// (for example after a key rotation) is replaced by a fresh session.
func (m *Manager) session(r *http.Request) (*sessions.Session, error) {
	if m == nil || m.store == nil {
		return nil, ErrNoStore
	}
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			m.log.Debug("session cookie invalid, using fresh session", zap.Error(err))
			return sess, nil
		}
		return sess, err
	}
	return sess, nil
}

// Section returns the section remembered for this browser.
func (m *Manager) Section(r *http.Request) (models.Section, bool) {
	sess, err := m.session(r)
	if err != nil || sess == nil {
		return "", false
	}
	s, ok := sess.Values[sectionKey].(string)
	if !ok || !models.Section(s).Known() {
		return "", false
	}
	return models.Section(s), true
}

// SaveSection remembers sec for this browser.
func (m *Manager) SaveSection(w http.ResponseWriter, r *http.Request, sec models.Section) error {
	sess, err := m.session(r)
	if err != nil {
		return err
	}
	sess.Values[sectionKey] = string(sec)
	return sess.Save(r, w)
}

// AddFlash queues msg for the next page this browser loads.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	sess, err := m.session(r)
	if err != nil {
		return err
	}
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// Flashes pops the queued flash messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess, err := m.session(r)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("session save failed", zap.Error(err))
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
