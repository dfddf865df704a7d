// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/stemboard/internal/app/store/state"
	"github.com/dalemusser/stemboard/internal/app/system/clock"
	"github.com/dalemusser/stemboard/internal/app/system/ratelimit"
)

// DBDeps holds the back-end dependencies for the app. The dashboard keeps
// its collections in memory, so the "database" is the State built by
// ConnectDB.
type DBDeps struct {
	State   *state.State
	Clock   clock.Clock
	Limiter *ratelimit.ContactLimiter
}
