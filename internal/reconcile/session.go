package reconcile

import (
	"context"
	"time"

	"github.com/ErniyazCode/kazproperty/internal/client/store"
)

// AdminLogin exchanges credentials for a store-issued session token and
// attaches it to subsequent admin-gated store requests. A failed login
// leaves no session behind.
func (r *Reconciler) AdminLogin(ctx context.Context, username, password string) (*store.AdminSession, error) {
	session, err := r.store.AdminLogin(ctx, username, password)
	if err != nil {
		return nil, err
	}

	r.session = session
	r.store.SetAdminToken(session.Token)
	return session, nil
}

// AdminSession returns the current session, or nil when not logged in.
func (r *Reconciler) AdminSession() *store.AdminSession {
	return r.session
}

// AdminSessionValid reports whether a session exists and has not expired.
// Expiry is enforced here as well as server-side so stale sessions are
// dropped without a round trip.
func (r *Reconciler) AdminSessionValid() bool {
	return r.session != nil && r.session.Token != "" && time.Now().Before(r.session.ExpiresAt)
}

// AdminLogout drops the session locally.
func (r *Reconciler) AdminLogout() {
	r.session = nil
	r.store.SetAdminToken("")
}
