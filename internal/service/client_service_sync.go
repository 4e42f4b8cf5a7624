package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/MKhiriev/go-account-sync/internal/adapter"
	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/models"
)

// syncCoordinator is the SyncCoordinator implementation. mu guards every field
// below it. Network and cache I/O runs outside the lock with state set to an
// in-flight value, so a second trigger sees the in-flight state and is
// rejected instead of interleaving.
type syncCoordinator struct {
	cache   ClientSessionCache
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu          sync.Mutex
	state       models.SyncState
	identity    string
	workingData string
	stale       bool
	syncFailed  bool
	lastErr     error
}

func NewSyncCoordinator(cache ClientSessionCache, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SyncCoordinator {
	return &syncCoordinator{
		cache:   cache,
		adapter: serverAdapter,
		logger:  logger,
		state:   models.StateCold,
	}
}

// enter moves the machine into the in-flight state `to` when the current state
// is one of `from`.
func (c *syncCoordinator) enter(to models.SyncState, from ...models.SyncState) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !slices.Contains(from, c.state) {
		if c.state.InFlight() {
			return ErrOperationInProgress
		}
		return ErrInvalidTransition
	}

	c.state = to
	return nil
}

// leave applies the outcome of an operation and returns the resulting
// snapshot.
func (c *syncCoordinator) leave(apply func()) models.SyncSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	apply()
	return c.snapshotLocked()
}

func (c *syncCoordinator) Start(ctx context.Context) (models.SyncSnapshot, error) {
	log := logger.FromContext(ctx)

	if err := c.enter(models.StateRestoring, models.StateCold); err != nil {
		return c.Snapshot(), err
	}

	session, err := c.cache.Restore(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncCoordinator.Start").Msg("session restore failed, starting signed out")
		return c.leave(func() {
			c.state = models.StateUnauthenticated
			c.lastErr = err
		}), err
	}

	if !session.Active {
		return c.leave(func() {
			c.state = models.StateUnauthenticated
		}), nil
	}

	c.adapter.SetToken(session.Token)
	log.Info().Str("identity", session.Identity).Msg("resumed cached session")

	return c.leave(func() {
		c.state = models.StateAuthenticated
		c.identity = session.Identity
		c.workingData = session.WorkingData
		c.stale = true
	}), nil
}

func (c *syncCoordinator) Login(ctx context.Context, identity, secret string) (models.SyncSnapshot, error) {
	log := logger.FromContext(ctx)

	if err := c.enter(models.StateAuthenticating, models.StateUnauthenticated); err != nil {
		return c.Snapshot(), err
	}

	resp, err := c.adapter.Login(ctx, identity, secret)
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).Str("func", "syncCoordinator.Login").Str("identity", identity).Msg("login failed")
		return c.leave(func() {
			c.state = models.StateUnauthenticated
			c.lastErr = err
		}), err
	}

	// the server copy replaces whatever the cache held
	if err = c.cache.Begin(ctx, resp.User.Identity, resp.User.WorkingData, resp.Token); err != nil {
		log.Err(err).Str("func", "syncCoordinator.Login").Msg("failed to cache session after login")
		c.adapter.SetToken("")
		return c.leave(func() {
			c.state = models.StateUnauthenticated
			c.lastErr = err
		}), err
	}

	return c.leave(func() {
		c.state = models.StateAuthenticated
		c.identity = resp.User.Identity
		c.workingData = resp.User.WorkingData
		c.stale = false
		c.syncFailed = false
		c.lastErr = nil
	}), nil
}

func (c *syncCoordinator) Register(ctx context.Context, identity, secret string) error {
	if err := c.enter(models.StateAuthenticating, models.StateUnauthenticated); err != nil {
		return err
	}

	err := mapAdapterError(c.adapter.Register(ctx, identity, secret))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncCoordinator.Register").Str("identity", identity).Msg("registration failed")
	}

	c.leave(func() {
		c.state = models.StateUnauthenticated
		c.lastErr = err
	})
	return err
}

// Edit holds the lock for the duration of the local write. Edits are short
// and never touch the network.
func (c *syncCoordinator) Edit(ctx context.Context, workingData string) (models.SyncSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.StateAuthenticated {
		if c.state.InFlight() {
			return c.snapshotLocked(), ErrOperationInProgress
		}
		return c.snapshotLocked(), ErrInvalidTransition
	}

	if err := c.cache.UpdateWorkingData(ctx, workingData); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncCoordinator.Edit").Msg("failed to cache edit")
		c.lastErr = err
		return c.snapshotLocked(), err
	}

	c.workingData = workingData
	return c.snapshotLocked(), nil
}

func (c *syncCoordinator) Logout(ctx context.Context) (models.SyncSnapshot, error) {
	log := logger.FromContext(ctx)

	if err := c.enter(models.StateSyncingOut, models.StateAuthenticated); err != nil {
		return c.Snapshot(), err
	}

	identity, workingData := c.current()

	if err := c.push(ctx, identity, workingData); err != nil {
		log.Err(err).Str("func", "syncCoordinator.Logout").Str("identity", identity).Msg("push failed, keeping session")
		return c.leave(func() {
			c.state = models.StateAuthenticated
			c.syncFailed = true
			c.lastErr = err
		}), err
	}

	if err := c.cache.End(ctx); err != nil {
		// the server has the data; a retried logout pushes the same value again
		log.Err(err).Str("func", "syncCoordinator.Logout").Msg("pushed but failed to clear session")
		return c.leave(func() {
			c.state = models.StateAuthenticated
			c.stale = false
			c.syncFailed = false
			c.lastErr = err
		}), err
	}

	c.adapter.SetToken("")
	log.Info().Str("identity", identity).Msg("logged out")

	return c.leave(c.signedOut), nil
}

func (c *syncCoordinator) DiscardAndLogout(ctx context.Context) (models.SyncSnapshot, error) {
	if err := c.enter(models.StateSyncingOut, models.StateAuthenticated); err != nil {
		return c.Snapshot(), err
	}

	if err := c.cache.End(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncCoordinator.DiscardAndLogout").Msg("failed to clear session")
		return c.leave(func() {
			c.state = models.StateAuthenticated
			c.lastErr = err
		}), err
	}

	c.adapter.SetToken("")
	logger.FromContext(ctx).Warn().Msg("unsynced edits discarded on logout")

	return c.leave(c.signedOut), nil
}

func (c *syncCoordinator) SaveNow(ctx context.Context) (models.SyncSnapshot, error) {
	if err := c.enter(models.StateSyncingOut, models.StateAuthenticated); err != nil {
		return c.Snapshot(), err
	}

	identity, workingData := c.current()

	if err := c.push(ctx, identity, workingData); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncCoordinator.SaveNow").Str("identity", identity).Msg("push failed")
		return c.leave(func() {
			c.state = models.StateAuthenticated
			c.syncFailed = true
			c.lastErr = err
		}), err
	}

	return c.leave(func() {
		c.state = models.StateAuthenticated
		c.stale = false
		c.syncFailed = false
		c.lastErr = nil
	}), nil
}

func (c *syncCoordinator) Reauthenticate(ctx context.Context, secret string) (models.SyncSnapshot, error) {
	if err := c.enter(models.StateAuthenticating, models.StateAuthenticated); err != nil {
		return c.Snapshot(), err
	}

	identity, _ := c.current()

	resp, err := c.adapter.Login(ctx, identity, secret)
	if err == nil {
		err = c.cache.SetToken(ctx, resp.Token)
	} else {
		err = mapAdapterError(err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncCoordinator.Reauthenticate").Str("identity", identity).Msg("reauthentication failed")
		return c.leave(func() {
			c.state = models.StateAuthenticated
			c.lastErr = err
		}), err
	}

	// cached working data is kept, the server copy in resp is ignored
	return c.leave(func() {
		c.state = models.StateAuthenticated
		c.lastErr = nil
	}), nil
}

func (c *syncCoordinator) DeleteAccount(ctx context.Context, secret string) (models.SyncSnapshot, error) {
	log := logger.FromContext(ctx)

	if err := c.enter(models.StateDeleting, models.StateAuthenticated); err != nil {
		return c.Snapshot(), err
	}

	identity, _ := c.current()

	if err := mapAdapterError(c.adapter.DeleteAccount(ctx, identity, secret)); err != nil {
		log.Err(err).Str("func", "syncCoordinator.DeleteAccount").Str("identity", identity).Msg("account deletion failed")
		return c.leave(func() {
			c.state = models.StateAuthenticated
			c.lastErr = err
		}), err
	}

	c.adapter.SetToken("")

	// the account is gone, so the session cannot stay signed in either way
	if err := c.cache.End(ctx); err != nil {
		log.Err(err).Str("func", "syncCoordinator.DeleteAccount").Msg("account deleted but failed to clear session")
		return c.leave(func() {
			c.signedOut()
			c.lastErr = err
		}), err
	}

	log.Info().Str("identity", identity).Msg("account deleted")
	return c.leave(c.signedOut), nil
}

func (c *syncCoordinator) Status(ctx context.Context) (string, error) {
	message, err := c.adapter.Status(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return message, nil
}

func (c *syncCoordinator) Snapshot() models.SyncSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

func (c *syncCoordinator) push(ctx context.Context, identity, workingData string) error {
	err := c.adapter.SaveData(ctx, identity, workingData)
	if err == nil {
		return nil
	}

	mapped := mapAdapterError(err)
	if errors.Is(mapped, ErrTokenIsExpiredOrInvalid) {
		logger.FromContext(ctx).Warn().Str("identity", identity).Msg("session token rejected, reauthentication required")
	}
	return mapped
}

func (c *syncCoordinator) current() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.identity, c.workingData
}

// signedOut must be called with mu held.
func (c *syncCoordinator) signedOut() {
	c.state = models.StateUnauthenticated
	c.identity = ""
	c.workingData = ""
	c.stale = false
	c.syncFailed = false
	c.lastErr = nil
}

func (c *syncCoordinator) snapshotLocked() models.SyncSnapshot {
	return models.SyncSnapshot{
		State:       c.state,
		Identity:    c.identity,
		WorkingData: c.workingData,
		Stale:       c.stale,
		SyncFailed:  c.syncFailed,
		LastError:   c.lastErr,
	}
}
