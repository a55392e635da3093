package tenant

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/session"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/logger"
)

// Tenant is a single switchable tenant
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Listener is notified after the active tenant changes
type Listener func(Tenant)

// Context is the single source of truth for which tenant is active. The
// roster is fixed at construction; the active tenant id is persisted through
// the session store so it survives restarts. Consumers must re-derive the
// current tenant per request rather than caching it, so a switch takes effect
// on the very next outgoing call.
type Context struct {
	roster []Tenant
	byID   map[string]Tenant
	store  session.Store

	mu        sync.RWMutex
	listeners []Listener
}

// NewContext creates a tenant context from a static roster. The roster must be
// non-empty; its first entry is the default tenant.
func NewContext(roster []Tenant, store session.Store) *Context {
	byID := make(map[string]Tenant, len(roster))
	for _, t := range roster {
		byID[t.ID] = t
	}
	return &Context{
		roster: roster,
		byID:   byID,
		store:  store,
	}
}

// Current returns the active tenant. An unknown or missing persisted id falls
// back to the default tenant; this never fails.
func (c *Context) Current(ctx context.Context) Tenant {
	id, err := c.store.Get(ctx, session.KeyTenantID)
	if err != nil || id == "" {
		return c.roster[0]
	}
	if t, ok := c.byID[id]; ok {
		return t
	}
	return c.roster[0]
}

// List returns the static roster in its fixed order
func (c *Context) List() []Tenant {
	out := make([]Tenant, len(c.roster))
	copy(out, c.roster)
	return out
}

// Switch sets the active tenant and persists the id for future process
// starts. An id that is not in the roster is ignored; the roster is static
// configuration, so an unknown id can only come from a stale caller.
func (c *Context) Switch(ctx context.Context, id string) {
	t, ok := c.byID[id]
	if !ok {
		logger.WarnCtx(ctx, "ignoring switch to unknown tenant", zap.String("tenant_id", id))
		return
	}

	if err := c.store.Set(ctx, session.KeyTenantID, id); err != nil {
		logger.ErrorCtx(ctx, "failed to persist tenant id", zap.Error(err))
		return
	}

	c.mu.RLock()
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn(t)
	}

	logger.InfoCtx(ctx, "switched tenant", zap.String("tenant_id", id))
}

// Subscribe registers a listener invoked synchronously after every successful
// switch. Intended for UI-facing consumers (tenant switcher label, tray header).
func (c *Context) Subscribe(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}
