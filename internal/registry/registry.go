// Package registry registers theme manifests, caches their resolved form
// and keeps the card, background and tab bar registries in step with the
// active theme.
package registry

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/walletthemes/internal/backgrounds"
	"github.com/unkn0wn-root/walletthemes/internal/cards"
	"github.com/unkn0wn-root/walletthemes/internal/tabbar"
	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

type Registry struct {
	mu        sync.RWMutex
	manifests map[string]theme.Manifest
	order     []string
	built     map[string]*theme.ResolvedTheme
	activeID  string

	cards       *cards.Registry
	backgrounds *backgrounds.Registry
	tabBar      *tabbar.Registry
	logger      zerolog.Logger
}

type Option func(*Registry)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		manifests:   make(map[string]theme.Manifest),
		built:       make(map[string]*theme.ResolvedTheme),
		backgrounds: backgrounds.NewRegistry(),
		tabBar:      tabbar.NewRegistry(),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cards = cards.NewRegistry(cards.WithLogger(r.logger))
	return r
}

func (r *Registry) Cards() *cards.Registry {
	return r.cards
}

func (r *Registry) Backgrounds() *backgrounds.Registry {
	return r.backgrounds
}

func (r *Registry) TabBar() *tabbar.Registry {
	return r.tabBar
}

// Register stores m and drops any cached resolved theme for its id. The
// first manifest registered while no theme is active becomes active; the
// sub-registries are not touched until SetActive runs.
func (r *Registry) Register(m theme.Manifest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.manifests[m.ID]; !exists {
		r.order = append(r.order, m.ID)
	}
	r.manifests[m.ID] = m
	delete(r.built, m.ID)
	if r.activeID == "" {
		r.activeID = m.ID
	}
	r.logger.Debug().Str("theme_id", m.ID).Str("version", m.Version).Msg("theme registered")
}

func (r *Registry) RegisterMultiple(manifests []theme.Manifest) {
	for _, m := range manifests {
		r.Register(m)
	}
}

// Unregister removes a manifest and its cached theme. Unregistering the
// active theme leaves no theme active.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.manifests[id]; !exists {
		return
	}
	delete(r.manifests, id)
	delete(r.built, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.activeID == id {
		r.activeID = ""
	}
}

func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.manifests[id]
	return ok
}

// Get returns the cached resolved theme for id, building it on first use.
// Repeated calls return the same pointer until the manifest is registered
// again or removed. Unknown ids return nil.
//
// Setters rewrite the fields of the active theme in place. Goroutines that
// read a theme while another one calls setters must use Snapshot instead.
func (r *Registry) Get(id string) *theme.ResolvedTheme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(id)
}

func (r *Registry) resolveLocked(id string) *theme.ResolvedTheme {
	if rt, ok := r.built[id]; ok {
		return rt
	}
	m, ok := r.manifests[id]
	if !ok {
		return nil
	}
	rt := theme.NewResolvedTheme(m)
	r.built[id] = rt
	return rt
}

// Snapshot returns a deep copy of the resolved theme for id taken under
// the registry lock. Unknown ids return nil.
func (r *Registry) Snapshot(id string) *theme.ResolvedTheme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(id).Clone()
}

func (r *Registry) List() []theme.ThemeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]theme.ThemeInfo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.manifests[id].Info())
	}
	return out
}

func (r *Registry) ActiveID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeID
}

// Active returns the resolved active theme or nil when none is active. The
// pointer is shared with Get and carries the same caveat.
func (r *Registry) Active() *theme.ResolvedTheme {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activeID == "" {
		return nil
	}
	return r.resolveLocked(r.activeID)
}
