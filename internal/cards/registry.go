// Package cards stores card themes and selects one for a credential.
package cards

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

// Registry keeps card themes in registration order. It always has a
// default theme: the last registered fallback theme, a theme set through
// SetDefault, or the built-in theme.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	themes   map[string]theme.CardTheme
	fallback theme.CardTheme
	patterns *patternCache
	logger   zerolog.Logger
}

type Option func(*Registry)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		themes:   make(map[string]theme.CardTheme),
		fallback: theme.DefaultCardTheme(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.patterns = newPatternCache(func(regex string, err error) {
		r.logger.Warn().Err(err).Str("regex", regex).Msg("invalid card theme pattern")
	})
	return r
}

// Register inserts or replaces a theme by id. A replaced theme keeps its
// original position. Fallback themes become the default, last one wins.
func (r *Registry) Register(t theme.CardTheme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.themes[t.ID]; !exists {
		r.order = append(r.order, t.ID)
	}
	r.themes[t.ID] = t.Clone()
	if t.Matcher.Fallback {
		r.fallback = t.Clone()
	}
}

func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.themes[id]; !exists {
		return
	}
	delete(r.themes, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.fallback.ID == id {
		r.fallback = theme.DefaultCardTheme()
	}
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.themes = make(map[string]theme.CardTheme)
	r.fallback = theme.DefaultCardTheme()
}

// Match scans themes in registration order and returns the first one whose
// patterns match info. Fallback themes are skipped. Without a match the
// default theme is returned.
func (r *Registry) Match(info theme.CredentialMatchInfo) theme.CardTheme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		t := r.themes[id]
		if t.Matcher.Fallback {
			continue
		}
		if r.patterns.matches(t.Matcher, info) {
			return t.Clone()
		}
	}
	return r.fallback.Clone()
}

func (r *Registry) Get(id string) (theme.CardTheme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[id]
	if !ok {
		return theme.CardTheme{}, false
	}
	return t.Clone(), true
}

func (r *Registry) Default() theme.CardTheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback.Clone()
}

// SetDefault replaces the default theme. t does not need to be registered.
func (r *Registry) SetDefault(t theme.CardTheme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = t.Clone()
}

func (r *Registry) List() []theme.CardTheme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]theme.CardTheme, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.themes[id].Clone())
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
