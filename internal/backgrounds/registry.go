// Package backgrounds stores screen background configurations and the
// screen id to background id mapping.
package backgrounds

import (
	"sort"
	"sync"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

// Registry always holds an entry under the "default" id; it is what
// unmapped screens resolve to.
type Registry struct {
	mu          sync.RWMutex
	backgrounds map[string]theme.BackgroundConfig
	screens     theme.ScreenBackgrounds
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.backgrounds = map[string]theme.BackgroundConfig{
		theme.DefaultID: theme.DefaultBackground(),
	}
	r.screens = theme.ScreenBackgrounds{}
}

func (r *Registry) Register(cfg theme.BackgroundConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backgrounds[cfg.ID] = cfg.Clone()
}

// Unregister removes a background. The built-in "default" id is protected
// and can only be replaced through SetDefault.
func (r *Registry) Unregister(id string) {
	if id == theme.DefaultID {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backgrounds, id)
}

// Clear drops backgrounds and the screen mapping and restores the
// built-in default.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reset()
}

func (r *Registry) Get(id string) (theme.BackgroundConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.backgrounds[id]
	if !ok {
		return theme.BackgroundConfig{}, false
	}
	return cfg.Clone(), true
}

// ForScreen resolves the background mapped to screenID. Unmapped screens
// and mappings to removed backgrounds resolve to the default.
func (r *Registry) ForScreen(screenID string) theme.BackgroundConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := r.screens[screenID]; ok {
		if cfg, ok := r.backgrounds[id]; ok {
			return cfg.Clone()
		}
	}
	return r.backgrounds[theme.DefaultID].Clone()
}

func (r *Registry) Default() theme.BackgroundConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.backgrounds[theme.DefaultID].Clone()
}

// SetDefault stores cfg under the "default" id whatever its own id is.
func (r *Registry) SetDefault(cfg theme.BackgroundConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backgrounds[theme.DefaultID] = cfg.Clone()
}

func (r *Registry) SetScreenMapping(mapping theme.ScreenBackgrounds) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screens = mapping.Clone()
}

func (r *Registry) ScreenMapping() theme.ScreenBackgrounds {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.screens.Clone()
}

// List returns registered backgrounds sorted by id.
func (r *Registry) List() []theme.BackgroundConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]theme.BackgroundConfig, 0, len(r.backgrounds))
	for _, cfg := range r.backgrounds {
		out = append(out, cfg.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
