package registry

import (
	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

// SetActive makes id the active theme and pushes its stored collections
// into the sub-registries. Empty collections are skipped, so activating a
// theme that never received card themes keeps whatever cards are loaded.
// Unknown ids are ignored with a warning.
func (r *Registry) SetActive(id string) {
	r.mu.Lock()
	if _, ok := r.manifests[id]; !ok {
		r.mu.Unlock()
		r.logger.Warn().Str("theme_id", id).Msg("cannot activate unregistered theme")
		return
	}
	r.activeID = id
	rt := r.resolveLocked(id)
	cardThemes := append([]theme.CardTheme(nil), rt.CardThemes...)
	bgs := append([]theme.BackgroundConfig(nil), rt.Backgrounds...)
	screens := rt.ScreenBackgrounds.Clone()
	tabBar := rt.TabBarConfig.Clone()
	r.mu.Unlock()

	for _, c := range cardThemes {
		r.cards.Register(c)
	}
	for _, b := range bgs {
		r.backgrounds.Register(b)
	}
	if len(screens) > 0 {
		r.backgrounds.SetScreenMapping(screens)
	}
	r.tabBar.SetConfig(tabBar)

	r.logger.Info().
		Str("theme_id", id).
		Int("card_themes", len(cardThemes)).
		Int("backgrounds", len(bgs)).
		Msg("theme activated")
}

// SetCardThemes replaces the card registry contents and mirrors them onto
// the cached active theme.
func (r *Registry) SetCardThemes(themes []theme.CardTheme) {
	r.cards.Clear()
	for _, c := range themes {
		r.cards.Register(c)
	}

	r.withActive(func(rt *theme.ResolvedTheme) {
		rt.CardThemes = cloneCards(themes)
	})
}

// SetBackgrounds replaces the background registry contents and derives the
// screen mapping from each background's screen ids. The "*" wildcard is
// not expanded into the mapping.
func (r *Registry) SetBackgrounds(bgs []theme.BackgroundConfig) {
	mapping := ScreenMappingFor(bgs)

	r.backgrounds.Clear()
	for _, b := range bgs {
		r.backgrounds.Register(b)
	}
	r.backgrounds.SetScreenMapping(mapping)

	r.withActive(func(rt *theme.ResolvedTheme) {
		rt.Backgrounds = cloneBackgrounds(bgs)
		rt.ScreenBackgrounds = mapping.Clone()
	})
}

func (r *Registry) SetScreenBackgrounds(mapping theme.ScreenBackgrounds) {
	r.backgrounds.SetScreenMapping(mapping)

	r.withActive(func(rt *theme.ResolvedTheme) {
		rt.ScreenBackgrounds = mapping.Clone()
	})
}

func (r *Registry) SetTabBarConfig(cfg theme.TabBarConfig) {
	r.tabBar.SetConfig(cfg)
	stored := r.tabBar.Config()

	r.withActive(func(rt *theme.ResolvedTheme) {
		rt.TabBarConfig = stored
	})
}

// SetScreenThemes stores per-screen overrides on the cached active theme.
// There is no sub-registry for screen themes.
func (r *Registry) SetScreenThemes(screens map[string]theme.ScreenTheme) {
	r.withActive(func(rt *theme.ResolvedTheme) {
		rt.ScreenThemes = make(map[string]theme.ScreenTheme, len(screens))
		for k, v := range screens {
			rt.ScreenThemes[k] = v
		}
	})
}

// withActive runs fn against the cached active theme. Nothing happens when
// no theme is active or the active theme has not been built yet.
func (r *Registry) withActive(fn func(*theme.ResolvedTheme)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeID == "" {
		return
	}
	rt, ok := r.built[r.activeID]
	if !ok {
		return
	}
	fn(rt)
}

// ScreenMappingFor builds a screen id to background id map from the
// screen ids declared on each background. Later backgrounds win.
func ScreenMappingFor(bgs []theme.BackgroundConfig) theme.ScreenBackgrounds {
	mapping := theme.ScreenBackgrounds{}
	for _, b := range bgs {
		for _, screen := range b.ScreenIDs {
			if screen == theme.AllScreens || screen == "" {
				continue
			}
			mapping[screen] = b.ID
		}
	}
	return mapping
}

func cloneCards(in []theme.CardTheme) []theme.CardTheme {
	out := make([]theme.CardTheme, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

func cloneBackgrounds(in []theme.BackgroundConfig) []theme.BackgroundConfig {
	out := make([]theme.BackgroundConfig, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}
