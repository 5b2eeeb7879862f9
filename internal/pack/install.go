package pack

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/walletthemes/internal/registry"
	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

var ErrUnknownPack = errors.New("unknown theme pack")

// Install registers every pack in catalog and pushes its collections while
// the pack is active, so each cached ResolvedTheme carries its own data.
// activeID selects the theme left active afterwards; an empty or unknown
// id falls back to the first pack, the latter reported as ErrUnknownPack.
//
// Activation only adds to the sub-registries, so the chosen pack is pushed
// once more after the final SetActive to drop leftovers of the others.
func Install(reg *registry.Registry, catalog Catalog, activeID string) error {
	defs := catalog.All()
	if len(defs) == 0 {
		return nil
	}

	for _, def := range defs {
		p := def.Pack.Clone()
		reg.Register(p.Manifest)
		reg.SetActive(p.Manifest.ID)
		apply(reg, p)
	}

	if err := Activate(reg, catalog, activeID); err != nil {
		first := defs[0]
		reg.SetActive(first.Pack.Manifest.ID)
		apply(reg, first.Pack.Clone())
		if activeID == "" {
			return nil
		}
		return err
	}
	return nil
}

// Activate makes id the active theme and pushes its pack again. The pack
// must already be registered, usually through Install.
func Activate(reg *registry.Registry, catalog Catalog, id string) error {
	def, ok := catalog.Get(id)
	if !ok || !reg.Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownPack, id)
	}
	reg.SetActive(id)
	apply(reg, def.Pack.Clone())
	return nil
}

func apply(reg *registry.Registry, p Pack) {
	reg.SetCardThemes(p.CardThemes)
	reg.SetBackgrounds(p.Backgrounds)
	if p.ScreenBackgrounds != nil {
		reg.SetScreenBackgrounds(p.ScreenBackgrounds)
	}
	tabBar := theme.DefaultTabBarConfig()
	if p.TabBar != nil {
		tabBar = *p.TabBar
	}
	reg.SetTabBarConfig(tabBar)
	reg.SetScreenThemes(p.ScreenThemes)
}
