package pack

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/unkn0wn-root/walletthemes/internal/filesvc"
	"github.com/unkn0wn-root/walletthemes/internal/theme"
	"github.com/unkn0wn-root/walletthemes/internal/vars"
)

type Definition struct {
	Key         string
	DisplayName string
	Pack        Pack
	Source      Source
	Format      Format
	Path        string
	Unresolved  []string
}

type Catalog struct {
	order []Definition
	index map[string]int
}

func (c Catalog) All() []Definition {
	out := make([]Definition, len(c.order))
	copy(out, c.order)
	return out
}

func (c Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, def := range c.order {
		keys[i] = def.Key
	}
	return keys
}

func (c Catalog) Get(key string) (Definition, bool) {
	if c.index == nil {
		return Definition{}, false
	}
	idx, ok := c.index[key]
	if !ok {
		return Definition{}, false
	}
	return c.order[idx], true
}

func (c Catalog) Len() int {
	return len(c.order)
}

func (c *Catalog) add(def Definition) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[def.Key] = len(c.order)
	c.order = append(c.order, def)
}

// LoadCatalog returns the built-in packs followed by every pack found in
// dirs and their subdirectories, sorted by display name. Missing
// directories are skipped. Files that
// fail to load are left out and their errors joined into the returned
// error; the catalog is usable either way.
func LoadCatalog(dirs []string, providers ...vars.Provider) (Catalog, error) {
	builtins, err := Builtin(providers...)
	if err != nil {
		return Catalog{}, err
	}

	usedKeys := map[string]int{}
	defs := make([]Definition, 0, len(builtins))
	for _, def := range builtins {
		def.Key = ensureUniqueKey(def.Key, usedKeys)
		def.Pack.Manifest.ID = def.Key
		defs = append(defs, def)
	}
	builtinCount := len(defs)

	var combinedErr error
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		entries, err := filesvc.List(dir, true, isPackFile)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			combinedErr = errors.Join(
				combinedErr,
				fmt.Errorf("themes: read directory %q: %w", dir, err),
			)
			continue
		}
		for _, entry := range entries {
			path := entry.Path
			def, err := loadUserPack(path, providers...)
			if err != nil {
				combinedErr = errors.Join(combinedErr, fmt.Errorf("themes: load %q: %w", path, err))
				continue
			}
			def.Key = ensureUniqueKey(def.Key, usedKeys)
			def.Pack.Manifest.ID = def.Key
			if strings.TrimSpace(def.DisplayName) == "" {
				def.DisplayName = humaniseSlug(def.Key)
			}
			if def.Pack.Manifest.Name == "" {
				def.Pack.Manifest.Name = def.DisplayName
			}
			defs = append(defs, def)
		}
	}

	if err := resolveExtends(defs); err != nil {
		combinedErr = errors.Join(combinedErr, err)
	}

	catalog := assembleCatalog(defs, builtinCount)
	return catalog, combinedErr
}

func isPackFile(name string) bool {
	_, ok := FormatFor(name)
	return ok
}

func loadUserPack(path string, providers ...vars.Provider) (Definition, error) {
	decoded, format, err := LoadFile(path, providers...)
	if err != nil {
		return Definition{}, err
	}
	manifest := decoded.Pack.Manifest
	slug := slugify(manifest.ID)
	if slug == "" {
		slug = slugify(manifest.Name)
	}
	if slug == "" {
		baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		slug = slugify(baseName)
	}
	return Definition{
		Key:         slug,
		DisplayName: manifest.Name,
		Pack:        decoded.Pack,
		Source:      SourceUser,
		Format:      format,
		Path:        path,
		Unresolved:  decoded.Unresolved,
	}, nil
}

// resolveExtends fills the empty sections of every pack that names a
// parent through manifest.extends. Parents are resolved first, so chains
// inherit transitively.
func resolveExtends(defs []Definition) error {
	index := make(map[string]int, len(defs))
	for i, def := range defs {
		index[def.Key] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(defs))
	var errs error

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("themes: %q extends itself through a cycle", defs[i].Key)
		}
		state[i] = visiting
		defer func() { state[i] = done }()

		parentKey := strings.TrimSpace(defs[i].Pack.Manifest.Extends)
		if parentKey == "" {
			return nil
		}
		parent, ok := index[parentKey]
		if !ok {
			return fmt.Errorf("themes: %q extends unknown theme %q", defs[i].Key, parentKey)
		}
		if err := visit(parent); err != nil {
			return err
		}
		inherit(&defs[i].Pack, defs[parent].Pack)
		return nil
	}

	for i := range defs {
		if err := visit(i); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

func inherit(child *Pack, parent Pack) {
	parent = parent.Clone()
	if len(child.CardThemes) == 0 {
		child.CardThemes = parent.CardThemes
	}
	if len(child.Backgrounds) == 0 {
		child.Backgrounds = parent.Backgrounds
	}
	if child.ScreenBackgrounds == nil {
		child.ScreenBackgrounds = parent.ScreenBackgrounds
	}
	if child.TabBar == nil {
		child.TabBar = parent.TabBar
	}
	if len(child.ScreenThemes) == 0 {
		child.ScreenThemes = parent.ScreenThemes
	}
}

func assembleCatalog(defs []Definition, builtinCount int) Catalog {
	var catalog Catalog
	if builtinCount > len(defs) {
		builtinCount = len(defs)
	}
	for _, def := range defs[:builtinCount] {
		catalog.add(def)
	}
	custom := make([]Definition, len(defs)-builtinCount)
	copy(custom, defs[builtinCount:])
	sort.SliceStable(custom, func(i, j int) bool {
		left := strings.ToLower(custom[i].DisplayName)
		right := strings.ToLower(custom[j].DisplayName)
		if left == right {
			return custom[i].Key < custom[j].Key
		}
		return left < right
	})
	for _, def := range custom {
		catalog.add(def)
	}
	return catalog
}

func ensureUniqueKey(candidate string, used map[string]int) string {
	key := candidate
	if strings.TrimSpace(key) == "" {
		key = "theme"
	}
	base := key
	counter := used[base]
	if counter == 0 {
		used[base] = 1
		used[key] = 1
		return key
	}
	for {
		suffix := fmt.Sprintf("%s-%d", base, counter)
		if _, exists := used[suffix]; !exists {
			used[base] = counter + 1
			used[suffix] = 1
			return suffix
		}
		counter++
	}
}

func slugify(name string) string {
	var builder strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastDash = false
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if !lastDash {
				builder.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(builder.String(), "-")
}

func humaniseSlug(slug string) string {
	if slug == "" {
		return "Theme"
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

// Manifests returns the manifests of every pack in catalog order.
func (c Catalog) Manifests() []theme.Manifest {
	out := make([]theme.Manifest, len(c.order))
	for i, def := range c.order {
		out[i] = def.Pack.Manifest
	}
	return out
}
