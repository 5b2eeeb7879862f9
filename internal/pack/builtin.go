package pack

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
	"github.com/unkn0wn-root/walletthemes/internal/vars"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the packs bundled with the binary. The default pack comes
// first; the rest follow in file name order.
func Builtin(providers ...vars.Provider) ([]Definition, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}

	defs := make([]Definition, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := path.Join("builtin", entry.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read builtin theme %s: %w", entry.Name(), err)
		}
		decoded, err := Decode(data, FormatYAML, providers...)
		if err != nil {
			return nil, fmt.Errorf("parse builtin theme %s: %w", entry.Name(), err)
		}
		key := slugify(decoded.Pack.Manifest.ID)
		defs = append(defs, Definition{
			Key:         key,
			DisplayName: decoded.Pack.Manifest.Name,
			Pack:        decoded.Pack,
			Source:      SourceBuiltin,
			Format:      FormatYAML,
			Path:        name,
			Unresolved:  decoded.Unresolved,
		})
	}

	sort.SliceStable(defs, func(i, j int) bool {
		if (defs[i].Key == theme.DefaultID) != (defs[j].Key == theme.DefaultID) {
			return defs[i].Key == theme.DefaultID
		}
		return defs[i].Path < defs[j].Path
	})
	return defs, nil
}
