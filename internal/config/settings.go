package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/unkn0wn-root/walletthemes/internal/util"
)

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatJSON SettingsFormat = "json"
)

type LogSettings struct {
	Level  string `json:"level"  toml:"level"`
	Format string `json:"format" toml:"format"`
}

type Settings struct {
	DefaultTheme string          `json:"default_theme" toml:"default_theme"`
	ThemeDirs    []string        `json:"theme_dirs"    toml:"theme_dirs"`
	VarFiles     []string        `json:"var_files"     toml:"var_files"`
	NoColor      bool            `json:"no_color"      toml:"no_color"`
	Log          LogSettings     `json:"log"           toml:"log"`
	Preview      PreviewSettings `json:"preview"       toml:"preview"`
}

type SettingsFormat string
type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

func DefaultSettings() Settings {
	return Settings{
		Log:     LogSettings{Level: "warn", Format: "console"},
		Preview: DefaultPreviewSettings(),
	}
}

// SearchDirs returns configured theme directories followed by the default
// themes directory, without duplicates.
func (s Settings) SearchDirs() []string {
	return util.DedupeNonEmptyStrings(append(append([]string{}, s.ThemeDirs...), ThemesDir()))
}

// LoadSettings tries settings.toml, then settings.json. A missing file
// falls through to the next candidate; a parse error stops the search.
func LoadSettings() (Settings, SettingsHandle, error) {
	dir := Dir()
	candidates := []SettingsHandle{
		{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
		{Path: filepath.Join(dir, "settings.json"), Format: SettingsFormatJSON},
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read settings %q: %w", candidate.Path, err),
			)
			continue
		}

		settings, err := decodeSettings(data, candidate.Format)
		if err != nil {
			return DefaultSettings(), SettingsHandle{}, fmt.Errorf(
				"parse settings %q: %w",
				candidate.Path,
				err,
			)
		}
		return normalise(settings), candidate, nil
	}

	if accumulated != nil {
		return DefaultSettings(), SettingsHandle{}, accumulated
	}
	return DefaultSettings(), candidates[0], nil
}

func normalise(s Settings) Settings {
	s.Preview = NormalisePreviewSettings(s.Preview)
	if strings.TrimSpace(s.Log.Level) == "" {
		s.Log.Level = "warn"
	}
	if strings.TrimSpace(s.Log.Format) == "" {
		s.Log.Format = "console"
	}
	return s
}

func decodeSettings(data []byte, format SettingsFormat) (Settings, error) {
	settings := DefaultSettings()
	switch format {
	case SettingsFormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}

func SaveSettings(settings Settings, handle SettingsHandle) error {
	settings = normalise(settings)
	path := handle.Path
	format := handle.Format
	if path == "" {
		path = filepath.Join(Dir(), "settings.toml")
	}
	if format == "" {
		format = SettingsFormatTOML
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure settings directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case SettingsFormatTOML:
		data, err = toml.Marshal(settings)
	case SettingsFormatJSON:
		data, err = json.MarshalIndent(settings, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return fmt.Errorf("unsupported settings format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %q: %w", path, err)
	}
	return nil
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".walletthemes-settings-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
