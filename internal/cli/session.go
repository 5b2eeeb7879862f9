package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/walletthemes/internal/config"
	"github.com/unkn0wn-root/walletthemes/internal/logging"
	"github.com/unkn0wn-root/walletthemes/internal/pack"
	"github.com/unkn0wn-root/walletthemes/internal/preview"
	"github.com/unkn0wn-root/walletthemes/internal/registry"
	"github.com/unkn0wn-root/walletthemes/internal/util"
	"github.com/unkn0wn-root/walletthemes/internal/vars"
)

// session is the state every command works against: settings, the loaded
// catalog and a registry with the catalog installed.
type session struct {
	settings config.Settings
	handle   config.SettingsHandle
	catalog  pack.Catalog
	reg      *registry.Registry
	render   *preview.Renderer
	logger   zerolog.Logger
}

func initLogging(cmd *cobra.Command) error {
	settings, _, loadErr := config.LoadSettings()
	if loadErr != nil {
		settings = config.DefaultSettings()
	}
	level := firstNonEmpty(flagLogLevel, settings.Log.Level)
	format := firstNonEmpty(flagLogFormat, settings.Log.Format)
	if err := logging.Init(logging.Config{
		Level:   level,
		Format:  logging.Format(format),
		Output:  cmd.ErrOrStderr(),
		NoColor: noColor(settings),
	}); err != nil {
		return err
	}
	if loadErr != nil {
		logger := logging.Component("config")
		logger.Warn().Err(loadErr).Msg("using default settings")
	}
	return nil
}

func loadSession(cmd *cobra.Command) (*session, error) {
	logger := logging.Component("cli")

	settings, handle, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	varFiles := util.DedupeNonEmptyStrings(
		append(append([]string{}, settings.VarFiles...), flagVarFiles...),
	)
	providers, err := loadVarFiles(varFiles)
	if err != nil {
		return nil, err
	}

	dirs := util.DedupeNonEmptyStrings(
		append(append([]string{}, flagThemeDirs...), settings.SearchDirs()...),
	)
	catalog, err := pack.LoadCatalog(dirs, providers...)
	if err != nil {
		logger.Warn().Err(err).Msg("some theme packs could not be loaded")
	}
	for _, def := range catalog.All() {
		if len(def.Unresolved) > 0 {
			logger.Warn().
				Str("theme_id", def.Key).
				Strs("variables", def.Unresolved).
				Msg("unresolved variable references")
		}
	}

	reg := registry.New(registry.WithLogger(logging.Component("registry")))
	active := firstNonEmpty(flagTheme, settings.DefaultTheme)
	if err := pack.Install(reg, catalog, active); err != nil {
		if !errors.Is(err, pack.ErrUnknownPack) || flagTheme != "" {
			return nil, err
		}
		logger.Warn().Err(err).Str("theme_id", active).Msg("default theme not found")
	}

	return &session{
		settings: settings,
		handle:   handle,
		catalog:  catalog,
		reg:      reg,
		render:   preview.NewRenderer(cmd.OutOrStdout(), noColor(settings)),
		logger:   logger,
	}, nil
}

func loadVarFiles(paths []string) ([]vars.Provider, error) {
	providers := make([]vars.Provider, 0, len(paths))
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		values, err := vars.LoadDotEnv(path)
		if err != nil {
			return nil, fmt.Errorf("load var file %q: %w", path, err)
		}
		providers = append(providers, vars.NewMapProvider("vars", values))
	}
	return providers, nil
}

// noColor reports whether colored output is off via --no-color, settings
// or the NO_COLOR environment variable.
func noColor(settings config.Settings) bool {
	return flagNoColor || settings.NoColor || os.Getenv("NO_COLOR") != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
