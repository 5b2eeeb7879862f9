package cli

import (
	"bytes"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/alecthomas/chroma/quick"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/walletthemes/internal/config"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(activateCmd)
}

type themeRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  string `json:"source"`
	Path    string `json:"path,omitempty"`
	Extends string `json:"extends,omitempty"`
	Active  bool   `json:"active"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		rows := make([]themeRow, 0, s.catalog.Len())
		for _, info := range s.reg.List() {
			def, _ := s.catalog.Get(info.ID)
			rows = append(rows, themeRow{
				ID:      info.ID,
				Name:    info.Name,
				Version: info.Version,
				Source:  string(def.Source),
				Path:    def.Path,
				Extends: def.Pack.Manifest.Extends,
				Active:  info.ID == s.reg.ActiveID(),
			})
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return writeJSON(out, rows)
		}
		tw := newTable(out)
		fmt.Fprintln(tw, "\tID\tNAME\tVERSION\tSOURCE\tEXTENDS")
		for _, row := range rows {
			marker := ""
			if row.Active {
				marker = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				marker, row.ID, row.Name, row.Version, row.Source, row.Extends)
		}
		return tw.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <theme-id>",
	Short: "Print a theme pack after variable substitution",
	Long: heredoc.Doc(`
		Print the resolved content of a theme pack as YAML. Inherited
		sections from an extended pack are included.
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		def, ok := s.catalog.Get(args[0])
		if !ok {
			return fmt.Errorf("theme %q not found", args[0])
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return writeJSON(out, def.Pack)
		}

		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(def.Pack); err != nil {
			return fmt.Errorf("encode theme: %w", err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
		if s.render.NoColor() {
			_, err := out.Write(buf.Bytes())
			return err
		}
		return quick.Highlight(out, buf.String(), "yaml", "terminal256", "monokai")
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate <theme-id>",
	Short: "Make a theme the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		id := args[0]
		if _, ok := s.catalog.Get(id); !ok {
			return fmt.Errorf("theme %q not found", id)
		}

		s.settings.DefaultTheme = id
		if err := config.SaveSettings(s.settings, s.handle); err != nil {
			return err
		}
		s.logger.Info().Str("theme_id", id).Str("path", s.handle.Path).Msg("default theme saved")
		fmt.Fprintf(cmd.OutOrStdout(), "default theme set to %s\n", id)
		return nil
	},
}
