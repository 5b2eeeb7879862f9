package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/walletthemes/internal/present"
	"github.com/unkn0wn-root/walletthemes/internal/util"
)

func init() {
	rootCmd.AddCommand(screensCmd)
}

type screenRow struct {
	Screen     string `json:"screen"`
	Background string `json:"background"`
	Header     string `json:"header,omitempty"`
	StatusBar  string `json:"status_bar,omitempty"`
}

var screensCmd = &cobra.Command{
	Use:   "screens [screen-id...]",
	Short: "Show which background and overrides each screen resolves to",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		accessor, err := present.New(s.reg)
		if err != nil {
			return err
		}

		screens := args
		if len(screens) == 0 {
			screens = knownScreens(s)
		}

		rows := make([]screenRow, 0, len(screens))
		for _, id := range screens {
			row := screenRow{Screen: id, Background: accessor.Background(id).ID}
			st, ok, err := accessor.ScreenTheme(id)
			if err != nil {
				return err
			}
			if ok {
				row.Header = st.Header.Background
				row.StatusBar = st.StatusBar
			}
			rows = append(rows, row)
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return writeJSON(out, rows)
		}
		tw := newTable(out)
		fmt.Fprintln(tw, "SCREEN\tBACKGROUND\tHEADER\tSTATUS BAR")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Screen, row.Background, row.Header, row.StatusBar)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if rt := s.reg.Active(); rt != nil && len(rt.ScreenThemes) > 0 {
			fmt.Fprintln(out)
			for _, id := range util.SortedKeys(rt.ScreenThemes) {
				fmt.Fprintln(out, s.render.ScreenTheme(id, rt.ScreenThemes[id]))
			}
		}
		return nil
	},
}

// knownScreens lists every screen named by the background mapping or a
// screen override of the active theme.
func knownScreens(s *session) []string {
	set := map[string]struct{}{}
	for id := range s.reg.Backgrounds().ScreenMapping() {
		set[id] = struct{}{}
	}
	if rt := s.reg.Active(); rt != nil {
		for id := range rt.ScreenThemes {
			set[id] = struct{}{}
		}
	}
	return util.SortedKeys(set)
}
