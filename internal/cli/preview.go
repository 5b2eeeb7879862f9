package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/walletthemes/internal/config"
	"github.com/unkn0wn-root/walletthemes/internal/present"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the card themes, backgrounds and tab bar of the active theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		accessor, err := present.New(s.reg)
		if err != nil {
			return err
		}
		rt, err := accessor.Theme()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return writeJSON(out, rt)
		}

		fmt.Fprintf(out, "%s %s\n\n", rt.Name, rt.Manifest.Version)
		s.previewCards(out)
		fmt.Fprintln(out, "\nBackgrounds")
		for _, bg := range s.reg.Backgrounds().List() {
			fmt.Fprintln(out, "  "+s.render.Background(bg))
		}
		fmt.Fprintln(out, "\nTab bar")
		tabBar := accessor.TabBar()
		active := ""
		if len(tabBar.Tabs) > 0 {
			active = tabBar.Tabs[0].ID
		}
		fmt.Fprintln(out, s.render.TabBar(tabBar, active))
		return nil
	},
}

func (s *session) previewCards(out io.Writer) {
	prefs := s.settings.Preview
	cards := s.reg.Cards().List()
	if _, ok := s.reg.Cards().Get(s.reg.Cards().Default().ID); !ok {
		cards = append(cards, s.reg.Cards().Default())
	}

	blocks := make([]string, 0, len(cards))
	for _, ct := range cards {
		block := s.render.Card(ct, ct.DisplayName, prefs.CardWidth)
		if prefs.ShowPalette {
			block = lipgloss.JoinVertical(lipgloss.Left, block, s.render.Palette(ct))
		}
		blocks = append(blocks, block)
	}

	if prefs.Layout == config.PreviewLayoutGrid {
		for i := 0; i < len(blocks); i += 2 {
			row := blocks[i:min(i+2, len(blocks))]
			fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, spaced(row)...))
		}
		return
	}
	for _, block := range blocks {
		fmt.Fprintln(out, block)
	}
}

func spaced(blocks []string) []string {
	out := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, b)
	}
	return out
}
