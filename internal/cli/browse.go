package cli

import (
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/walletthemes/internal/browser"
	"github.com/unkn0wn-root/walletthemes/internal/pack"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse card themes interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		switcher := func(id string) error {
			return pack.Activate(s.reg, s.catalog, id)
		}
		return browser.Run(
			s.reg,
			s.render,
			browser.WithSwitcher(switcher),
			browser.WithCardWidth(s.settings.Preview.CardWidth),
		)
	},
}
