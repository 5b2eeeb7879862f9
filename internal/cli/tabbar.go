package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tabBarActiveTab string

func init() {
	rootCmd.AddCommand(tabBarCmd)
	tabBarCmd.Flags().StringVar(&tabBarActiveTab, "active", "", "tab id to highlight (default: first tab)")
}

type tabBarResult struct {
	Variant  string   `json:"variant"`
	Variants []string `json:"variants"`
	Known    bool     `json:"known"`
}

var tabBarCmd = &cobra.Command{
	Use:   "tabbar [variant]",
	Short: "Show tab bar variants and render the selected one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}
		tb := s.reg.TabBar()

		known := true
		if len(args) == 1 {
			_, known = tb.VariantStyle(args[0])
			tb.SetVariant(args[0])
			if !known {
				s.logger.Warn().Str("variant", args[0]).Msg("unknown tab bar variant, style unchanged")
			}
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return writeJSON(out, tabBarResult{
				Variant:  tb.Variant(),
				Variants: tb.Variants(),
				Known:    known,
			})
		}

		for _, name := range tb.Variants() {
			marker := " "
			if name == tb.Variant() {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, name)
		}
		fmt.Fprintln(out)

		cfg := tb.Config()
		active := tabBarActiveTab
		if active == "" && len(cfg.Tabs) > 0 {
			active = cfg.Tabs[0].ID
		}
		fmt.Fprintln(out, s.render.TabBar(cfg, active))
		style := tb.ActiveStyle()
		fmt.Fprintf(out, "background %s  height %d\n", s.render.Swatch(style.Background), style.Height)
		return nil
	},
}
