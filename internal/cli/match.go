package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/walletthemes/internal/credential"
	"github.com/unkn0wn-root/walletthemes/internal/present"
	"github.com/unkn0wn-root/walletthemes/internal/theme"
	"github.com/unkn0wn-root/walletthemes/internal/vars"
)

var (
	matchCredDefID    string
	matchIssuer       string
	matchSchema       string
	matchSchemaID     string
	matchConnectionID string
	matchConnections  string
	matchLabel        string
	matchWidth        int
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchCredDefID, "cred-def-id", "", "credential definition id")
	matchCmd.Flags().StringVar(&matchIssuer, "issuer", "", "issuer name")
	matchCmd.Flags().StringVar(&matchSchema, "schema", "", "schema name")
	matchCmd.Flags().StringVar(&matchSchemaID, "schema-id", "", "schema id (<did>:2:<name>:<version>), used when --schema is empty")
	matchCmd.Flags().StringVar(&matchConnectionID, "connection-id", "", "connection id looked up in --connections")
	matchCmd.Flags().StringVar(&matchConnections, "connections", "", "dotenv file mapping connection ids to labels")
	matchCmd.Flags().StringVar(&matchLabel, "label", "", "connection label (overrides --connections)")
	matchCmd.Flags().IntVar(&matchWidth, "width", 0, "card width (default: settings preview.card_width)")
}

type matchResult struct {
	Info  theme.CredentialMatchInfo `json:"info"`
	Theme theme.CardTheme           `json:"theme"`
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Show which card theme a credential resolves to",
	Long: heredoc.Doc(`
		Resolve the card theme for a credential. Card themes are tried in
		registration order and the first one with a matching pattern wins.
		When nothing matches the fallback card theme is used.
	`),
	Example: heredoc.Doc(`
		walletthemes match --issuer "State University" --schema student_card
		walletthemes match --schema-id "Th7MpTaRZVRYnPiabds81Y:2:Person:1.0"
	`),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		var conns credential.ConnectionLookup
		if matchConnections != "" {
			labels, err := vars.LoadDotEnv(matchConnections)
			if err != nil {
				return fmt.Errorf("load connections: %w", err)
			}
			conns = credential.ConnectionLabels(labels)
		}
		info := credential.MatchInfo(credential.Record{
			CredentialDefinitionID: matchCredDefID,
			SchemaID:               matchSchemaID,
			SchemaName:             matchSchema,
			IssuerName:             matchIssuer,
			ConnectionID:           matchConnectionID,
		}, conns)
		if matchLabel != "" {
			info.ConnectionLabel = matchLabel
		}

		accessor, err := present.New(s.reg)
		if err != nil {
			return err
		}
		ct := accessor.CardTheme(info)
		s.logger.Debug().Str("card_theme", ct.ID).Bool("fallback", ct.IsFallback()).Msg("card theme resolved")

		out := cmd.OutOrStdout()
		if flagJSON {
			return writeJSON(out, matchResult{Info: info, Theme: ct})
		}

		width := matchWidth
		if width == 0 {
			width = s.settings.Preview.CardWidth
		}
		title := firstNonEmpty(info.SchemaName, info.IssuerName, ct.DisplayName)
		fmt.Fprintln(out, s.render.Card(ct, title, width))
		fmt.Fprintf(out, "card theme: %s\n", ct.ID)
		return nil
	},
}
