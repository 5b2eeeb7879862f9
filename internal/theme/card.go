package theme

type PatternType string

const (
	PatternCredDefID       PatternType = "credDefId"
	PatternIssuerName      PatternType = "issuerName"
	PatternSchemaName      PatternType = "schemaName"
	PatternConnectionLabel PatternType = "connectionLabel"
)

func (t PatternType) Valid() bool {
	switch t {
	case PatternCredDefID, PatternIssuerName, PatternSchemaName, PatternConnectionLabel:
		return true
	}
	return false
}

type Pattern struct {
	Type  PatternType `json:"type"  yaml:"type"  toml:"type"`
	Regex string      `json:"regex" yaml:"regex" toml:"regex"`
}

// Matcher is either a fallback marker or an ordered pattern list. A
// fallback matcher never takes part in pattern evaluation.
type Matcher struct {
	Fallback bool      `json:"fallback,omitempty" yaml:"fallback,omitempty" toml:"fallback,omitempty"`
	Patterns []Pattern `json:"patterns,omitempty" yaml:"patterns,omitempty" toml:"patterns,omitempty"`
}

type CardColors struct {
	Primary   string `json:"primary"   yaml:"primary"   toml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary" toml:"secondary"`
	Text      string `json:"text"      yaml:"text"      toml:"text"`
	Accent    string `json:"accent"    yaml:"accent"    toml:"accent"`
}

type CardTypography struct {
	Font      string `json:"font,omitempty"       yaml:"font,omitempty"       toml:"font,omitempty"`
	TitleSize int    `json:"title_size,omitempty" yaml:"title_size,omitempty" toml:"title_size,omitempty"`
	Weight    string `json:"weight,omitempty"     yaml:"weight,omitempty"     toml:"weight,omitempty"`
}

type CardLayout struct {
	Variant      string `json:"variant,omitempty"       yaml:"variant,omitempty"       toml:"variant,omitempty"`
	BorderRadius int    `json:"border_radius,omitempty" yaml:"border_radius,omitempty" toml:"border_radius,omitempty"`
	ShowLogo     bool   `json:"show_logo,omitempty"     yaml:"show_logo,omitempty"     toml:"show_logo,omitempty"`
	LogoURI      string `json:"logo_uri,omitempty"      yaml:"logo_uri,omitempty"      toml:"logo_uri,omitempty"`
}

type CardStyle struct {
	Colors     CardColors     `json:"colors"     yaml:"colors"     toml:"colors"`
	Typography CardTypography `json:"typography" yaml:"typography" toml:"typography"`
	Layout     CardLayout     `json:"layout"     yaml:"layout"     toml:"layout"`
}

type CardTheme struct {
	ID          string    `json:"id"           yaml:"id"           toml:"id"`
	DisplayName string    `json:"display_name" yaml:"display_name" toml:"display_name"`
	Style       CardStyle `json:"style"        yaml:"style"        toml:"style"`
	Matcher     Matcher   `json:"matcher"      yaml:"matcher"      toml:"matcher"`
}

func (c CardTheme) IsFallback() bool {
	return c.Matcher.Fallback
}

func (c CardTheme) Clone() CardTheme {
	out := c
	if c.Matcher.Patterns != nil {
		out.Matcher.Patterns = append([]Pattern(nil), c.Matcher.Patterns...)
	}
	return out
}

// CredentialMatchInfo carries the credential fields card themes match
// against. An empty field is treated as absent.
type CredentialMatchInfo struct {
	CredDefID       string `json:"cred_def_id,omitempty"      yaml:"cred_def_id,omitempty"`
	IssuerName      string `json:"issuer_name,omitempty"      yaml:"issuer_name,omitempty"`
	SchemaName      string `json:"schema_name,omitempty"      yaml:"schema_name,omitempty"`
	ConnectionLabel string `json:"connection_label,omitempty" yaml:"connection_label,omitempty"`
}

func (c CredentialMatchInfo) Field(t PatternType) (string, bool) {
	var value string
	switch t {
	case PatternCredDefID:
		value = c.CredDefID
	case PatternIssuerName:
		value = c.IssuerName
	case PatternSchemaName:
		value = c.SchemaName
	case PatternConnectionLabel:
		value = c.ConnectionLabel
	default:
		return "", false
	}
	return value, value != ""
}
