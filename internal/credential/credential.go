// Package credential turns credential exchange records into the fields
// card themes match against.
package credential

import (
	"strings"

	"github.com/unkn0wn-root/walletthemes/internal/theme"
)

// Record is the subset of an exchange record the theme layer reads.
type Record struct {
	CredentialDefinitionID string
	SchemaID               string
	SchemaName             string
	IssuerName             string
	ConnectionID           string
}

type ConnectionLookup interface {
	Label(connectionID string) (string, bool)
}

type ConnectionLabels map[string]string

func (c ConnectionLabels) Label(connectionID string) (string, bool) {
	label, ok := c[connectionID]
	return label, ok
}

// MatchInfo extracts match fields from rec. The schema name falls back to
// the name segment of an Indy schema id; the connection label comes from
// conns, which may be nil.
func MatchInfo(rec Record, conns ConnectionLookup) theme.CredentialMatchInfo {
	info := theme.CredentialMatchInfo{
		CredDefID:  strings.TrimSpace(rec.CredentialDefinitionID),
		IssuerName: strings.TrimSpace(rec.IssuerName),
		SchemaName: strings.TrimSpace(rec.SchemaName),
	}
	if info.SchemaName == "" {
		if name, _, ok := ParseSchemaID(rec.SchemaID); ok {
			info.SchemaName = name
		}
	}
	if conns != nil && rec.ConnectionID != "" {
		if label, ok := conns.Label(rec.ConnectionID); ok {
			info.ConnectionLabel = strings.TrimSpace(label)
		}
	}
	return info
}

// ParseSchemaID splits a legacy Indy schema id "<did>:2:<name>:<version>".
func ParseSchemaID(id string) (name, version string, ok bool) {
	parts := strings.Split(strings.TrimSpace(id), ":")
	if len(parts) != 4 || parts[1] != "2" {
		return "", "", false
	}
	if parts[0] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[2], parts[3], true
}
