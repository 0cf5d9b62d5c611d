// Package messagecatalog loads the built-in client message texts.
package messagecatalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/portalkit/portalkit/internal/domain/message"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// LoadDefaults parses the embedded defaults. Every code must carry the
// prefix of the section it is listed under.
func LoadDefaults() (message.Catalog, error) {
	return Parse(defaultsYAML)
}

func Parse(data []byte) (message.Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse message defaults: %w", err)
	}

	catalog := message.NewCatalog()
	for section, codes := range raw {
		kind, ok := message.ParseKind(section)
		if !ok {
			return nil, fmt.Errorf("unknown message section %q", section)
		}
		for code, text := range codes {
			if inferred, ok := message.KindForCode(code); !ok || inferred != kind {
				return nil, fmt.Errorf("code %s does not belong in section %s", code, section)
			}
			catalog.Set(message.Entry{Kind: kind, Code: code, Text: text})
		}
	}
	return catalog, nil
}
