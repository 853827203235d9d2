package wirecast

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// allowListDoc is the on-disk shape of an allow-list document:
//
//	allow:
//	  - premium_since
//	  - hoisted_role
type allowListDoc struct {
	Allow []string `yaml:"allow"`
}

// AllowFromYAML reads an allow-list document and registers every listed key,
// returning how many keys were registered. The document format is a single
// `allow` sequence of key strings.
func AllowFromYAML(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("wirecast: reading allow-list: %w", err)
	}
	var doc allowListDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("wirecast: parsing allow-list: %w", err)
	}
	Allow(doc.Allow...)
	return len(doc.Allow), nil
}
