package commands

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed all:templates
var templateFS embed.FS

// exampleInfo describes one embedded example manifest.
type exampleInfo struct {
	Name        string
	Description string
	Highlights  string
}

// exampleCatalog lists the embedded examples in teaching order.
var exampleCatalog = []exampleInfo{
	{
		Name:        "minimal",
		Description: "Smallest valid manifest: one frame, one primary hook",
		Highlights:  "frame, primary hook, relation source",
	},
	{
		Name:        "file_based",
		Description: "Frame reading from a file path instead of a relation",
		Highlights:  "path source",
	},
	{
		Name:        "typical",
		Description: "Customer and order frames with a foreign key hook",
		Highlights:  "foreign hooks, concepts section, metadata",
	},
	{
		Name:        "complex",
		Description: "Multi-source model with qualifiers, tenants, and a weak hook",
		Highlights:  "qualifiers, tenants, weak hooks",
	},
}

// exampleContent reads an embedded example manifest.
func exampleContent(name string) ([]byte, error) {
	data, err := templateFS.ReadFile("templates/examples/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown example %q (available: %s)", name, strings.Join(exampleNames(), ", "))
	}
	return data, nil
}

// exampleNames returns all catalog names sorted alphabetically.
func exampleNames() []string {
	names := make([]string, len(exampleCatalog))
	for i, e := range exampleCatalog {
		names[i] = e.Name
	}
	sort.Strings(names)
	return names
}
