package cmd

import (
	"health-advisor/internal/catalog"
)

// loadCatalog reads the catalog at path, or the embedded one when path is
// empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
