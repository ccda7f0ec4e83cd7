package store

import "go.ngs.io/sky-api/internal/domain"

// SiteLoader is the interface for loading an observatory site catalogue
type SiteLoader interface {
	// LoadSites returns every site in the catalogue, in file order
	LoadSites() ([]domain.Site, error)
}
