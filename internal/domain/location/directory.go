package location

import (
	"context"
	"strings"

	"fulfilment/internal/core/apperror"
)

// Compile-time check that Directory implements Resolver.
var _ Resolver = (*Directory)(nil)

// Directory is the in-memory Resolver backed by a fixed table of known
// locations. Reference data is injected at construction, never mutated.
type Directory struct {
	locations map[string]Location
}

// NewDirectory creates a Directory with the default location table.
func NewDirectory() *Directory {
	return NewDirectoryWithLocations(defaultLocations())
}

// NewDirectoryWithLocations creates a Directory over the given locations.
// Used by tests to inject a custom table.
func NewDirectoryWithLocations(locations []Location) *Directory {
	m := make(map[string]Location, len(locations))
	for _, loc := range locations {
		m[loc.Identification] = loc
	}
	return &Directory{locations: m}
}

// ResolveByIdentifier implements Resolver.
func (d *Directory) ResolveByIdentifier(ctx context.Context, identifier string) (Location, error) {
	if strings.TrimSpace(identifier) == "" {
		return Location{}, apperror.NewInvalidInput("identifier cannot be null or blank")
	}

	loc, ok := d.locations[identifier]
	if !ok {
		return Location{}, apperror.NewNotFound("location", identifier)
	}
	return loc, nil
}

// defaultLocations is the fixed table of sites known to the retail operation.
func defaultLocations() []Location {
	return []Location{
		{Identification: "ZWOLLE-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
		{Identification: "ZWOLLE-002", MaxNumberOfWarehouses: 2, MaxCapacity: 50},
		{Identification: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
		{Identification: "AMSTERDAM-002", MaxNumberOfWarehouses: 3, MaxCapacity: 75},
		{Identification: "TILBURG-001", MaxNumberOfWarehouses: 1, MaxCapacity: 30},
		{Identification: "HELMOND-001", MaxNumberOfWarehouses: 1, MaxCapacity: 45},
		{Identification: "EINDHOVEN-001", MaxNumberOfWarehouses: 2, MaxCapacity: 70},
	}
}
