// Package location provides the read-only directory of physical sites
// where warehouses may be created. Locations bound how many warehouses,
// and how much total capacity, a site may hold.
package location

// Location is a fixed reference-data entity. It is never created or
// mutated by this service.
type Location struct {
	// Identification is the unique location identifier (e.g. "AMSTERDAM-001")
	Identification string `json:"identification"`

	// MaxNumberOfWarehouses bounds the count of active warehouses at this site
	MaxNumberOfWarehouses int `json:"maxNumberOfWarehouses"`

	// MaxCapacity bounds the summed capacity of active warehouses at this site
	MaxCapacity int `json:"maxCapacity"`
}
