package location

import "context"

// Resolver resolves a location identifier to its limits.
//
// Implementations must return apperror.CodeNotFound for unknown
// identifiers and apperror.CodeInvalidInput for blank ones.
type Resolver interface {
	ResolveByIdentifier(ctx context.Context, identifier string) (Location, error)
}
