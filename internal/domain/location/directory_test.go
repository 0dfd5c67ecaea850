package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfilment/internal/core/apperror"
)

func TestDirectory_ResolveByIdentifier(t *testing.T) {
	d := NewDirectory()
	ctx := context.Background()

	loc, err := d.ResolveByIdentifier(ctx, "AMSTERDAM-001")
	require.NoError(t, err)
	assert.Equal(t, "AMSTERDAM-001", loc.Identification)
	assert.Equal(t, 5, loc.MaxNumberOfWarehouses)
	assert.Equal(t, 100, loc.MaxCapacity)

	loc, err = d.ResolveByIdentifier(ctx, "ZWOLLE-001")
	require.NoError(t, err)
	assert.Equal(t, 1, loc.MaxNumberOfWarehouses)
	assert.Equal(t, 40, loc.MaxCapacity)
}

func TestDirectory_ResolveByIdentifier_Unknown(t *testing.T) {
	d := NewDirectory()

	_, err := d.ResolveByIdentifier(context.Background(), "UTRECHT-001")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDirectory_ResolveByIdentifier_Blank(t *testing.T) {
	d := NewDirectory()
	ctx := context.Background()

	for _, identifier := range []string{"", "   ", "\t"} {
		_, err := d.ResolveByIdentifier(ctx, identifier)
		require.Error(t, err)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "identifier cannot be null or blank", appErr.Message)
	}
}

func TestDirectory_CustomLocations(t *testing.T) {
	d := NewDirectoryWithLocations([]Location{
		{Identification: "TEST-001", MaxNumberOfWarehouses: 2, MaxCapacity: 10},
	})

	loc, err := d.ResolveByIdentifier(context.Background(), "TEST-001")
	require.NoError(t, err)
	assert.Equal(t, 2, loc.MaxNumberOfWarehouses)

	_, err = d.ResolveByIdentifier(context.Background(), "ZWOLLE-001")
	assert.True(t, apperror.IsNotFound(err))
}
