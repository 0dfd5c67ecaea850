package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fulfilment/internal/core/id"
	"fulfilment/internal/domain/warehouse"
)

func TestExtractDBColumns_Warehouse(t *testing.T) {
	cols := ExtractDBColumns[warehouse.Warehouse]()

	expectedCols := []string{
		"id", "business_unit_code", "location", "capacity", "stock",
		"status", "created_at", "archived_at",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap_Warehouse(t *testing.T) {
	stock := 12
	now := time.Now().UTC()
	w := warehouse.Warehouse{
		ID:               id.New(),
		BusinessUnitCode: "MWH.001",
		Location:         "ZWOLLE-001",
		Capacity:         40,
		Stock:            &stock,
		Status:           warehouse.StatusActive,
		CreatedAt:        now,
	}

	m := StructToMap(w)

	assert.Equal(t, w.ID, m["id"])
	assert.Equal(t, "MWH.001", m["business_unit_code"])
	assert.Equal(t, "ZWOLLE-001", m["location"])
	assert.Equal(t, 40, m["capacity"])
	assert.Equal(t, &stock, m["stock"])
	assert.Equal(t, warehouse.StatusActive, m["status"])
	assert.Equal(t, now, m["created_at"])
	assert.Nil(t, m["archived_at"])
}

func TestStructToMap_PointerInput(t *testing.T) {
	w := &warehouse.Warehouse{
		ID:               id.New(),
		BusinessUnitCode: "MWH.002",
		Location:         "TILBURG-001",
		Capacity:         30,
	}

	m := StructToMap(w)

	assert.Equal(t, "MWH.002", m["business_unit_code"])
	assert.Equal(t, 30, m["capacity"])
}
