package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
)

type mockCatalog struct {
	entity.Catalog
	Barcode  *string     `db:"barcode" json:"barcode"`
	Price    types.Money `db:"price" json:"price"`
	Internal string      `db:"-" json:"-"`
	NoTag    string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "code", "name", "barcode", "price",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}

	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Internal")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap(t *testing.T) {
	barcode := "7501001234567"
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseCatalog: entity.BaseCatalog{
				BaseEntity: entity.BaseEntity{
					ID:           id.New(),
					DeletionMark: true,
					Version:      5,
				},
			},
			Code: "PRD-001",
			Name: "Coca Cola 600ml",
		},
		Barcode:  &barcode,
		Price:    types.MustMoney("18.50"),
		Internal: "skipped",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "PRD-001", m["code"])
	assert.Equal(t, "Coca Cola 600ml", m["name"])
	assert.Equal(t, &barcode, m["barcode"])
	assert.NotContains(t, m, "-")
	assert.NotContains(t, m, "Internal")
}

func TestStructToMap_Pointer(t *testing.T) {
	cat := &mockCatalog{
		Catalog: entity.NewCatalog("X", "Pointer test"),
	}

	m := StructToMap(cat)

	assert.Equal(t, "X", m["code"])
	assert.Equal(t, "Pointer test", m["name"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("nope"))
}
