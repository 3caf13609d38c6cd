package history

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const historyCSV = `product_name,description,unit_price,quantity,unit,date,supplier,currency,spec.grade
Steel bolt M8,zinc plated,1.25,500,pcs,2024-01-15,sup-1,USD,8.8
"Cement, 50kg",,"1,250.50",10,bag,02/20/2024,sup-2,EGP,

Copper wire,,,,m,,,,
`

func TestImportCSV(t *testing.T) {
	records, err := ImportCSV(context.Background(), strings.NewReader(historyCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	bolt := records[0]
	assert.Equal(t, "Steel bolt M8", bolt.ProductName)
	assert.Equal(t, "zinc plated", bolt.Description)
	assert.Equal(t, 1.25, bolt.UnitPrice)
	assert.Equal(t, 500.0, bolt.Quantity)
	assert.Equal(t, "pcs", bolt.Unit)
	assert.Equal(t, "sup-1", bolt.SupplierID)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), bolt.Date)
	assert.Equal(t, map[string]string{"grade": "8.8"}, bolt.Specifications)

	cement := records[1]
	assert.Equal(t, "Cement, 50kg", cement.ProductName)
	assert.Equal(t, 1250.50, cement.UnitPrice)
	assert.Equal(t, time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC), cement.Date)
	assert.Nil(t, cement.Specifications)

	wire := records[2]
	assert.False(t, wire.HasDate())
	assert.Equal(t, 0.0, wire.EffectivePrice())
}

func TestImportCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"missing product column", "sku,price\nA,1\n", "missing product name column"},
		{"missing price column", "product,qty\nA,1\n", "missing price column"},
		{"bad number", "product,price\nA,abc\n", "row 2: price"},
		{"bad date", "product,price,date\nA,1,yesterday\n", "unrecognized date"},
		{"empty product", "product,price\n,1\n", "row 2: empty product name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportCSV(context.Background(), strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestImportCSV_Empty(t *testing.T) {
	records, err := ImportCSV(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestImportJSON(t *testing.T) {
	input := `[
		{"id": "q-1", "product_name": "Office chair", "price": 120, "quantity": 4, "date": "2024-03-01T10:00:00Z",
		 "specifications": {"color": "black"}},
		{"product_name": "Desk", "unit_price": 300}
	]`

	records, err := ImportJSON(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "q-1", records[0].ID)
	assert.Equal(t, 120.0, records[0].EffectivePrice())
	assert.Equal(t, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, "black", records[0].Specifications["color"])
	assert.False(t, records[1].HasDate())

	t.Run("invalid", func(t *testing.T) {
		_, err := ImportJSON(context.Background(), strings.NewReader(`{"product_name": "x"}`))
		assert.Error(t, err)

		_, err = ImportJSON(context.Background(), strings.NewReader(`[{"price": 1}]`))
		assert.Error(t, err)
	})
}

func TestImportXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Product", "Unit Price", "Qty", "Date"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Laptop", 950.5, 3, "2024-05-10"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Monitor", 210, 6, "2024-05-12"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	records, err := ImportXLSX(context.Background(), buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Laptop", records[0].ProductName)
	assert.Equal(t, 950.5, records[0].UnitPrice)
	assert.Equal(t, 3.0, records[0].Quantity)
	assert.Equal(t, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, 210.0, records[1].UnitPrice)
}

func TestImportXLSX_NotAWorkbook(t *testing.T) {
	_, err := ImportXLSX(context.Background(), strings.NewReader("not a zip"))
	assert.Error(t, err)
}
