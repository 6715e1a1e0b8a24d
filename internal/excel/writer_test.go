package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "ebay_bulk_rosie.xlsx", Filename("rosie"))
}

func TestWriteRoundTrip(t *testing.T) {
	table := [][]string{
		{"Header A", "Header B"},
		{"value 1", ""},
		{"", "value 2"},
	}

	blob, err := Write(table)
	require.NoError(t, err)
	require.NotEmpty(t, blob)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Header A", rows[0][0])
	assert.Equal(t, "value 2", rows[2][1])
}

func TestWriteColumnWidthCapped(t *testing.T) {
	long := strings.Repeat("x", 200)
	blob, err := Write([][]string{{"short", long}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer f.Close()

	wShort, err := f.GetColWidth(SheetName, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(len("short")+widthPadding), wShort)

	wLong, err := f.GetColWidth(SheetName, "B")
	require.NoError(t, err)
	assert.Equal(t, float64(maxColWidth), wLong)
}
