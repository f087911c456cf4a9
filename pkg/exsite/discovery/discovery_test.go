package discovery

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exsite-go/pkg/exsite/models"
)

func row(values ...interface{}) []models.Cell {
	cells := make([]models.Cell, len(values))
	for i, v := range values {
		cells[i] = models.Cell{Value: v}
	}
	return cells
}

func sitesWorkbook() *models.Workbook {
	rows := make([][]models.Cell, 5)
	rows = append(rows, row("SITE001", "123 Main St", "Springfield"))
	return &models.Workbook{
		BookName: "sites.xlsx",
		Sheets:   []models.Sheet{models.NewSheet("Sites", rows)},
	}
}

func TestDiscoverEndToEndRow(t *testing.T) {
	rec, err := Discover(sitesWorkbook(), "SITE001", DefaultOptions())
	require.NoError(t, err)

	want := map[models.Field]string{
		models.FieldSiteID:   "SITE001",
		models.FieldAddress:  "123 Main St",
		models.FieldLocation: "Springfield",
	}
	if diff := cmp.Diff(want, rec.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Sites", rec.Sheet)
	assert.Equal(t, 5, rec.Row)
	assert.Equal(t, 0, rec.Col)
}

func TestDiscoverIsIdempotent(t *testing.T) {
	wb := sitesWorkbook()
	first, err := Discover(wb, "SITE001", DefaultOptions())
	require.NoError(t, err)
	second, err := Discover(wb, "SITE001", DefaultOptions())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second discovery differs (-first +second):\n%s", diff)
	}
}

func TestDiscoverSkipsExcludedSheets(t *testing.T) {
	tests := []string{"Template", "Site TEMPLATE 2024", "Variables", "config"}

	for _, name := range tests {
		wb := &models.Workbook{Sheets: []models.Sheet{
			models.NewSheet(name, [][]models.Cell{
				row("SITE001", "123 Main St", "Springfield"),
				row("SITE002", "9 Side Rd", "Shelbyville"),
			}),
		}}

		_, err := Discover(wb, "SITE001", DefaultOptions())
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("sheet %q: expected NotFoundError, got %v", name, err)
		}
	}
}

func TestDiscoverDropsSmallPools(t *testing.T) {
	wb := &models.Workbook{Sheets: []models.Sheet{
		models.NewSheet("Notes", [][]models.Cell{
			row("SITE001", "Call back"),
		}),
	}}

	_, err := Discover(wb, "SITE001", DefaultOptions())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, notFound.Samples)
}

func TestDiscoverFirstSheetWins(t *testing.T) {
	wb := &models.Workbook{Sheets: []models.Sheet{
		models.NewSheet("Inventory", [][]models.Cell{
			row("Header", "Other", "Stuff"),
			row("", "SITE001", "1 First Ave", "Alpha"),
		}),
		models.NewSheet("Sites", [][]models.Cell{
			row("SITE001", "2 Second Ave", "Beta"),
		}),
	}}

	rec, err := Discover(wb, "SITE001", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Inventory", rec.Sheet)
	assert.Equal(t, 1, rec.Col)

	addr, _ := rec.Get(models.FieldAddress)
	assert.Equal(t, "1 First Ave", addr)
	loc, _ := rec.Get(models.FieldLocation)
	assert.Equal(t, "Alpha", loc)
}

func TestDiscoverExactMatchOnly(t *testing.T) {
	wb := sitesWorkbook()

	for _, target := range []string{"site001", "SITE00", "SITE0011"} {
		_, err := Discover(wb, target, DefaultOptions())
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound, "target %q", target)
	}
}

func TestDiscoverMatchesTrimmedAndNumericCells(t *testing.T) {
	wb := &models.Workbook{Sheets: []models.Sheet{
		models.NewSheet("Sites", [][]models.Cell{
			row("  SITE001 ", "123 Main St", "Springfield"),
			row(int64(40017), "55 Elm St", "Ogdenville"),
		}),
	}}

	rec, err := Discover(wb, "SITE001", DefaultOptions())
	require.NoError(t, err)
	id, _ := rec.Get(models.FieldSiteID)
	assert.Equal(t, "SITE001", id)

	rec, err = Discover(wb, "40017", DefaultOptions())
	require.NoError(t, err)
	id, _ = rec.Get(models.FieldSiteID)
	assert.Equal(t, "40017", id)
	addr, _ := rec.Get(models.FieldAddress)
	assert.Equal(t, "55 Elm St", addr)
}

func TestDiscoverPositionalFields(t *testing.T) {
	tests := []struct {
		name string
		row  []models.Cell
		want map[models.Field]string
	}{
		{
			name: "identifier in last column",
			row:  row("North", "Depot", "SITE001"),
			want: map[models.Field]string{models.FieldSiteID: "SITE001"},
		},
		{
			name: "one trailing column",
			row:  row("SITE001", "123 Main St"),
			want: map[models.Field]string{
				models.FieldSiteID:  "SITE001",
				models.FieldAddress: "123 Main St",
			},
		},
		{
			name: "short and numeric neighbours are ignored",
			row:  row("SITE001", "NA", int64(12345), "Extra column"),
			want: map[models.Field]string{models.FieldSiteID: "SITE001"},
		},
		{
			name: "columns past location are ignored",
			row:  row("SITE001", "123 Main St", "Springfield", "Region East"),
			want: map[models.Field]string{
				models.FieldSiteID:   "SITE001",
				models.FieldAddress:  "123 Main St",
				models.FieldLocation: "Springfield",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := &models.Workbook{Sheets: []models.Sheet{
				models.NewSheet("Sites", [][]models.Cell{
					tt.row,
					row("Filler one", "Filler two", "Filler three"),
				}),
			}}
			rec, err := Discover(wb, "SITE001", DefaultOptions())
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, rec.Fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNotFoundSamples(t *testing.T) {
	var rows [][]models.Cell
	for _, id := range []string{"AAAA", "BBBB", "AAAA", "CCCC", "DDDD", "EEEE", "FFFF", "GGGG", "HHHH", "IIII", "JJJJ", "KKKK"} {
		rows = append(rows, row(id))
	}
	wb := &models.Workbook{Sheets: []models.Sheet{
		models.NewSheet("Sites", rows),
		models.NewSheet("More", [][]models.Cell{row("ZZZZ", "YYYY", "XXXX")}),
	}}

	_, err := Discover(wb, "QQQQ", DefaultOptions())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Len(t, notFound.Samples, 2)
	assert.Equal(t, []string{"AAAA", "BBBB", "CCCC", "DDDD", "EEEE", "FFFF", "GGGG", "HHHH", "IIII", "JJJJ"}, notFound.Samples[0].IDs)
	assert.Equal(t, []string{"ZZZZ", "YYYY", "XXXX"}, notFound.Samples[1].IDs)
	assert.Len(t, notFound.SampleIDs(), 13)
	assert.Contains(t, notFound.Error(), "QQQQ")
}

func TestScanSheetMinLength(t *testing.T) {
	sheet := models.NewSheet("Sites", [][]models.Cell{
		row("abc", "abcd", "  ab  ", "ÄÖÜß", int64(123), int64(1234), nil),
	})

	pool := ScanSheet(sheet, 4)
	var texts []string
	for _, c := range pool.Candidates {
		texts = append(texts, c.Text)
	}
	assert.Equal(t, []string{"abcd", "ÄÖÜß", "1234"}, texts)
}
