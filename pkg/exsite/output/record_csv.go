package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
)

var fileNameReplacer = strings.NewReplacer(" ", "_", "/", "_", `\`, "_", ":", "_")

// RecordColumns returns the header columns for rec. The vars column is only
// present when the record carries variables.
func RecordColumns(rec models.CanonicalRecord) []string {
	cols := []string{"name", "address", "sitegroup_names"}
	if rec.HasVars() {
		cols = append(cols, "vars")
	}
	return cols
}

// recordValues returns the values matching RecordColumns.
func recordValues(rec models.CanonicalRecord) []string {
	values := []string{rec.Name, rec.Address, rec.Group}
	if rec.HasVars() {
		values = append(values, rec.Vars)
	}
	return values
}

// WriteRecordCSV writes a "#"-prefixed header line followed by one data row
// in which every field is quoted.
func WriteRecordCSV(w io.Writer, rec models.CanonicalRecord) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("#" + strings.Join(RecordColumns(rec), ",") + "\n")

	for i, v := range recordValues(rec) {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(quoteField(v))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// quoteField quotes a value and doubles embedded quotes.
func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// DefaultFileName derives the output file name from the location and site id.
func DefaultFileName(location, siteID string) string {
	return fileNameReplacer.Replace(location) + "_" + siteID + ".csv"
}
