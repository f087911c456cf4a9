package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/exsite-go/pkg/exsite/directory"
)

// MappingToJSON serializes a directory mapping as an id -> name object.
func MappingToJSON(m *directory.Mapping, pretty bool) ([]byte, error) {
	return ToJSON(m, pretty)
}

// WriteMappingCSV writes a site_id,site_name header and one row per id.
func WriteMappingCSV(w io.Writer, m *directory.Mapping) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"site_id", "site_name"}); err != nil {
		return err
	}
	for _, id := range m.IDs() {
		name, _ := m.Get(id)
		if err := cw.Write([]string{id, name}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
