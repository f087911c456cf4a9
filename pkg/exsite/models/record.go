package models

// Field names a column role in a site row.
type Field string

const (
	// FieldSiteID is the identifier column.
	FieldSiteID Field = "site_id"
	// FieldAddress is the column right after the identifier.
	FieldAddress Field = "address"
	// FieldLocation is the second column after the identifier.
	FieldLocation Field = "location"
)

// FieldOffsets maps a column offset relative to the identifier to its role.
var FieldOffsets = map[int]Field{
	0: FieldSiteID,
	1: FieldAddress,
	2: FieldLocation,
}

// RawRecord holds the fields read around a matched identifier.
type RawRecord struct {
	// Sheet is the sheet the identifier was found in.
	Sheet string `json:"sheet"`
	// Row is the zero-based row of the match.
	Row int `json:"row"`
	// Col is the zero-based column of the match.
	Col int `json:"col"`
	// Fields maps field name to value; absent fields are missing keys.
	Fields map[Field]string `json:"fields"`
}

// Get returns a field value and whether it was discovered.
func (r *RawRecord) Get(f Field) (string, bool) {
	if r == nil || r.Fields == nil {
		return "", false
	}
	v, ok := r.Fields[f]
	return v, ok
}

// Variable is a template default, kept in sheet row order.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CanonicalRecord is the assembled site entry handed to the record sink.
type CanonicalRecord struct {
	// Name is "{location}_{identifier}".
	Name string `json:"name"`
	// Address is the street address or a placeholder.
	Address string `json:"address"`
	// Group is the site group name, passed through verbatim.
	Group string `json:"group"`
	// Vars is the packed, quoted variable string; empty means absent.
	Vars string `json:"vars,omitempty"`
	// Location is the location used to build Name.
	Location string `json:"-"`
	// SiteID is the identifier used to build Name.
	SiteID string `json:"-"`
}

// HasVars reports whether the vars field is present.
func (r CanonicalRecord) HasVars() bool {
	return r.Vars != ""
}
