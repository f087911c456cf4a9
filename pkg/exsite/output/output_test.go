package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exsite-go/pkg/exsite/directory"
	"github.com/ukaji3/exsite-go/pkg/exsite/models"
)

func TestWriteRecordCSVWithoutVars(t *testing.T) {
	var buf bytes.Buffer
	rec := models.CanonicalRecord{
		Name:    "Springfield_SITE001",
		Address: "123 Main St",
		Group:   "Default_Group",
	}
	require.NoError(t, WriteRecordCSV(&buf, rec))

	want := "#name,address,sitegroup_names\n" +
		`"Springfield_SITE001","123 Main St","Default_Group"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRecordCSVWithVars(t *testing.T) {
	var buf bytes.Buffer
	rec := models.CanonicalRecord{
		Name:    "Springfield_SITE001",
		Address: "123 Main St, Springfield",
		Group:   "Default_Group",
		Vars:    `"wan_ip:10.0.0.1,vlan:100"`,
	}
	require.NoError(t, WriteRecordCSV(&buf, rec))

	want := "#name,address,sitegroup_names,vars\n" +
		`"Springfield_SITE001","123 Main St, Springfield","Default_Group","""wan_ip:10.0.0.1,vlan:100"""` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestDefaultFileName(t *testing.T) {
	tests := []struct {
		location string
		siteID   string
		expected string
	}{
		{"Springfield", "SITE001", "Springfield_SITE001.csv"},
		{"New York/East", "NY01", "New_York_East_NY01.csv"},
		{`C:\Depot`, "D001", "C__Depot_D001.csv"},
	}

	for _, tt := range tests {
		if got := DefaultFileName(tt.location, tt.siteID); got != tt.expected {
			t.Errorf("DefaultFileName(%q, %q) = %q, expected %q", tt.location, tt.siteID, got, tt.expected)
		}
	}
}

func TestMappingOutputs(t *testing.T) {
	m := directory.ToMapping([]directory.Entry{
		{ID: "s2", Name: "Second, with comma"},
		{ID: "s1", Name: "First"},
	})

	data, err := MappingToJSON(m, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"s2\": \"Second, with comma\",\n  \"s1\": \"First\"\n}", string(data))

	var buf bytes.Buffer
	require.NoError(t, WriteMappingCSV(&buf, m))
	assert.Equal(t, "site_id,site_name\ns2,\"Second, with comma\"\ns1,First\n", buf.String())
}
