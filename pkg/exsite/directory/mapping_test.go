package directory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMappingLastWriteWins(t *testing.T) {
	m := ToMapping([]Entry{
		{ID: "a", Name: "Alpha"},
		{ID: "", Name: "No id"},
		{ID: "b", Name: "Bravo"},
		{ID: "a", Name: "Alpha Renamed"},
	})

	require.Equal(t, 2, m.Len())
	name, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "Alpha Renamed", name)
	assert.Equal(t, []string{"a", "b"}, m.IDs())

	_, ok = m.Get("")
	assert.False(t, ok)
}

func TestMappingFindName(t *testing.T) {
	m := ToMapping([]Entry{{ID: "1", Name: "Springfield_SITE001"}, {ID: "2", Name: "Other"}})

	id, ok := m.FindName("Springfield_SITE001")
	assert.True(t, ok)
	assert.Equal(t, "1", id)

	_, ok = m.FindName("Missing")
	assert.False(t, ok)
}

func TestMappingMarshalJSON(t *testing.T) {
	m := ToMapping([]Entry{{ID: "z", Name: "Zulu"}, {ID: "a", Name: "Alpha \"quoted\""}})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"Zulu","a":"Alpha \"quoted\""}`, string(data))

	empty, err := json.Marshal(NewMapping())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}
