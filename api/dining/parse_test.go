package dining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMenuResponse_Records(t *testing.T) {
	payload := []byte(`<response>
		<record><course>Main Course</course><webLongName>Roast Chicken</webLongName></record>
		<record><course>Main Course</course><webLongName>Baked   Haddock</webLongName></record>
		<record><course>Soup</course><webLongName>Tomato Bisque</webLongName></record>
	</response>`)

	menu, err := ParseMenuResponse(payload)
	require.NoError(t, err)
	require.NotNil(t, menu)

	require.Len(t, menu.Categories, 2)
	assert.Equal(t, "Main Course", menu.Categories[0].Name)
	assert.Equal(t, []string{"Roast Chicken", "Baked Haddock"}, menu.Categories[0].Items)
	assert.Equal(t, "Soup", menu.Categories[1].Name)
	assert.Equal(t, []string{"Tomato Bisque"}, menu.Categories[1].Items)
	assert.True(t, menu.HasItems())
}

func TestParseMenuResponse_NestedRecords(t *testing.T) {
	// The feed sometimes wraps records in intermediate elements.
	payload := []byte(`<response><rows>
		<record><course>Desserts</course><webLongName>Apple Crisp</webLongName></record>
	</rows></response>`)

	menu, err := ParseMenuResponse(payload)
	require.NoError(t, err)
	require.NotNil(t, menu)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, "Desserts", menu.Categories[0].Name)
}

func TestParseMenuResponse_ErrorMarker(t *testing.T) {
	payload := []byte(`<response><error>No records found</error></response>`)

	menu, err := ParseMenuResponse(payload)
	assert.NoError(t, err)
	assert.Nil(t, menu)
}

func TestParseMenuResponse_Malformed(t *testing.T) {
	_, err := ParseMenuResponse([]byte(`<response><record>`))
	assert.Error(t, err)
}

func TestParseMenuResponse_MissingCourse(t *testing.T) {
	payload := []byte(`<response>
		<record><webLongName>Mystery Dish</webLongName></record>
	</response>`)

	menu, err := ParseMenuResponse(payload)
	require.NoError(t, err)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, "Uncategorized", menu.Categories[0].Name)
}

func TestParseMenuResponse_BlankItemsKeptButNotReal(t *testing.T) {
	payload := []byte(`<response>
		<record><course>Deli</course><webLongName>  </webLongName></record>
	</response>`)

	menu, err := ParseMenuResponse(payload)
	require.NoError(t, err)
	require.NotNil(t, menu)
	assert.False(t, menu.HasItems())
}
