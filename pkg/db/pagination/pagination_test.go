package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	assert.Equal(t, 10, Pagination{}.Limit())
	assert.Equal(t, 10, Pagination{PageSize: -3}.Limit())
	assert.Equal(t, 1, Pagination{PageSize: 1}.Limit())
	assert.Equal(t, 100, Pagination{PageSize: 100}.Limit())
	assert.Equal(t, 250, Pagination{PageSize: 9999}.Limit())
}

func TestCursorRoundTrip(t *testing.T) {
	token, err := EncodeCursor(Cursor{ID: "order_123", CreatedAt: "2026-08-14T10:30:00Z"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	cursor, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, "order_123", cursor.ID)
	assert.Equal(t, "2026-08-14T10:30:00Z", cursor.CreatedAt)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	_, err := DecodeCursor("not base64!!!")
	assert.Error(t, err)
}

func TestBuildCursorPageInfo(t *testing.T) {
	type row struct{ ID string }
	extract := func(r *row) string { return r.ID }

	// Empty page.
	data, info := BuildCursorPageInfo([]*row{}, 2, extract)
	assert.Empty(t, data)
	assert.False(t, info.HasMore)
	assert.Empty(t, info.NextPageToken)

	// Over-fetched page gets trimmed and reports more.
	rows := []*row{{"a"}, {"b"}, {"c"}}
	data, info = BuildCursorPageInfo(rows, 2, extract)
	require.Len(t, data, 2)
	assert.True(t, info.HasMore)
	assert.Equal(t, "b", info.NextPageToken)

	// Final short page.
	data, info = BuildCursorPageInfo([]*row{{"d"}}, 2, extract)
	require.Len(t, data, 1)
	assert.False(t, info.HasMore)
	assert.Equal(t, "d", info.NextPageToken)
}
