package todo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	td := New(Input{Title: "Buy milk"})

	assert.Equal(t, "Buy milk", td.Title)
	assert.False(t, td.Completed)
	assert.False(t, td.ID.IsZero())
}

func TestApply(t *testing.T) {
	td := New(Input{Title: "before"})
	td.Completed = true
	id := td.ID

	td.Apply(Input{Title: "after"})

	assert.Equal(t, "after", td.Title)
	assert.Equal(t, id, td.ID, "id must not change")
	assert.True(t, td.Completed, "completed must not change")
}

func TestTodoJSONShape(t *testing.T) {
	td := Todo{
		ID:    MustParseID("3f2504e0-4f89-41d3-9a0c-0305e82c3301"),
		Title: "Buy milk",
	}

	data, err := json.Marshal(td)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"3f2504e0-4f89-41d3-9a0c-0305e82c3301","title":"Buy milk","completed":false}`, string(data))
}
