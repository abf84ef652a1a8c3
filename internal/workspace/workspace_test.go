package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsedVariablesFiltersUnreferenced(t *testing.T) {
	w := New()
	w.DeclareVariable("v1", "first")
	w.DeclareVariable("v2", "second")
	w.DeclareVariable("v3", "third")

	top := NewBlock("variables_set").SetField("VAR", "v3")
	top.SetNext(NewBlock("variables_set").SetField("VAR", "v1"))
	w.AddTopBlock(top)

	used := w.UsedVariables()
	require.Len(t, used, 2)
	// Declaration order, not reference order.
	assert.Equal(t, "v1", used[0].ID)
	assert.Equal(t, "v3", used[1].ID)
}

func TestUsedVariablesSeesValueSubtrees(t *testing.T) {
	w := New()
	w.DeclareVariable("v1", "n")
	w.AddTopBlock(NewBlock("text_print").
		ConnectValue("TEXT", NewValueBlock("variables_get").SetField("VAR", "v1")))
	assert.Len(t, w.UsedVariables(), 1)
}

func TestUsedVariablesIgnoreLiteralFields(t *testing.T) {
	// A variable whose ID happens to match unrelated field text is still
	// unreferenced; only the variable-identity field counts.
	w := New()
	w.DeclareVariable("7", "lucky")
	w.AddTopBlock(NewBlock("text_print").
		ConnectValue("TEXT", NewValueBlock("math_number").SetField("NUM", "7")))
	assert.Empty(t, w.UsedVariables())
}

func TestOutputConnected(t *testing.T) {
	child := NewValueBlock("math_number")
	assert.False(t, child.OutputConnected())
	NewBlock("text_print").ConnectValue("TEXT", child)
	assert.True(t, child.OutputConnected())
}

func TestLoadWorkspace(t *testing.T) {
	doc := `{
		"oneBasedIndex": true,
		"variables": [{"id": "v1", "name": "count"}],
		"blocks": [{
			"kind": "variables_set",
			"comment": "start over",
			"fields": {"VAR": "v1"},
			"inputs": {"VALUE": {"kind": "math_number", "fields": {"NUM": "3"}}},
			"next": {"kind": "text_print",
				"inputs": {"TEXT": {"kind": "text", "fields": {"TEXT": "done"}}}}
		}]
	}`
	w, err := Load([]byte(doc))
	require.NoError(t, err)

	assert.True(t, w.OneBasedIndex())
	require.Len(t, w.TopBlocks(), 1)

	top := w.TopBlocks()[0]
	assert.Equal(t, "variables_set", top.Kind())
	assert.Equal(t, "start over", top.Comment())
	assert.Equal(t, "v1", top.Field("VAR"))

	inputs := top.Inputs()
	require.Len(t, inputs, 1)
	assert.True(t, inputs[0].IsValue)
	require.NotNil(t, inputs[0].Child)
	assert.Equal(t, "math_number", inputs[0].Child.Kind())
	// Value children count as plugged into their parent.
	assert.True(t, inputs[0].Child.OutputConnected())

	next := top.Next()
	require.NotNil(t, next)
	assert.Equal(t, "text_print", next.Kind())
	assert.Same(t, w, next.Workspace())

	assert.Len(t, w.UsedVariables(), 1)
}

func TestLoadNakedTopLevelValue(t *testing.T) {
	w, err := Load([]byte(`{"blocks": [{"kind": "math_number", "value": true, "fields": {"NUM": "42"}}]}`))
	require.NoError(t, err)
	top := w.TopBlocks()[0]
	assert.False(t, top.OutputConnected())
}

func TestLoadRejectsMalformedDocuments(t *testing.T) {
	cases := []string{
		`not json`,
		`{"blocks": [{"fields": {"NUM": "1"}}]}`,
		`{"variables": [{"id": "v1"}], "blocks": []}`,
		`{"blocks": [{"kind": "ok", "inputs": {"A": {"fields": {}}}}]}`,
	}
	for _, doc := range cases {
		_, err := Load([]byte(doc))
		assert.Error(t, err, "document %s", doc)
	}
}

func TestLoadStatementInputs(t *testing.T) {
	doc := `{"blocks": [{
		"kind": "controls_repeat_ext",
		"inputs": {"TIMES": {"kind": "math_number", "fields": {"NUM": "2"}}},
		"statements": {"DO": {"kind": "text_print"}}
	}]}`
	w, err := Load([]byte(doc))
	require.NoError(t, err)

	var value, statement int
	for _, in := range w.TopBlocks()[0].Inputs() {
		if in.IsValue {
			value++
		} else {
			statement++
			assert.Equal(t, "text_print", in.Child.Kind())
		}
	}
	assert.Equal(t, 1, value)
	assert.Equal(t, 1, statement)
}
