package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameTableAllocation(t *testing.T) {
	tbl := NewNameTable([]string{"for", "window"})

	assert.Equal(t, "count", tbl.Name("id1", "count", KindVariable))
	// Same identity, same name.
	assert.Equal(t, "count", tbl.Name("id1", "count", KindVariable))
	// Different identity with the same display name gets suffixed.
	assert.Equal(t, "count2", tbl.Name("id2", "count", KindVariable))
	// Reserved words are never allocated.
	assert.Equal(t, "for2", tbl.Name("id3", "for", KindVariable))
	assert.Equal(t, "window2", tbl.Name("id4", "window", KindVariable))
}

func TestNameTableKindsAreSeparateNamespaces(t *testing.T) {
	tbl := NewNameTable(nil)
	dev := tbl.Name("total", "total", KindDeveloper)
	usr := tbl.Name("total", "total", KindVariable)
	assert.Equal(t, "total", dev)
	assert.Equal(t, "total2", usr)
	// Both stay stable afterwards.
	assert.Equal(t, dev, tbl.Name("total", "total", KindDeveloper))
	assert.Equal(t, usr, tbl.Name("total", "total", KindVariable))
}

func TestNameTableCaseInsensitiveCollisions(t *testing.T) {
	tbl := NewNameTable(nil)
	assert.Equal(t, "Value", tbl.Name("a", "Value", KindVariable))
	assert.Equal(t, "value2", tbl.Name("b", "value", KindVariable))
}

func TestNameTableDistinctNames(t *testing.T) {
	tbl := NewNameTable(nil)
	a := tbl.DistinctName("count")
	b := tbl.DistinctName("count")
	assert.Equal(t, "count", a)
	assert.Equal(t, "count2", b)
	assert.NotEqual(t, a, b)
}

func TestNameTableReset(t *testing.T) {
	tbl := NewNameTable(nil)
	assert.Equal(t, "x", tbl.Name("old", "x", KindVariable))
	tbl.Reset()
	// A different identity may claim the freed name in the next pass.
	assert.Equal(t, "x", tbl.Name("new", "x", KindVariable))
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "unnamed"},
		{"plain", "plain"},
		{"list index", "list_index"},
		{"1st place!", "my_1st_place_"},
		{"$ok_2", "$ok_2"},
		{"héllo", "h_llo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeName(tt.in), "input %q", tt.in)
	}
}
