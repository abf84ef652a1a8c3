package codegen

import (
	"strconv"
	"strings"
)

// NameKind partitions allocated identifiers into namespaces. Developer names
// are internal to block implementations and never shown to the program's
// author; variable names correspond to user-visible workspace variables.
type NameKind string

const (
	KindVariable  NameKind = "variable"
	KindDeveloper NameKind = "developer"
)

// NameTable maps stable variable identities to collision-free JavaScript
// identifiers for the duration of one generation pass. Allocated names never
// equal a reserved word and never collide with each other, comparing
// case-insensitively since downstream tooling may fold case.
type NameTable struct {
	reserved map[string]bool
	names    map[string]string // kind-qualified identity -> allocated name
	used     map[string]bool   // lowercased allocated names
}

// NewNameTable builds a table that avoids every word in reserved. The
// reserved set is collision avoidance only, not a security boundary.
func NewNameTable(reserved []string) *NameTable {
	t := &NameTable{reserved: make(map[string]bool, len(reserved))}
	for _, w := range reserved {
		t.reserved[w] = true
	}
	t.Reset()
	return t
}

// Reset discards every allocation from the current pass.
func (t *NameTable) Reset() {
	t.names = make(map[string]string)
	t.used = make(map[string]bool)
}

// Name returns the identifier allocated for the given identity, allocating
// one from the display name on first use. The same identity always yields
// the same name within a pass.
func (t *NameTable) Name(id, display string, kind NameKind) string {
	key := string(kind) + ":" + id
	if name, ok := t.names[key]; ok {
		return name
	}
	name := t.allocate(safeName(display))
	t.names[key] = name
	return name
}

// DistinctName allocates a fresh identifier near the requested base without
// tying it to any identity. Each call returns a new name. The collision set
// is shared across kinds, so no namespace argument applies here.
func (t *NameTable) DistinctName(base string) string {
	return t.allocate(safeName(base))
}

func (t *NameTable) allocate(base string) string {
	name := base
	for i := 2; t.used[strings.ToLower(name)] || t.reserved[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	t.used[strings.ToLower(name)] = true
	return name
}

// safeName reduces display text to a legal JavaScript identifier. It keeps
// ASCII letters, digits, '_' and '$', substitutes '_' for everything else,
// and prefixes names that would start with a digit.
func safeName(name string) string {
	if name == "" {
		return "unnamed"
	}
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	out := sb.String()
	if out[0] >= '0' && out[0] <= '9' {
		out = "my_" + out
	}
	return out
}
