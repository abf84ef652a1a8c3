package workspace

import (
	"encoding/json"
	"fmt"
	"os"
)

// File formats. A workspace document looks like:
//
//	{
//	  "oneBasedIndex": false,
//	  "variables": [{"id": "v1", "name": "count"}],
//	  "blocks": [
//	    {"kind": "variables_set", "fields": {"VAR": "v1"},
//	     "inputs": {"VALUE": {"kind": "math_number", "fields": {"NUM": "3"}}},
//	     "next": {...}}
//	  ]
//	}
//
// Whether an input is a value or statement slot is a property of the block
// definition, so the serialized form marks statement slots explicitly.
type fileWorkspace struct {
	OneBasedIndex bool         `json:"oneBasedIndex,omitempty"`
	Variables     []fileVar    `json:"variables,omitempty"`
	Blocks        []*fileBlock `json:"blocks"`
}

type fileVar struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fileBlock struct {
	Kind       string                `json:"kind"`
	Fields     map[string]string     `json:"fields,omitempty"`
	Inputs     map[string]*fileBlock `json:"inputs,omitempty"`
	Statements map[string]*fileBlock `json:"statements,omitempty"`
	Next       *fileBlock            `json:"next,omitempty"`
	Comment    string                `json:"comment,omitempty"`
	Disabled   bool                  `json:"disabled,omitempty"`
	Value      bool                  `json:"value,omitempty"`
}

// Load parses a serialized workspace document.
func Load(data []byte) (*Workspace, error) {
	var doc fileWorkspace
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing workspace: %w", err)
	}
	w := New()
	w.SetOneBasedIndex(doc.OneBasedIndex)
	for _, v := range doc.Variables {
		if v.ID == "" || v.Name == "" {
			return nil, fmt.Errorf("variable needs both id and name")
		}
		w.DeclareVariable(v.ID, v.Name)
	}
	for _, fb := range doc.Blocks {
		b, err := buildBlock(fb, fb.Value)
		if err != nil {
			return nil, err
		}
		w.AddTopBlock(b)
	}
	return w, nil
}

// LoadFile reads and parses a workspace document from disk.
func LoadFile(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workspace: %w", err)
	}
	return Load(data)
}

// buildBlock constructs a block subtree. Anything reached through a value
// input is a value block whether or not the document says so.
func buildBlock(fb *fileBlock, asValue bool) (*Block, error) {
	if fb.Kind == "" {
		return nil, fmt.Errorf("block needs a kind")
	}
	var b *Block
	if asValue {
		b = NewValueBlock(fb.Kind)
	} else {
		b = NewBlock(fb.Kind)
	}
	for name, value := range fb.Fields {
		b.SetField(name, value)
	}
	for name, child := range fb.Inputs {
		cb, err := buildBlock(child, true)
		if err != nil {
			return nil, fmt.Errorf("input %s of %s: %w", name, fb.Kind, err)
		}
		b.ConnectValue(name, cb)
	}
	for name, child := range fb.Statements {
		cb, err := buildBlock(child, false)
		if err != nil {
			return nil, fmt.Errorf("statement %s of %s: %w", name, fb.Kind, err)
		}
		b.ConnectStatement(name, cb)
	}
	if fb.Comment != "" {
		b.SetComment(fb.Comment)
	}
	b.SetDisabled(fb.Disabled)
	if fb.Next != nil {
		nb, err := buildBlock(fb.Next, false)
		if err != nil {
			return nil, fmt.Errorf("next of %s: %w", fb.Kind, err)
		}
		b.SetNext(nb)
	}
	return b, nil
}
