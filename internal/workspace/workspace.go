// Package workspace is an in-memory block model implementing the read-only
// view the codegen core generates from, plus a JSON loader for serialized
// workspaces.
package workspace

import (
	"github.com/blocklang/blockgen/internal/codegen"
)

// Workspace owns a set of top-level block stacks and the variables declared
// for them.
type Workspace struct {
	variables []codegen.Variable
	devVars   []codegen.Variable
	tops      []*Block
	oneBased  bool
}

func New() *Workspace {
	return &Workspace{}
}

// SetOneBasedIndex switches the visible indexing convention to start at 1.
func (w *Workspace) SetOneBasedIndex(on bool) {
	w.oneBased = on
}

// DeclareVariable registers a user variable. Declaring is not referencing;
// an unreferenced variable never reaches the generated declaration list.
func (w *Workspace) DeclareVariable(id, name string) {
	w.variables = append(w.variables, codegen.Variable{ID: id, Name: name})
}

// DeclareDeveloperVariable registers an internal variable required by a
// block implementation. The name doubles as the identity.
func (w *Workspace) DeclareDeveloperVariable(name string) {
	w.devVars = append(w.devVars, codegen.Variable{ID: name, Name: name})
}

// AddTopBlock appends a root block stack.
func (w *Workspace) AddTopBlock(b *Block) {
	b.attach(w)
	w.tops = append(w.tops, b)
}

func (w *Workspace) DeveloperVariables() []codegen.Variable {
	return w.devVars
}

// UsedVariables filters the declared variables down to those referenced by
// at least one field anywhere in the workspace, keeping declaration order.
func (w *Workspace) UsedVariables() []codegen.Variable {
	used := make(map[string]bool)
	for _, top := range w.tops {
		top.markVarRefs(used)
	}
	var out []codegen.Variable
	for _, v := range w.variables {
		if used[v.ID] {
			out = append(out, v)
		}
	}
	return out
}

func (w *Workspace) OneBasedIndex() bool {
	return w.oneBased
}

func (w *Workspace) TopBlocks() []codegen.Block {
	out := make([]codegen.Block, len(w.tops))
	for i, b := range w.tops {
		out[i] = b
	}
	return out
}

// Block is one node of the visual program.
type Block struct {
	kind     string
	fields   map[string]string
	inputs   []input
	next     *Block
	comment  string
	disabled bool
	output   bool // has an output socket
	plugged  bool // output socket currently connected to a parent
	ws       *Workspace
}

type input struct {
	name    string
	isValue bool
	child   *Block
}

// NewBlock makes a statement block of the given kind.
func NewBlock(kind string) *Block {
	return &Block{kind: kind, fields: make(map[string]string)}
}

// NewValueBlock makes a block with an output socket.
func NewValueBlock(kind string) *Block {
	b := NewBlock(kind)
	b.output = true
	return b
}

// SetField sets a field's literal text.
func (b *Block) SetField(name, value string) *Block {
	b.fields[name] = value
	return b
}

// SetComment attaches comment text.
func (b *Block) SetComment(text string) *Block {
	b.comment = text
	return b
}

// SetDisabled marks the block as emitting nothing.
func (b *Block) SetDisabled(on bool) *Block {
	b.disabled = on
	return b
}

// ConnectValue plugs child into a value input, creating the slot if needed.
func (b *Block) ConnectValue(name string, child *Block) *Block {
	child.plugged = true
	b.setInput(input{name: name, isValue: true, child: child})
	return b
}

// AddValueInput creates an empty value slot.
func (b *Block) AddValueInput(name string) *Block {
	b.setInput(input{name: name, isValue: true})
	return b
}

// ConnectStatement plugs a chain into a statement input.
func (b *Block) ConnectStatement(name string, child *Block) *Block {
	b.setInput(input{name: name, isValue: false, child: child})
	return b
}

// SetNext connects the successor statement block.
func (b *Block) SetNext(next *Block) *Block {
	b.next = next
	return b
}

func (b *Block) setInput(in input) {
	for i := range b.inputs {
		if b.inputs[i].name == in.name {
			b.inputs[i] = in
			return
		}
	}
	b.inputs = append(b.inputs, in)
}

// attach records ownership for the whole subtree including successors.
func (b *Block) attach(w *Workspace) {
	b.ws = w
	for _, in := range b.inputs {
		if in.child != nil {
			in.child.attach(w)
		}
	}
	if b.next != nil {
		b.next.attach(w)
	}
}

// varField is the field name that carries a variable identity. Other fields
// hold literal text and never count as references.
const varField = "VAR"

func (b *Block) markVarRefs(used map[string]bool) {
	if v, ok := b.fields[varField]; ok {
		used[v] = true
	}
	for _, in := range b.inputs {
		if in.child != nil {
			in.child.markVarRefs(used)
		}
	}
	if b.next != nil {
		b.next.markVarRefs(used)
	}
}

// --- codegen.Block ---

func (b *Block) Kind() string { return b.kind }

func (b *Block) OutputConnected() bool { return b.output && b.plugged }

func (b *Block) Next() codegen.Block {
	if b.next == nil {
		return nil
	}
	return b.next
}

func (b *Block) Inputs() []codegen.Input {
	out := make([]codegen.Input, len(b.inputs))
	for i, in := range b.inputs {
		out[i] = codegen.Input{Name: in.name, IsValue: in.isValue}
		if in.child != nil {
			out[i].Child = in.child
		}
	}
	return out
}

func (b *Block) Field(name string) string { return b.fields[name] }

func (b *Block) Comment() string { return b.comment }

func (b *Block) Enabled() bool { return !b.disabled }

func (b *Block) Workspace() codegen.Workspace { return b.ws }
