package codegen

// Block is the read-only view of one node in a workspace. The block model
// itself lives outside this package; emitters and the generator driver only
// ever see this capability set.
type Block interface {
	// Kind names the block type and selects its registered emitter.
	Kind() string
	// OutputConnected reports whether the block's output socket is plugged
	// into a parent expression right now. A block with an unplugged output
	// still counts as a top-level value.
	OutputConnected() bool
	// Next returns the successor statement block, or nil.
	Next() Block
	// Inputs lists the block's slots in definition order.
	Inputs() []Input
	// Field returns the literal text of a named field, or "".
	Field(name string) string
	// Comment returns the attached comment text, or "".
	Comment() string
	// Enabled reports whether the block should emit code at all.
	Enabled() bool
	// Workspace returns the owning workspace.
	Workspace() Workspace
}

// Input is one slot on a block: either a value socket that may hold an
// expression child or a statement socket holding a chain of blocks.
type Input struct {
	Name    string
	IsValue bool
	Child   Block
}

// Workspace is the read-only view of the container a generation pass runs
// over.
type Workspace interface {
	// DeveloperVariables lists internal variables required by block
	// implementations, in definition order.
	DeveloperVariables() []Variable
	// UsedVariables lists user variables referenced at least once anywhere
	// in the workspace, in definition order. Declared-but-unused variables
	// are absent.
	UsedVariables() []Variable
	// OneBasedIndex reports whether the visible indexing convention starts
	// counting at 1 instead of 0.
	OneBasedIndex() bool
	// TopBlocks lists the root of every statement stack, in order.
	TopBlocks() []Block
}

// Variable is a stable identity plus the display name the program's author
// gave it. Developer variables use the name as identity.
type Variable struct {
	ID   string
	Name string
}
