package codegen

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// indent is the unit applied to nested statement chains.
	indent = "  "
	// commentWrap is the column comments are wrapped to, marker included.
	commentWrap = 60
	// commentPrefix marks every emitted comment line.
	commentPrefix = "// "
)

// ValueEmitter renders a value block and reports the precedence of the
// produced expression.
type ValueEmitter func(c *Context, b Block) (string, Order)

// StatementEmitter renders a statement block. The returned text ends with a
// newline.
type StatementEmitter func(c *Context, b Block) string

// Generator translates workspaces into JavaScript source. A Generator is
// reusable across passes but supports only one pass at a time; concurrent
// generation needs one Generator per goroutine.
type Generator struct {
	values     map[string]ValueEmitter
	statements map[string]StatementEmitter
	reserved   []string
	active     bool
}

func NewGenerator() *Generator {
	return &Generator{
		values:     make(map[string]ValueEmitter),
		statements: make(map[string]StatementEmitter),
		reserved:   reservedWords,
	}
}

// RegisterValue installs the emitter for a value block kind.
func (g *Generator) RegisterValue(kind string, fn ValueEmitter) {
	g.values[kind] = fn
}

// RegisterStatement installs the emitter for a statement block kind.
func (g *Generator) RegisterStatement(kind string, fn StatementEmitter) {
	g.statements[kind] = fn
}

// KindInfo describes one registered block kind.
type KindInfo struct {
	Kind string
	Role string // "value" or "statement"
}

// Kinds lists every registered block kind, sorted.
func (g *Generator) Kinds() []KindInfo {
	var out []KindInfo
	for kind := range g.values {
		out = append(out, KindInfo{Kind: kind, Role: "value"})
	}
	for kind := range g.statements {
		out = append(out, KindInfo{Kind: kind, Role: "statement"})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// WorkspaceToCode runs one full generation pass: prime a session, emit every
// top-level stack, terminate naked values, and flush declarations ahead of
// the body. The returned error aggregates per-block emission problems; the
// code is still usable alongside a non-nil error.
func (g *Generator) WorkspaceToCode(ws Workspace) (string, error) {
	if g.active {
		panic("codegen: generation pass already active on this Generator")
	}
	g.active = true
	defer func() { g.active = false }()

	c := newContext(g, ws)
	c.init()

	var parts []string
	for _, b := range ws.TopBlocks() {
		code, _, isValue := c.blockToCode(b, false)
		if code == "" {
			continue
		}
		if isValue && !b.OutputConnected() {
			code = scrubNakedValue(code)
		}
		parts = append(parts, code)
	}
	code := c.finish(strings.Join(parts, "\n"))
	code = tidy(code)

	if len(c.errors) > 0 {
		return code, fmt.Errorf("codegen: %s", strings.Join(c.errors, "; "))
	}
	return code, nil
}

// scrubNakedValue turns a top-level expression with no statement context
// into its own line.
func scrubNakedValue(code string) string {
	return code + ";\n"
}

// tidy strips the leading blank run left by an empty declaration table and
// any trailing spaces before line breaks.
func tidy(code string) string {
	code = strings.TrimLeft(code, "\n")
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// Context is the state of one generation pass. WorkspaceToCode creates it,
// threads it through every emitter, and tears it down; emitters must not
// retain it across calls.
type Context struct {
	gen     *Generator
	ws      Workspace
	names   *NameTable
	defs    declarationTable
	helpers map[string]string
	vars    map[string]Variable
	primed  bool
	errors  []string
}

func newContext(g *Generator, ws Workspace) *Context {
	return &Context{gen: g, ws: ws}
}

// init primes the session: the base reset first, then the variable pass.
func (c *Context) init() {
	c.reset()
	c.primeVariables()
	c.primed = true
}

// reset is the base initialization step shared with teardown.
func (c *Context) reset() {
	if c.names == nil {
		c.names = NewNameTable(c.gen.reserved)
	} else {
		c.names.Reset()
	}
	c.defs = declarationTable{values: make(map[string]string)}
	c.helpers = make(map[string]string)
	c.vars = make(map[string]Variable)
	c.primed = false
}

// primeVariables allocates names for developer variables, then for user
// variables that are actually referenced, and records the single
// declaration statement covering them all.
func (c *Context) primeVariables() {
	var decls []string
	for _, v := range c.ws.DeveloperVariables() {
		c.vars[v.ID] = v
		decls = append(decls, c.names.Name(v.ID, v.Name, KindDeveloper))
	}
	for _, v := range c.ws.UsedVariables() {
		c.vars[v.ID] = v
		decls = append(decls, c.names.Name(v.ID, v.Name, KindVariable))
	}
	if len(decls) > 0 {
		c.defs.add("variables", "var "+strings.Join(decls, ", ")+";")
	}
}

// finish renders accumulated declarations ahead of the body text and tears
// the session down. Declarations keep insertion order and are separated by
// one blank line; two further blank lines separate them from the body.
func (c *Context) finish(body string) string {
	c.mustBePrimed()
	defs := c.defs.render()
	c.reset()
	return defs + "\n\n\n" + body
}

func (c *Context) mustBePrimed() {
	if !c.primed {
		panic("codegen: session used before init")
	}
}

func (c *Context) addError(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

// VariableName resolves a user variable reference to its allocated
// identifier. Unknown identities still get a stable fallback name.
func (c *Context) VariableName(id string) string {
	c.mustBePrimed()
	display := id
	if v, ok := c.vars[id]; ok {
		display = v.Name
	}
	return c.names.Name(id, display, KindVariable)
}

// DistinctName allocates a fresh internal identifier near base, for loop
// counters and similar developer-only temporaries.
func (c *Context) DistinctName(base string) string {
	c.mustBePrimed()
	return c.names.DistinctName(base)
}

// AddDeclaration stores rendered declaration text under key. The first
// writer wins; later calls with the same key are ignored.
func (c *Context) AddDeclaration(key, text string) {
	c.mustBePrimed()
	c.defs.add(key, text)
}

// funcPlaceholder marks where ProvideFunction substitutes the allocated
// helper name inside a definition.
const funcPlaceholder = "{{FN}}"

// ProvideFunction registers a helper function once per pass and returns the
// collision-safe name allocated for it. The definition text uses {{FN}}
// wherever the final name belongs.
func (c *Context) ProvideFunction(desired, def string) string {
	c.mustBePrimed()
	if name, ok := c.helpers[desired]; ok {
		return name
	}
	name := c.names.DistinctName(desired)
	c.helpers[desired] = name
	c.defs.add("helper_"+desired, strings.ReplaceAll(def, funcPlaceholder, name))
	return name
}

// ValueToCode emits the expression connected to the named value input,
// parenthesized as needed for a context accepting at most max. Returns ""
// when the slot is empty or unknown.
func (c *Context) ValueToCode(b Block, input string, max Order) string {
	child := valueChild(b, input)
	if child == nil {
		return ""
	}
	code, producer := c.valueBlockToCode(child)
	if code == "" {
		return ""
	}
	return Wrap(code, producer, max)
}

// StatementToCode emits the chain connected to the named statement input,
// indented one level.
func (c *Context) StatementToCode(b Block, input string) string {
	child := statementChild(b, input)
	code := c.BlockToCode(child, false)
	if code == "" {
		return ""
	}
	return prefixLines(code, indent)
}

// BlockToCode emits b as a statement and, unless thisOnly is set, the chain
// that follows it. Value blocks reached this way emit with their comments
// but without a statement terminator; WorkspaceToCode adds that for naked
// top-level values.
func (c *Context) BlockToCode(b Block, thisOnly bool) string {
	code, _, _ := c.blockToCode(b, thisOnly)
	return code
}

func (c *Context) blockToCode(b Block, thisOnly bool) (string, Order, bool) {
	c.mustBePrimed()
	if b == nil {
		return "", OrderNone, false
	}
	if !b.Enabled() {
		// Disabled blocks emit nothing and fall through to the successor.
		if thisOnly {
			return "", OrderNone, false
		}
		return c.blockToCode(b.Next(), false)
	}
	if fn, ok := c.gen.values[b.Kind()]; ok {
		code, producer := fn(c, b)
		return c.scrub(b, code, thisOnly), producer, true
	}
	if fn, ok := c.gen.statements[b.Kind()]; ok {
		return c.scrub(b, fn(c, b), thisOnly), OrderNone, false
	}
	c.addError("no emitter registered for block kind %q", b.Kind())
	return c.scrub(b, "", thisOnly), OrderNone, false
}

func (c *Context) valueBlockToCode(b Block) (string, Order) {
	c.mustBePrimed()
	if !b.Enabled() {
		return "", OrderNone
	}
	fn, ok := c.gen.values[b.Kind()]
	if !ok {
		c.addError("block kind %q cannot produce a value", b.Kind())
		return "", OrderNone
	}
	return fn(c, b)
}

func valueChild(b Block, name string) Block {
	for _, in := range b.Inputs() {
		if in.IsValue && in.Name == name {
			return in.Child
		}
	}
	return nil
}

func statementChild(b Block, name string) Block {
	for _, in := range b.Inputs() {
		if !in.IsValue && in.Name == name {
			return in.Child
		}
	}
	return nil
}

// declarationTable accumulates rendered declaration text keyed by category,
// preserving insertion order for the final flush.
type declarationTable struct {
	keys   []string
	values map[string]string
}

func (d *declarationTable) add(key, text string) {
	if _, ok := d.values[key]; ok {
		return
	}
	d.keys = append(d.keys, key)
	d.values[key] = text
}

func (d *declarationTable) render() string {
	parts := make([]string, 0, len(d.keys))
	for _, key := range d.keys {
		parts = append(parts, d.values[key])
	}
	return strings.Join(parts, "\n\n")
}
