package dsl

import (
	"github.com/cmmoran/kpoet/pkg/kotlin"
)

// CodeBlockScope accumulates statements into a single code block.
type CodeBlockScope struct {
	scope
	b *kotlin.CodeBlockBuilder
}

func newCodeBlockScope(b *kotlin.CodeBlockBuilder) *CodeBlockScope {
	return &CodeBlockScope{b: b}
}

// Line appends one formatted statement.
func (c *CodeBlockScope) Line(format string, args ...any) {
	c.b.AddStatement(format, args...)
}

func (c *CodeBlockScope) AddStatement(format string, args ...any) {
	c.b.AddStatement(format, args...)
}

// AddStatementFunc appends the statement described by configure.
func (c *CodeBlockScope) AddStatementFunc(configure func(f *kotlin.Format)) {
	if f, ok := c.format(configure); ok {
		c.b.AddStatement(f.Format, f.Args...)
	}
}

// AddCode appends formatted code with no terminator.
func (c *CodeBlockScope) AddCode(format string, args ...any) {
	c.b.Add(format, args...)
}

func (c *CodeBlockScope) AddCodeFunc(configure func(f *kotlin.Format)) {
	if f, ok := c.format(configure); ok {
		c.b.Add(f.Format, f.Args...)
	}
}

// AddCodeBlock builds a nested block from configure and appends it.
func (c *CodeBlockScope) AddCodeBlock(configure func(c *CodeBlockScope)) {
	block, err := CodeBlock(configure)
	if err != nil {
		c.fail(err)
		return
	}
	c.b.AddBlock(block)
}

// ControlFlow emits "header {", runs body in this scope, then emits "}".
// NextControlFlow called from body continues the same block.
func (c *CodeBlockScope) ControlFlow(header kotlin.Format, body func(c *CodeBlockScope)) {
	c.b.BeginControlFlow(header.Format, header.Args...)
	body(c)
	c.b.EndControlFlow()
}

// NextControlFlow emits "} header {" and runs body in this scope. It is only
// valid inside a ControlFlow body.
func (c *CodeBlockScope) NextControlFlow(header kotlin.Format, body func(c *CodeBlockScope)) {
	c.b.NextControlFlow(header.Format, header.Args...)
	body(c)
}

func (c *CodeBlockScope) Indent() {
	c.b.Indent()
}

func (c *CodeBlockScope) Unindent() {
	c.b.Unindent()
}

func (c *CodeBlockScope) format(configure func(f *kotlin.Format)) (kotlin.Format, bool) {
	var f kotlin.Format
	configure(&f)
	if f.Format == "" {
		c.fail(ErrEmptyFormat)
		return f, false
	}
	return f, true
}
