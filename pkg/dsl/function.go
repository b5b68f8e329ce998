package dsl

import (
	"github.com/cmmoran/kpoet/pkg/kotlin"
)

// FunctionScope configures a function. Statements go to the function body.
type FunctionScope struct {
	scope
	b    *kotlin.FunSpecBuilder
	body *CodeBlockScope
}

func newFunctionScope(b *kotlin.FunSpecBuilder) *FunctionScope {
	return &FunctionScope{b: b, body: newCodeBlockScope(b.Body())}
}

func (f *FunctionScope) firstErr() error {
	if f.err != nil {
		return f.err
	}
	return f.body.err
}

// Line appends one formatted statement to the body.
func (f *FunctionScope) Line(format string, args ...any) {
	f.body.Line(format, args...)
}

func (f *FunctionScope) Statement(format string, args ...any) {
	f.body.AddStatement(format, args...)
}

// Code appends formatted code with no terminator.
func (f *FunctionScope) Code(format string, args ...any) {
	f.body.AddCode(format, args...)
}

// CodeBlock builds a nested block from configure and appends it to the body.
func (f *FunctionScope) CodeBlock(configure func(c *CodeBlockScope)) {
	f.body.AddCodeBlock(configure)
}

// ControlFlow opens "header {" in the body, runs body against the body
// accumulator and closes the block.
func (f *FunctionScope) ControlFlow(header kotlin.Format, body func(c *CodeBlockScope)) {
	f.body.ControlFlow(header, body)
}

// NextControlFlow continues the innermost open block of the body.
func (f *FunctionScope) NextControlFlow(header kotlin.Format, body func(c *CodeBlockScope)) {
	f.body.NextControlFlow(header, body)
}

func (f *FunctionScope) Modifiers(mods ...kotlin.Modifier) {
	f.b.AddModifiers(mods...)
}

func (f *FunctionScope) Returns(t kotlin.TypeName) {
	f.b.Returns(t)
}

func (f *FunctionScope) Annotation(t kotlin.ClassName) {
	f.b.AddAnnotation(kotlin.AnnotationSpec{Type: t})
}

func (f *FunctionScope) Param(p kotlin.ParameterSpec) {
	f.b.AddParameter(p)
}

// ParamFunc builds a parameter with Parameter and adds it.
func (f *FunctionScope) ParamFunc(name string, t kotlin.TypeName, configure func(p *ParameterScope)) {
	p, err := Parameter(name, t, configure)
	if err != nil {
		f.fail(err)
		return
	}
	f.b.AddParameter(p)
}
