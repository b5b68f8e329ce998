// Package dsl offers scoped builders on top of package kotlin. Every entry
// point creates a scope, hands it to a configuration function, and builds
// the result once that function returns. A scope must not be retained
// after its entry point returns.
package dsl

import (
	"github.com/cockroachdb/errors"

	"github.com/cmmoran/kpoet/pkg/kotlin"
)

// ErrEmptyFormat is returned when a *Func configuration leaves the format unset.
var ErrEmptyFormat = errors.New("format not set")

type scope struct {
	err error
}

func (s *scope) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// CodeBlock builds a code block from configure.
func CodeBlock(configure func(c *CodeBlockScope)) (kotlin.CodeBlock, error) {
	c := newCodeBlockScope(kotlin.NewCodeBlockBuilder())
	configure(c)
	block, err := c.b.Build()
	if c.err != nil {
		return kotlin.CodeBlock{}, c.err
	}
	return block, err
}

// Function builds a function named name from configure.
func Function(name string, configure func(f *FunctionScope)) (kotlin.FunSpec, error) {
	f := newFunctionScope(kotlin.NewFunBuilder(name))
	configure(f)
	spec, err := f.b.Build()
	if scopeErr := f.firstErr(); scopeErr != nil {
		return kotlin.FunSpec{}, errors.Wrapf(scopeErr, "function %s", name)
	}
	return spec, err
}

// Parameter builds a parameter from configure.
func Parameter(name string, t kotlin.TypeName, configure func(p *ParameterScope)) (kotlin.ParameterSpec, error) {
	p := &ParameterScope{b: kotlin.NewParameterBuilder(name, t)}
	configure(p)
	spec, err := p.b.Build()
	if p.err != nil {
		return kotlin.ParameterSpec{}, errors.Wrapf(p.err, "parameter %s", name)
	}
	return spec, err
}

// UnnamedParameter builds a parameter rendered as its type alone, as used in
// lambda type signatures.
func UnnamedParameter(t kotlin.TypeName, configure func(p *ParameterScope)) (kotlin.ParameterSpec, error) {
	return Parameter("", t, configure)
}
