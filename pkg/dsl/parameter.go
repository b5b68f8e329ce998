package dsl

import (
	"github.com/cmmoran/kpoet/pkg/kotlin"
)

// ParameterScope configures a parameter.
type ParameterScope struct {
	scope
	b *kotlin.ParameterSpecBuilder
}

func (p *ParameterScope) AddKdoc(format string, args ...any) {
	p.b.AddKdoc(format, args...)
}

// AddKdocBlock builds a block from configure and appends it to the kdoc.
func (p *ParameterScope) AddKdocBlock(configure func(c *CodeBlockScope)) {
	block, err := CodeBlock(configure)
	if err != nil {
		p.fail(err)
		return
	}
	p.b.AddKdocBlock(block)
}

func (p *ParameterScope) Modifiers(mods ...kotlin.Modifier) {
	p.b.AddModifiers(mods...)
}

// DefaultValue returns the default value set so far.
func (p *ParameterScope) DefaultValue() (kotlin.CodeBlock, bool) {
	return p.b.DefaultValue()
}

// SetDefaultValue sets the default value. A nil block leaves it unchanged.
func (p *ParameterScope) SetDefaultValue(cb *kotlin.CodeBlock) {
	if cb != nil {
		p.b.SetDefaultValue(*cb)
	}
}
