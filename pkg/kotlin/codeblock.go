package kotlin

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Format is a format string with its positional arguments.
type Format struct {
	Format string
	Args   []any
}

// Fmt bundles a format and its arguments, e.g. for control flow headers.
func Fmt(format string, args ...any) Format {
	return Format{Format: format, Args: args}
}

type partKind int

const (
	partText partKind = iota
	partLiteral
	partString
	partType
	partName
	partIndent
	partUnindent
)

var verbKinds = map[byte]partKind{
	'L': partLiteral,
	'S': partString,
	'T': partType,
	'N': partName,
}

type part struct {
	kind partKind
	text string
	arg  any
}

// CodeBlock is an immutable fragment of Kotlin code. Placeholders in the
// formats it was built from are already bound to their arguments:
//
//	%L  literal, emitted as is (a CodeBlock is emitted inline)
//	%S  string literal, quoted and escaped; nil emits null
//	%T  type, emitted fully qualified
//	%N  name, a string or anything with a Name() method
//	%%  a literal percent sign
type CodeBlock struct {
	parts  []part
	indent int
}

func (c CodeBlock) IsEmpty() bool { return len(c.parts) == 0 }

// String renders the block with four-space indentation.
func (c CodeBlock) String() string {
	w := NewCodeWriter()
	w.EmitCode(c)
	return w.String()
}

// Of builds a single-format block.
func Of(format string, args ...any) (CodeBlock, error) {
	return NewCodeBlockBuilder().Add(format, args...).Build()
}

// CodeBlockBuilder accumulates code. Methods chain; the first misuse is kept
// and reported by Build, which may only be called once.
type CodeBlockBuilder struct {
	errorState
	parts  []part
	indent int
	flows  int
}

func NewCodeBlockBuilder() *CodeBlockBuilder {
	return &CodeBlockBuilder{}
}

// Add appends formatted code with no terminator.
func (b *CodeBlockBuilder) Add(format string, args ...any) *CodeBlockBuilder {
	if !b.live() {
		return b
	}
	parts, err := parseFormat(format, args)
	if err != nil {
		b.fail(err)
		return b
	}
	b.parts = append(b.parts, parts...)
	return b
}

// AddStatement appends formatted code terminated by a newline.
func (b *CodeBlockBuilder) AddStatement(format string, args ...any) *CodeBlockBuilder {
	return b.Add(format, args...).text("\n")
}

// AddBlock appends a built block.
func (b *CodeBlockBuilder) AddBlock(cb CodeBlock) *CodeBlockBuilder {
	if !b.live() {
		return b
	}
	b.parts = append(b.parts, cb.parts...)
	b.indent += cb.indent
	return b
}

// BeginControlFlow emits "header {" and indents.
func (b *CodeBlockBuilder) BeginControlFlow(format string, args ...any) *CodeBlockBuilder {
	b.Add(format, args...).text(" {\n").Indent()
	b.flows++
	return b
}

// NextControlFlow closes the current branch and opens "} header {".
func (b *CodeBlockBuilder) NextControlFlow(format string, args ...any) *CodeBlockBuilder {
	if !b.live() {
		return b
	}
	if b.flows == 0 {
		b.fail(errors.WithHint(
			errors.Wrapf(ErrUnbalancedControlFlow, "next control flow %q without an open block", format),
			"NextControlFlow must come between BeginControlFlow and its EndControlFlow"))
		return b
	}
	return b.Unindent().text("} ").Add(format, args...).text(" {\n").Indent()
}

// EndControlFlow unindents and emits the closing brace.
func (b *CodeBlockBuilder) EndControlFlow() *CodeBlockBuilder {
	if !b.live() {
		return b
	}
	if b.flows == 0 {
		b.fail(errors.Wrap(ErrUnbalancedControlFlow, "end control flow without an open block"))
		return b
	}
	b.Unindent().text("}\n")
	b.flows--
	return b
}

func (b *CodeBlockBuilder) Indent() *CodeBlockBuilder {
	if !b.live() {
		return b
	}
	b.parts = append(b.parts, part{kind: partIndent})
	b.indent++
	return b
}

func (b *CodeBlockBuilder) Unindent() *CodeBlockBuilder {
	if !b.live() {
		return b
	}
	if b.indent == 0 {
		b.fail(errors.Wrap(ErrUnbalancedIndent, "unindent below zero"))
		return b
	}
	b.parts = append(b.parts, part{kind: partUnindent})
	b.indent--
	return b
}

// Build returns the accumulated block. It fails if a control flow is still
// open or any earlier call failed.
func (b *CodeBlockBuilder) Build() (CodeBlock, error) {
	if err := b.finish(); err != nil {
		return CodeBlock{}, err
	}
	if b.flows > 0 {
		return CodeBlock{}, errors.Wrapf(ErrUnbalancedControlFlow, "%d control flow(s) left open", b.flows)
	}
	return CodeBlock{parts: append([]part(nil), b.parts...), indent: b.indent}, nil
}

func (b *CodeBlockBuilder) text(s string) *CodeBlockBuilder {
	if !b.live() {
		return b
	}
	b.parts = append(b.parts, part{kind: partText, text: s})
	return b
}

func parseFormat(format string, args []any) ([]part, error) {
	var (
		parts []part
		text  strings.Builder
		next  int
	)
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, part{kind: partText, text: text.String()})
			text.Reset()
		}
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			text.WriteByte(c)
			continue
		}
		if i+1 == len(format) {
			return nil, errors.Wrapf(ErrInvalidFormat, "dangling %% at the end of %q", format)
		}
		i++
		if format[i] == '%' {
			text.WriteByte('%')
			continue
		}
		kind, ok := verbKinds[format[i]]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidFormat, "unknown placeholder %%%c in %q", format[i], format)
		}
		if next == len(args) {
			return nil, errors.Wrapf(ErrInvalidFormat, "%q has more placeholders than its %d argument(s)", format, len(args))
		}
		arg, err := checkArg(kind, args[next])
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d of %q", next, format)
		}
		next++
		flush()
		parts = append(parts, part{kind: kind, arg: arg})
	}
	if next != len(args) {
		return nil, errors.Wrapf(ErrInvalidFormat, "%q uses %d of %d argument(s)", format, next, len(args))
	}
	flush()
	return parts, nil
}

type named interface {
	Name() string
}

func checkArg(kind partKind, arg any) (any, error) {
	switch kind {
	case partString:
		switch arg.(type) {
		case nil, string:
			return arg, nil
		}
		return nil, errors.Wrapf(ErrInvalidFormat, "%%S expects a string, got %T", arg)
	case partType:
		if t, ok := arg.(TypeName); ok {
			return t, nil
		}
		return nil, errors.Wrapf(ErrInvalidFormat, "%%T expects a TypeName, got %T", arg)
	case partName:
		switch v := arg.(type) {
		case string:
			return v, nil
		case named:
			return v.Name(), nil
		}
		return nil, errors.Wrapf(ErrInvalidFormat, "%%N expects a name, got %T", arg)
	}
	return arg, nil
}
