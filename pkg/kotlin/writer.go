package kotlin

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

const indentUnit = "    "

// CodeWriter renders declarations to Kotlin source. It tracks the current
// indentation and emits it at the start of every non-empty line.
type CodeWriter struct {
	sb        strings.Builder
	level     int
	lineStart bool
}

func NewCodeWriter() *CodeWriter {
	return &CodeWriter{lineStart: true}
}

func (w *CodeWriter) String() string { return w.sb.String() }

func (w *CodeWriter) emit(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			w.sb.WriteByte('\n')
			w.lineStart = true
		}
		if line == "" {
			continue
		}
		if w.lineStart {
			w.sb.WriteString(strings.Repeat(indentUnit, w.level))
			w.lineStart = false
		}
		w.sb.WriteString(line)
	}
}

func (w *CodeWriter) endLine() {
	if !w.lineStart {
		w.emit("\n")
	}
}

func (w *CodeWriter) EmitCode(cb CodeBlock) {
	for _, p := range cb.parts {
		switch p.kind {
		case partText:
			w.emit(p.text)
		case partLiteral:
			w.emitLiteral(p.arg)
		case partString:
			w.emit(quote(p.arg))
		case partType:
			w.emit(p.arg.(TypeName).Canonical())
		case partName:
			w.emit(p.arg.(string))
		case partIndent:
			w.level++
		case partUnindent:
			w.level--
		default:
			panic(errors.AssertionFailedf("unknown code part kind %d", p.kind))
		}
	}
}

func (w *CodeWriter) emitLiteral(arg any) {
	switch v := arg.(type) {
	case nil:
		w.emit("null")
	case CodeBlock:
		w.EmitCode(v)
	default:
		w.emit(fmt.Sprint(v))
	}
}

func (w *CodeWriter) EmitModifiers(mods []Modifier) {
	for _, m := range mods {
		w.emit(m.Keyword() + " ")
	}
}

func (w *CodeWriter) EmitAnnotations(anns []AnnotationSpec) {
	for _, a := range anns {
		w.emit("@" + a.Type.Canonical() + "\n")
	}
}

func (w *CodeWriter) EmitParameter(p ParameterSpec) {
	w.EmitModifiers(p.modifiers)
	if p.name != "" {
		w.emit(p.name + ": ")
	}
	w.emit(p.typ.Canonical())
	if p.hasDefault {
		w.emit(" = ")
		w.EmitCode(p.defaultValue)
	}
}

func (w *CodeWriter) EmitFunction(f FunSpec) {
	if f.accessor != notAccessor {
		w.emitAccessor(f)
		return
	}
	w.emitParameterKdoc(f.params)
	w.EmitAnnotations(f.annotations)
	w.EmitModifiers(f.modifiers)
	w.emit("fun " + f.name + "(")
	for i, p := range f.params {
		if i > 0 {
			w.emit(", ")
		}
		w.EmitParameter(p)
	}
	w.emit(")")
	if f.returnType != nil && f.returnType.Canonical() != Unit.Canonical() {
		w.emit(": " + f.returnType.Canonical())
	}
	w.emitBody(f.body)
}

func (w *CodeWriter) emitParameterKdoc(params []ParameterSpec) {
	var lines []string
	for _, p := range params {
		if p.kdoc.IsEmpty() {
			continue
		}
		doc := strings.TrimSpace(p.kdoc.String())
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("@param %s %s", p.name, doc)))
	}
	if len(lines) == 0 {
		return
	}
	w.emit("/**\n")
	for _, l := range lines {
		w.emit(" * " + l + "\n")
	}
	w.emit(" */\n")
}

func (w *CodeWriter) emitBody(body CodeBlock) {
	w.emit(" {\n")
	w.level++
	w.EmitCode(body)
	w.endLine()
	w.level--
	w.emit("}\n")
}

func (w *CodeWriter) emitAccessor(f FunSpec) {
	w.EmitAnnotations(f.annotations)
	w.EmitModifiers(f.modifiers)
	keyword := "get"
	if f.accessor == setterAccessor {
		keyword = "set"
	}
	w.emit(keyword)
	if f.body.IsEmpty() && len(f.params) == 0 {
		w.emit("\n")
		return
	}
	w.emit("(")
	if len(f.params) == 1 {
		w.emit(f.params[0].name)
	}
	w.emit(")")
	w.emitBody(f.body)
}

func (w *CodeWriter) EmitProperty(p PropertySpec) {
	w.EmitAnnotations(p.annotations)
	w.EmitModifiers(p.modifiers)
	if p.mutable {
		w.emit("var ")
	} else {
		w.emit("val ")
	}
	w.emit(p.name + ": " + p.typ.Canonical())
	if p.initializer != nil {
		w.emit(" = ")
		w.EmitCode(*p.initializer)
	}
	if p.delegate != nil {
		w.emit(" by")
		if !p.delegate.IsEmpty() {
			w.emit(" ")
			w.EmitCode(*p.delegate)
		}
	}
	w.emit("\n")
	w.level++
	if p.getter != nil {
		w.emitAccessor(*p.getter)
	}
	if p.setter != nil {
		w.emitAccessor(*p.setter)
	}
	w.level--
}

func (w *CodeWriter) EmitType(t TypeSpec) {
	w.EmitModifiers(t.modifiers)
	w.emit("class " + t.Name())
	if len(t.typeVariables) > 0 {
		names := make([]string, len(t.typeVariables))
		for i, v := range t.typeVariables {
			names[i] = v.Canonical()
		}
		w.emit("<" + strings.Join(names, ", ") + ">")
	}
	if len(t.properties) == 0 {
		w.emit("\n")
		return
	}
	w.emit(" {\n")
	w.level++
	for i, p := range t.properties {
		if i > 0 {
			w.emit("\n")
		}
		w.EmitProperty(p)
	}
	w.level--
	w.emit("}\n")
}

// RenderFile renders types into a single Kotlin source file of package pkg.
func RenderFile(pkg string, types ...TypeSpec) string {
	w := NewCodeWriter()
	if pkg != "" {
		w.emit("package " + pkg + "\n\n")
	}
	for i, t := range types {
		if i > 0 {
			w.emit("\n")
		}
		w.EmitType(t)
	}
	return w.String()
}

func (p ParameterSpec) String() string {
	w := NewCodeWriter()
	w.EmitParameter(p)
	return w.String()
}

func (f FunSpec) String() string {
	w := NewCodeWriter()
	w.EmitFunction(f)
	return w.String()
}

func (p PropertySpec) String() string {
	w := NewCodeWriter()
	w.EmitProperty(p)
	return w.String()
}

func (t TypeSpec) String() string {
	w := NewCodeWriter()
	w.EmitType(t)
	return w.String()
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\b", `\b`,
	"$", `\$`,
)

func quote(arg any) string {
	s, ok := arg.(string)
	if !ok {
		return "null"
	}
	return `"` + stringEscaper.Replace(s) + `"`
}
