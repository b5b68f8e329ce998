package kotlin

import (
	"sort"
	"strings"
)

// Modifier is a Kotlin declaration keyword. The declaration order of the
// constants is the order modifiers are rendered in.
type Modifier int

const (
	Public Modifier = iota + 1
	Protected
	Private
	Internal
	Expect
	Actual
	Final
	Open
	Abstract
	Sealed
	Const
	External
	Override
	Lateinit
	Tailrec
	Vararg
	Suspend
	Inner
	Enum
	Annotation
	Fun
	Companion
	Inline
	NoInline
	CrossInline
	Reified
	Infix
	Operator
	Data
	Value
)

var modifierKeywords = map[Modifier]string{
	Public:      "public",
	Protected:   "protected",
	Private:     "private",
	Internal:    "internal",
	Expect:      "expect",
	Actual:      "actual",
	Final:       "final",
	Open:        "open",
	Abstract:    "abstract",
	Sealed:      "sealed",
	Const:       "const",
	External:    "external",
	Override:    "override",
	Lateinit:    "lateinit",
	Tailrec:     "tailrec",
	Vararg:      "vararg",
	Suspend:     "suspend",
	Inner:       "inner",
	Enum:        "enum",
	Annotation:  "annotation",
	Fun:         "fun",
	Companion:   "companion",
	Inline:      "inline",
	NoInline:    "noinline",
	CrossInline: "crossinline",
	Reified:     "reified",
	Infix:       "infix",
	Operator:    "operator",
	Data:        "data",
	Value:       "value",
}

// Keyword returns the source spelling, e.g. "lateinit".
func (m Modifier) Keyword() string {
	return modifierKeywords[m]
}

func (m Modifier) String() string {
	if k, ok := modifierKeywords[m]; ok {
		return strings.ToUpper(k)
	}
	return "Modifier(invalid)"
}

// modifierSet keeps unique modifiers; sorted() yields them in render order.
type modifierSet map[Modifier]struct{}

func (s modifierSet) add(mods ...Modifier) {
	for _, m := range mods {
		s[m] = struct{}{}
	}
}

func (s modifierSet) sorted() []Modifier {
	out := make([]Modifier, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
