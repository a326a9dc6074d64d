package ast

import "strings"

// SimpleName is one unqualified name component.
type SimpleName struct {
	Sym *Symbol
}

// String returns the identifier text.
func (n *SimpleName) String() string { return n.Sym.Name() }

// QualifiedName is a sequence of name components, optionally rooted at the
// global scope.
type QualifiedName struct {
	Absolute   bool
	Components []*SimpleName
}

// AddComponent appends a component to the name.
func (n *QualifiedName) AddComponent(c *SimpleName) {
	n.Components = append(n.Components, c)
}

// String renders the name with "::" separators, with a leading separator
// for absolute names.
func (n *QualifiedName) String() string {
	var b strings.Builder
	if n.Absolute {
		b.WriteString("::")
	}
	for i, c := range n.Components {
		if i > 0 {
			b.WriteString("::")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Qualifier is a frequency qualifier on a type name.
type Qualifier uint8

const (
	QualifierNone Qualifier = iota
	QualifierUniform
	QualifierVarying
)

// TypeName names a type in the syntax. For arrays it carries either a size
// expression or the incomplete-array marker (size inferred from use). The
// resolved type may be attached so downstream consumers can skip
// re-resolution.
type TypeName struct {
	Name            *QualifiedName
	Qualifier       Qualifier
	ArraySize       Expression
	IncompleteArray bool
	Type            Type
}

// SetIncompleteArray marks the name as an array type of inferred size.
func (n *TypeName) SetIncompleteArray() { n.IncompleteArray = true }

// NameFactory creates name nodes bound to one module's symbol table.
type NameFactory struct {
	st *SymbolTable
}

// SimpleName creates a simple name for a symbol.
func (f *NameFactory) SimpleName(sym *Symbol) *SimpleName {
	return &SimpleName{Sym: sym}
}

// QualifiedName creates an empty qualified name.
func (f *NameFactory) QualifiedName() *QualifiedName {
	return &QualifiedName{}
}

// TypeName creates a type name for a qualified name.
func (f *NameFactory) TypeName(name *QualifiedName) *TypeName {
	return &TypeName{Name: name}
}
