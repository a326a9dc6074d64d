package ast

// Module owns the factories and symbol table of one compilation unit.
// Everything the factories create belongs to the module; holders of factory
// references must not use them past the module's lifetime. A module's
// factories are append-only and not synchronized; concurrent builders need
// separate modules.
type Module struct {
	name string
	st   *SymbolTable
	nf   *NameFactory
	vf   *ValueFactory
	ef   *ExpressionFactory
	tf   *TypeFactory
}

// NewModule creates an empty module with fresh factories.
func NewModule(name string) *Module {
	st := NewSymbolTable()
	tf := newTypeFactory(st)
	return &Module{
		name: name,
		st:   st,
		nf:   &NameFactory{st: st},
		vf:   &ValueFactory{tf: tf},
		ef:   &ExpressionFactory{},
		tf:   tf,
	}
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// SymbolTable returns the module's symbol table.
func (m *Module) SymbolTable() *SymbolTable { return m.st }

// NameFactory returns the module's name factory.
func (m *Module) NameFactory() *NameFactory { return m.nf }

// ValueFactory returns the module's value factory.
func (m *Module) ValueFactory() *ValueFactory { return m.vf }

// ExpressionFactory returns the module's expression factory.
func (m *Module) ExpressionFactory() *ExpressionFactory { return m.ef }

// TypeFactory returns the module's type factory.
func (m *Module) TypeFactory() *TypeFactory { return m.tf }
