package ast

// Symbol is an interned identifier. Symbols from the same table compare
// equal by pointer.
type Symbol struct {
	name string
}

// Name returns the identifier text.
func (s *Symbol) Name() string { return s.name }

// SymbolTable interns identifiers for one module.
type SymbolTable struct {
	symbols  map[string]*Symbol
	errorSym *Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols:  make(map[string]*Symbol, 64),
		errorSym: &Symbol{name: "<error>"},
	}
}

// Symbol returns the interned symbol for name, creating it if necessary.
func (t *SymbolTable) Symbol(name string) *Symbol {
	if s, ok := t.symbols[name]; ok {
		return s
	}
	s := &Symbol{name: name}
	t.symbols[name] = s
	return s
}

// UserTypeSymbol returns the interned symbol for a user-defined type name.
// The name may be fully qualified.
func (t *SymbolTable) UserTypeSymbol(name string) *Symbol {
	return t.Symbol(name)
}

// ErrorSymbol returns the table's designated error symbol.
func (t *SymbolTable) ErrorSymbol() *Symbol { return t.errorSym }
