package ast

// Expression represents an expression node.
type Expression interface {
	astExpr()
}

// Invalid is the sentinel expression returned when construction failed.
// It keeps the surrounding tree structurally complete.
type Invalid struct{}

func (*Invalid) astExpr() {}

// Literal is a literal expression.
type Literal struct {
	Value Value
}

func (*Literal) astExpr() {}

// Reference is a reference to a named entity. The resolved type may be
// attached so downstream consumers can skip re-resolution.
type Reference struct {
	Name *TypeName
	Type Type
}

func (*Reference) astExpr() {}

// UnaryOp is a unary operator kind.
type UnaryOp uint8

const (
	UnaryPositive UnaryOp = iota
	UnaryNegative
	UnaryLogicalNot
	UnaryComplement
)

// UnaryExpr applies a unary operator.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expression
}

func (*UnaryExpr) astExpr() {}

// BinaryOp is a binary operator kind. Select and ArrayIndex are the access
// forms a.b and a[i].
type BinaryOp uint8

const (
	BinarySelect BinaryOp = iota
	BinaryArrayIndex
	BinaryMultiply
	BinaryDivide
	BinaryModulo
	BinaryPlus
	BinaryMinus
	BinaryShiftLeft
	BinaryShiftRight
	BinaryUnsignedShiftRight
	BinaryLess
	BinaryLessEqual
	BinaryGreater
	BinaryGreaterEqual
	BinaryEqual
	BinaryNotEqual
	BinaryBitwiseAnd
	BinaryBitwiseXor
	BinaryBitwiseOr
	BinaryLogicalAnd
	BinaryLogicalOr
)

// BinaryExpr applies a binary operator.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (*BinaryExpr) astExpr() {}

// Conditional is the ternary conditional operator.
type Conditional struct {
	Cond  Expression
	True  Expression
	False Expression
}

func (*Conditional) astExpr() {}

// Argument is one call argument, named or positional.
type Argument struct {
	Name  *SimpleName // nil for positional arguments
	Value Expression
}

// Named reports whether the argument carries a parameter name.
func (a *Argument) Named() bool { return a.Name != nil }

// Call applies a callee expression to an argument list.
type Call struct {
	Callee    Expression
	Arguments []*Argument
}

func (*Call) astExpr() {}

// AddArgument appends an argument to the call.
func (c *Call) AddArgument(a *Argument) {
	c.Arguments = append(c.Arguments, a)
}

// ExpressionFactory creates expression nodes for one module.
type ExpressionFactory struct{}

// Invalid creates the invalid-expression sentinel.
func (f *ExpressionFactory) Invalid() *Invalid { return &Invalid{} }

// Literal creates a literal expression.
func (f *ExpressionFactory) Literal(v Value) *Literal { return &Literal{Value: v} }

// Reference creates a reference expression for a type name.
func (f *ExpressionFactory) Reference(name *TypeName) *Reference {
	return &Reference{Name: name}
}

// Unary creates a unary operator expression.
func (f *ExpressionFactory) Unary(op UnaryOp, operand Expression) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand}
}

// Binary creates a binary operator expression.
func (f *ExpressionFactory) Binary(op BinaryOp, left, right Expression) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

// Conditional creates a ternary conditional expression.
func (f *ExpressionFactory) Conditional(cond, trueRes, falseRes Expression) *Conditional {
	return &Conditional{Cond: cond, True: trueRes, False: falseRes}
}

// Call creates a call expression with an empty argument list.
func (f *ExpressionFactory) Call(callee Expression) *Call {
	return &Call{Callee: callee}
}

// PositionalArgument creates a positional argument.
func (f *ExpressionFactory) PositionalArgument(v Expression) *Argument {
	return &Argument{Value: v}
}

// NamedArgument creates a named argument.
func (f *ExpressionFactory) NamedArgument(name *SimpleName, v Expression) *Argument {
	return &Argument{Name: name, Value: v}
}
