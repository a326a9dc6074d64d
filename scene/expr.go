package scene

// Expr represents a node of an evaluated graph expression.
//
// All implementations are pointers, so an Expr compares by node identity.
// Two structurally equal sub-expressions at different positions are distinct
// nodes; callers relying on this (such as parameter substitution maps) key
// maps directly on Expr values.
type Expr interface {
	sceneExpr()

	// ResultType returns the resolved type of the node.
	ResultType() Type
}

// ConstantExpr wraps a constant value.
type ConstantExpr struct {
	Value Value
}

func (*ConstantExpr) sceneExpr() {}

func (e *ConstantExpr) ResultType() Type { return e.Value.Type() }

// CallExpr references a stored callable entity (a function call or a
// material instance) by its database tag. The arguments live on the entity.
type CallExpr struct {
	Type   Type
	Callee Tag
}

func (*CallExpr) sceneExpr() {}

func (e *CallExpr) ResultType() Type { return e.Type }

// DirectCallExpr calls an already-resolved definition with an inline
// argument list.
type DirectCallExpr struct {
	Type       Type
	Definition Tag
	Arguments  *ExprList
}

func (*DirectCallExpr) sceneExpr() {}

func (e *DirectCallExpr) ResultType() Type { return e.Type }

// ParameterExpr references a formal parameter of the enclosing call by index.
type ParameterExpr struct {
	Type  Type
	Index int
}

func (*ParameterExpr) sceneExpr() {}

func (e *ParameterExpr) ResultType() Type { return e.Type }

// TemporaryExpr references a temporary of the enclosing graph by index.
// Temporaries never appear in the expressions handed to the AST builder.
type TemporaryExpr struct {
	Type  Type
	Index int
}

func (*TemporaryExpr) sceneExpr() {}

func (e *TemporaryExpr) ResultType() Type { return e.Type }

// ExprList is an ordered argument list whose entries may carry names.
type ExprList struct {
	names []string
	exprs []Expr
}

// NewExprList creates an empty argument list.
func NewExprList() *ExprList {
	return &ExprList{}
}

// Add appends an expression with an optional name.
func (l *ExprList) Add(name string, e Expr) *ExprList {
	l.names = append(l.names, name)
	l.exprs = append(l.exprs, e)
	return l
}

// Len returns the number of entries.
func (l *ExprList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.exprs)
}

// Expr returns the i-th expression, or nil if i is out of range.
func (l *ExprList) Expr(i int) Expr {
	if l == nil || i < 0 || i >= len(l.exprs) {
		return nil
	}
	return l.exprs[i]
}

// Name returns the name of the i-th entry (empty for positional entries).
func (l *ExprList) Name(i int) string {
	if l == nil || i < 0 || i >= len(l.names) {
		return ""
	}
	return l.names[i]
}
