package astbuild

import (
	"testing"

	"github.com/gogpu/shade/ast"
	"github.com/gogpu/shade/scene"
)

func floatConst(v float32) scene.Expr {
	return &scene.ConstantExpr{Value: &scene.FloatValue{V: v}}
}

func intConst(v int32) scene.Expr {
	return &scene.ConstantExpr{Value: &scene.IntValue{V: v}}
}

func positional(exprs ...scene.Expr) *scene.ExprList {
	l := scene.NewExprList()
	for _, e := range exprs {
		l.Add("", e)
	}
	return l
}

func TestTransformCall_UnaryOperator(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	expr := b.TransformCall(&scene.FloatType{}, scene.SemanticOperatorNegative,
		"operator-", 1, positional(floatConst(3)), false)

	un, ok := expr.(*ast.UnaryExpr)
	if !ok {
		t.Fatalf("expected a unary expression, got %T", expr)
	}
	if un.Op != ast.UnaryNegative {
		t.Errorf("op = %v, want negative", un.Op)
	}
	if _, ok := un.Operand.(*ast.Literal); !ok {
		t.Errorf("operand = %T, want a literal", un.Operand)
	}
}

func TestTransformCall_BinaryOperator(t *testing.T) {
	tests := []struct {
		sema scene.Semantic
		want ast.BinaryOp
	}{
		{scene.SemanticOperatorMultiply, ast.BinaryMultiply},
		{scene.SemanticOperatorPlus, ast.BinaryPlus},
		{scene.SemanticOperatorLess, ast.BinaryLess},
		{scene.SemanticOperatorLogicalAnd, ast.BinaryLogicalAnd},
	}

	for _, tt := range tests {
		b, _ := newTestBuilder(t, nil)
		expr := b.TransformCall(&scene.FloatType{}, tt.sema,
			"operator", 2, positional(floatConst(1), floatConst(2)), false)

		bin, ok := expr.(*ast.BinaryExpr)
		if !ok {
			t.Fatalf("expected a binary expression, got %T", expr)
		}
		if bin.Op != tt.want {
			t.Errorf("op = %v, want %v", bin.Op, tt.want)
		}
	}
}

func TestTransformCall_TernaryOperator(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	cond := &scene.ConstantExpr{Value: &scene.BoolValue{V: true}}
	expr := b.TransformCall(&scene.FloatType{}, scene.SemanticOperatorTernary,
		"operator?", 3, positional(cond, floatConst(1), floatConst(0)), false)

	c, ok := expr.(*ast.Conditional)
	if !ok {
		t.Fatalf("expected a conditional, got %T", expr)
	}
	if _, ok := c.Cond.(*ast.Literal); !ok {
		t.Errorf("condition = %T, want a literal", c.Cond)
	}
}

func TestTransformCall_FieldAccess(t *testing.T) {
	structVal := &scene.ConstantExpr{Value: &scene.StructValue{
		StructType: &scene.StructType{Symbol: "::test::color_pair", Predefined: scene.StructUser},
		Components: []scene.Value{&scene.FloatValue{V: 1}},
	}}

	tests := []struct {
		name   string
		callee string
		field  string
	}{
		{"plain", "::test::color.rgb", "rgb"},
		{"mdle", "::import.mdle::color.rgb", "rgb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBuilder(t, nil)
			expr := b.TransformCall(&scene.FloatType{}, scene.SemanticDAGFieldAccess,
				tt.callee, 1, positional(structVal), false)

			bin, ok := expr.(*ast.BinaryExpr)
			if !ok {
				t.Fatalf("expected a select expression, got %T", expr)
			}
			if bin.Op != ast.BinarySelect {
				t.Errorf("op = %v, want select", bin.Op)
			}
			ref, ok := bin.Right.(*ast.Reference)
			if !ok {
				t.Fatalf("right operand = %T, want a reference", bin.Right)
			}
			if got := ref.Name.Name.String(); got != tt.field {
				t.Errorf("field = %q, want %q", got, tt.field)
			}
		})
	}
}

func TestTransformCall_FieldAccessWithoutField(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	expr := b.TransformCall(&scene.FloatType{}, scene.SemanticDAGFieldAccess,
		"::test::no_dot_here", 1, positional(floatConst(1)), false)
	if _, ok := expr.(*ast.Invalid); !ok {
		t.Errorf("expected the invalid sentinel, got %T", expr)
	}
}

func TestTransformCall_IndexAccess(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	arr := &scene.ConstantExpr{Value: &scene.ArrayValue{
		ArrayType: &scene.ArrayType{Elem: &scene.FloatType{}, Size: 2},
		Elements:  []scene.Value{&scene.FloatValue{V: 1}, &scene.FloatValue{V: 2}},
	}}
	expr := b.TransformCall(&scene.FloatType{}, scene.SemanticDAGIndexAccess,
		"operator[]", 2, positional(arr, intConst(1)), false)

	bin, ok := expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected an index expression, got %T", expr)
	}
	if bin.Op != ast.BinaryArrayIndex {
		t.Errorf("op = %v, want array index", bin.Op)
	}
}

func TestTransformCall_ArrayConstructor(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	ret := &scene.ArrayType{Elem: &scene.FloatType{}, Size: 3}
	expr := b.TransformCall(ret, scene.SemanticDAGArrayConstructor,
		"T[]", 3, positional(floatConst(1), floatConst(2), floatConst(3)), false)

	call, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("expected a constructor call, got %T", expr)
	}
	// typed by the element type of the return array
	if got := call.Callee.(*ast.Reference).Name.Name.String(); got != "float" {
		t.Errorf("callee = %q, want float", got)
	}
	if len(call.Arguments) != 3 {
		t.Errorf("got %d arguments, want 3", len(call.Arguments))
	}
	for i, a := range call.Arguments {
		if a.Named() {
			t.Errorf("argument %d unexpectedly named", i)
		}
	}
}

func TestTransformCall_ArrayLength(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	sized := &scene.ConstantExpr{Value: &scene.ArrayValue{
		ArrayType: &scene.ArrayType{Elem: &scene.FloatType{}, Size: 5},
	}}
	expr := b.TransformCall(&scene.IntType{}, scene.SemanticDAGArrayLength,
		"len", 1, positional(sized), false)
	lit, ok := expr.(*ast.Literal)
	if !ok {
		t.Fatalf("expected a literal for an immediate-sized array, got %T", expr)
	}
	if v := lit.Value.(*ast.IntValue); v.V != 5 {
		t.Errorf("length = %d, want 5", v.V)
	}

	deferred := &scene.ConstantExpr{Value: &scene.ArrayValue{
		ArrayType: &scene.ArrayType{Elem: &scene.FloatType{}, DeferredSize: "N"},
	}}
	expr = b.TransformCall(&scene.IntType{}, scene.SemanticDAGArrayLength,
		"len", 1, positional(deferred), false)
	ref, ok := expr.(*ast.Reference)
	if !ok {
		t.Fatalf("expected a reference for a deferred-sized array, got %T", expr)
	}
	if got := ref.Name.Name.String(); got != "N" {
		t.Errorf("deferred size reference = %q, want N", got)
	}
}

func TestTransformCall_ReservedGraphIntrinsics(t *testing.T) {
	for _, sema := range []scene.Semantic{scene.SemanticDAGSetObjectID, scene.SemanticDAGSetTransforms} {
		b, _ := newTestBuilder(t, nil)
		expr := b.TransformCall(&scene.FloatType{}, sema, "reserved", 1,
			positional(floatConst(1)), false)
		if _, ok := expr.(*ast.Invalid); !ok {
			t.Errorf("semantic %v: expected the invalid sentinel, got %T", sema, expr)
		}
	}
}

func TestTransformCall_DefaultNamedArguments(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	args := scene.NewExprList().
		Add("tint", floatConst(1)).
		Add("weight", floatConst(2))
	expr := b.TransformCall(&scene.ColorType{}, scene.SemanticUnknown,
		"::test::blend", 2, args, true)

	call := expr.(*ast.Call)
	if len(call.Arguments) != 2 {
		t.Fatalf("got %d arguments, want 2", len(call.Arguments))
	}
	for i, want := range []string{"tint", "weight"} {
		a := call.Arguments[i]
		if !a.Named() || a.Name.String() != want {
			t.Errorf("argument %d name = %v, want %q", i, a.Name, want)
		}
	}
}

func TestTransformCall_UsedTypes(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	userStruct := &scene.StructType{Symbol: "::test::lookup", Predefined: scene.StructUser}
	b.TransformCall(userStruct, scene.SemanticUnknown, "::test::make_lookup", 0, nil, false)

	userEnum := &scene.EnumType{Symbol: "::test::mode"}
	b.TransformCall(userEnum, scene.SemanticUnknown, "::test::pick_mode", 0, nil, false)

	// only intensity_mode is predefined; it is never accumulated
	intensity := &scene.EnumType{Symbol: "intensity_mode", Predefined: scene.EnumIntensityMode}
	b.TransformCall(intensity, scene.SemanticUnknown, "::test::pick_intensity", 0, nil, false)

	// predefined structs are not user types
	material := &scene.StructType{Symbol: "material", Predefined: scene.StructMaterial}
	b.TransformCall(material, scene.SemanticUnknown, "::test::mat", 0, nil, false)

	used := b.UsedTypes()
	if len(used) != 2 {
		t.Fatalf("got %d used types, want 2", len(used))
	}
	if used[0].Name() != "::test::lookup" || used[1].Name() != "::test::mode" {
		t.Errorf("used types = [%s, %s]", used[0].Name(), used[1].Name())
	}
}

func TestFieldSymbol(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"::test::color.rgb", "rgb"},
		{"::pkg.mdle::mat.base", "base"},
		{"nodots", ""},
	}
	for _, tt := range tests {
		if got := fieldSymbol(tt.in); got != tt.want {
			t.Errorf("fieldSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
