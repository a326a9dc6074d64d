package astprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/shade/ast"
)

// Expression renders an expression to source text.
func Expression(e ast.Expression) (string, error) {
	switch e := e.(type) {
	case nil:
		return "", fmt.Errorf("astprint: nil expression")

	case *ast.Invalid:
		return "<invalid>", nil

	case *ast.Literal:
		return value(e.Value)

	case *ast.Reference:
		return typeNameText(e.Name), nil

	case *ast.UnaryExpr:
		operand, err := Expression(e.Operand)
		if err != nil {
			return "", err
		}
		return unaryToken(e.Op) + maybeParen(e.Operand, operand), nil

	case *ast.BinaryExpr:
		return binary(e)

	case *ast.Conditional:
		cond, err := Expression(e.Cond)
		if err != nil {
			return "", err
		}
		trueRes, err := Expression(e.True)
		if err != nil {
			return "", err
		}
		falseRes, err := Expression(e.False)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s ? %s : %s)", cond, trueRes, falseRes), nil

	case *ast.Call:
		return call(e)

	default:
		return "", fmt.Errorf("astprint: unexpected expression kind %T", e)
	}
}

func binary(e *ast.BinaryExpr) (string, error) {
	left, err := Expression(e.Left)
	if err != nil {
		return "", err
	}
	right, err := Expression(e.Right)
	if err != nil {
		return "", err
	}

	// the access forms have their own syntax
	switch e.Op {
	case ast.BinarySelect:
		return maybeParen(e.Left, left) + "." + right, nil
	case ast.BinaryArrayIndex:
		return maybeParen(e.Left, left) + "[" + right + "]", nil
	default:
		return fmt.Sprintf("(%s %s %s)", left, binaryToken(e.Op), right), nil
	}
}

func call(e *ast.Call) (string, error) {
	callee, err := Expression(e.Callee)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(callee)
	b.WriteByte('(')
	for i, a := range e.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		if a.Named() {
			b.WriteString(a.Name.String())
			b.WriteString(": ")
		}
		v, err := Expression(a.Value)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
	}
	b.WriteByte(')')
	return b.String(), nil
}

func value(v ast.Value) (string, error) {
	switch v := v.(type) {
	case *ast.BoolValue:
		if v.V {
			return "true", nil
		}
		return "false", nil

	case *ast.IntValue:
		return strconv.FormatInt(int64(v.V), 10), nil

	case *ast.FloatValue:
		return formatFloat32(v.V) + "f", nil

	case *ast.DoubleValue:
		return formatFloat64(v.V), nil

	case *ast.StringValue:
		return strconv.Quote(v.V), nil

	case *ast.VectorValue:
		var b strings.Builder
		b.WriteString(typeText(v.Type))
		b.WriteByte('(')
		for i, c := range v.Components {
			if i > 0 {
				b.WriteString(", ")
			}
			s, err := value(c)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		b.WriteByte(')')
		return b.String(), nil

	case *ast.InvalidRefValue:
		// the default constructor of a reference type is its invalid reference
		return typeText(v.Type) + "()", nil

	case *ast.TextureValue:
		if v.URL == "" {
			return typeText(v.Type) + "()", nil
		}
		return fmt.Sprintf("%s(%s, ::tex::%s)",
			typeText(v.Type), strconv.Quote(v.URL), gammaName(v.Gamma)), nil

	case *ast.LightProfileValue:
		if v.URL == "" {
			return "light_profile()", nil
		}
		return "light_profile(" + strconv.Quote(v.URL) + ")", nil

	case *ast.BsdfMeasurementValue:
		if v.URL == "" {
			return "bsdf_measurement()", nil
		}
		return "bsdf_measurement(" + strconv.Quote(v.URL) + ")", nil

	default:
		return "", fmt.Errorf("astprint: unexpected value kind %T", v)
	}
}

// typeNameText renders a syntactic type name with its qualifier and array
// suffix.
func typeNameText(n *ast.TypeName) string {
	var b strings.Builder
	switch n.Qualifier {
	case ast.QualifierUniform:
		b.WriteString("uniform ")
	case ast.QualifierVarying:
		b.WriteString("varying ")
	}
	b.WriteString(n.Name.String())
	if n.IncompleteArray {
		b.WriteString("[]")
	} else if n.ArraySize != nil {
		size, err := Expression(n.ArraySize)
		if err != nil {
			size = "<invalid>"
		}
		b.WriteString("[" + size + "]")
	}
	return b.String()
}

// typeText renders the canonical name of a resolved type.
func typeText(t ast.Type) string {
	switch t := t.(type) {
	case *ast.BoolType:
		return "bool"
	case *ast.IntType:
		return "int"
	case *ast.FloatType:
		return "float"
	case *ast.DoubleType:
		return "double"
	case *ast.StringType:
		return "string"
	case *ast.ColorType:
		return "color"
	case *ast.VectorType:
		return typeText(t.Elem) + strconv.Itoa(t.Size)
	case *ast.MatrixType:
		return typeText(t.Elem.Elem) + strconv.Itoa(t.Columns) + "x" + strconv.Itoa(t.Elem.Size)
	case *ast.EnumType:
		return t.Sym.Name()
	case *ast.TextureType:
		switch t.Shape {
		case ast.TexShape2D:
			return "texture_2d"
		case ast.TexShape3D:
			return "texture_3d"
		case ast.TexShapeCube:
			return "texture_cube"
		default:
			return "texture_ptex"
		}
	case *ast.LightProfileType:
		return "light_profile"
	case *ast.BsdfType:
		return "bsdf"
	case *ast.EdfType:
		return "edf"
	case *ast.VdfType:
		return "vdf"
	case *ast.BsdfMeasurementType:
		return "bsdf_measurement"
	default:
		return "<error>"
	}
}

func gammaName(g ast.GammaMode) string {
	switch g {
	case ast.GammaLinear:
		return "gamma_linear"
	case ast.GammaSrgb:
		return "gamma_srgb"
	default:
		return "gamma_default"
	}
}

// maybeParen wraps the rendering of nested operator expressions so the output
// never depends on precedence context.
func maybeParen(e ast.Expression, s string) string {
	switch e.(type) {
	case *ast.UnaryExpr, *ast.Conditional:
		return "(" + s + ")"
	default:
		// binary renderings already carry their parentheses
		return s
	}
}

func unaryToken(op ast.UnaryOp) string {
	switch op {
	case ast.UnaryPositive:
		return "+"
	case ast.UnaryNegative:
		return "-"
	case ast.UnaryLogicalNot:
		return "!"
	default:
		return "~"
	}
}

func binaryToken(op ast.BinaryOp) string {
	switch op {
	case ast.BinaryMultiply:
		return "*"
	case ast.BinaryDivide:
		return "/"
	case ast.BinaryModulo:
		return "%"
	case ast.BinaryPlus:
		return "+"
	case ast.BinaryMinus:
		return "-"
	case ast.BinaryShiftLeft:
		return "<<"
	case ast.BinaryShiftRight:
		return ">>"
	case ast.BinaryUnsignedShiftRight:
		return ">>>"
	case ast.BinaryLess:
		return "<"
	case ast.BinaryLessEqual:
		return "<="
	case ast.BinaryGreater:
		return ">"
	case ast.BinaryGreaterEqual:
		return ">="
	case ast.BinaryEqual:
		return "=="
	case ast.BinaryNotEqual:
		return "!="
	case ast.BinaryBitwiseAnd:
		return "&"
	case ast.BinaryBitwiseXor:
		return "^"
	case ast.BinaryBitwiseOr:
		return "|"
	case ast.BinaryLogicalAnd:
		return "&&"
	default:
		return "||"
	}
}

// formatFloat32 renders a float with a guaranteed decimal point or exponent.
func formatFloat32(f float32) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatFloat64(f float64) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
