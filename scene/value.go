package scene

// Value represents a constant in the scene value system.
type Value interface {
	sceneValue()

	// Type returns the type of the value.
	Type() Type
}

// BoolValue is a bool constant.
type BoolValue struct {
	V bool
}

func (*BoolValue) sceneValue() {}

func (*BoolValue) Type() Type { return &BoolType{} }

// IntValue is an int constant.
type IntValue struct {
	V int32
}

func (*IntValue) sceneValue() {}

func (*IntValue) Type() Type { return &IntType{} }

// FloatValue is a float constant.
type FloatValue struct {
	V float32
}

func (*FloatValue) sceneValue() {}

func (*FloatValue) Type() Type { return &FloatType{} }

// DoubleValue is a double constant.
type DoubleValue struct {
	V float64
}

func (*DoubleValue) sceneValue() {}

func (*DoubleValue) Type() Type { return &DoubleType{} }

// StringValue is a string constant.
type StringValue struct {
	V string
}

func (*StringValue) sceneValue() {}

func (*StringValue) Type() Type { return &StringType{} }

// EnumValue is an enum constant, identified by the index of its value in the
// enum type's declaration order.
type EnumValue struct {
	EnumType *EnumType
	Index    int
}

func (*EnumValue) sceneValue() {}

func (v *EnumValue) Type() Type { return v.EnumType }

// Name returns the symbolic name of the enum value.
func (v *EnumValue) Name() string { return v.EnumType.Values[v.Index].Name }

// VectorValue is a vector constant.
type VectorValue struct {
	VectorType *VectorType
	Components []Value
}

func (*VectorValue) sceneValue() {}

func (v *VectorValue) Type() Type { return v.VectorType }

// MatrixValue is a matrix constant; the components are the column values.
type MatrixValue struct {
	MatrixType *MatrixType
	Components []Value
}

func (*MatrixValue) sceneValue() {}

func (v *MatrixValue) Type() Type { return v.MatrixType }

// ColorValue is a color constant with three float components.
type ColorValue struct {
	Components []Value
}

func (*ColorValue) sceneValue() {}

func (*ColorValue) Type() Type { return &ColorType{} }

// StructValue is a struct constant; the components are the field values in
// declaration order.
type StructValue struct {
	StructType *StructType
	Components []Value
}

func (*StructValue) sceneValue() {}

func (v *StructValue) Type() Type { return v.StructType }

// ArrayValue is an array constant.
type ArrayValue struct {
	ArrayType *ArrayType
	Elements  []Value
}

func (*ArrayValue) sceneValue() {}

func (v *ArrayValue) Type() Type { return v.ArrayType }

// TextureValue is a texture resource constant referencing a texture entity.
type TextureValue struct {
	TextureType *TextureType
	Tag         Tag
}

func (*TextureValue) sceneValue() {}

func (v *TextureValue) Type() Type { return v.TextureType }

// LightProfileValue is a light profile resource constant.
type LightProfileValue struct {
	Tag Tag
}

func (*LightProfileValue) sceneValue() {}

func (*LightProfileValue) Type() Type { return &LightProfileType{} }

// BsdfMeasurementValue is a bsdf measurement resource constant.
type BsdfMeasurementValue struct {
	Tag Tag
}

func (*BsdfMeasurementValue) sceneValue() {}

func (*BsdfMeasurementValue) Type() Type { return &BsdfMeasurementType{} }

// InvalidRefValue is the invalid reference of a reference type (a
// distribution function or resource type).
type InvalidRefValue struct {
	RefType Type
}

func (*InvalidRefValue) sceneValue() {}

func (v *InvalidRefValue) Type() Type { return v.RefType }

// Compound returns the ordered component list of a compound value
// (vector, matrix, color or struct) and reports whether v is one.
func Compound(v Value) ([]Value, bool) {
	switch v := v.(type) {
	case *VectorValue:
		return v.Components, true
	case *MatrixValue:
		return v.Components, true
	case *ColorValue:
		return v.Components, true
	case *StructValue:
		return v.Components, true
	default:
		return nil, false
	}
}
