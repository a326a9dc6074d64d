package ast

import "strconv"

// Type represents a type in the compiler's type system. This hierarchy is
// independent of the scene type system (package scene); the builder in
// package astbuild owns the mapping between the two.
type Type interface {
	astType()
}

// ErrorType is the type of failed constructions.
type ErrorType struct{}

func (*ErrorType) astType() {}

// BoolType represents bool.
type BoolType struct{}

func (*BoolType) astType() {}

// IntType represents int.
type IntType struct{}

func (*IntType) astType() {}

// FloatType represents float.
type FloatType struct{}

func (*FloatType) astType() {}

// DoubleType represents double.
type DoubleType struct{}

func (*DoubleType) astType() {}

// StringType represents string.
type StringType struct{}

func (*StringType) astType() {}

// ColorType represents color.
type ColorType struct{}

func (*ColorType) astType() {}

// VectorType represents a vector of atomic elements.
type VectorType struct {
	Elem Type
	Size int
}

func (*VectorType) astType() {}

// MatrixType represents a matrix of column vectors.
type MatrixType struct {
	Elem    *VectorType
	Columns int
}

func (*MatrixType) astType() {}

// PredefinedEnum identifies the enum types predefined by the language.
type PredefinedEnum uint8

const (
	PredefinedNone PredefinedEnum = iota
	PredefinedTexGammaMode
	PredefinedIntensityMode
)

// EnumValue is one declared value of an enum type.
type EnumValue struct {
	Sym  *Symbol
	Code int32
}

// EnumType represents an enum type.
type EnumType struct {
	Sym        *Symbol
	Predefined PredefinedEnum
	Values     []EnumValue
}

func (*EnumType) astType() {}

// AddValue appends a declared value to the enum.
func (t *EnumType) AddValue(sym *Symbol, code int32) {
	t.Values = append(t.Values, EnumValue{Sym: sym, Code: code})
}

// TextureShape is the dimensionality of a texture type.
type TextureShape uint8

const (
	TexShape2D TextureShape = iota
	TexShape3D
	TexShapeCube
	TexShapePtex
)

// TextureType represents a texture resource type.
type TextureType struct {
	Shape TextureShape
}

func (*TextureType) astType() {}

// LightProfileType represents light_profile.
type LightProfileType struct{}

func (*LightProfileType) astType() {}

// BsdfType represents bsdf.
type BsdfType struct{}

func (*BsdfType) astType() {}

// EdfType represents edf.
type EdfType struct{}

func (*EdfType) astType() {}

// VdfType represents vdf.
type VdfType struct{}

func (*VdfType) astType() {}

// BsdfMeasurementType represents bsdf_measurement.
type BsdfMeasurementType struct{}

func (*BsdfMeasurementType) astType() {}

// TypeFactory creates and deduplicates types for one module. Structurally
// identical types returned by the factory compare equal by pointer.
type TypeFactory struct {
	st    *SymbolTable
	types map[string]Type

	gammaMode     *EnumType
	intensityMode *EnumType
}

func newTypeFactory(st *SymbolTable) *TypeFactory {
	f := &TypeFactory{
		st:    st,
		types: make(map[string]Type, 16),
	}
	f.gammaMode = f.predefine("::tex::gamma_mode", PredefinedTexGammaMode,
		"gamma_default", "gamma_linear", "gamma_srgb")
	f.intensityMode = f.predefine("intensity_mode", PredefinedIntensityMode,
		"intensity_radiant_exitance", "intensity_power")
	return f
}

func (f *TypeFactory) predefine(name string, id PredefinedEnum, values ...string) *EnumType {
	e := &EnumType{Sym: f.st.Symbol(name), Predefined: id}
	for i, v := range values {
		e.AddValue(f.st.Symbol(v), int32(i))
	}
	return e
}

func (f *TypeFactory) get(key string, make func() Type) Type {
	if t, ok := f.types[key]; ok {
		return t
	}
	t := make()
	f.types[key] = t
	return t
}

// Error returns the error type.
func (f *TypeFactory) Error() *ErrorType {
	return f.get("error", func() Type { return &ErrorType{} }).(*ErrorType)
}

// Bool returns the bool type.
func (f *TypeFactory) Bool() *BoolType {
	return f.get("bool", func() Type { return &BoolType{} }).(*BoolType)
}

// Int returns the int type.
func (f *TypeFactory) Int() *IntType {
	return f.get("int", func() Type { return &IntType{} }).(*IntType)
}

// Float returns the float type.
func (f *TypeFactory) Float() *FloatType {
	return f.get("float", func() Type { return &FloatType{} }).(*FloatType)
}

// Double returns the double type.
func (f *TypeFactory) Double() *DoubleType {
	return f.get("double", func() Type { return &DoubleType{} }).(*DoubleType)
}

// String returns the string type.
func (f *TypeFactory) String() *StringType {
	return f.get("string", func() Type { return &StringType{} }).(*StringType)
}

// Color returns the color type.
func (f *TypeFactory) Color() *ColorType {
	return f.get("color", func() Type { return &ColorType{} }).(*ColorType)
}

// Vector returns the vector type of size elements of elem.
func (f *TypeFactory) Vector(elem Type, size int) *VectorType {
	key := "vec:" + strconv.Itoa(size) + ":" + f.atomicKey(elem)
	return f.get(key, func() Type { return &VectorType{Elem: elem, Size: size} }).(*VectorType)
}

// Matrix returns the matrix type of columns columns of elem.
func (f *TypeFactory) Matrix(elem *VectorType, columns int) *MatrixType {
	key := "mat:" + strconv.Itoa(columns) + "x" + strconv.Itoa(elem.Size) + ":" + f.atomicKey(elem.Elem)
	return f.get(key, func() Type { return &MatrixType{Elem: elem, Columns: columns} }).(*MatrixType)
}

// Texture returns the texture type of the given shape.
func (f *TypeFactory) Texture(shape TextureShape) *TextureType {
	key := "tex:" + strconv.Itoa(int(shape))
	return f.get(key, func() Type { return &TextureType{Shape: shape} }).(*TextureType)
}

// LightProfile returns the light_profile type.
func (f *TypeFactory) LightProfile() *LightProfileType {
	return f.get("light_profile", func() Type { return &LightProfileType{} }).(*LightProfileType)
}

// Bsdf returns the bsdf type.
func (f *TypeFactory) Bsdf() *BsdfType {
	return f.get("bsdf", func() Type { return &BsdfType{} }).(*BsdfType)
}

// Edf returns the edf type.
func (f *TypeFactory) Edf() *EdfType {
	return f.get("edf", func() Type { return &EdfType{} }).(*EdfType)
}

// Vdf returns the vdf type.
func (f *TypeFactory) Vdf() *VdfType {
	return f.get("vdf", func() Type { return &VdfType{} }).(*VdfType)
}

// BsdfMeasurement returns the bsdf_measurement type.
func (f *TypeFactory) BsdfMeasurement() *BsdfMeasurementType {
	return f.get("bsdf_measurement", func() Type { return &BsdfMeasurementType{} }).(*BsdfMeasurementType)
}

// Enum creates a new user-defined enum type. User enums are not
// deduplicated; each call creates a distinct type.
func (f *TypeFactory) Enum(sym *Symbol) *EnumType {
	return &EnumType{Sym: sym, Predefined: PredefinedNone}
}

// PredefinedEnum returns the factory's fixed instance of a predefined enum,
// or nil for PredefinedNone.
func (f *TypeFactory) PredefinedEnum(id PredefinedEnum) *EnumType {
	switch id {
	case PredefinedTexGammaMode:
		return f.gammaMode
	case PredefinedIntensityMode:
		return f.intensityMode
	default:
		return nil
	}
}

func (f *TypeFactory) atomicKey(t Type) string {
	switch t.(type) {
	case *BoolType:
		return "bool"
	case *IntType:
		return "int"
	case *FloatType:
		return "float"
	case *DoubleType:
		return "double"
	default:
		return "other"
	}
}
