package scene

// Modifiers are type modifiers carried by alias types.
type Modifiers uint32

const (
	// ModUniform marks a uniform type.
	ModUniform Modifiers = 1 << iota
	// ModVarying marks a varying type.
	ModVarying
)

// Type represents a type in the scene type system.
type Type interface {
	sceneType()
}

// AliasType wraps another type under a name and/or with modifiers.
// Modifiers live only on aliases; AllModifiers collects them along the chain.
type AliasType struct {
	Aliased Type
	Name    string
	Mods    Modifiers
}

func (*AliasType) sceneType() {}

// BoolType represents the bool type.
type BoolType struct{}

func (*BoolType) sceneType() {}

// IntType represents the int type.
type IntType struct{}

func (*IntType) sceneType() {}

// FloatType represents the float type.
type FloatType struct{}

func (*FloatType) sceneType() {}

// DoubleType represents the double type.
type DoubleType struct{}

func (*DoubleType) sceneType() {}

// StringType represents the string type.
type StringType struct{}

func (*StringType) sceneType() {}

// ColorType represents the color type.
type ColorType struct{}

func (*ColorType) sceneType() {}

// PredefinedEnum identifies the enum types the language itself defines.
type PredefinedEnum uint8

const (
	// EnumUser is any user-defined enum type.
	EnumUser PredefinedEnum = iota
	// EnumTexGammaMode is the texture gamma-mode enum.
	EnumTexGammaMode
	// EnumIntensityMode is the light intensity-mode enum.
	EnumIntensityMode
)

// EnumValueDef is one declared value of an enum type.
type EnumValueDef struct {
	Name string
	Code int32
}

// EnumType represents an enum type.
type EnumType struct {
	Symbol     string
	Predefined PredefinedEnum
	Values     []EnumValueDef
}

func (*EnumType) sceneType() {}

// VectorType represents a vector of 2, 3 or 4 atomic elements.
type VectorType struct {
	Elem Type // atomic element type
	Size int
}

func (*VectorType) sceneType() {}

// MatrixType represents a matrix as a number of column vectors.
type MatrixType struct {
	Elem    *VectorType // column type
	Columns int
}

func (*MatrixType) sceneType() {}

// PredefinedStruct identifies the struct types the language itself defines.
type PredefinedStruct uint8

const (
	// StructUser is any user-defined struct type.
	StructUser PredefinedStruct = iota
	// StructMaterialEmission is the material_emission struct.
	StructMaterialEmission
	// StructMaterialSurface is the material_surface struct.
	StructMaterialSurface
	// StructMaterialVolume is the material_volume struct.
	StructMaterialVolume
	// StructMaterialGeometry is the material_geometry struct.
	StructMaterialGeometry
	// StructMaterial is the material struct.
	StructMaterial
)

// StructField is one declared field of a struct type.
type StructField struct {
	Name string
	Type Type
}

// StructType represents a struct type.
type StructType struct {
	Symbol     string
	Predefined PredefinedStruct
	Fields     []StructField
}

func (*StructType) sceneType() {}

// TextureShape represents the dimensionality of a texture type.
type TextureShape uint8

const (
	Texture2D TextureShape = iota
	Texture3D
	TextureCube
	TexturePtex
)

// TextureType represents a texture resource type.
type TextureType struct {
	Shape TextureShape
}

func (*TextureType) sceneType() {}

// LightProfileType represents the light_profile resource type.
type LightProfileType struct{}

func (*LightProfileType) sceneType() {}

// BsdfType represents the bsdf distribution type.
type BsdfType struct{}

func (*BsdfType) sceneType() {}

// EdfType represents the edf distribution type.
type EdfType struct{}

func (*EdfType) sceneType() {}

// VdfType represents the vdf distribution type.
type VdfType struct{}

func (*VdfType) sceneType() {}

// BsdfMeasurementType represents the bsdf_measurement resource type.
type BsdfMeasurementType struct{}

func (*BsdfMeasurementType) sceneType() {}

// ArrayType represents an array type. A deferred-sized array carries the
// symbolic size name instead of an immediate element count.
type ArrayType struct {
	Elem         Type
	Size         int    // valid when DeferredSize is empty
	DeferredSize string // symbolic size name, empty for immediate-sized arrays
}

func (*ArrayType) sceneType() {}

// Immediate reports whether the array has a compile-time size.
func (a *ArrayType) Immediate() bool { return a.DeferredSize == "" }

// SkipAliases unwraps all alias types around t.
func SkipAliases(t Type) Type {
	for {
		a, ok := t.(*AliasType)
		if !ok {
			return t
		}
		t = a.Aliased
	}
}

// AllModifiers collects the modifiers of the whole alias chain of t.
func AllModifiers(t Type) Modifiers {
	var mods Modifiers
	for {
		a, ok := t.(*AliasType)
		if !ok {
			return mods
		}
		mods |= a.Mods
		t = a.Aliased
	}
}
