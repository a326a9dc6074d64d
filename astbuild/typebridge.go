package astbuild

import (
	"fmt"
	"strconv"

	"github.com/gogpu/shade/ast"
	"github.com/gogpu/shade/scene"
)

// typeNameString renders the canonical textual name of a scene type, e.g.
// "float3" for a vector of three floats, "float3x2" for a matrix of three
// columns of two rows, "texture_2d" for a 2-D texture.
func (b *Builder) typeNameString(t scene.Type) string {
	switch t := t.(type) {
	case *scene.BoolType:
		return "bool"
	case *scene.IntType:
		return "int"
	case *scene.EnumType:
		return t.Symbol
	case *scene.FloatType:
		return "float"
	case *scene.DoubleType:
		return "double"
	case *scene.StringType:
		return "string"
	case *scene.LightProfileType:
		return "light_profile"
	case *scene.BsdfType:
		return "bsdf"
	case *scene.EdfType:
		return "edf"
	case *scene.VdfType:
		return "vdf"
	case *scene.BsdfMeasurementType:
		return "bsdf_measurement"
	case *scene.ColorType:
		return "color"
	case *scene.VectorType:
		return b.typeNameString(t.Elem) + strconv.Itoa(t.Size)
	case *scene.MatrixType:
		return b.typeNameString(t.Elem.Elem) +
			strconv.Itoa(t.Columns) + "x" + strconv.Itoa(t.Elem.Size)
	case *scene.StructType:
		switch t.Predefined {
		case scene.StructMaterialEmission:
			return "material_emission"
		case scene.StructMaterialSurface:
			return "material_surface"
		case scene.StructMaterialVolume:
			return "material_volume"
		case scene.StructMaterialGeometry:
			return "material_geometry"
		case scene.StructMaterial:
			return "material"
		default:
			return t.Symbol
		}
	case *scene.TextureType:
		switch t.Shape {
		case scene.Texture2D:
			return "texture_2d"
		case scene.Texture3D:
			return "texture_3d"
		case scene.TextureCube:
			return "texture_cube"
		case scene.TexturePtex:
			return "texture_ptex"
		}
		b.log.Error("unexpected texture shape", "shape", t.Shape)
		return ""
	case *scene.ArrayType:
		name := b.typeNameString(t.Elem) + "["
		if t.Immediate() {
			name += strconv.Itoa(t.Size)
		} else {
			name += t.DeferredSize
		}
		return name + "]"
	default:
		b.log.Error("unexpected type kind", "type", fmt.Sprintf("%T", t))
		return ""
	}
}

// TypeName builds a type-name AST node for a scene type. Alias wrappers are
// stripped; their modifiers become the name's qualifier. For arrays the
// element type is named and the size is attached as a literal or as a
// reference to the deferred-size symbol.
func (b *Builder) TypeName(t scene.Type) *ast.TypeName {
	mods := scene.AllModifiers(t)
	t = scene.SkipAliases(t)

	if arr, ok := t.(*scene.ArrayType); ok {
		tn := b.TypeName(arr.Elem)
		setQualifier(tn, mods)

		if arr.Immediate() {
			tn.ArraySize = b.ef.Literal(b.vf.Int(int32(arr.Size)))
		} else {
			sym := b.st.Symbol(arr.DeferredSize)
			sname := b.nf.SimpleName(sym)
			qname := b.nf.QualifiedName()
			qname.AddComponent(sname)
			tn.ArraySize = b.ef.Reference(b.nf.TypeName(qname))
		}
		return tn
	}

	name := b.typeNameString(t)
	if name == "" {
		// already reported; keep the tree complete
		qname := b.nf.QualifiedName()
		qname.AddComponent(b.nf.SimpleName(b.st.ErrorSymbol()))
		return b.nf.TypeName(qname)
	}
	tn := b.nf.TypeName(b.QualifiedName(name))
	setQualifier(tn, mods)
	return tn
}

func setQualifier(tn *ast.TypeName, mods scene.Modifiers) {
	if mods&scene.ModUniform != 0 {
		tn.Qualifier = ast.QualifierUniform
	} else if mods&scene.ModVarying != 0 {
		tn.Qualifier = ast.QualifierVarying
	}
}

// transformType maps the scene types that appear as literal payloads to the
// compiler's type system. User-defined aliases, enums, arrays and structs
// must go through name-based construction instead and are rejected here.
func (b *Builder) transformType(t scene.Type) ast.Type {
	switch t := t.(type) {
	case *scene.AliasType, *scene.EnumType, *scene.ArrayType, *scene.StructType:
		b.log.Error("user defined types not allowed here", "type", fmt.Sprintf("%T", t))
		return b.tf.Error()
	case *scene.BoolType:
		return b.tf.Bool()
	case *scene.IntType:
		return b.tf.Int()
	case *scene.FloatType:
		return b.tf.Float()
	case *scene.DoubleType:
		return b.tf.Double()
	case *scene.StringType:
		return b.tf.String()
	case *scene.ColorType:
		return b.tf.Color()
	case *scene.VectorType:
		return b.tf.Vector(b.transformType(t.Elem), t.Size)
	case *scene.MatrixType:
		elem := b.tf.Vector(b.transformType(t.Elem.Elem), t.Elem.Size)
		return b.tf.Matrix(elem, t.Columns)
	case *scene.TextureType:
		switch t.Shape {
		case scene.Texture2D:
			return b.tf.Texture(ast.TexShape2D)
		case scene.Texture3D:
			return b.tf.Texture(ast.TexShape3D)
		case scene.TextureCube:
			return b.tf.Texture(ast.TexShapeCube)
		case scene.TexturePtex:
			return b.tf.Texture(ast.TexShapePtex)
		}
		b.log.Error("unexpected texture shape", "shape", t.Shape)
		return b.tf.Error()
	case *scene.LightProfileType:
		return b.tf.LightProfile()
	case *scene.BsdfMeasurementType:
		return b.tf.BsdfMeasurement()
	case *scene.BsdfType:
		return b.tf.Bsdf()
	case *scene.EdfType:
		return b.tf.Edf()
	case *scene.VdfType:
		return b.tf.Vdf()
	default:
		b.log.Error("unsupported type kind", "type", fmt.Sprintf("%T", t))
		return b.tf.Error()
	}
}

// convertEnumType maps a scene enum type to the compiler's enum type.
// Predefined enums map to the type factory's fixed instances; user enums are
// copied value for value, preserving declaration order and codes.
func (b *Builder) convertEnumType(t *scene.EnumType) *ast.EnumType {
	switch t.Predefined {
	case scene.EnumTexGammaMode:
		return b.tf.PredefinedEnum(ast.PredefinedTexGammaMode)
	case scene.EnumIntensityMode:
		return b.tf.PredefinedEnum(ast.PredefinedIntensityMode)
	default:
		res := b.tf.Enum(b.st.UserTypeSymbol(t.Symbol))
		for _, v := range t.Values {
			res.AddValue(b.st.Symbol(v.Name), v.Code)
		}
		return res
	}
}
