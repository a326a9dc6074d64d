package astbuild

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/gogpu/shade/ast"
	"github.com/gogpu/shade/scene"
)

// TransformValue materializes a scene constant as an AST expression:
// scalars become literals, enum values become scoped references, compounds
// and arrays become constructor calls, and resources resolve through the
// database or fall back to tag-carrying literals.
func (b *Builder) TransformValue(value scene.Value) ast.Expression {
	switch value := value.(type) {
	case *scene.BoolValue:
		return b.ef.Literal(b.vf.Bool(value.V))

	case *scene.IntValue:
		return b.ef.Literal(b.vf.Int(value.V))

	case *scene.FloatValue:
		return b.ef.Literal(b.vf.Float(value.V))

	case *scene.DoubleValue:
		return b.ef.Literal(b.vf.Double(value.V))

	case *scene.StringValue:
		return b.ef.Literal(b.vf.String(value.V))

	case *scene.EnumValue:
		// enum values are syntactically names, not literals
		sname := b.SimpleName(value.Name())
		qname := b.ScopeName(value.EnumType.Symbol)
		qname.AddComponent(sname)
		return b.toReference(qname, b.convertEnumType(value.EnumType))

	case *scene.VectorValue, *scene.MatrixValue, *scene.ColorValue, *scene.StructValue:
		// compound values become constructor calls
		components, _ := scene.Compound(value)
		ref := b.ef.Reference(b.TypeName(value.Type()))
		call := b.ef.Call(ref)
		for _, c := range components {
			call.AddArgument(b.ef.PositionalArgument(b.TransformValue(c)))
		}
		return call

	case *scene.ArrayValue:
		// array constructor; the element type name is incomplete, the
		// size is inferred from the argument count
		tn := b.TypeName(value.ArrayType.Elem)
		tn.SetIncompleteArray()

		call := b.ef.Call(b.ef.Reference(tn))
		for _, e := range value.Elements {
			call.AddArgument(b.ef.PositionalArgument(b.TransformValue(e)))
		}
		return call

	case *scene.InvalidRefValue:
		vv := b.vf.InvalidRef(b.transformType(value.RefType))
		return b.ef.Literal(vv)

	case *scene.TextureValue:
		return b.transformTexture(value)

	case *scene.LightProfileValue:
		return b.transformFileResource(value, value.Tag)

	case *scene.BsdfMeasurementValue:
		return b.transformFileResource(value, value.Tag)

	default:
		b.log.Error("unexpected value kind", "value", fmt.Sprintf("%T", value))
		return b.ef.Invalid()
	}
}

// transformTexture materializes a texture value. A file-backed texture
// becomes a constructor call with the filename and gamma mode; an in-memory
// texture becomes a literal carrying the raw tag and a content hash.
func (b *Builder) transformTexture(value *scene.TextureValue) ast.Expression {
	call := b.ef.Call(b.ef.Reference(b.TypeName(value.TextureType)))

	// unresolved or retargeted textures are stored with an invalid tag
	tag := value.Tag
	if tag.Invalid() || b.trans.ClassOf(tag) != scene.ClassTexture {
		vv := b.vf.InvalidRef(b.transformType(value.TextureType))
		return b.ef.Literal(vv)
	}

	url, gamma := b.textureNameAndGamma(tag)
	if url == "" {
		// no file, keep the tag and a hash over the version stamps
		texture, _ := b.trans.Texture(tag)
		var imageVersion scene.TagVersion
		if texture != nil {
			imageVersion = b.trans.Version(texture.Image)
		}
		tt := b.transformType(value.TextureType).(*ast.TextureType)
		vv := b.vf.Texture(tt, "", gamma, uint32(tag),
			resourceHash(b.trans.Version(tag), imageVersion))
		return b.ef.Literal(vv)
	}

	call.AddArgument(b.ef.PositionalArgument(b.ef.Literal(b.vf.String(url))))
	call.AddArgument(b.ef.PositionalArgument(b.gammaReference(gamma)))
	return call
}

// textureNameAndGamma resolves the original filename and gamma mode of a
// texture tag. Resolution failures are logged and yield an empty name.
func (b *Builder) textureNameAndGamma(tag scene.Tag) (string, ast.GammaMode) {
	texture, ok := b.trans.Texture(tag)
	if !ok {
		b.log.Error("incorrect type for texture resource", "name", b.trans.NameOf(tag))
		return "", ast.GammaDefault
	}

	imageTag := texture.Image
	if imageTag.Invalid() {
		return "", gammaMode(texture.Gamma)
	}
	image, ok := b.trans.Image(imageTag)
	if !ok {
		b.log.Error("incorrect type for image resource", "name", b.trans.NameOf(imageTag))
		return "", gammaMode(texture.Gamma)
	}
	return image.OriginalFilename, gammaMode(texture.Gamma)
}

// gammaMode converts a gamma override value into the language constant.
func gammaMode(override float32) ast.GammaMode {
	switch override {
	case 1.0:
		return ast.GammaLinear
	case 2.2:
		return ast.GammaSrgb
	default:
		return ast.GammaDefault
	}
}

// gammaReference builds the ::tex::gamma_* scoped reference for a gamma
// mode, with the predefined enum type attached for the name importer.
func (b *Builder) gammaReference(gamma ast.GammaMode) *ast.Reference {
	var name string
	switch gamma {
	case ast.GammaDefault:
		name = "gamma_default"
	case ast.GammaLinear:
		name = "gamma_linear"
	case ast.GammaSrgb:
		name = "gamma_srgb"
	default:
		b.log.Error("unexpected gamma mode", "gamma", gamma)
		name = b.st.ErrorSymbol().Name()
	}

	qname := b.nf.QualifiedName()
	qname.AddComponent(b.SimpleName("tex"))
	qname.AddComponent(b.nf.SimpleName(b.st.Symbol(name)))
	qname.Absolute = true

	return b.toReference(qname, b.tf.PredefinedEnum(ast.PredefinedTexGammaMode))
}

// transformFileResource materializes a light profile or bsdf measurement.
func (b *Builder) transformFileResource(value scene.Value, tag scene.Tag) ast.Expression {
	lightProfile := false
	var rtype scene.Type
	switch value.(type) {
	case *scene.LightProfileValue:
		lightProfile = true
		rtype = &scene.LightProfileType{}
	default:
		rtype = &scene.BsdfMeasurementType{}
	}

	call := b.ef.Call(b.ef.Reference(b.TypeName(rtype)))

	if tag.Invalid() {
		vv := b.vf.InvalidRef(b.transformType(rtype))
		return b.ef.Literal(vv)
	}

	url := b.fileResourceName(tag, lightProfile)
	if url == "" {
		// no file, keep the tag and a hash over the version stamp
		hash := resourceHash(b.trans.Version(tag))
		var vv ast.Value
		if lightProfile {
			vv = b.vf.LightProfile(b.tf.LightProfile(), "", uint32(tag), hash)
		} else {
			vv = b.vf.BsdfMeasurement(b.tf.BsdfMeasurement(), "", uint32(tag), hash)
		}
		return b.ef.Literal(vv)
	}

	call.AddArgument(b.ef.PositionalArgument(b.ef.Literal(b.vf.String(url))))
	return call
}

// fileResourceName resolves the original filename behind a light profile or
// bsdf measurement tag. Resolution failures are logged and yield "".
func (b *Builder) fileResourceName(tag scene.Tag, lightProfile bool) string {
	if lightProfile {
		lp, ok := b.trans.LightProfile(tag)
		if !ok {
			b.log.Error("incorrect type for light profile resource", "name", b.trans.NameOf(tag))
			return ""
		}
		return lp.OriginalFilename
	}
	bm, ok := b.trans.BsdfMeasurement(tag)
	if !ok {
		b.log.Error("incorrect type for BSDF measurement resource", "name", b.trans.NameOf(tag))
		return ""
	}
	return bm.OriginalFilename
}

// resourceHash derives a stable content hash from entity version stamps. It
// preserves resource identity for re-binding without a file round-trip.
func resourceHash(versions ...scene.TagVersion) string {
	h := xxh3.New()
	var buf [8]byte
	for _, v := range versions {
		binary.LittleEndian.PutUint32(buf[0:4], v.Transaction)
		binary.LittleEndian.PutUint32(buf[4:8], v.Version)
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
