package ast

// Value represents a literal payload.
type Value interface {
	astValue()
}

// BoolValue is a bool literal payload.
type BoolValue struct {
	V bool
}

func (*BoolValue) astValue() {}

// IntValue is an int literal payload.
type IntValue struct {
	V int32
}

func (*IntValue) astValue() {}

// FloatValue is a float literal payload.
type FloatValue struct {
	V float32
}

func (*FloatValue) astValue() {}

// DoubleValue is a double literal payload.
type DoubleValue struct {
	V float64
}

func (*DoubleValue) astValue() {}

// StringValue is a string literal payload.
type StringValue struct {
	V string
}

func (*StringValue) astValue() {}

// VectorValue is a vector literal payload.
type VectorValue struct {
	Type       *VectorType
	Components []Value
}

func (*VectorValue) astValue() {}

// InvalidRefValue is the invalid reference of a reference type.
type InvalidRefValue struct {
	Type Type
}

func (*InvalidRefValue) astValue() {}

// GammaMode is the color-space correction applied when sampling a texture.
type GammaMode uint8

const (
	GammaDefault GammaMode = iota
	GammaLinear
	GammaSrgb
)

// TextureValue is a texture resource literal. When the backing file is not
// available, URL is empty and Tag plus Hash preserve the resource identity
// for later re-binding.
type TextureValue struct {
	Type  *TextureType
	URL   string
	Gamma GammaMode
	Tag   uint32
	Hash  string
}

func (*TextureValue) astValue() {}

// LightProfileValue is a light profile resource literal.
type LightProfileValue struct {
	Type *LightProfileType
	URL  string
	Tag  uint32
	Hash string
}

func (*LightProfileValue) astValue() {}

// BsdfMeasurementValue is a measured BSDF resource literal.
type BsdfMeasurementValue struct {
	Type *BsdfMeasurementType
	URL  string
	Tag  uint32
	Hash string
}

func (*BsdfMeasurementValue) astValue() {}

// ValueFactory creates literal payloads for one module.
type ValueFactory struct {
	tf *TypeFactory
}

// Bool creates a bool value.
func (f *ValueFactory) Bool(v bool) *BoolValue { return &BoolValue{V: v} }

// Int creates an int value.
func (f *ValueFactory) Int(v int32) *IntValue { return &IntValue{V: v} }

// Float creates a float value.
func (f *ValueFactory) Float(v float32) *FloatValue { return &FloatValue{V: v} }

// Double creates a double value.
func (f *ValueFactory) Double(v float64) *DoubleValue { return &DoubleValue{V: v} }

// String creates a string value.
func (f *ValueFactory) String(v string) *StringValue { return &StringValue{V: v} }

// InvalidRef creates the invalid reference of a reference type.
func (f *ValueFactory) InvalidRef(t Type) *InvalidRefValue {
	return &InvalidRefValue{Type: t}
}

// Texture creates a texture resource value.
func (f *ValueFactory) Texture(t *TextureType, url string, gamma GammaMode, tag uint32, hash string) *TextureValue {
	return &TextureValue{Type: t, URL: url, Gamma: gamma, Tag: tag, Hash: hash}
}

// LightProfile creates a light profile resource value.
func (f *ValueFactory) LightProfile(t *LightProfileType, url string, tag uint32, hash string) *LightProfileValue {
	return &LightProfileValue{Type: t, URL: url, Tag: tag, Hash: hash}
}

// BsdfMeasurement creates a measured BSDF resource value.
func (f *ValueFactory) BsdfMeasurement(t *BsdfMeasurementType, url string, tag uint32, hash string) *BsdfMeasurementValue {
	return &BsdfMeasurementValue{Type: t, URL: url, Tag: tag, Hash: hash}
}

// IntVector2Zero creates the int2(0, 0) value used as a default tile index.
func (f *ValueFactory) IntVector2Zero() *VectorValue {
	t := f.tf.Vector(f.tf.Int(), 2)
	return &VectorValue{
		Type:       t,
		Components: []Value{f.Int(0), f.Int(0)},
	}
}
