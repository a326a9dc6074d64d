package scene

// Tag is the opaque stable identifier of an entity in the scene database.
// The zero tag is invalid.
type Tag uint32

// Invalid reports whether the tag references nothing.
func (t Tag) Invalid() bool { return t == 0 }

// TagVersion is the version stamp of a stored entity: the transaction that
// last touched it plus a per-entity edit counter.
type TagVersion struct {
	Transaction uint32
	Version     uint32
}

// ClassID identifies the class of a stored entity.
type ClassID uint32

const (
	ClassNone ClassID = iota
	ClassFunctionDefinition
	ClassFunctionCall
	ClassMaterialDefinition
	ClassMaterialInstance
	ClassTexture
	ClassImage
	ClassLightProfile
	ClassBsdfMeasurement
)

// FunctionDefinition is a stored function definition.
type FunctionDefinition struct {
	// Name is the fully-qualified mangled name, including the signature
	// suffix, e.g. "::df::spot_edf(color,float,bool,float3x3,string)".
	Name string

	// OriginalName is the pre-export name if the definition was re-exported
	// under another name, empty otherwise.
	OriginalName string

	Semantic       Semantic
	ParameterCount int
	ParameterNames []string
	ReturnType     Type

	// Defaults holds the default argument expressions, keyed by parameter
	// name where present.
	Defaults *ExprList
}

// FunctionCall is a stored call of a function definition.
type FunctionCall struct {
	Definition     Tag
	ParameterCount int
	Arguments      *ExprList
}

// MaterialDefinition is a stored material definition.
type MaterialDefinition struct {
	Name           string
	OriginalName   string
	ParameterCount int
	ParameterNames []string
	Defaults       *ExprList
}

// MaterialInstance is a stored instance of a material definition.
// Its arguments are always named.
type MaterialInstance struct {
	Definition Tag
	Arguments  *ExprList
}

// Texture is a stored texture resource. Gamma is the override value applied
// when sampling; zero means no override.
type Texture struct {
	Image Tag
	Gamma float32
}

// Image is the file-backed pixel data of a texture.
type Image struct {
	OriginalFilename string
}

// LightProfile is a stored light profile resource.
type LightProfile struct {
	OriginalFilename string
}

// BsdfMeasurement is a stored measured BSDF resource.
type BsdfMeasurement struct {
	OriginalFilename string
}

// Transaction provides read-only, tag-keyed access to stored entities.
// Implementations must return consistent results for the duration of one
// AST build; snapshot consistency across builds is the caller's concern.
type Transaction interface {
	// ClassOf returns the class of the entity behind tag, or ClassNone.
	ClassOf(tag Tag) ClassID

	// NameOf returns the database name of the entity behind tag, or "".
	NameOf(tag Tag) string

	// Version returns the version stamp of the entity behind tag.
	Version(tag Tag) TagVersion

	FunctionDefinition(tag Tag) (*FunctionDefinition, bool)
	FunctionCall(tag Tag) (*FunctionCall, bool)
	MaterialDefinition(tag Tag) (*MaterialDefinition, bool)
	MaterialInstance(tag Tag) (*MaterialInstance, bool)
	Texture(tag Tag) (*Texture, bool)
	Image(tag Tag) (*Image, bool)
	LightProfile(tag Tag) (*LightProfile, bool)
	BsdfMeasurement(tag Tag) (*BsdfMeasurement, bool)
}
