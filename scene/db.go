package scene

import "fmt"

// MemDB is an in-memory scene database implementing Transaction.
//
// It models exactly the slice of the database the AST builder consumes:
// named, versioned, class-tagged entities. It is not safe for concurrent
// mutation; readers and writers must be externally synchronized.
type MemDB struct {
	entries map[Tag]*entry
	byName  map[string]Tag
	nextTag Tag
	txnID   uint32
}

type entry struct {
	class   ClassID
	name    string
	version uint32
	value   any
}

// NewMemDB creates an empty in-memory database.
func NewMemDB() *MemDB {
	return &MemDB{
		entries: make(map[Tag]*entry),
		byName:  make(map[string]Tag),
		nextTag: 1,
		txnID:   1,
	}
}

// Store adds an entity under name and returns its tag. The entity's class is
// derived from its dynamic type; unknown types are rejected.
func (db *MemDB) Store(name string, value any) (Tag, error) {
	class := classOf(value)
	if class == ClassNone {
		return 0, fmt.Errorf("scene: cannot store value of type %T", value)
	}
	tag := db.nextTag
	db.nextTag++
	db.entries[tag] = &entry{class: class, name: name, version: 1, value: value}
	if name != "" {
		db.byName[name] = tag
	}
	return tag, nil
}

// MustStore is Store for static test and bootstrap data; it panics on error.
func (db *MemDB) MustStore(name string, value any) Tag {
	tag, err := db.Store(name, value)
	if err != nil {
		panic(err)
	}
	return tag
}

// Touch bumps the version of the entity behind tag, as an edit would.
func (db *MemDB) Touch(tag Tag) {
	if e, ok := db.entries[tag]; ok {
		e.version++
	}
}

// Lookup returns the tag stored under name, or the invalid tag.
func (db *MemDB) Lookup(name string) Tag {
	return db.byName[name]
}

// ClassOf implements Transaction.
func (db *MemDB) ClassOf(tag Tag) ClassID {
	if e, ok := db.entries[tag]; ok {
		return e.class
	}
	return ClassNone
}

// NameOf implements Transaction.
func (db *MemDB) NameOf(tag Tag) string {
	if e, ok := db.entries[tag]; ok {
		return e.name
	}
	return ""
}

// Version implements Transaction.
func (db *MemDB) Version(tag Tag) TagVersion {
	if e, ok := db.entries[tag]; ok {
		return TagVersion{Transaction: db.txnID, Version: e.version}
	}
	return TagVersion{}
}

// FunctionDefinition implements Transaction.
func (db *MemDB) FunctionDefinition(tag Tag) (*FunctionDefinition, bool) {
	v, ok := db.value(tag).(*FunctionDefinition)
	return v, ok
}

// FunctionCall implements Transaction.
func (db *MemDB) FunctionCall(tag Tag) (*FunctionCall, bool) {
	v, ok := db.value(tag).(*FunctionCall)
	return v, ok
}

// MaterialDefinition implements Transaction.
func (db *MemDB) MaterialDefinition(tag Tag) (*MaterialDefinition, bool) {
	v, ok := db.value(tag).(*MaterialDefinition)
	return v, ok
}

// MaterialInstance implements Transaction.
func (db *MemDB) MaterialInstance(tag Tag) (*MaterialInstance, bool) {
	v, ok := db.value(tag).(*MaterialInstance)
	return v, ok
}

// Texture implements Transaction.
func (db *MemDB) Texture(tag Tag) (*Texture, bool) {
	v, ok := db.value(tag).(*Texture)
	return v, ok
}

// Image implements Transaction.
func (db *MemDB) Image(tag Tag) (*Image, bool) {
	v, ok := db.value(tag).(*Image)
	return v, ok
}

// LightProfile implements Transaction.
func (db *MemDB) LightProfile(tag Tag) (*LightProfile, bool) {
	v, ok := db.value(tag).(*LightProfile)
	return v, ok
}

// BsdfMeasurement implements Transaction.
func (db *MemDB) BsdfMeasurement(tag Tag) (*BsdfMeasurement, bool) {
	v, ok := db.value(tag).(*BsdfMeasurement)
	return v, ok
}

func (db *MemDB) value(tag Tag) any {
	if e, ok := db.entries[tag]; ok {
		return e.value
	}
	return nil
}

func classOf(value any) ClassID {
	switch value.(type) {
	case *FunctionDefinition:
		return ClassFunctionDefinition
	case *FunctionCall:
		return ClassFunctionCall
	case *MaterialDefinition:
		return ClassMaterialDefinition
	case *MaterialInstance:
		return ClassMaterialInstance
	case *Texture:
		return ClassTexture
	case *Image:
		return ClassImage
	case *LightProfile:
		return ClassLightProfile
	case *BsdfMeasurement:
		return ClassBsdfMeasurement
	default:
		return ClassNone
	}
}
