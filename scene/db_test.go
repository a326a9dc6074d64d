package scene

import "testing"

func TestMemDB_StoreAndClass(t *testing.T) {
	db := NewMemDB()

	tests := []struct {
		name  string
		value any
		class ClassID
	}{
		{"::test::fn", &FunctionDefinition{Name: "::test::fn(float)"}, ClassFunctionDefinition},
		{"call", &FunctionCall{}, ClassFunctionCall},
		{"::test::mat", &MaterialDefinition{Name: "::test::mat"}, ClassMaterialDefinition},
		{"inst", &MaterialInstance{}, ClassMaterialInstance},
		{"tex", &Texture{}, ClassTexture},
		{"img", &Image{}, ClassImage},
		{"lp", &LightProfile{}, ClassLightProfile},
		{"mbsdf", &BsdfMeasurement{}, ClassBsdfMeasurement},
	}

	for _, tt := range tests {
		tag, err := db.Store(tt.name, tt.value)
		if err != nil {
			t.Fatalf("Store(%q): %v", tt.name, err)
		}
		if tag.Invalid() {
			t.Fatalf("Store(%q) returned the invalid tag", tt.name)
		}
		if got := db.ClassOf(tag); got != tt.class {
			t.Errorf("ClassOf(%q) = %v, want %v", tt.name, got, tt.class)
		}
		if got := db.NameOf(tag); got != tt.name {
			t.Errorf("NameOf = %q, want %q", got, tt.name)
		}
		if got := db.Lookup(tt.name); got != tag {
			t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tag)
		}
	}
}

func TestMemDB_StoreRejectsUnknownType(t *testing.T) {
	db := NewMemDB()
	if _, err := db.Store("bad", 42); err == nil {
		t.Error("expected an error for an unstorable type")
	}
}

func TestMemDB_TypedGetters(t *testing.T) {
	db := NewMemDB()
	fdef := &FunctionDefinition{Name: "::test::fn(int)", ParameterCount: 1}
	tag := db.MustStore("::test::fn", fdef)

	got, ok := db.FunctionDefinition(tag)
	if !ok || got != fdef {
		t.Errorf("FunctionDefinition = %v, %v; want the stored definition", got, ok)
	}
	if _, ok := db.Texture(tag); ok {
		t.Error("Texture getter matched a function definition")
	}
	if _, ok := db.FunctionDefinition(999); ok {
		t.Error("getter matched a dangling tag")
	}
}

func TestMemDB_Versioning(t *testing.T) {
	db := NewMemDB()
	tag := db.MustStore("tex", &Texture{})

	v1 := db.Version(tag)
	if v1 == (TagVersion{}) {
		t.Fatal("Version returned the zero stamp for a live tag")
	}
	db.Touch(tag)
	v2 := db.Version(tag)
	if v2 == v1 {
		t.Error("Touch did not change the version stamp")
	}
	if db.Version(999) != (TagVersion{}) {
		t.Error("Version of a dangling tag is not the zero stamp")
	}
}

func TestMemDB_DistinctTags(t *testing.T) {
	db := NewMemDB()
	a := db.MustStore("a", &Image{})
	b := db.MustStore("b", &Image{})
	if a == b {
		t.Errorf("distinct entities share tag %v", a)
	}
}

func TestTagInvalid(t *testing.T) {
	if !Tag(0).Invalid() {
		t.Error("zero tag is not invalid")
	}
	if Tag(7).Invalid() {
		t.Error("nonzero tag is invalid")
	}
}
