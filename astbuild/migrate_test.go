package astbuild

import (
	"math"
	"testing"

	"github.com/gogpu/shade/ast"
	"github.com/gogpu/shade/scene"
)

func texConst(shape scene.TextureShape) scene.Expr {
	return &scene.ConstantExpr{Value: &scene.TextureValue{
		TextureType: &scene.TextureType{Shape: shape},
		Tag:         0,
	}}
}

func calleeName(t *testing.T, expr ast.Expression) string {
	t.Helper()
	call, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("expected a call, got %T", expr)
	}
	ref, ok := call.Callee.(*ast.Reference)
	if !ok {
		t.Fatalf("callee = %T, want a reference", call.Callee)
	}
	return ref.Name.Name.String()
}

func floatLiteralAt(t *testing.T, call *ast.Call, i int) float32 {
	t.Helper()
	lit, ok := call.Arguments[i].Value.(*ast.Literal)
	if !ok {
		t.Fatalf("argument %d = %T, want a literal", i, call.Arguments[i].Value)
	}
	fv, ok := lit.Value.(*ast.FloatValue)
	if !ok {
		t.Fatalf("argument %d literal = %T, want a float", i, lit.Value)
	}
	return fv.V
}

func TestMigrateMeasuredEDF(t *testing.T) {
	tests := []struct {
		name          string
		nArgs         int
		multiplierPos int // -1 if the legacy form already carried it
	}{
		{"four args gains multiplier and tangent_u", 4, 1},
		{"five args gains tangent_u only", 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBuilder(t, nil)

			args := scene.NewExprList()
			for i := 0; i < tt.nArgs; i++ {
				args.Add("", floatConst(float32(i+10)))
			}
			expr := b.TransformCall(&scene.EdfType{}, scene.SemanticDFMeasuredEDF,
				"::df::measured_edf$1.0", tt.nArgs, args, false)

			if got := calleeName(t, expr); got != "::df::measured_edf" {
				t.Errorf("callee = %q, want the undeprecated name", got)
			}
			call := expr.(*ast.Call)
			if len(call.Arguments) != 6 {
				t.Fatalf("got %d arguments, want 6", len(call.Arguments))
			}
			if tt.multiplierPos >= 0 {
				if v := floatLiteralAt(t, call, tt.multiplierPos); v != 1.0 {
					t.Errorf("multiplier = %v, want 1", v)
				}
			}
			// the tangent default is a state::texture_tangent_u(0) call
			if got := calleeName(t, call.Arguments[4].Value); got != "state::texture_tangent_u" {
				t.Errorf("argument 4 callee = %q, want the tangent default", got)
			}
			// original arguments keep their relative order
			var originals []float32
			for _, a := range call.Arguments {
				if lit, ok := a.Value.(*ast.Literal); ok {
					if fv, ok := lit.Value.(*ast.FloatValue); ok && fv.V >= 10 {
						originals = append(originals, fv.V)
					}
				}
			}
			if len(originals) != tt.nArgs {
				t.Fatalf("found %d original arguments, want %d", len(originals), tt.nArgs)
			}
			for i, v := range originals {
				if v != float32(i+10) {
					t.Errorf("original argument %d out of order: %v", i, v)
				}
			}
		})
	}
}

func TestMigrateMeasuredEDF_CurrentFormUntouched(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	args := scene.NewExprList()
	for i := 0; i < 6; i++ {
		args.Add("", floatConst(float32(i)))
	}
	expr := b.TransformCall(&scene.EdfType{}, scene.SemanticDFMeasuredEDF,
		"::df::measured_edf", 6, args, false)

	call := expr.(*ast.Call)
	if len(call.Arguments) != 6 {
		t.Errorf("got %d arguments, want the call unchanged at 6", len(call.Arguments))
	}
}

func TestMigrateFresnelLayer(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	args := scene.NewExprList().
		Add("", floatConst(1)).
		Add("", floatConst(0.5)).
		Add("", floatConst(2)).
		Add("", floatConst(3))
	expr := b.TransformCall(&scene.BsdfType{}, scene.SemanticDFFresnelLayer,
		"::df::fresnel_layer$1.3", 4, args, false)

	if got := calleeName(t, expr); got != "::df::color_fresnel_layer" {
		t.Errorf("callee = %q, want the colored successor", got)
	}
	call := expr.(*ast.Call)
	if len(call.Arguments) != 4 {
		t.Fatalf("got %d arguments, want 4", len(call.Arguments))
	}
	// the weight argument is wrapped in a color constructor
	if got := calleeName(t, call.Arguments[1].Value); got != "color" {
		t.Errorf("argument 1 callee = %q, want a color constructor", got)
	}
	wrap := call.Arguments[1].Value.(*ast.Call)
	if len(wrap.Arguments) != 1 {
		t.Errorf("color wrapper has %d arguments, want 1", len(wrap.Arguments))
	}
}

func TestMigrateFresnelLayer_UnmarkedPassesThrough(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	args := scene.NewExprList().
		Add("", floatConst(1)).
		Add("", floatConst(0.5))
	expr := b.TransformCall(&scene.BsdfType{}, scene.SemanticDFFresnelLayer,
		"::df::fresnel_layer", 2, args, false)

	if got := calleeName(t, expr); got != "::df::fresnel_layer" {
		t.Errorf("callee = %q, want the call untouched", got)
	}
	call := expr.(*ast.Call)
	if _, ok := call.Arguments[1].Value.(*ast.Literal); !ok {
		t.Errorf("argument 1 = %T, want the unwrapped literal", call.Arguments[1].Value)
	}
}

func TestMigrateSpotEDF(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	args := scene.NewExprList()
	for i := 0; i < 4; i++ {
		args.Add("", floatConst(float32(i+10)))
	}
	expr := b.TransformCall(&scene.EdfType{}, scene.SemanticDFSpotEDF,
		"::df::spot_edf$1.0", 4, args, false)

	call := expr.(*ast.Call)
	if len(call.Arguments) != 5 {
		t.Fatalf("got %d arguments, want 5", len(call.Arguments))
	}
	if v := floatLiteralAt(t, call, 1); v != float32(math.Pi) {
		t.Errorf("spread = %v, want pi", v)
	}
}

func TestMigrateRoundedCorner(t *testing.T) {
	b, _ := newTestBuilder(t, nil)

	args := scene.NewExprList().
		Add("", floatConst(0.1)).
		Add("", &scene.ConstantExpr{Value: &scene.BoolValue{V: true}})
	expr := b.TransformCall(&scene.VectorType{Elem: &scene.FloatType{}, Size: 3},
		scene.SemanticStateRoundedCornerNormal,
		"::state::rounded_corner_normal$1.2", 2, args, false)

	call := expr.(*ast.Call)
	if len(call.Arguments) != 3 {
		t.Fatalf("got %d arguments, want 3", len(call.Arguments))
	}
	if v := floatLiteralAt(t, call, 2); v != 1.0 {
		t.Errorf("roundness = %v, want 1", v)
	}
}

func TestMigrateTexQuery(t *testing.T) {
	tests := []struct {
		name     string
		sema     scene.Semantic
		shape    scene.TextureShape
		nArgs    int
		wantArgs int
	}{
		{"width of 2d gains uv_tile", scene.SemanticTexWidth, scene.Texture2D, 1, 2},
		{"height of 2d gains uv_tile", scene.SemanticTexHeight, scene.Texture2D, 1, 2},
		{"width of 3d unchanged", scene.SemanticTexWidth, scene.Texture3D, 1, 1},
		{"width of cube unchanged", scene.SemanticTexWidth, scene.TextureCube, 1, 1},
		{"texel float of 2d gains uv_tile", scene.SemanticTexTexelFloat, scene.Texture2D, 2, 3},
		{"texel color of 3d unchanged", scene.SemanticTexTexelColor, scene.Texture3D, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBuilder(t, nil)

			args := scene.NewExprList().Add("", texConst(tt.shape))
			for i := 1; i < tt.nArgs; i++ {
				args.Add("", floatConst(0))
			}
			expr := b.TransformCall(&scene.IntType{}, tt.sema,
				"::tex::query$1.3", tt.nArgs, args, false)

			call := expr.(*ast.Call)
			if len(call.Arguments) != tt.wantArgs {
				t.Fatalf("got %d arguments, want %d", len(call.Arguments), tt.wantArgs)
			}
			if tt.wantArgs > tt.nArgs {
				last := call.Arguments[len(call.Arguments)-1]
				lit, ok := last.Value.(*ast.Literal)
				if !ok {
					t.Fatalf("uv_tile = %T, want a literal", last.Value)
				}
				vv, ok := lit.Value.(*ast.VectorValue)
				if !ok || len(vv.Components) != 2 {
					t.Errorf("uv_tile literal = %#v, want a two-component vector", lit.Value)
				}
			}
		})
	}
}
