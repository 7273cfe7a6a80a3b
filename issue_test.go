package shapecheck_test

import (
	"reflect"
	"testing"

	"github.com/shapecheck/shapecheck"
)

func TestPath_PrependBuildsRootToLeaf(t *testing.T) {
	var p shapecheck.Path
	p = p.Prepend(shapecheck.Field("age"))
	p = p.Prepend(shapecheck.Index(1))
	p = p.Prepend(shapecheck.Field("items"))

	want := shapecheck.Path{
		shapecheck.Field("items"),
		shapecheck.Index(1),
		shapecheck.Field("age"),
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("expected %v, got %v", want, p)
	}
	if p.String() != "/items/1/age" {
		t.Fatalf("unexpected rendering %q", p.String())
	}
}

func TestPath_PrependDoesNotAliasOriginal(t *testing.T) {
	base := shapecheck.Path{shapecheck.Field("a")}
	longer := base.Prepend(shapecheck.Index(0))
	longer[1] = shapecheck.Field("mutated")
	if base[0].Name != "a" {
		t.Fatalf("Prepend must copy")
	}
}

func TestPath_RootRendersAsSlash(t *testing.T) {
	var p shapecheck.Path
	if p.String() != "/" {
		t.Fatalf("expected /, got %q", p.String())
	}
}
