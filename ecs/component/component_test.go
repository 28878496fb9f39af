package component

import "testing"

func TestComponentKinds(t *testing.T) {
	a := NewComponentKind[Transform]()
	b := NewComponentKind[Transform]()

	if !a.Valid() || !b.Valid() {
		t.Fatal("new kinds should be valid")
	}
	if a.ID() == b.ID() {
		t.Fatal("every kind gets its own id")
	}
	if a.String() != "component.Transform" {
		t.Fatalf("unexpected kind name %q", a.String())
	}

	var zero ComponentKind[Transform]
	if zero.Valid() || zero.String() != "invalid" {
		t.Fatalf("zero kind should be invalid, got %v %q", zero.Valid(), zero.String())
	}
}
