package component

import "testing"

func TestParsePrimitive2DModelType(t *testing.T) {
	cases := []struct {
		in      string
		want    Primitive2DModelType
		wantErr bool
	}{
		{"capsule", Primitive2DCapsule, false},
		{"Circle", Primitive2DCircle, false},
		{" polygon ", Primitive2DPolygon, false},
		{"RECTANGLE", Primitive2DRectangle, false},
		{"square", Primitive2DSquare, false},
		{"triangle", Primitive2DTriangle, false},
		{"cube", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePrimitive2DModelType(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if parsed, _ := ParsePrimitive2DModelType(got.String()); parsed != got {
				t.Fatalf("String %q does not parse back", got.String())
			}
		})
	}
}

func TestPrimitive2DModelTypeValid(t *testing.T) {
	if Primitive2DModelType(0).Valid() || Primitive2DModelType(7).Valid() {
		t.Fatal("out-of-range types should be invalid")
	}
	for t2 := Primitive2DCapsule; t2 <= Primitive2DTriangle; t2++ {
		if !t2.Valid() {
			t.Fatalf("%v should be valid", t2)
		}
	}
}
