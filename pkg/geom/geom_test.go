package geom

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	want := Vec3{0, 1, 0}
	if got != want {
		t.Errorf("zero vector normalized to %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestAABBExtend(t *testing.T) {
	b := EmptyAABB()
	b.Extend(Vec3{-1, 2, 3})
	b.Extend(Vec3{4, -5, 6})

	if b.Min != (Vec3{-1, -5, 3}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (Vec3{4, 2, 6}) {
		t.Errorf("Max = %v", b.Max)
	}
	if b.Size() != (Vec3{5, 7, 3}) {
		t.Errorf("Size = %v", b.Size())
	}
}

func TestAABBEmptySize(t *testing.T) {
	b := EmptyAABB()
	if b.Size() != (Vec3{}) {
		t.Errorf("empty box Size = %v, want zero", b.Size())
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-2, 0, 1, 0},
		{3, 0, 1, 1},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.min, c.max, got, c.want)
		}
	}
}
