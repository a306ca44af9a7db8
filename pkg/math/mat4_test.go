package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation: got %v, want (5, 10, 15)", got)
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})

	if got != (Vec3{11, 22, 33}) {
		t.Errorf("TransformVec3: got %v, want (11, 22, 33)", got)
	}
}

func TestTransformVec3Scale(t *testing.T) {
	m := Scale(2, 2, 2)
	got := m.TransformVec3(Vec3{1, 2, 3})

	if got != (Vec3{2, 4, 6}) {
		t.Errorf("TransformVec3 with scale: got %v, want (2, 4, 6)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) turns to (0,0,-1)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestMulOrderScaleTranslateRotate(t *testing.T) {
	// S * T * R applies the rotation first, then the translation, then the scale.
	m := Scale(2, 2, 2).Mul(Translate(1, 0, 0)).Mul(RotateY(float32(math.Pi)))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// R: (-1,0,0); T: (0,0,0); S: (0,0,0)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z) > 0.001 {
		t.Errorf("S*T*R: got %v, want origin", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	got := m.TransformVec3(Vec3{0, 0, 5})
	if got.Length() > 0.001 {
		t.Errorf("eye should map to the origin, got %v", got)
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(1, 2, 3).Transpose()

	if m[3] != 1 || m[7] != 2 || m[11] != 3 {
		t.Errorf("Transpose: got %v", m)
	}
}

func TestNormalMatrix(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want Mat3
	}{
		{"identity", Identity(), Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		{"translation ignored", Translate(4, 5, 6), Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		{"scale inverted", Scale(2, 4, 8), Mat3{0.5, 0, 0, 0, 0.25, 0, 0, 0, 0.125}},
	}

	for _, tc := range tests {
		got := tc.m.NormalMatrix()
		for i := range got {
			if abs(got[i]-tc.want[i]) > 1e-6 {
				t.Errorf("%s: element %d got %f, want %f", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestNormalMatrixRotationIsItself(t *testing.T) {
	m := RotateY(0.7)
	n := m.NormalMatrix()
	want := Mat3{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]}

	for i := range n {
		if abs(n[i]-want[i]) > 1e-5 {
			t.Errorf("element %d: got %f, want %f", i, n[i], want[i])
		}
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("Vec3.Cross() = %v, want (0, 0, 1)", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}

	if got := a.Min(b); got != (Vec3{-1, -2, 0}) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != (Vec3{1, 2, 3}) {
		t.Errorf("Max = %v", got)
	}
}

func TestVec3Length(t *testing.T) {
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero = %v, want zero", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
