package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"Zero radius", 0, 0, Vector2D{0, 0}},
		{"Zero angle (X-axis)", 128, 0, Vector2D{128, 0}},
		{"90 degrees (Y-axis)", 128, math.Pi / 2, Vector2D{0, 128}},
		{"180 degrees (Negative X)", 128, math.Pi, Vector2D{-128, 0}},
		{"-180 degrees (Negative X)", 128, -math.Pi, Vector2D{-128, 0}},
		{"45 degrees", math.Sqrt(2), math.Pi / 4, Vector2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Mean", func(t *testing.T) {
		sum := Vector2D{30, 60}
		got, ok := sum.Mean(3)
		if !ok {
			t.Fatalf("%v.Mean(3) reported no samples", sum)
		}
		if want := (Vector2D{10, 20}); !got.Eq(want) {
			t.Errorf("%v.Mean(3) = %v; want %v", sum, got, want)
		}
	})

	t.Run("MeanOfNothing", func(t *testing.T) {
		got, ok := v1.Mean(0)
		if ok {
			t.Errorf("%v.Mean(0) should report no samples", v1)
		}
		if !got.Eq(Zero) || !got.IsFinite() {
			t.Errorf("Mean(0) = %v; want zero vector", got)
		}
	})
}

func TestVector_Dot(t *testing.T) {
	if got := (Vector2D{1, 0}).Dot(Vector2D{0, 1}); got != 0 {
		t.Errorf("Dot orthogonal = %v; want 0", got)
	}
	if got := (Vector2D{1, 0}).Dot(Vector2D{2, 0}); got != 2 {
		t.Errorf("Dot parallel = %v; want 2", got)
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("Normalize = %v; want %v", got, want)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		got, ok := Zero.TryNormalize()
		if ok {
			t.Error("TryNormalize(0,0) should fail")
		}
		if !got.Eq(Zero) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
	})

	t.Run("WithLen", func(t *testing.T) {
		got, ok := v.WithLen(128)
		if !ok {
			t.Fatal("WithLen should succeed on (3,4)")
		}
		if !floatEquals(got.Len(), 128) {
			t.Errorf("WithLen(128) length = %v; want 128", got.Len())
		}
	})

	t.Run("WithLenNearZero", func(t *testing.T) {
		tiny := Vector2D{Epsilon / 10, 0}
		got, ok := tiny.WithLen(128)
		if ok {
			t.Error("WithLen should refuse a near-zero vector")
		}
		if got != tiny {
			t.Errorf("WithLen near-zero = %v; want unchanged %v", got, tiny)
		}
	})
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := v2.DistanceTo(v1); got != 5 {
		t.Errorf("DistanceTo is not symmetric: %v", got)
	}
	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_Angle(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 0}, 0},
		{Vector2D{0, 1}, math.Pi / 2},
		{Vector2D{-1, 0}, math.Pi}, // math.Atan2 returns Pi for (-1, 0)
		{Vector2D{0, -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !floatEquals(got, tt.want) {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector2D{1, 2}).IsFinite() {
		t.Error("(1,2) should be finite")
	}
	if (Vector2D{math.NaN(), 0}).IsFinite() {
		t.Error("NaN vector should not be finite")
	}
	if (Vector2D{0, math.Inf(-1)}).IsFinite() {
		t.Error("Inf vector should not be finite")
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}

	vClose := Vector2D{1 + Epsilon/2, 2 - Epsilon/2}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	vDiff := Vector2D{1.1, 2}
	if v.Eq(vDiff) {
		t.Error("Eq mismatch failed")
	}
	if !v.EqWithin(vDiff, 0.2) {
		t.Error("EqWithin tolerance match failed")
	}
}
