package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestExtent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		extent  Extent
		wantErr bool
	}{
		{"Window", Extent{800, 600}, false},
		{"Zero width", Extent{0, 600}, true},
		{"Negative height", Extent{800, -1}, true},
		{"NaN", Extent{math.NaN(), 600}, true},
		{"Inf", Extent{800, math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.extent.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidExtent) {
					t.Errorf("Validate(%v) = %v; want ErrInvalidExtent", tt.extent, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate(%v) unexpected error: %v", tt.extent, err)
			}
		})
	}
}

func TestExtent_Wrap(t *testing.T) {
	e := Extent{800, 600}
	tests := []struct {
		name string
		in   Vector2D
		want Vector2D
	}{
		{"Inside", Vector2D{400, 300}, Vector2D{400, 300}},
		{"Past right edge", Vector2D{810, 5}, Vector2D{10, 5}},
		{"On right edge", Vector2D{800, 5}, Vector2D{0, 5}},
		{"Past left edge", Vector2D{-10, 5}, Vector2D{790, 5}},
		{"Past bottom edge", Vector2D{5, 650}, Vector2D{5, 50}},
		{"Past top edge", Vector2D{5, -50}, Vector2D{5, 550}},
		{"Both axes", Vector2D{-1, 601}, Vector2D{799, 1}},
		{"Rounding at zero", Vector2D{-1e-17, 5}, Vector2D{0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Wrap(tt.in)
			if !got.Eq(tt.want) {
				t.Errorf("Wrap(%v) = %v; want %v", tt.in, got, tt.want)
			}
			if !e.Contains(got) {
				t.Errorf("Wrap(%v) = %v is outside %v", tt.in, got, e)
			}
		})
	}
}

func TestExtent_WrapIsSingleStep(t *testing.T) {
	e := Extent{800, 600}
	got := e.Wrap(Vector2D{2000, 5})
	if want := (Vector2D{1200, 5}); !got.Eq(want) {
		t.Errorf("Wrap of a two-extent excursion = %v; want %v", got, want)
	}
	if e.Contains(got) {
		t.Errorf("single-step wrap should leave %v outside %v", got, e)
	}
}
