package smooth

import (
	"reflect"
	"testing"
)

func mustRaster(t *testing.T, width, height int, labels []int) *Raster {
	t.Helper()
	r, err := NewRaster(width, height, labels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestComponentSizes(t *testing.T) {
	// 1 1 2
	// 1 2 2
	// 3 3 2
	r := mustRaster(t, 3, 3, []int{
		1, 1, 2,
		1, 2, 2,
		3, 3, 2,
	})

	t.Run("4-connectivity", func(t *testing.T) {
		sizes, err := ComponentSizes(r, Connectivity4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := []int{
			3, 3, 4,
			3, 4, 4,
			2, 2, 4,
		}
		if !reflect.DeepEqual(sizes, expected) {
			t.Errorf("expected %v, got %v", expected, sizes)
		}
	})

	t.Run("8-connectivity merges diagonals", func(t *testing.T) {
		diag := mustRaster(t, 2, 2, []int{
			5, 1,
			1, 5,
		})
		sizes, err := ComponentSizes(diag, Connectivity8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := []int{
			2, 2,
			2, 2,
		}
		if !reflect.DeepEqual(sizes, expected) {
			t.Errorf("expected %v, got %v", expected, sizes)
		}
	})

	t.Run("invalid connectivity", func(t *testing.T) {
		if _, err := ComponentSizes(r, Connectivity(6)); err == nil {
			t.Fatal("expected error for invalid connectivity")
		}
	})
}

func TestMajorityFilter(t *testing.T) {
	// Center cell sees five 1s and four 2s in its radius-1 window.
	r := mustRaster(t, 3, 3, []int{
		1, 1, 2,
		1, 2, 2,
		1, 1, 2,
	})

	majority, err := MajorityFilter(r, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if majority[4] != 1 {
		t.Errorf("center majority: expected 1, got %d", majority[4])
	}
}

func TestMajorityFilterTieBreak(t *testing.T) {
	// Window of the top-left cell holds two 1s and two 7s: tie goes to the
	// lowest label.
	r := mustRaster(t, 2, 2, []int{
		7, 1,
		1, 7,
	})

	majority, err := MajorityFilter(r, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, label := range majority {
		if label != 1 {
			t.Errorf("cell %d: expected tie broken to 1, got %d", i, label)
		}
	}
}

func TestMajorityFilterInvalidRadius(t *testing.T) {
	r := mustRaster(t, 2, 2, []int{1, 1, 1, 1})
	if _, err := MajorityFilter(r, 0); err == nil {
		t.Fatal("expected error for non-positive radius")
	}
}

func TestSmoothReplacesSmallPatches(t *testing.T) {
	// A lone 2 inside a field of 1s is below the size threshold and takes
	// the neighborhood majority.
	r := mustRaster(t, 5, 5, []int{
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 2, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
	})

	smoothed, err := Smooth(r, 3, 1, Connectivity8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if smoothed.At(2, 2) != 1 {
		t.Errorf("expected lone cell replaced with 1, got %d", smoothed.At(2, 2))
	}
}

func TestSmoothIdempotentOnCleanRaster(t *testing.T) {
	// No patch is smaller than the threshold, so the raster is unchanged.
	r := mustRaster(t, 4, 4, []int{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 2, 2,
		3, 3, 2, 2,
	})

	smoothed, err := Smooth(r, 4, 1, Connectivity4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(smoothed.Labels, r.Labels) {
		t.Errorf("clean raster must come back unchanged:\nin  %v\nout %v", r.Labels, smoothed.Labels)
	}
}

func TestSmoothSinglePass(t *testing.T) {
	// The merge consults sizes and majorities of the input raster only:
	// a small patch whose replacement would itself create a small patch is
	// not re-processed.
	r := mustRaster(t, 4, 1, []int{1, 2, 1, 1})

	smoothed, err := Smooth(r, 2, 1, Connectivity4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The lone 2 becomes 1; the surviving labels derive from the original
	// grid, not from the partially smoothed one.
	expected := []int{1, 1, 1, 1}
	if !reflect.DeepEqual(smoothed.Labels, expected) {
		t.Errorf("expected %v, got %v", expected, smoothed.Labels)
	}
}

func TestSmoothConnectivityMatters(t *testing.T) {
	// Two 2s touch only diagonally: one patch of size 2 under
	// 8-connectivity, two patches of size 1 under 4-connectivity.
	r := mustRaster(t, 4, 4, []int{
		1, 1, 1, 1,
		1, 2, 1, 1,
		1, 1, 2, 1,
		1, 1, 1, 1,
	})

	smoothed8, err := Smooth(r, 2, 1, Connectivity8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if smoothed8.At(1, 1) != 2 || smoothed8.At(2, 2) != 2 {
		t.Error("8-connectivity: diagonal pair reaches the threshold and must survive")
	}

	smoothed4, err := Smooth(r, 2, 1, Connectivity4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if smoothed4.At(1, 1) != 1 || smoothed4.At(2, 2) != 1 {
		t.Error("4-connectivity: lone diagonal cells are below the threshold and must be replaced")
	}
}

func TestNewRasterValidation(t *testing.T) {
	if _, err := NewRaster(0, 3, nil); err == nil {
		t.Fatal("expected error for non-positive width")
	}
	if _, err := NewRaster(2, 2, []int{1, 2, 3}); err == nil {
		t.Fatal("expected error for label count mismatch")
	}
}
