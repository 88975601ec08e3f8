package kdforest

import "testing"

func TestDescribe_ReportsHeaderFields(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	opts := DefaultOptions()
	opts.BucketCapacity = 2
	tree, err := Build[float64, uint32](points, idsFor(4), opts)
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}

	d := Describe[float64, uint32](tree)
	if d.Count != 4 {
		t.Errorf("Count = %d, want 4", d.Count)
	}
	if d.Dims != 2 {
		t.Errorf("Dims = %d, want 2", d.Dims)
	}
	if d.BucketCapacity != 2 {
		t.Errorf("BucketCapacity = %d, want 2", d.BucketCapacity)
	}
	if d.AxisTypeTag != "float64" {
		t.Errorf("AxisTypeTag = %q, want float64", d.AxisTypeTag)
	}
}

func TestDescribe_Float32Tag(t *testing.T) {
	points := [][]float32{{0, 0}, {1, 1}}
	tree, err := Build[float32, uint32](points, idsFor(2), DefaultOptions())
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	d := Describe[float32, uint32](tree)
	if d.AxisTypeTag != "float32" {
		t.Errorf("AxisTypeTag = %q, want float32", d.AxisTypeTag)
	}
}
