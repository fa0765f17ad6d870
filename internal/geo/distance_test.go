package geo

import (
	"math"
	"testing"
)

func TestHaversineKM_ZeroDistance(t *testing.T) {
	d := HaversineKM(10, 20, 10, 20)
	if d < 0 || d > 1e-9 {
		t.Fatalf("zero distance expected ~0, got %v", d)
	}
}

func TestHaversineKM_Symmetric(t *testing.T) {
	ab := HaversineKM(48.8566, 2.3522, 51.5074, -0.1278)
	ba := HaversineKM(51.5074, -0.1278, 48.8566, 2.3522)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %v vs %v", ab, ba)
	}
}

func TestHaversineKM_KnownPair(t *testing.T) {
	// Paris <-> London is roughly 344 km.
	d := HaversineKM(48.8566, 2.3522, 51.5074, -0.1278)
	if d < 330 || d > 360 {
		t.Fatalf("Paris-London distance out of range: %v km", d)
	}
}

func TestHaversineKM_Antipodal(t *testing.T) {
	// Half the Earth's circumference, ~20015 km. Must not produce NaN.
	d := HaversineKM(0, 0, 0, 180)
	if math.IsNaN(d) {
		t.Fatalf("antipodal distance is NaN")
	}
	if d < 20000 || d > 20040 {
		t.Fatalf("antipodal distance out of range: %v km", d)
	}
}
