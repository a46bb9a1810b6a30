package geo

import (
	"math"
	"testing"
)

func TestHaversineKm_ZeroForSamePoint(t *testing.T) {
	if d := HaversineKm(-16.5, -68.12, -16.5, -68.12); d != 0 {
		t.Fatalf("expected 0 km for identical points, got %f", d)
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := HaversineKm(-16.5035295, -68.1226286, -16.49, -68.11)
	b := HaversineKm(-16.49, -68.11, -16.5035295, -68.1226286)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", a, b)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// La Paz a Cochabamba, ~230 km en línea recta.
	d := HaversineKm(-16.5, -68.15, -17.39, -66.15)
	if d < 220 || d > 250 {
		t.Fatalf("La Paz-Cochabamba distance out of range: %f km", d)
	}
}

func TestRegionContains(t *testing.T) {
	r := DefaultRegion()

	if !r.Contains(r.Latitude, r.Longitude) {
		t.Fatal("center should be inside its own region")
	}
	// Borde exacto: cuenta como adentro.
	if !r.Contains(r.Latitude+r.LatitudeDelta/2, r.Longitude) {
		t.Fatal("north edge should be inside")
	}
	if r.Contains(r.Latitude+r.LatitudeDelta/2+1e-9, r.Longitude) {
		t.Fatal("point just past the north edge should be outside")
	}
	if r.Contains(r.Latitude, r.Longitude+r.LongitudeDelta/2+1e-9) {
		t.Fatal("point just past the east edge should be outside")
	}
}

func TestDefaultRegion(t *testing.T) {
	r := DefaultRegion()
	if r.Latitude != -16.5035295 || r.Longitude != -68.1226286 {
		t.Fatalf("unexpected default center: %+v", r)
	}
	if r.LatitudeDelta != 0.01 || r.LongitudeDelta != 0.015 {
		t.Fatalf("unexpected default deltas: %+v", r)
	}
}
