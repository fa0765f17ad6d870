package geo

import "math"

// EarthRadiusKM is Earth's mean radius in kilometers for the Haversine
// calculation.
const EarthRadiusKM = 6371.0

// HaversineKM calculates the great-circle distance between two points
// on Earth in kilometers using the Haversine formula. It is total over
// any two valid coordinates; coincident points yield 0.
func HaversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKM * c
}
