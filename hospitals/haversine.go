package hospitals

import "math"

// earthRadiusKM is the mean Earth radius used for great-circle
// distances.
const earthRadiusKM = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude points, assuming a spherical Earth. This is the
// only geometry the ranker uses; there is no routing or road distance.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// roundKM rounds a distance to two decimals for presentation parity
// with stored ratings.
func roundKM(km float64) float64 {
	return math.Round(km*100) / 100
}
