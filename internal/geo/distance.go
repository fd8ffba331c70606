package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// WGS84 ellipsoid parameters.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
	semiMinorAxis = semiMajorAxis * (1 - flattening)

	meanEarthRadiusKm = 6371.0088

	convergence   = 1e-12
	maxIterations = 200
)

// DistanceKm returns the geodesic distance in kilometers between two points
// given in decimal degrees. It uses Vincenty's inverse formula on the WGS84
// ellipsoid; for the rare near-antipodal pairs where the iteration fails to
// converge it falls back to a spherical great-circle distance.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if d, ok := vincentyKm(lat1, lon1, lat2, lon2); ok {
		return d
	}
	return sphericalKm(lat1, lon1, lat2, lon2)
}

func vincentyKm(lat1, lon1, lat2, lon2 float64) (float64, bool) {
	diffLon := (lon2 - lon1) * math.Pi / 180

	// Reduced latitudes on the auxiliary sphere.
	u1 := math.Atan((1 - flattening) * math.Tan(lat1*math.Pi/180))
	u2 := math.Atan((1 - flattening) * math.Tan(lat2*math.Pi/180))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := diffLon
	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)

		t1 := cosU2 * sinLambda
		t2 := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma := math.Sqrt(t1*t1 + t2*t2)
		if sinSigma == 0 {
			// Coincident points.
			return 0, true
		}
		cosSigma := sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma := math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha := 1 - sinAlpha*sinAlpha
		cos2SigmaM := 0.0
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		prev := lambda
		lambda = diffLon + (1-c)*flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < convergence {
			uSq := cosSqAlpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) /
				(semiMinorAxis * semiMinorAxis)
			a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
			b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
			deltaSigma := b * sinSigma * (cos2SigmaM + b/4*
				(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
					b/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

			return semiMinorAxis * a * (sigma - deltaSigma) / 1000, true
		}
	}

	return 0, false
}

func sphericalKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * meanEarthRadiusKm
}
