package match

import (
	"time"

	"medswap/internal/geo"
	"medswap/models"
)

// Score weights. Distance dominates (travel cost); expiry proximity and
// recipient urgency are soft-priority terms scaled to comparable
// magnitude with distance in km.
const (
	distanceWeight = 0.5
	expiryWeight   = 0.3
	urgencyWeight  = 0.2

	maxUrgency = 5.0
)

// Score ranks a (donor, recipient) pair; lower is better. It is used as
// the min-priority key during matching. The expiry term is evaluated
// against today, so the same donor scores differently across matching
// runs as its expiry approaches.
func Score(d *models.Donor, r *models.Recipient, today time.Time) float64 {
	dist := geo.HaversineKM(d.Location.Lat, d.Location.Lng, r.Location.Lat, r.Location.Lng)
	days := daysUntil(today, d.Expiry)
	expiryFactor := 1.0 / float64(days+1)
	urgencyFactor := 1.0 - float64(r.Urgency)/maxUrgency
	return distanceWeight*dist + expiryWeight*expiryFactor + urgencyWeight*urgencyFactor
}

// daysUntil returns the whole-day calendar difference from -> to,
// ignoring the time-of-day components.
func daysUntil(from, to time.Time) int64 {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int64(b.Sub(a).Hours() / 24)
}

// expiresAfter reports whether the donor's expiry date is strictly
// after today's date. Donors failing this are never scored.
func expiresAfter(d *models.Donor, today time.Time) bool {
	return daysUntil(today, d.Expiry) > 0
}
