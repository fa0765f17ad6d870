// Package registry owns every registered user record for the lifetime
// of the process. Records are partitioned into donors-by-medicine and
// recipients-by-medicine lookup maps alongside a flat id-indexed map;
// partition membership is fixed at registration, only the referenced
// record's quantity and status change afterwards.
package registry

import (
	"strings"
	"time"

	"medswap/internal/medindex"
	"medswap/models"
)

// Registry is the single shared mutable resource of the matching core.
// It is not safe for concurrent use: callers exposing it to multiple
// goroutines must serialize Register*, and all matching, behind one
// critical section.
type Registry struct {
	nextID      int64
	users       map[int64]models.Record
	order       []int64 // ids in registration order
	donors      map[string][]*models.Donor
	recipients  map[string][]*models.Recipient
	medicines   *medindex.Index
	transferred int64
}

func New() *Registry {
	return &Registry{
		nextID:     1,
		users:      map[int64]models.Record{},
		donors:     map[string][]*models.Donor{},
		recipients: map[string][]*models.Recipient{},
		medicines:  medindex.New(),
	}
}

// Stats is the read-only summary returned by Stats.
type Stats struct {
	Users             int
	PendingDonors     int
	PendingRecipients int
	UnitsTransferred  int64
}

// RegisterDonor creates a donor record, assigns the next id, files it
// under the lowercase medicine key and feeds the original-case medicine
// name to the prefix index. No duplicate detection is performed.
func (g *Registry) RegisterDonor(name, contact string, loc models.Coordinate, medicine string, quantity int, expiry time.Time) *models.Donor {
	d := &models.Donor{
		User: models.User{
			Name:     name,
			Contact:  contact,
			Medicine: medicine,
			Location: loc,
			Quantity: quantity,
			Role:     models.RoleDonor,
			Status:   models.StatusPending,
		},
		Expiry: expiry,
	}
	g.add(d, &d.User)
	g.donors[d.MedicineKey()] = append(g.donors[d.MedicineKey()], d)
	return d
}

// RegisterRecipient creates a recipient record; see RegisterDonor for
// the shared bookkeeping.
func (g *Registry) RegisterRecipient(name, contact string, loc models.Coordinate, medicine string, quantity, urgency int) *models.Recipient {
	r := &models.Recipient{
		User: models.User{
			Name:     name,
			Contact:  contact,
			Medicine: medicine,
			Location: loc,
			Quantity: quantity,
			Role:     models.RoleRecipient,
			Status:   models.StatusPending,
		},
		Urgency: urgency,
	}
	g.add(r, &r.User)
	g.recipients[r.MedicineKey()] = append(g.recipients[r.MedicineKey()], r)
	return r
}

func (g *Registry) add(rec models.Record, u *models.User) {
	u.ID = g.nextID
	g.nextID++
	g.users[u.ID] = rec
	g.order = append(g.order, u.ID)
	g.medicines.Insert(u.Medicine)
}

// User returns the record with the given id, or nil if unknown.
func (g *Registry) User(id int64) models.Record {
	return g.users[id]
}

// Recipient returns the recipient with the given id, or nil if the id
// is unknown or names a donor.
func (g *Registry) Recipient(id int64) *models.Recipient {
	r, _ := g.users[id].(*models.Recipient)
	return r
}

// Users returns every record in registration order.
func (g *Registry) Users() []models.Record {
	out := make([]models.Record, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.users[id])
	}
	return out
}

// PendingRecipients returns recipients still carrying unmet demand, in
// registration order. MatchAll consumes donors in this order, so the
// overall allocation is order-sensitive across recipients; that is
// accepted behavior, resolved per recipient by score ranking.
func (g *Registry) PendingRecipients() []*models.Recipient {
	var out []*models.Recipient
	for _, id := range g.order {
		if r, ok := g.users[id].(*models.Recipient); ok && r.Status == models.StatusPending {
			out = append(out, r)
		}
	}
	return out
}

// DonorsFor returns the donors registered under medicine, matched
// case-insensitively. The returned slice aliases registry state.
func (g *Registry) DonorsFor(medicine string) []*models.Donor {
	return g.donors[strings.ToLower(medicine)]
}

// ListByMedicine returns the donor and recipient lists registered under
// the medicine's lowercase key; both are empty when nothing is filed
// there.
func (g *Registry) ListByMedicine(medicine string) ([]*models.Donor, []*models.Recipient) {
	key := strings.ToLower(medicine)
	return g.donors[key], g.recipients[key]
}

// SearchMedicines returns the original-case medicine names sharing the
// given prefix, case-insensitively.
func (g *Registry) SearchMedicines(prefix string) []string {
	return g.medicines.Search(prefix)
}

// AddTransferred adds units to the running total moved by all matches.
func (g *Registry) AddTransferred(units int) {
	g.transferred += int64(units)
}

// Stats reports totals over the current registry state.
func (g *Registry) Stats() Stats {
	s := Stats{Users: len(g.users), UnitsTransferred: g.transferred}
	for _, rec := range g.users {
		u := rec.Base()
		if u.Status != models.StatusPending {
			continue
		}
		switch u.Role {
		case models.RoleDonor:
			s.PendingDonors++
		case models.RoleRecipient:
			s.PendingRecipients++
		}
	}
	return s
}
