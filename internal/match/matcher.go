// Package match implements the greedy allocation engine: eligible
// donors for a recipient's medicine are scored, ordered in a transient
// min-heap, and drained until the recipient's demand is met or the
// candidates run out. Matching mutates donor and recipient quantities
// and statuses through the shared registry records.
package match

import (
	"container/heap"
	"context"
	"fmt"
	"time"

	"medswap/internal/registry"
	"medswap/models"
)

// Recorder persists allocation events as they happen. Implementations
// must tolerate being called once per transfer step.
type Recorder interface {
	Record(ctx context.Context, a *models.Allocation) error
}

// Matcher allocates donor supply to recipient demand. It owns no state
// beyond its collaborators; the priority collection is rebuilt per
// MatchOne call.
type Matcher struct {
	reg *registry.Registry
	rec Recorder // optional; nil disables the ledger

	now func() time.Time
}

func New(reg *registry.Registry, rec Recorder) *Matcher {
	return &Matcher{reg: reg, rec: rec, now: time.Now}
}

// MatchOne matches the recipient with the given id. An unknown id, an
// id naming a donor, or a medicine with no indexed donors is a no-op,
// not an error. The returned allocations are the transfer steps applied,
// in execution order; a recipient left Pending with unmet demand is an
// incomplete match, not a failure.
func (m *Matcher) MatchOne(ctx context.Context, recipientID int64) ([]models.Allocation, error) {
	r := m.reg.Recipient(recipientID)
	if r == nil {
		return nil, nil
	}
	return m.matchRecipient(ctx, r)
}

// MatchAll runs the per-recipient allocation for every Pending
// recipient, in registration order. Donors are consumed as earlier
// recipients drain them; the resulting order-sensitivity across
// recipients is accepted behavior.
func (m *Matcher) MatchAll(ctx context.Context) ([]models.Allocation, error) {
	var all []models.Allocation
	for _, r := range m.reg.PendingRecipients() {
		allocs, err := m.matchRecipient(ctx, r)
		all = append(all, allocs...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

func (m *Matcher) matchRecipient(ctx context.Context, r *models.Recipient) ([]models.Allocation, error) {
	today := m.now()

	pq := candidateHeap{}
	for _, d := range m.reg.DonorsFor(r.Medicine) {
		if d.Status != models.StatusPending || d.Quantity <= 0 || !expiresAfter(d, today) {
			continue
		}
		pq = append(pq, candidate{donor: d, score: Score(d, r, today)})
	}
	heap.Init(&pq)

	var allocs []models.Allocation
	for r.Quantity > 0 && pq.Len() > 0 {
		c := heap.Pop(&pq).(candidate)
		d := c.donor

		give := d.Quantity
		if r.Quantity < give {
			give = r.Quantity
		}
		d.Quantity -= give
		r.Quantity -= give
		m.reg.AddTransferred(give)
		if d.Quantity == 0 {
			d.Status = models.StatusCompleted
		}
		if r.Quantity == 0 {
			r.Status = models.StatusMatched
		}

		a := models.Allocation{
			DonorID:       d.ID,
			DonorName:     d.Name,
			RecipientID:   r.ID,
			RecipientName: r.Name,
			Medicine:      d.Medicine,
			Units:         give,
			Score:         c.score,
		}
		allocs = append(allocs, a)

		if m.rec != nil {
			if err := m.rec.Record(ctx, &a); err != nil {
				// The transfer already happened; surface the ledger
				// failure without undoing registry state.
				return allocs, fmt.Errorf("record allocation: %w", err)
			}
		}
	}
	return allocs, nil
}

type candidate struct {
	donor *models.Donor
	score float64
}

// candidateHeap is a min-heap over candidate scores.
type candidateHeap []candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}
