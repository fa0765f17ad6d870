package models

// Allocation records one transfer of units from a donor to a recipient
// within a single matching step. The matcher emits these as events; the
// ledger persists them for the session so the shell can re-render the
// match log.
type Allocation struct {
	ID            int64   `db:"id" json:"id"`
	DonorID       int64   `db:"donor_id" json:"donor_id"`
	DonorName     string  `db:"donor_name" json:"donor_name"`
	RecipientID   int64   `db:"recipient_id" json:"recipient_id"`
	RecipientName string  `db:"recipient_name" json:"recipient_name"`
	Medicine      string  `db:"medicine" json:"medicine"`
	Units         int     `db:"units" json:"units"`
	Score         float64 `db:"score" json:"score"`
	CreatedAt     string  `db:"created_at" json:"created_at"`
}
