package models

import (
	"strings"
	"time"
)

// Role distinguishes the two kinds of registered users.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
)

// Status represents the lifecycle state of a user record.
// Transitions are one-way: a recipient moves Pending -> Matched when its
// full requested quantity has been satisfied; a donor moves
// Pending -> Completed when its supply is exhausted.
type Status string

const (
	StatusPending   Status = "pending"
	StatusMatched   Status = "matched"
	StatusCompleted Status = "completed"
)

// Coordinate is a latitude/longitude pair in degrees. Immutable once set
// on a record.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// User holds the fields common to donors and recipients.
type User struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Contact  string     `json:"contact"`
	Medicine string     `json:"medicine"`
	Location Coordinate `json:"location"`
	Quantity int        `json:"quantity"`
	Role     Role       `json:"role"`
	Status   Status     `json:"status"`
}

// MedicineKey returns the lowercase form of the medicine name used as the
// registry partition key and for all index lookups.
func (u *User) MedicineKey() string {
	return strings.ToLower(u.Medicine)
}

// Donor offers surplus medicine units. Expiry must be strictly in the
// future (by calendar date) for the donor to be eligible for matching.
type Donor struct {
	User
	Expiry time.Time `json:"expiry"`
}

// Recipient requests medicine units. Urgency is an integer in [1,5]
// where 5 is most urgent.
type Recipient struct {
	User
	Urgency int `json:"urgency"`
}

// Record is either a *Donor or a *Recipient. Base exposes the shared
// fields so the registry can hold both variants in one id-indexed map
// while mutations through either view stay visible to the other.
type Record interface {
	Base() *User
}

func (d *Donor) Base() *User     { return &d.User }
func (r *Recipient) Base() *User { return &r.User }
