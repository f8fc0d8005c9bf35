// Package report is the analytics aggregation core: pure functions that fold
// room, reservation and menu-order snapshots into date- and room-type-indexed
// aggregates. The package holds no state, does no I/O and never consults the
// clock or a random source of its own; callers pass snapshots, the reference
// day and (for forecasting) a Rand. Locking lives in the orchestrating service.
package report

import (
	"fmt"
	"strings"
	"time"
)

// RoomType is one of the three room categories tracked by occupancy reports.
type RoomType string

const (
	Standard RoomType = "Standard"
	Deluxe   RoomType = "Deluxe"
	Suite    RoomType = "Suite"
)

// StatusConfirmed marks a reservation that actually holds a room. Only these
// count toward occupancy.
const StatusConfirmed = "Confirmed"

// Room is an immutable snapshot of a hotel room.
type Room struct {
	Number string   `json:"roomNumber"`
	Type   RoomType `json:"type"`
}

// Reservation is an immutable snapshot of a reservation. CheckIn and CheckOut
// are both inclusive: the room is occupied on every day d with
// CheckIn <= d <= CheckOut.
type Reservation struct {
	ID         string `json:"reservationId"`
	RoomNumber string `json:"roomNumber"`
	CheckIn    Date   `json:"checkIn"`
	CheckOut   Date   `json:"checkOut"`
	Guests     int    `json:"guestNum"`
	Status     string `json:"status"`
}

// Confirmed reports whether the reservation counts toward occupancy.
func (r Reservation) Confirmed() bool {
	return strings.EqualFold(r.Status, StatusConfirmed)
}

// Covers reports whether the stay occupies its room on day d.
func (r Reservation) Covers(d Date) bool {
	return !d.Before(r.CheckIn) && !d.After(r.CheckOut)
}

// MenuOrder is an immutable snapshot of a food/beverage order.
type MenuOrder struct {
	ID         string    `json:"orderId"`
	OrderedAt  time.Time `json:"orderTime"`
	FoodNames  []string  `json:"foodNames"`
	TotalPrice int       `json:"totalPrice"`
}

// dateLayout is the only accepted calendar-date format. No timezone concept
// exists anywhere in the reports.
const dateLayout = "2006-01-02"

// Date is a calendar day. The zero value is the zero time's day; dates built
// through ParseDate, DateOf and the arithmetic methods are always normalized
// to UTC midnight, so Date values are comparable with ==.
type Date struct {
	t time.Time
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate builds a Date from a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string     { return d.t.Format(dateLayout) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Next() Date         { return d.AddDays(1) }

// DaysUntil returns the number of days from d to o. Both dates sit at UTC
// midnight, so the division is exact.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}

// MarshalJSON renders the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a YYYY-MM-DD string, rejecting anything else.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func maxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}
