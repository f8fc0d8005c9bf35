package report

// TypeTotals holds the live room count per type, recomputed from the room
// list on every query rather than cached.
type TypeTotals struct {
	Standard int
	Deluxe   int
	Suite    int
}

// CountRoomTypes tallies rooms per type.
func CountRoomTypes(rooms []Room) TypeTotals {
	var t TypeTotals
	for _, r := range rooms {
		switch r.Type {
		case Standard:
			t.Standard++
		case Deluxe:
			t.Deluxe++
		case Suite:
			t.Suite++
		}
	}
	return t
}

// Total is the number of rooms across all three types.
func (t TypeTotals) Total() int { return t.Standard + t.Deluxe + t.Suite }

// OccupancyRow is one day of an occupancy report: per-type rates plus the
// overall rate over all rooms (not the mean of the three type rates).
type OccupancyRow struct {
	Date     Date    `json:"date"`
	Standard float64 `json:"standard"`
	Deluxe   float64 `json:"deluxe"`
	Suite    float64 `json:"suite"`
	Average  float64 `json:"average"`
}

// OccupancyReport is a per-day occupancy table plus the arithmetic mean of
// the per-day overall rates.
type OccupancyReport struct {
	Average float64        `json:"average"`
	Rows    []OccupancyRow `json:"rows"`
}

// typeCounts are occupied-room tallies for a single day.
type typeCounts struct {
	std, dlx, ste int
}

// occupiedOn counts occupied rooms per type on day d. Each reservation that
// covers d occupies one room of the type its room belongs to.
func occupiedOn(d Date, reservations []Reservation, typeOf map[string]RoomType) typeCounts {
	var c typeCounts
	for _, r := range reservations {
		if !r.Confirmed() || !r.Covers(d) {
			continue
		}
		switch typeOf[r.RoomNumber] {
		case Standard:
			c.std++
		case Deluxe:
			c.dlx++
		case Suite:
			c.ste++
		}
	}
	return c
}

func rate(occupied, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(occupied) * 100 / float64(total)
}

func (c typeCounts) row(d Date, totals TypeTotals) OccupancyRow {
	row := OccupancyRow{
		Date:     d,
		Standard: rate(c.std, totals.Standard),
		Deluxe:   rate(c.dlx, totals.Deluxe),
		Suite:    rate(c.ste, totals.Suite),
	}
	row.Average = rate(c.std+c.dlx+c.ste, totals.Total())
	return row
}

func roomTypeIndex(rooms []Room) map[string]RoomType {
	typeOf := make(map[string]RoomType, len(rooms))
	for _, r := range rooms {
		typeOf[r.Number] = r.Type
	}
	return typeOf
}

// PastOccupancy computes per-day, per-type historical occupancy over
// [start, end] from Confirmed reservations. The period average is the
// arithmetic mean of the per-day overall rates.
func PastOccupancy(rooms []Room, reservations []Reservation, start, end Date) OccupancyReport {
	totals := CountRoomTypes(rooms)
	typeOf := roomTypeIndex(rooms)

	var report OccupancyReport
	sum := 0.0
	for d := start; !d.After(end); d = d.Next() {
		row := occupiedOn(d, reservations, typeOf).row(d, totals)
		report.Rows = append(report.Rows, row)
		sum += row.Average
	}
	if len(report.Rows) > 0 {
		report.Average = sum / float64(len(report.Rows))
	}
	return report
}

// RoomOccupancy is the per-room companion report: how many days of the query
// range a room was reserved, via inclusive interval intersection.
type RoomOccupancy struct {
	RoomNumber   string  `json:"roomNumber"`
	TotalDays    int     `json:"totalDays"`
	ReservedDays int     `json:"reservedDays"`
	Rate         float64 `json:"occupancyRate"`
}

// RoomOccupancyReport computes, per room, the count of days its Confirmed
// reservations overlap [start, end], summed over possibly several stays,
// divided by the length of the range.
func RoomOccupancyReport(rooms []Room, reservations []Reservation, start, end Date) []RoomOccupancy {
	totalDays := start.DaysUntil(end) + 1
	var out []RoomOccupancy
	for _, room := range rooms {
		reserved := 0
		for _, r := range reservations {
			if !r.Confirmed() || r.RoomNumber != room.Number {
				continue
			}
			overlapStart := maxDate(r.CheckIn, start)
			overlapEnd := minDate(r.CheckOut, end)
			if !overlapStart.After(overlapEnd) {
				reserved += overlapStart.DaysUntil(overlapEnd) + 1
			}
		}
		occ := RoomOccupancy{RoomNumber: room.Number, TotalDays: totalDays, ReservedDays: reserved}
		if totalDays > 0 {
			occ.Rate = float64(reserved) * 100 / float64(totalDays)
		}
		out = append(out, occ)
	}
	return out
}

// Stay is one row of the current-occupancy listing.
type Stay struct {
	RoomNumber    string `json:"roomNumber"`
	ReservationID string `json:"reservationId"`
	CheckIn       Date   `json:"checkIn"`
	CheckOut      Date   `json:"checkOut"`
	Guests        int    `json:"guestNum"`
}

// CurrentOccupancy lists every Confirmed reservation whose interval contains
// today. No rates, a direct listing.
func CurrentOccupancy(reservations []Reservation, today Date) []Stay {
	var stays []Stay
	for _, r := range reservations {
		if !r.Confirmed() || !r.Covers(today) {
			continue
		}
		stays = append(stays, Stay{
			RoomNumber:    r.RoomNumber,
			ReservationID: r.ID,
			CheckIn:       r.CheckIn,
			CheckOut:      r.CheckOut,
			Guests:        r.Guests,
		})
	}
	return stays
}
