package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resv(t *testing.T, id, room, in, out string, guests int, status string) Reservation {
	t.Helper()
	return Reservation{
		ID:         id,
		RoomNumber: room,
		CheckIn:    mustDate(t, in),
		CheckOut:   mustDate(t, out),
		Guests:     guests,
		Status:     status,
	}
}

func threeRooms() []Room {
	return []Room{
		{Number: "101", Type: Standard},
		{Number: "102", Type: Standard},
		{Number: "201", Type: Deluxe},
	}
}

func TestCountRoomTypes(t *testing.T) {
	totals := CountRoomTypes([]Room{
		{Number: "101", Type: Standard},
		{Number: "201", Type: Deluxe},
		{Number: "202", Type: Deluxe},
		{Number: "301", Type: Suite},
	})
	assert.Equal(t, TypeTotals{Standard: 1, Deluxe: 2, Suite: 1}, totals)
	assert.Equal(t, 4, totals.Total())
}

func TestPastOccupancy(t *testing.T) {
	rooms := threeRooms()
	reservations := []Reservation{
		resv(t, "r1", "101", "2024-05-01", "2024-05-03", 2, StatusConfirmed),
	}

	rep := PastOccupancy(rooms, reservations, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-03"))

	assert.Len(t, rep.Rows, 3)
	for _, row := range rep.Rows {
		assert.InDelta(t, 50.0, row.Standard, 1e-9)
		assert.InDelta(t, 0.0, row.Deluxe, 1e-9)
		assert.InDelta(t, 0.0, row.Suite, 1e-9)
		// overall rate is over all rooms, not the mean of the three type rates
		assert.InDelta(t, 100.0/3, row.Average, 1e-9)
	}
	assert.InDelta(t, 100.0/3, rep.Average, 1e-9)
}

func TestPastOccupancyPeriodAverageIsMeanOfDailyAverages(t *testing.T) {
	rooms := threeRooms()
	reservations := []Reservation{
		resv(t, "r1", "101", "2024-05-01", "2024-05-01", 1, StatusConfirmed),
		resv(t, "r2", "102", "2024-05-01", "2024-05-02", 2, StatusConfirmed),
	}

	rep := PastOccupancy(rooms, reservations, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-02"))

	sum := 0.0
	for _, row := range rep.Rows {
		sum += row.Average
		assert.GreaterOrEqual(t, row.Average, 0.0)
		assert.LessOrEqual(t, row.Average, 100.0)
	}
	assert.InDelta(t, sum/float64(len(rep.Rows)), rep.Average, 1e-9)
}

func TestPastOccupancyIgnoresUnconfirmed(t *testing.T) {
	rooms := threeRooms()
	reservations := []Reservation{
		resv(t, "r1", "101", "2024-05-01", "2024-05-03", 2, "Pending"),
	}

	rep := PastOccupancy(rooms, reservations, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-01"))
	assert.InDelta(t, 0.0, rep.Rows[0].Standard, 1e-9)
	assert.InDelta(t, 0.0, rep.Average, 1e-9)
}

func TestPastOccupancyNoRoomsShortCircuitsToZero(t *testing.T) {
	rep := PastOccupancy(nil, nil, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-02"))
	for _, row := range rep.Rows {
		assert.Zero(t, row.Standard)
		assert.Zero(t, row.Average)
	}
	assert.Zero(t, rep.Average)
}

func TestRoomOccupancyReport(t *testing.T) {
	rooms := []Room{{Number: "101", Type: Standard}, {Number: "201", Type: Deluxe}}
	reservations := []Reservation{
		// overlaps the 10-day range on 3 days
		resv(t, "r1", "101", "2024-04-28", "2024-05-03", 1, StatusConfirmed),
		// second stay for the same room, 2 more days
		resv(t, "r2", "101", "2024-05-09", "2024-05-15", 1, StatusConfirmed),
	}

	rep := RoomOccupancyReport(rooms, reservations, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-10"))

	assert.Len(t, rep, 2)
	assert.Equal(t, "101", rep[0].RoomNumber)
	assert.Equal(t, 10, rep[0].TotalDays)
	assert.Equal(t, 5, rep[0].ReservedDays)
	assert.InDelta(t, 50.0, rep[0].Rate, 1e-9)

	assert.Equal(t, "201", rep[1].RoomNumber)
	assert.Equal(t, 0, rep[1].ReservedDays)
	assert.InDelta(t, 0.0, rep[1].Rate, 1e-9)
}

func TestCurrentOccupancy(t *testing.T) {
	today := mustDate(t, "2024-05-02")
	reservations := []Reservation{
		resv(t, "r1", "101", "2024-05-01", "2024-05-03", 2, StatusConfirmed),
		resv(t, "r2", "102", "2024-05-03", "2024-05-05", 1, StatusConfirmed),
		resv(t, "r3", "201", "2024-05-01", "2024-05-03", 4, "Cancelled"),
	}

	stays := CurrentOccupancy(reservations, today)

	assert.Len(t, stays, 1)
	assert.Equal(t, Stay{
		RoomNumber:    "101",
		ReservationID: "r1",
		CheckIn:       mustDate(t, "2024-05-01"),
		CheckOut:      mustDate(t, "2024-05-03"),
		Guests:        2,
	}, stays[0])
}

func TestReservationCoversInclusiveBounds(t *testing.T) {
	r := resv(t, "r1", "101", "2024-05-01", "2024-05-03", 1, StatusConfirmed)

	assert.False(t, r.Covers(mustDate(t, "2024-04-30")))
	assert.True(t, r.Covers(mustDate(t, "2024-05-01")))
	assert.True(t, r.Covers(mustDate(t, "2024-05-03")))
	assert.False(t, r.Covers(mustDate(t, "2024-05-04")))
}

func TestParseDateStrict(t *testing.T) {
	for _, bad := range []string{"2024/05/01", "05-01-2024", "2024-13-01", "yesterday", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
	d, err := ParseDate("2024-05-01")
	assert.NoError(t, err)
	assert.Equal(t, "2024-05-01", d.String())
}
