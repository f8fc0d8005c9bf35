package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubRand returns scripted values so synthetic rates are predictable.
type stubRand struct {
	values []int
	i      int
}

func (s *stubRand) Intn(n int) int {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v % n
}

func TestFutureOccupancyUsesRealBookings(t *testing.T) {
	rooms := threeRooms()
	reservations := []Reservation{
		resv(t, "r1", "101", "2024-05-01", "2024-05-01", 2, StatusConfirmed),
	}

	rep := FutureOccupancy(rooms, reservations, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-01"), &stubRand{values: []int{0}})

	assert.Len(t, rep.Rows, 1)
	assert.InDelta(t, 50.0, rep.Rows[0].Standard, 1e-9)
	assert.InDelta(t, 0.0, rep.Rows[0].Deluxe, 1e-9)
	assert.InDelta(t, 100.0/3, rep.Rows[0].Average, 1e-9)
}

func TestFutureOccupancySyntheticVacationBand(t *testing.T) {
	rooms := threeRooms()
	rng := rand.New(rand.NewSource(1))

	// August is vacation season; no bookings exist.
	rep := FutureOccupancy(rooms, nil, mustDate(t, "2024-08-01"), mustDate(t, "2024-08-14"), rng)

	assert.Len(t, rep.Rows, 14)
	for _, row := range rep.Rows {
		assert.GreaterOrEqual(t, row.Standard, 40.0)
		assert.LessOrEqual(t, row.Standard, 80.0)
		assert.GreaterOrEqual(t, row.Deluxe, 40.0)
		assert.LessOrEqual(t, row.Deluxe, 80.0)
		// no Suite rooms exist, so the Suite rate is pinned to zero
		assert.Zero(t, row.Suite)
	}
}

func TestFutureOccupancySyntheticOffSeasonBand(t *testing.T) {
	rooms := threeRooms()
	rng := rand.New(rand.NewSource(7))

	// May is off season.
	rep := FutureOccupancy(rooms, nil, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-14"), rng)

	for _, row := range rep.Rows {
		assert.GreaterOrEqual(t, row.Standard, 10.0)
		assert.LessOrEqual(t, row.Standard, 30.0)
	}
}

func TestFutureOccupancySyntheticWeightedAverage(t *testing.T) {
	rooms := threeRooms() // 2 Standard, 1 Deluxe
	rng := &stubRand{values: []int{0, 20, 0}}

	// Off season: Standard = 10+0 = 10, Deluxe = 10+20%21 = 30.
	rep := FutureOccupancy(rooms, nil, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-01"), rng)

	row := rep.Rows[0]
	assert.InDelta(t, 10.0, row.Standard, 1e-9)
	assert.InDelta(t, 30.0, row.Deluxe, 1e-9)
	want := (10.0*2 + 30.0*1) / 3
	assert.InDelta(t, want, row.Average, 1e-9)
	assert.InDelta(t, want, rep.Average, 1e-9)
}

func TestFutureOccupancyBinarySwitchPerDay(t *testing.T) {
	rooms := threeRooms()
	reservations := []Reservation{
		resv(t, "r1", "201", "2024-05-02", "2024-05-02", 1, StatusConfirmed),
	}
	rng := &stubRand{values: []int{5}}

	rep := FutureOccupancy(rooms, reservations, mustDate(t, "2024-05-01"), mustDate(t, "2024-05-03"), rng)

	// day 2 has a real booking: exact rates
	assert.InDelta(t, 100.0, rep.Rows[1].Deluxe, 1e-9)
	assert.InDelta(t, 0.0, rep.Rows[1].Standard, 1e-9)
	// days 1 and 3 are synthetic off-season values
	assert.InDelta(t, 15.0, rep.Rows[0].Standard, 1e-9)
	assert.InDelta(t, 15.0, rep.Rows[2].Standard, 1e-9)
}

func TestVacationSeasonMonths(t *testing.T) {
	want := map[int]bool{1: true, 2: true, 3: true, 7: true, 8: true, 9: true}
	for m := 1; m <= 12; m++ {
		d := NewDate(2024, time.Month(m), 15)
		assert.Equal(t, want[m], vacationSeason(d.Month()), "month %d", m)
	}
}

func TestPredictOccupancy(t *testing.T) {
	rooms := []Room{{Number: "101", Type: Standard}, {Number: "201", Type: Deluxe}}
	target := mustDate(t, "2024-05-29") // a Wednesday

	reservations := []Reservation{
		// covers the Wednesdays of 1 and 2 weeks before (May 22 and 15)
		resv(t, "r1", "101", "2024-05-14", "2024-05-23", 1, StatusConfirmed),
		// covers the Wednesday 4 weeks before (May 1)
		resv(t, "r2", "101", "2024-05-01", "2024-05-01", 1, StatusConfirmed),
		// unconfirmed stays never count
		resv(t, "r3", "201", "2024-05-01", "2024-05-28", 2, "Pending"),
	}

	preds := PredictOccupancy(rooms, reservations, target)

	assert.Len(t, preds, 2)
	assert.Equal(t, "101", preds[0].RoomNumber)
	assert.InDelta(t, 75.0, preds[0].Rate, 1e-9) // 3 of 4 weeks
	assert.Equal(t, "201", preds[1].RoomNumber)
	assert.InDelta(t, 0.0, preds[1].Rate, 1e-9)
}

func TestPredictOccupancyCountsAWeekOnce(t *testing.T) {
	rooms := []Room{{Number: "101", Type: Standard}}
	target := mustDate(t, "2024-05-29")

	// two overlapping stays cover the same prior Wednesday; it still counts once
	reservations := []Reservation{
		resv(t, "r1", "101", "2024-05-22", "2024-05-22", 1, StatusConfirmed),
		resv(t, "r2", "101", "2024-05-20", "2024-05-24", 1, StatusConfirmed),
	}

	preds := PredictOccupancy(rooms, reservations, target)
	assert.InDelta(t, 25.0, preds[0].Rate, 1e-9)
}
