package report

import "time"

// Rand is the random source the forecaster draws synthetic rates from.
// *math/rand.Rand satisfies it; tests inject a deterministic stub.
type Rand interface {
	Intn(n int) int
}

// Seasonal bands for days without any real booking: vacation-season months
// draw a per-type rate uniformly from [40,80], the rest from [10,30]. This is
// a deliberate heuristic placeholder, not a statistical model.
const (
	vacationRateMin = 40
	vacationRateMax = 80
	offSeasonMin    = 10
	offSeasonMax    = 30
)

func vacationSeason(m time.Month) bool {
	return (m >= time.January && m <= time.March) || (m >= time.July && m <= time.September)
}

func syntheticRate(m time.Month, roomTotal int, rng Rand) float64 {
	if roomTotal == 0 {
		return 0
	}
	if vacationSeason(m) {
		return float64(vacationRateMin + rng.Intn(vacationRateMax-vacationRateMin+1))
	}
	return float64(offSeasonMin + rng.Intn(offSeasonMax-offSeasonMin+1))
}

// FutureOccupancy forecasts per-day occupancy over [start, end]. Days with at
// least one Confirmed booking use the real rates, exactly as PastOccupancy
// computes them; days without any draw synthetic per-type rates from the
// seasonal band, with the overall rate as the room-count-weighted mean of the
// three. The per-day switch is binary: a single real booking disables the
// synthetic path for that whole day.
func FutureOccupancy(rooms []Room, reservations []Reservation, start, end Date, rng Rand) OccupancyReport {
	totals := CountRoomTypes(rooms)
	typeOf := roomTypeIndex(rooms)

	var report OccupancyReport
	sum := 0.0
	for d := start; !d.After(end); d = d.Next() {
		counts := occupiedOn(d, reservations, typeOf)
		var row OccupancyRow
		if counts.std+counts.dlx+counts.ste > 0 {
			row = counts.row(d, totals)
		} else {
			row = syntheticRow(d, totals, rng)
		}
		report.Rows = append(report.Rows, row)
		sum += row.Average
	}
	if len(report.Rows) > 0 {
		report.Average = sum / float64(len(report.Rows))
	}
	return report
}

func syntheticRow(d Date, totals TypeTotals, rng Rand) OccupancyRow {
	row := OccupancyRow{
		Date:     d,
		Standard: syntheticRate(d.Month(), totals.Standard, rng),
		Deluxe:   syntheticRate(d.Month(), totals.Deluxe, rng),
		Suite:    syntheticRate(d.Month(), totals.Suite, rng),
	}
	if total := totals.Total(); total > 0 {
		weighted := row.Standard*float64(totals.Standard) +
			row.Deluxe*float64(totals.Deluxe) +
			row.Suite*float64(totals.Suite)
		row.Average = weighted / float64(total)
	}
	return row
}

// RoomPrediction is one row of the weekday prediction report.
type RoomPrediction struct {
	RoomNumber string  `json:"roomNumber"`
	Rate       float64 `json:"predictedOccupancyRate"`
}

// weekdayHistoryWeeks is how many prior same-weekday dates the predictor
// samples.
const weekdayHistoryWeeks = 4

// PredictOccupancy predicts per-room occupancy for target from weekday
// history: for each room, the fraction of the same weekday in the prior four
// weeks on which a Confirmed reservation covered it, times 100.
func PredictOccupancy(rooms []Room, reservations []Reservation, target Date) []RoomPrediction {
	var out []RoomPrediction
	for _, room := range rooms {
		hits := 0
		for week := 1; week <= weekdayHistoryWeeks; week++ {
			d := target.AddDays(-7 * week)
			for _, r := range reservations {
				if r.Confirmed() && r.RoomNumber == room.Number && r.Covers(d) {
					hits++
					break
				}
			}
		}
		out = append(out, RoomPrediction{
			RoomNumber: room.Number,
			Rate:       float64(hits) * 100 / weekdayHistoryWeeks,
		})
	}
	return out
}
