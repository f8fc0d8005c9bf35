package report

import (
	"fmt"
	"strings"
)

// Wire formats consumed by clients. Percentages carry exactly two decimals;
// rows join with ';', fields with ',', and '|' separates the period average
// from the per-day table.

// FormatPastOccupancy renders
// PAST_OCCUPANCY:<avg>|<date>,<std>,<dlx>,<ste>,<avg>;...
func FormatPastOccupancy(r OccupancyReport) string {
	return formatOccupancy("PAST_OCCUPANCY", r)
}

// FormatFutureOccupancy renders
// FUTURE_OCCUPANCY:<avg>|<date>,<std>,<dlx>,<ste>,<avg>;...
func FormatFutureOccupancy(r OccupancyReport) string {
	return formatOccupancy("FUTURE_OCCUPANCY", r)
}

func formatOccupancy(prefix string, r OccupancyReport) string {
	rows := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, fmt.Sprintf("%s,%.2f,%.2f,%.2f,%.2f",
			row.Date, row.Standard, row.Deluxe, row.Suite, row.Average))
	}
	return fmt.Sprintf("%s:%.2f|%s", prefix, r.Average, strings.Join(rows, ";"))
}

// FormatCurrentOccupancy renders
// CURRENT_OCCUPANCY:<room>,<reservationId>,<checkIn>,<checkOut>,<guests>;...
func FormatCurrentOccupancy(stays []Stay) string {
	rows := make([]string, 0, len(stays))
	for _, s := range stays {
		rows = append(rows, fmt.Sprintf("%s,%s,%s,%s,%d",
			s.RoomNumber, s.ReservationID, s.CheckIn, s.CheckOut, s.Guests))
	}
	return "CURRENT_OCCUPANCY:" + strings.Join(rows, ";")
}
