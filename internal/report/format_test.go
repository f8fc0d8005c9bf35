package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPastOccupancy(t *testing.T) {
	rep := OccupancyReport{
		Average: 100.0 / 3,
		Rows: []OccupancyRow{
			{Date: mustDate(t, "2024-05-01"), Standard: 50, Deluxe: 0, Suite: 0, Average: 100.0 / 3},
			{Date: mustDate(t, "2024-05-02"), Standard: 50, Deluxe: 0, Suite: 0, Average: 100.0 / 3},
		},
	}

	got := FormatPastOccupancy(rep)

	assert.Equal(t,
		"PAST_OCCUPANCY:33.33|2024-05-01,50.00,0.00,0.00,33.33;2024-05-02,50.00,0.00,0.00,33.33",
		got)
}

func TestFormatFutureOccupancy(t *testing.T) {
	rep := OccupancyReport{
		Average: 42.5,
		Rows: []OccupancyRow{
			{Date: mustDate(t, "2024-08-01"), Standard: 40, Deluxe: 45, Suite: 0, Average: 42.5},
		},
	}

	got := FormatFutureOccupancy(rep)

	assert.Equal(t, "FUTURE_OCCUPANCY:42.50|2024-08-01,40.00,45.00,0.00,42.50", got)
}

func TestFormatCurrentOccupancy(t *testing.T) {
	stays := []Stay{
		{RoomNumber: "101", ReservationID: "r1", CheckIn: mustDate(t, "2024-05-01"), CheckOut: mustDate(t, "2024-05-03"), Guests: 2},
		{RoomNumber: "201", ReservationID: "r2", CheckIn: mustDate(t, "2024-05-02"), CheckOut: mustDate(t, "2024-05-04"), Guests: 1},
	}

	got := FormatCurrentOccupancy(stays)

	assert.Equal(t,
		"CURRENT_OCCUPANCY:101,r1,2024-05-01,2024-05-03,2;201,r2,2024-05-02,2024-05-04,1",
		got)
}

func TestFormatCurrentOccupancyEmpty(t *testing.T) {
	assert.Equal(t, "CURRENT_OCCUPANCY:", FormatCurrentOccupancy(nil))
}

func TestFormatEmptyOccupancyReport(t *testing.T) {
	assert.Equal(t, "PAST_OCCUPANCY:0.00|", FormatPastOccupancy(OccupancyReport{}))
}
