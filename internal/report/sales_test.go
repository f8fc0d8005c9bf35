package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func orderAt(day string, total int, names ...string) MenuOrder {
	d, err := ParseDate(day)
	if err != nil {
		panic(err)
	}
	return MenuOrder{
		OrderedAt:  time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 12, 30, 0, 0, time.UTC),
		FoodNames:  names,
		TotalPrice: total,
	}
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	assert.NoError(t, err)
	return d
}

func TestOrdersByDate(t *testing.T) {
	orders := []MenuOrder{
		orderAt("2024-06-01", 1000, "Pasta"),
		orderAt("2024-06-01", 2000, "Steak"),
		orderAt("2024-06-02", 500, "Coffee"),
	}
	byDate := OrdersByDate(orders)

	assert.Len(t, byDate, 2)
	day1 := byDate[mustDate(t, "2024-06-01")]
	assert.Len(t, day1, 2)
	// retrieval order preserved within a day
	assert.Equal(t, 1000, day1[0].TotalPrice)
	assert.Equal(t, 2000, day1[1].TotalPrice)
}

func TestSalesCountByDate(t *testing.T) {
	orders := []MenuOrder{
		orderAt("2024-06-01", 3000, "Pasta", "Pasta", "Coffee"),
		orderAt("2024-06-01", 1000, "Coffee"),
	}
	counts := SalesCountByDate(orders)

	day := counts[mustDate(t, "2024-06-01")]
	assert.Equal(t, 2, day["Pasta"])
	assert.Equal(t, 2, day["Coffee"])
}

func TestTotalSalesByDate(t *testing.T) {
	orders := []MenuOrder{
		orderAt("2024-06-01", 3000, "Pasta"),
		orderAt("2024-06-01", 1500, "Coffee"),
		orderAt("2024-06-03", 700, "Tea"),
	}
	totals := TotalSalesByDate(orders)

	assert.Equal(t, 4500, totals[mustDate(t, "2024-06-01")])
	assert.Equal(t, 700, totals[mustDate(t, "2024-06-03")])
	_, ok := totals[mustDate(t, "2024-06-02")]
	assert.False(t, ok)
}

func TestAverageSalesInRange(t *testing.T) {
	tests := []struct {
		name       string
		orders     []MenuOrder
		start, end string
		want       float64
	}{
		{
			name:   "no orders in range",
			orders: []MenuOrder{orderAt("2024-05-01", 9000, "Pasta")},
			start:  "2024-06-01", end: "2024-06-30",
			want: 0,
		},
		{
			name:   "zero-order days excluded from denominator",
			orders: []MenuOrder{orderAt("2024-06-10", 5000, "Pasta")},
			start:  "2024-06-01", end: "2024-06-30",
			want: 5000.00,
		},
		{
			name: "mean over active days only",
			orders: []MenuOrder{
				orderAt("2024-06-01", 1000, "Pasta"),
				orderAt("2024-06-05", 2000, "Steak"),
			},
			start: "2024-06-01", end: "2024-06-30",
			want: 1500.00,
		},
		{
			name: "rounded half up to two decimals",
			orders: []MenuOrder{
				orderAt("2024-06-01", 100, "Tea"),
				orderAt("2024-06-02", 100, "Tea"),
				orderAt("2024-06-03", 101, "Tea"),
			},
			start: "2024-06-01", end: "2024-06-03",
			// 301/3 = 100.3333... -> 100.33
			want: 100.33,
		},
		{
			name:   "inclusive boundaries",
			orders: []MenuOrder{orderAt("2024-06-01", 300, "Tea"), orderAt("2024-06-30", 500, "Tea")},
			start:  "2024-06-01", end: "2024-06-30",
			want: 400.00,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AverageSalesInRange(tc.orders, mustDate(t, tc.start), mustDate(t, tc.end))
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestSalesTableOneRowPerDay(t *testing.T) {
	orders := []MenuOrder{orderAt("2024-06-10", 5000, "Pasta")}
	start := mustDate(t, "2024-06-08")
	end := mustDate(t, "2024-06-12")

	table := SalesTable(orders, start, end)

	assert.Len(t, table, 5)
	for i, row := range table {
		assert.Equal(t, start.AddDays(i), row.Date)
	}
}

func TestSalesTableEmptyDaySentinel(t *testing.T) {
	table := SalesTable(nil, mustDate(t, "2024-06-10"), mustDate(t, "2024-06-10"))

	assert.Len(t, table, 1)
	assert.Equal(t, 0, table[0].TotalSales)
	assert.Equal(t, NoTopMenu, table[0].TopMenu)
}

func TestSalesTableTopMenuTieBreak(t *testing.T) {
	// Steak and Pasta tie at 2 units; the lexicographically smaller name wins.
	orders := []MenuOrder{
		orderAt("2024-06-01", 4000, "Steak", "Steak", "Pasta", "Pasta", "Tea"),
	}
	table := SalesTable(orders, mustDate(t, "2024-06-01"), mustDate(t, "2024-06-01"))

	assert.Equal(t, "Pasta", table[0].TopMenu)
	assert.Equal(t, 4000, table[0].TotalSales)
}

func TestSalesTableTotalsMatchDailySums(t *testing.T) {
	orders := []MenuOrder{
		orderAt("2024-06-01", 1000, "Pasta"),
		orderAt("2024-06-01", 2500, "Steak"),
		orderAt("2024-06-03", 700, "Tea"),
		orderAt("2024-07-01", 9999, "OutOfRange"),
	}
	start := mustDate(t, "2024-06-01")
	end := mustDate(t, "2024-06-05")

	table := SalesTable(orders, start, end)
	tableSum := 0
	for _, row := range table {
		tableSum += row.TotalSales
	}

	mapSum := 0
	for date, total := range TotalSalesByDate(orders) {
		if !date.Before(start) && !date.After(end) {
			mapSum += total
		}
	}
	assert.Equal(t, mapSum, tableSum)
	assert.Equal(t, 4200, tableSum)
}
