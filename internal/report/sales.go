package report

import "math"

// SalesRow is one line of the per-day sales table.
type SalesRow struct {
	Date       Date   `json:"date"`
	TotalSales int    `json:"totalSales"`
	TopMenu    string `json:"topMenu"`
}

// NoTopMenu is the sentinel emitted for days without any order.
const NoTopMenu = "-"

// OrdersByDate groups orders by the calendar day of their order time. Order
// within a day's slice follows the input slice.
func OrdersByDate(orders []MenuOrder) map[Date][]MenuOrder {
	byDate := make(map[Date][]MenuOrder)
	for _, o := range orders {
		d := DateOf(o.OrderedAt)
		byDate[d] = append(byDate[d], o)
	}
	return byDate
}

// SalesCountByDate counts units sold per menu name per day. A name appearing
// twice in one order counts twice.
func SalesCountByDate(orders []MenuOrder) map[Date]map[string]int {
	counts := make(map[Date]map[string]int)
	for date, dayOrders := range OrdersByDate(orders) {
		menuCount := make(map[string]int)
		for _, o := range dayOrders {
			for _, name := range o.FoodNames {
				menuCount[name]++
			}
		}
		counts[date] = menuCount
	}
	return counts
}

// TotalSalesByDate sums order revenue per day.
func TotalSalesByDate(orders []MenuOrder) map[Date]int {
	totals := make(map[Date]int)
	for date, dayOrders := range OrdersByDate(orders) {
		sum := 0
		for _, o := range dayOrders {
			sum += o.TotalPrice
		}
		totals[date] = sum
	}
	return totals
}

// AverageSalesInRange averages daily revenue over [start, end]. Days without
// any order are excluded from both the numerator and the denominator; they are
// not zero-revenue days. Returns 0 when no day in range has an order. The
// result is rounded half-up to two decimals.
func AverageSalesInRange(orders []MenuOrder, start, end Date) float64 {
	totals := TotalSalesByDate(orders)
	sum := 0
	count := 0
	for date, total := range totals {
		if !date.Before(start) && !date.After(end) {
			sum += total
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)*100/float64(count)) / 100
}

// SalesTable emits one row per calendar day in [start, end], including days
// with no orders (total 0, top menu "-"). The top menu is the name with the
// highest unit count that day; ties resolve to the lexicographically smallest
// name so the table is deterministic.
func SalesTable(orders []MenuOrder, start, end Date) []SalesRow {
	totals := TotalSalesByDate(orders)
	counts := SalesCountByDate(orders)

	var table []SalesRow
	for d := start; !d.After(end); d = d.Next() {
		row := SalesRow{Date: d, TotalSales: totals[d], TopMenu: NoTopMenu}
		if menuCount := counts[d]; len(menuCount) > 0 {
			row.TopMenu = topMenu(menuCount)
		}
		table = append(table, row)
	}
	return table
}

func topMenu(menuCount map[string]int) string {
	best := ""
	bestCount := -1
	for name, n := range menuCount {
		if n > bestCount || (n == bestCount && name < best) {
			best = name
			bestCount = n
		}
	}
	return best
}
