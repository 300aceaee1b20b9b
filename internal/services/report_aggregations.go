package services

import (
	"slices"
	"strings"
	"time"

	"payment-api/internal/models"

	"github.com/shopspring/decimal"
)

const (
	monthLayout     = "2006-01"
	unknownCardType = "unknown"
	unknownStatus   = "unknown"
)

var hundred = decimal.NewFromInt(100)

// dayNames indexes day-of-week names from Sunday = 0
var dayNames = [7]string{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}

// AggregateReport computes every report section over the transactions dated within the period.
// Series hold only buckets that have transactions and are never nil.
func AggregateReport(period models.ReportPeriod, txns []models.Transaction) models.TransactionReport {
	inWindow := make([]models.Transaction, 0, len(txns))
	for _, txn := range txns {
		if period.Contains(txn.TxnDate) {
			inWindow = append(inWindow, txn)
		}
	}

	return models.TransactionReport{
		ReportPeriod:         period,
		VolumeMetrics:        volumeMetrics(inWindow),
		SuccessRateMetrics:   successRateMetrics(inWindow),
		AmountTrends:         amountTrends(inWindow),
		PeakTimesHeatmap:     peakTimes(inWindow),
		CardTypeDistribution: cardTypeDistribution(inWindow),
	}
}

// bucket accumulates a count and amount sum for one grouping key
type bucket struct {
	count  int64
	amount decimal.Decimal
}

func (b *bucket) add(amount decimal.Decimal) {
	b.count++
	b.amount = b.amount.Add(amount)
}

func groupBy[K comparable](txns []models.Transaction, key func(models.Transaction) K) map[K]*bucket {
	buckets := make(map[K]*bucket)
	for _, txn := range txns {
		k := key(txn)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{amount: decimal.Zero}
			buckets[k] = b
		}
		b.add(txn.Amount)
	}
	return buckets
}

func sortedKeys[K comparable](m map[K]*bucket, compare func(a, b K) int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compare)
	return keys
}

func compareDates(a, b models.Date) int {
	return a.Compare(b.Time)
}

// isoWeekStart returns the Monday starting the ISO week containing d
func isoWeekStart(d models.Date) models.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

func volumeMetrics(txns []models.Transaction) models.VolumeMetrics {
	daily := groupBy(txns, func(t models.Transaction) models.Date { return t.TxnDate })
	weekly := groupBy(txns, func(t models.Transaction) models.Date { return isoWeekStart(t.TxnDate) })
	monthly := groupBy(txns, func(t models.Transaction) string { return t.TxnDate.Format(monthLayout) })

	metrics := models.VolumeMetrics{
		Daily:   make([]models.DailyVolume, 0, len(daily)),
		Weekly:  make([]models.WeeklyVolume, 0, len(weekly)),
		Monthly: make([]models.MonthlyVolume, 0, len(monthly)),
	}

	for _, day := range sortedKeys(daily, compareDates) {
		b := daily[day]
		metrics.Daily = append(metrics.Daily, models.DailyVolume{Date: day, Count: b.count, Amount: b.amount})
	}

	for _, weekStart := range sortedKeys(weekly, compareDates) {
		b := weekly[weekStart]
		_, week := weekStart.ISOWeek()
		metrics.Weekly = append(metrics.Weekly, models.WeeklyVolume{
			WeekStart:  weekStart,
			WeekNumber: week,
			Count:      b.count,
			Amount:     b.amount,
		})
	}

	for _, month := range sortedKeys(monthly, strings.Compare) {
		b := monthly[month]
		metrics.Monthly = append(metrics.Monthly, models.MonthlyVolume{Month: month, Count: b.count, Amount: b.amount})
	}

	return metrics
}

// percentage returns part/total*100 with two decimals, or zero when total is zero
func percentage(part, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(total)).Round(amountScale)
}

func successRateMetrics(txns []models.Transaction) models.SuccessRateMetrics {
	metrics := models.SuccessRateMetrics{
		TotalTransactions: int64(len(txns)),
		ByStatus:          make(map[string]int64),
	}

	for _, txn := range txns {
		status := txn.Status
		if status == "" {
			status = unknownStatus
		}
		metrics.ByStatus[status]++

		switch {
		case txn.IsCompleted():
			metrics.Completed++
		case txn.IsFailed():
			metrics.Failed++
		}
	}

	metrics.SuccessRate = percentage(metrics.Completed, metrics.TotalTransactions)
	metrics.FailureRate = percentage(metrics.Failed, metrics.TotalTransactions)

	return metrics
}

func average(sum decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(count)).Round(amountScale)
}

// median interpolates the 50th percentile of sorted amounts
func median(sorted []decimal.Decimal) decimal.Decimal {
	n := len(sorted)
	if n == 0 {
		return decimal.Zero
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).Div(decimal.NewFromInt(2))
}

func amountTrends(txns []models.Transaction) models.AmountTrends {
	trends := models.AmountTrends{
		Overall: models.AmountStats{
			Average: decimal.Zero,
			Median:  decimal.Zero,
			Min:     decimal.Zero,
			Max:     decimal.Zero,
		},
		Daily: []models.DailyAmountTrend{},
	}
	if len(txns) == 0 {
		return trends
	}

	amounts := make([]decimal.Decimal, 0, len(txns))
	sum := decimal.Zero
	for _, txn := range txns {
		amounts = append(amounts, txn.Amount)
		sum = sum.Add(txn.Amount)
	}
	slices.SortFunc(amounts, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	trends.Overall = models.AmountStats{
		Average: average(sum, int64(len(amounts))),
		Median:  median(amounts).Round(amountScale),
		Min:     amounts[0].Round(amountScale),
		Max:     amounts[len(amounts)-1].Round(amountScale),
	}

	daily := groupBy(txns, func(t models.Transaction) models.Date { return t.TxnDate })
	for _, day := range sortedKeys(daily, compareDates) {
		b := daily[day]
		trends.Daily = append(trends.Daily, models.DailyAmountTrend{Date: day, Average: average(b.amount, b.count)})
	}

	return trends
}

func peakTimes(txns []models.Transaction) models.PeakTimesHeatmap {
	var hours [24]int64
	var days [7]int64

	for _, txn := range txns {
		if txn.LocalTxnDateTime != nil {
			hours[txn.LocalTxnDateTime.Hour()]++
		}
		days[txn.TxnDate.Weekday()]++
	}

	heatmap := models.PeakTimesHeatmap{
		Hourly:    []models.HourlyCount{},
		DayOfWeek: []models.DayOfWeekCount{},
	}

	for hour, count := range hours {
		if count > 0 {
			heatmap.Hourly = append(heatmap.Hourly, models.HourlyCount{Hour: hour, Count: count})
		}
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		if days[day] > 0 {
			heatmap.DayOfWeek = append(heatmap.DayOfWeek, models.DayOfWeekCount{DayOfWeek: dayNames[day], Count: days[day]})
		}
	}

	return heatmap
}

func cardTypeDistribution(txns []models.Transaction) models.CardTypeDistribution {
	distribution := models.CardTypeDistribution{
		ByType:      make(map[string]int64),
		Percentages: make(map[string]decimal.Decimal),
	}

	for _, txn := range txns {
		cardType := unknownCardType
		if txn.CardType != nil {
			cardType = strings.ToLower(*txn.CardType)
		}
		distribution.ByType[cardType]++
	}

	total := int64(len(txns))
	for cardType, count := range distribution.ByType {
		distribution.Percentages[cardType] = percentage(count, total)
	}

	return distribution
}
