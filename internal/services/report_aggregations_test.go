package services

import (
	"testing"
	"time"

	"payment-api/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ReportAggregationsTestSuite covers the in-memory report sections
type ReportAggregationsTestSuite struct {
	suite.Suite
	period models.ReportPeriod
}

func TestReportAggregationsSuite(t *testing.T) {
	suite.Run(t, new(ReportAggregationsTestSuite))
}

func (s *ReportAggregationsTestSuite) SetupTest() {
	s.period = models.ReportPeriod{
		Start: models.NewDate(2024, time.January, 1),
		End:   models.NewDate(2024, time.January, 31),
	}
}

func reportTxn(date models.Date, amount, status string) models.Transaction {
	return models.Transaction{
		MerchantID: "MCH-00001",
		TxnDate:    date,
		Amount:     decimal.RequireFromString(amount),
		Status:     status,
	}
}

func (s *ReportAggregationsTestSuite) TestEmptyWindow() {
	period := models.ReportPeriod{
		Start: models.NewDate(2024, time.January, 1),
		End:   models.NewDate(2024, time.January, 7),
	}

	report := AggregateReport(period, nil)

	s.Equal(period, report.ReportPeriod)
	s.True(report.SuccessRateMetrics.SuccessRate.IsZero())
	s.True(report.SuccessRateMetrics.FailureRate.IsZero())
	s.Equal(int64(0), report.SuccessRateMetrics.TotalTransactions)

	s.NotNil(report.VolumeMetrics.Daily)
	s.NotNil(report.VolumeMetrics.Weekly)
	s.NotNil(report.VolumeMetrics.Monthly)
	s.Empty(report.VolumeMetrics.Daily)
	s.Empty(report.VolumeMetrics.Weekly)
	s.Empty(report.VolumeMetrics.Monthly)
	s.NotNil(report.AmountTrends.Daily)
	s.NotNil(report.PeakTimesHeatmap.Hourly)
	s.NotNil(report.PeakTimesHeatmap.DayOfWeek)
	s.True(report.AmountTrends.Overall.Median.IsZero())
	s.Empty(report.CardTypeDistribution.ByType)
}

func (s *ReportAggregationsTestSuite) TestEmptyWindowSerializesEmptyArrays() {
	report := AggregateReport(s.period, nil)

	s.Equal([]models.DailyVolume{}, report.VolumeMetrics.Daily)
	s.Equal([]models.HourlyCount{}, report.PeakTimesHeatmap.Hourly)
}

func (s *ReportAggregationsTestSuite) TestExcludesTransactionsOutsideWindow() {
	txns := []models.Transaction{
		reportTxn(models.NewDate(2023, time.December, 31), "5.00", "completed"),
		reportTxn(models.NewDate(2024, time.January, 1), "10.00", "completed"),
		reportTxn(models.NewDate(2024, time.January, 31), "20.00", "completed"),
		reportTxn(models.NewDate(2024, time.February, 1), "40.00", "completed"),
	}

	report := AggregateReport(s.period, txns)

	s.Equal(int64(2), report.SuccessRateMetrics.TotalTransactions)
}

func (s *ReportAggregationsTestSuite) TestDailyAndMonthlyVolume() {
	txns := []models.Transaction{
		reportTxn(models.NewDate(2024, time.January, 3), "10.00", "completed"),
		reportTxn(models.NewDate(2024, time.January, 2), "5.50", "completed"),
		reportTxn(models.NewDate(2024, time.January, 3), "2.25", "failed"),
	}

	report := AggregateReport(s.period, txns)

	daily := report.VolumeMetrics.Daily
	s.Require().Len(daily, 2)
	s.Equal("2024-01-02", daily[0].Date.String())
	s.Equal(int64(1), daily[0].Count)
	s.Equal("2024-01-03", daily[1].Date.String())
	s.Equal(int64(2), daily[1].Count)
	s.True(daily[1].Amount.Equal(decimal.RequireFromString("12.25")))

	s.Require().Len(report.VolumeMetrics.Monthly, 1)
	s.Equal("2024-01", report.VolumeMetrics.Monthly[0].Month)
	s.Equal(int64(3), report.VolumeMetrics.Monthly[0].Count)
	s.True(report.VolumeMetrics.Monthly[0].Amount.Equal(decimal.RequireFromString("17.75")))
}

func (s *ReportAggregationsTestSuite) TestWeeklyVolumeUsesISOWeeksAcrossYearBoundary() {
	period := models.ReportPeriod{
		Start: models.NewDate(2024, time.December, 28),
		End:   models.NewDate(2025, time.January, 6),
	}
	txns := []models.Transaction{
		reportTxn(models.NewDate(2024, time.December, 29), "1.00", "completed"),
		reportTxn(models.NewDate(2024, time.December, 30), "2.00", "completed"),
		reportTxn(models.NewDate(2025, time.January, 1), "3.00", "completed"),
		reportTxn(models.NewDate(2025, time.January, 6), "4.00", "completed"),
	}

	weekly := AggregateReport(period, txns).VolumeMetrics.Weekly

	s.Require().Len(weekly, 3)
	s.Equal("2024-12-23", weekly[0].WeekStart.String())
	s.Equal(52, weekly[0].WeekNumber)
	s.Equal("2024-12-30", weekly[1].WeekStart.String())
	s.Equal(1, weekly[1].WeekNumber)
	s.Equal(int64(2), weekly[1].Count)
	s.True(weekly[1].Amount.Equal(decimal.NewFromInt(5)))
	s.Equal("2025-01-06", weekly[2].WeekStart.String())
	s.Equal(2, weekly[2].WeekNumber)
}

func (s *ReportAggregationsTestSuite) TestSuccessRates() {
	day := models.NewDate(2024, time.January, 10)
	txns := []models.Transaction{
		reportTxn(day, "1.00", "completed"),
		reportTxn(day, "1.00", "completed"),
		reportTxn(day, "1.00", "failed"),
		reportTxn(day, "1.00", "pending"),
		reportTxn(day, "1.00", "completed"),
		reportTxn(day, "1.00", ""),
	}

	metrics := AggregateReport(s.period, txns).SuccessRateMetrics

	s.Equal(int64(6), metrics.TotalTransactions)
	s.Equal(int64(3), metrics.Completed)
	s.Equal(int64(1), metrics.Failed)
	s.Equal("50", metrics.SuccessRate.String())
	s.Equal("16.67", metrics.FailureRate.String())
	s.Equal(map[string]int64{"completed": 3, "failed": 1, "pending": 1, "unknown": 1}, metrics.ByStatus)
}

func (s *ReportAggregationsTestSuite) TestAmountTrendsEvenCountMedian() {
	txns := []models.Transaction{
		reportTxn(models.NewDate(2024, time.January, 1), "40.00", "completed"),
		reportTxn(models.NewDate(2024, time.January, 1), "10.00", "completed"),
		reportTxn(models.NewDate(2024, time.January, 2), "25.05", "completed"),
		reportTxn(models.NewDate(2024, time.January, 2), "20.00", "completed"),
	}

	trends := AggregateReport(s.period, txns).AmountTrends

	s.Equal("23.76", trends.Overall.Average.String())
	s.Equal("22.53", trends.Overall.Median.String())
	s.Equal("10", trends.Overall.Min.String())
	s.Equal("40", trends.Overall.Max.String())

	s.Require().Len(trends.Daily, 2)
	s.Equal("25", trends.Daily[0].Average.String())
	s.Equal("22.53", trends.Daily[1].Average.String())
}

func (s *ReportAggregationsTestSuite) TestAmountTrendsOddCountMedian() {
	day := models.NewDate(2024, time.January, 1)
	txns := []models.Transaction{
		reportTxn(day, "3.00", "completed"),
		reportTxn(day, "100.00", "completed"),
		reportTxn(day, "1.00", "completed"),
	}

	trends := AggregateReport(s.period, txns).AmountTrends

	s.Equal("3", trends.Overall.Median.String())
}

func (s *ReportAggregationsTestSuite) TestPeakTimes() {
	at := func(day, hour int) *time.Time {
		t := time.Date(2024, time.January, day, hour, 15, 0, 0, time.UTC)
		return &t
	}

	sunday := reportTxn(models.NewDate(2024, time.January, 7), "1.00", "completed")
	sunday.LocalTxnDateTime = at(7, 9)
	monday := reportTxn(models.NewDate(2024, time.January, 8), "1.00", "completed")
	monday.LocalTxnDateTime = at(8, 9)
	mondayLate := reportTxn(models.NewDate(2024, time.January, 8), "1.00", "completed")
	mondayLate.LocalTxnDateTime = at(8, 23)
	saturdayNoTime := reportTxn(models.NewDate(2024, time.January, 6), "1.00", "completed")

	heatmap := AggregateReport(s.period, []models.Transaction{sunday, monday, mondayLate, saturdayNoTime}).PeakTimesHeatmap

	s.Equal([]models.HourlyCount{{Hour: 9, Count: 2}, {Hour: 23, Count: 1}}, heatmap.Hourly)
	s.Equal([]models.DayOfWeekCount{
		{DayOfWeek: "SUNDAY", Count: 1},
		{DayOfWeek: "MONDAY", Count: 2},
		{DayOfWeek: "SATURDAY", Count: 1},
	}, heatmap.DayOfWeek)
}

func (s *ReportAggregationsTestSuite) TestCardTypeDistribution() {
	day := models.NewDate(2024, time.January, 15)
	txns := make([]models.Transaction, 0, 4)
	for _, cardType := range []string{"VISA", "visa", "Visa"} {
		txn := reportTxn(day, "1.00", "completed")
		txn.CardType = &cardType
		txns = append(txns, txn)
	}
	txns = append(txns, reportTxn(day, "1.00", "completed"))

	distribution := AggregateReport(s.period, txns).CardTypeDistribution

	s.Equal(map[string]int64{"visa": 3, "unknown": 1}, distribution.ByType)
	s.Equal("75", distribution.Percentages["visa"].String())
	s.Equal("25", distribution.Percentages["unknown"].String())

	sum := decimal.Zero
	for _, pct := range distribution.Percentages {
		sum = sum.Add(pct)
	}
	s.True(sum.Sub(hundred).Abs().LessThanOrEqual(decimal.RequireFromString("0.02")))
}

func TestCardTypePercentagesAgainstWholeWindow(t *testing.T) {
	day := models.NewDate(2024, time.January, 15)
	visa := "visa"
	mc := "mastercard"
	txns := []models.Transaction{
		reportTxn(day, "1.00", "completed"),
		reportTxn(day, "1.00", "completed"),
		reportTxn(day, "1.00", "completed"),
	}
	txns[0].CardType = &visa
	txns[1].CardType = &mc

	distribution := cardTypeDistribution(txns)

	require.Len(t, distribution.Percentages, 3)
	assert.Equal(t, "33.33", distribution.Percentages["visa"].String())
	assert.Equal(t, "33.33", distribution.Percentages["unknown"].String())
}

func TestIsoWeekStart(t *testing.T) {
	assert.Equal(t, "2024-01-01", isoWeekStart(models.NewDate(2024, time.January, 7)).String())
	assert.Equal(t, "2024-01-08", isoWeekStart(models.NewDate(2024, time.January, 8)).String())
	assert.Equal(t, "2024-01-08", isoWeekStart(models.NewDate(2024, time.January, 10)).String())
}
