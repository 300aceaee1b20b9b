package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod is the inclusive window every report section is computed over
type ReportPeriod struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Contains reports whether d falls within the period
func (p ReportPeriod) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// TransactionReport is the cross-merchant analytics report for a period
type TransactionReport struct {
	ReportPeriod         ReportPeriod         `json:"reportPeriod"`
	VolumeMetrics        VolumeMetrics        `json:"volumeMetrics"`
	SuccessRateMetrics   SuccessRateMetrics   `json:"successRateMetrics"`
	AmountTrends         AmountTrends         `json:"amountTrends"`
	PeakTimesHeatmap     PeakTimesHeatmap     `json:"peakTimesHeatmap"`
	CardTypeDistribution CardTypeDistribution `json:"cardTypeDistribution"`
	GeneratedAt          time.Time            `json:"generatedAt"`
}

// VolumeMetrics holds count and amount series per day, ISO week and month
type VolumeMetrics struct {
	Daily   []DailyVolume   `json:"daily"`
	Weekly  []WeeklyVolume  `json:"weekly"`
	Monthly []MonthlyVolume `json:"monthly"`
}

type DailyVolume struct {
	Date   Date            `json:"date"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// WeeklyVolume is keyed by the Monday starting the ISO week
type WeeklyVolume struct {
	WeekStart  Date            `json:"weekStart"`
	WeekNumber int             `json:"weekNumber"`
	Count      int64           `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
}

// MonthlyVolume is keyed by YYYY-MM
type MonthlyVolume struct {
	Month  string          `json:"month"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// SuccessRateMetrics breaks the window down by outcome. Rates are percentages with 2 decimals.
type SuccessRateMetrics struct {
	TotalTransactions int64            `json:"totalTransactions"`
	Completed         int64            `json:"completed"`
	Failed            int64            `json:"failed"`
	SuccessRate       decimal.Decimal  `json:"successRate"`
	FailureRate       decimal.Decimal  `json:"failureRate"`
	ByStatus          map[string]int64 `json:"byStatus"`
}

type AmountTrends struct {
	Overall AmountStats        `json:"overall"`
	Daily   []DailyAmountTrend `json:"daily"`
}

// AmountStats summarises amounts; Median is the interpolated 50th percentile
type AmountStats struct {
	Average decimal.Decimal `json:"average"`
	Median  decimal.Decimal `json:"median"`
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
}

type DailyAmountTrend struct {
	Date    Date            `json:"date"`
	Average decimal.Decimal `json:"average"`
}

type PeakTimesHeatmap struct {
	Hourly    []HourlyCount    `json:"hourly"`
	DayOfWeek []DayOfWeekCount `json:"dayOfWeek"`
}

type HourlyCount struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

type DayOfWeekCount struct {
	DayOfWeek string `json:"dayOfWeek"`
	Count     int64  `json:"count"`
}

// CardTypeDistribution percentages are shares of the whole window, not only of known card types
type CardTypeDistribution struct {
	ByType      map[string]int64           `json:"byType"`
	Percentages map[string]decimal.Decimal `json:"percentages"`
}
