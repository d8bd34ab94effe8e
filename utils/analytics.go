package utils

import (
	"math"
	"sort"
	"time"

	"p9e.in/splicing/models"
)

// ChartData represents data formatted for the dashboard charts.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset represents a data series
type Dataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
}

// DayCount is the number of reports dated on one day.
type DayCount struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// ZoneCount is the number of reports filed for one zone.
type ZoneCount struct {
	Zone      string `json:"zone"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// ReportStats is the summary shown on the dashboard KPI cards.
type ReportStats struct {
	Total          int         `json:"total"`
	Completed      int         `json:"completed"`
	Pending        int         `json:"pending"`
	CompletionRate float64     `json:"completionRate"` // percent, one decimal
	PerDay         []DayCount  `json:"perDay"`
	PerZone        []ZoneCount `json:"perZone"`
	Chart          ChartData   `json:"chart"`
	GeneratedAt    time.Time   `json:"generatedAt"`
}

// BuildReportStats aggregates reports into dashboard statistics.
func BuildReportStats(reports []models.Report, now time.Time) *ReportStats {
	stats := &ReportStats{
		PerDay:      []DayCount{},
		PerZone:     []ZoneCount{},
		GeneratedAt: now,
	}

	days := make(map[string]*DayCount)
	zones := make(map[string]*ZoneCount)
	for _, r := range reports {
		stats.Total++
		if r.Status {
			stats.Completed++
		}

		day, ok := days[r.Date]
		if !ok {
			day = &DayCount{Date: r.Date}
			days[r.Date] = day
		}
		zone, ok := zones[r.Zone]
		if !ok {
			zone = &ZoneCount{Zone: r.Zone}
			zones[r.Zone] = zone
		}
		day.Total++
		zone.Total++
		if r.Status {
			day.Completed++
			zone.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	stats.CompletionRate = CompletionRate(stats.Completed, stats.Total)

	for _, d := range days {
		stats.PerDay = append(stats.PerDay, *d)
	}
	sort.Slice(stats.PerDay, func(i, j int) bool { return stats.PerDay[i].Date < stats.PerDay[j].Date })
	for _, z := range zones {
		stats.PerZone = append(stats.PerZone, *z)
	}
	sort.Slice(stats.PerZone, func(i, j int) bool { return stats.PerZone[i].Zone < stats.PerZone[j].Zone })

	stats.Chart = perDayChart(stats.PerDay)
	return stats
}

// CompletionRate returns completed/total as a percentage rounded to one decimal.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

func perDayChart(days []DayCount) ChartData {
	colors := getChartColors(2)
	chart := ChartData{
		Labels: make([]string, 0, len(days)),
		Datasets: []Dataset{
			{Label: "Reports", Data: make([]int, 0, len(days)), BackgroundColor: colors[0], BorderColor: colors[0]},
			{Label: "Completed", Data: make([]int, 0, len(days)), BackgroundColor: colors[1], BorderColor: colors[1]},
		},
	}
	for _, d := range days {
		chart.Labels = append(chart.Labels, d.Date)
		chart.Datasets[0].Data = append(chart.Datasets[0].Data, d.Total)
		chart.Datasets[1].Data = append(chart.Datasets[1].Data, d.Completed)
	}
	return chart
}

func getChartColors(count int) []string {
	baseColors := []string{
		"#3B82F6", // Blue
		"#10B981", // Green
		"#F59E0B", // Amber
		"#EF4444", // Red
		"#8B5CF6", // Purple
	}

	colors := []string{}
	for i := 0; i < count; i++ {
		colors = append(colors, baseColors[i%len(baseColors)])
	}

	return colors
}
