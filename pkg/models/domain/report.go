package domain

import (
	"math"
	"time"
)

// Report is the printable form of an estimate or a prediction
type Report struct {
	Title       string
	Period      TimePeriod
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

// TimePeriod is the span of history a report draws on. The zero value means
// the history carried no dates.
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

func NewTimePeriod(start, end time.Time) TimePeriod {
	if start.IsZero() || end.IsZero() {
		return TimePeriod{}
	}
	if end.Before(start) {
		start, end = end, start
	}
	return TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(math.Round(end.Sub(start).Hours() / 24)),
	}
}

// HistoryPeriod spans the dated records of history.
func HistoryPeriod(history []HistoricalRecord) TimePeriod {
	var first, last time.Time
	for _, r := range history {
		if !r.HasDate() {
			continue
		}
		if first.IsZero() || r.Date.Before(first) {
			first = r.Date
		}
		if last.IsZero() || r.Date.After(last) {
			last = r.Date
		}
	}
	return NewTimePeriod(first, last)
}

type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
