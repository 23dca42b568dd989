package audit

import "math"

// Summary aggregates row statuses for the dashboard stat cards and chart.
type Summary struct {
	Total        int `json:"total"`
	Compliant    int `json:"compliant"`
	NonCompliant int `json:"noncompliant"`
	Errored      int `json:"errored"`
	Unknown      int `json:"unknown"`
	Violations   int `json:"violations"`
}

// Summarize tallies rows by status. Statuses outside the documented set
// count toward Unknown.
func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case StatusCompliant:
			s.Compliant++
		case StatusNonCompliant:
			s.NonCompliant++
		case StatusError:
			s.Errored++
		default:
			s.Unknown++
		}
		s.Violations += row.ViolationCount
	}
	return s
}

// CompliancePercent is the share of compliant controls, rounded to a whole
// percent. An empty result set reports zero.
func (s Summary) CompliancePercent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Compliant) / float64(s.Total) * 100))
}
