package audit

import "strings"

// Row is the display form of one check record.
type Row struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Service        string   `json:"service"`
	Status         Status   `json:"status"`
	ViolationCount int      `json:"violation_count"`
	Violations     []string `json:"violations"`
	Error          string   `json:"error,omitempty"`
}

// Normalize maps every record in the document to exactly one row, in
// document order. It never fails: missing fields resolve to defaults.
func Normalize(doc Document) []Row {
	rows := make([]Row, 0, len(doc.Records))
	for _, kr := range doc.Records {
		rows = append(rows, normalizeRecord(kr.Key, kr.Record))
	}
	return rows
}

func normalizeRecord(key string, rec CheckRecord) Row {
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		id = strings.TrimSpace(key)
	}

	count := len(rec.Violations)
	if rec.Counts != nil && rec.Counts.Violations != nil {
		count = *rec.Counts.Violations
	}

	return Row{
		ID:             id,
		Title:          strings.TrimSpace(rec.Title),
		Service:        strings.TrimSpace(rec.InputKind),
		Status:         ResolveStatus(rec.Status, rec.Error),
		ViolationCount: count,
		Violations:     append([]string{}, rec.Violations...),
		Error:          strings.TrimSpace(rec.Error),
	}
}
