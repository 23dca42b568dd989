package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// CheckRecord is one raw audit-check result as produced by a scan run.
// Every field may be absent; Normalize substitutes documented defaults.
type CheckRecord struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	InputKind  string           `json:"input_kind"`
	Status     string           `json:"status"`
	Error      string           `json:"error"`
	Counts     *ViolationCounts `json:"counts"`
	Violations []string         `json:"violations"`
}

// ViolationCounts carries the scanner's own violation tally. The pointer
// distinguishes an explicit zero from an absent count.
type ViolationCounts struct {
	Violations *int `json:"violations"`
}

// KeyedRecord pairs a record with the control identifier it was keyed by.
type KeyedRecord struct {
	Key    string
	Record CheckRecord
}

// Document is a parsed result document with its original key order intact.
type Document struct {
	Records []KeyedRecord
}

// ParseDocument decodes a JSON object of control ID to check record,
// preserving the order in which keys appear in the document. A record body
// that does not decode is kept as an empty record under its key rather than
// dropped, so the row count always matches the key count.
func ParseDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return Document{}, fmt.Errorf("read result document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Document{}, fmt.Errorf("result document must be a JSON object, got %v", tok)
	}

	var doc Document
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Document{}, fmt.Errorf("read record key: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Document{}, fmt.Errorf("read record %q: %w", key, err)
		}

		var rec CheckRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			rec = CheckRecord{}
		}
		doc.Records = append(doc.Records, KeyedRecord{Key: key, Record: rec})
	}

	if _, err := dec.Token(); err != nil {
		return Document{}, fmt.Errorf("read result document end: %w", err)
	}

	return doc, nil
}

// ParseDocumentBytes parses an in-memory result document.
func ParseDocumentBytes(b []byte) (Document, error) {
	return ParseDocument(bytes.NewReader(b))
}
