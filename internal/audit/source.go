package audit

import (
	"context"
	"fmt"
	"os"
)

// Source supplies the raw result document for a render. The document is
// loaded through the source on every render, so a swapped-in live source
// takes effect without a restart.
type Source interface {
	Load(ctx context.Context) (Document, error)
}

// FileSource loads the result document from a JSON file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return Document{}, fmt.Errorf("open results %s: %w", s.Path, err)
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return Document{}, fmt.Errorf("parse results %s: %w", s.Path, err)
	}
	return doc, nil
}

// StaticSource serves an already-parsed document.
type StaticSource struct {
	Document Document
}

func (s StaticSource) Load(context.Context) (Document, error) {
	return s.Document, nil
}
