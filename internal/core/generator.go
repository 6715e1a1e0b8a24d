package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rosie-yoon/ebaybulk/internal/excel"
	"github.com/rosie-yoon/ebaybulk/internal/feed"
	"github.com/rosie-yoon/ebaybulk/internal/profile"
)

// ProfileGetter resolves the profile a generation runs against.
// Satisfied by *profile.Store.
type ProfileGetter interface {
	Get(ctx context.Context, id uuid.UUID) (profile.Profile, error)
}

// SourceReader supplies raw variant rows and the category lookup.
// Satisfied by *sheets.Client.
type SourceReader interface {
	ReadListings(ctx context.Context, sheetID string) ([]feed.SourceRow, error)
	ReadCategories(ctx context.Context, sheetID string) (feed.CategoryMap, error)
}

// HistoryRecorder records generation metadata. Satisfied by
// *history.Recorder. Recording is best-effort: a failure is logged, never
// surfaced, since the feed is already built.
type HistoryRecorder interface {
	Record(ctx context.Context, profileID uuid.UUID, fileName string, productCount int) error
}

// EncodeFunc turns the projected table into a binary spreadsheet blob.
type EncodeFunc func(table [][]string) ([]byte, error)

// Generator runs the whole pipeline for one profile. One Generate call is
// self-contained; callers may run Generators for different profiles in
// parallel.
type Generator struct {
	profiles ProfileGetter
	source   SourceReader
	history  HistoryRecorder // may be nil
	encode   EncodeFunc
}

// NewGenerator creates a Generator with the standard xlsx encoder.
func NewGenerator(profiles ProfileGetter, source SourceReader, history HistoryRecorder) *Generator {
	return &Generator{
		profiles: profiles,
		source:   source,
		history:  history,
		encode:   excel.Write,
	}
}

// Result is one finished generation.
type Result struct {
	FileName     string       `json:"fileName"`
	Data         []byte       `json:"-"`
	RowCount     int          `json:"rowCount"`     // listing rows, header excluded
	ProductCount int          `json:"productCount"` // parent rows
	Issues       []feed.Issue `json:"issues"`
}

// Generate resolves the profile, reads the source sheet, converts, encodes
// and records the run. Validation issues ride along with a successful
// result; only unresolvable-profile, source-access and empty-dataset
// conditions are errors.
func (g *Generator) Generate(ctx context.Context, profileID uuid.UUID) (*Result, error) {
	prof, err := g.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("resolve profile %s: %w", profileID, err)
	}

	logger := slog.With("profile", prof.Name, "sheet_id", prof.GoogleSheetID)
	logger.Info("generation started")

	rows, err := g.source.ReadListings(ctx, prof.GoogleSheetID)
	if err != nil {
		return nil, err
	}
	cats, err := g.source.ReadCategories(ctx, prof.GoogleSheetID)
	if err != nil {
		return nil, err
	}
	logger.Info("source loaded", "rows", len(rows), "categories", len(cats))

	listings, issues, err := feed.Build(rows, cats, prof.Settings())
	if err != nil {
		return nil, err
	}

	blob, err := g.encode(feed.Project(listings))
	if err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}

	result := &Result{
		FileName: excel.Filename(prof.Name),
		Data:     blob,
		RowCount: len(listings),
		Issues:   issues,
	}
	for _, l := range listings {
		if l.IsParent() {
			result.ProductCount++
		}
	}

	if g.history != nil {
		if err := g.history.Record(ctx, profileID, result.FileName, result.ProductCount); err != nil {
			logger.Warn("history record failed", "error", err)
		}
	}

	logger.Info("generation finished",
		"file", result.FileName,
		"rows", result.RowCount,
		"products", result.ProductCount,
		"issues", len(result.Issues),
	)
	return result, nil
}
