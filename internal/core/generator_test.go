package core

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rosie-yoon/ebaybulk/internal/feed"
	"github.com/rosie-yoon/ebaybulk/internal/profile"
)

type fakeProfiles struct {
	profiles map[uuid.UUID]profile.Profile
}

func (f *fakeProfiles) Get(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

type fakeSource struct {
	rows []feed.SourceRow
	cats feed.CategoryMap
	err  error
}

func (f *fakeSource) ReadListings(context.Context, string) ([]feed.SourceRow, error) {
	return f.rows, f.err
}

func (f *fakeSource) ReadCategories(context.Context, string) (feed.CategoryMap, error) {
	return f.cats, nil
}

type fakeRecorder struct {
	calls int
	count int
	file  string
	err   error
}

func (f *fakeRecorder) Record(_ context.Context, _ uuid.UUID, fileName string, productCount int) error {
	f.calls++
	f.file = fileName
	f.count = productCount
	return f.err
}

func testProfile() (uuid.UUID, *fakeProfiles) {
	id := uuid.New()
	return id, &fakeProfiles{profiles: map[uuid.UUID]profile.Profile{
		id: {
			ID:              id,
			Name:            "rosie",
			GoogleSheetID:   "sheet123",
			ImageDomain:     "https://img.example.com",
			DefaultQuantity: 10,
		},
	}}
}

func sourceRows() []feed.SourceRow {
	return []feed.SourceRow{
		{
			feed.ColParentSKU: "P1", feed.ColSKU: "P1-RED", feed.ColCreate: "TRUE",
			feed.ColProductName: "Scarf", feed.ColCategoryID: "1059",
			feed.ColItem: "Color", feed.ColOption: "Red", feed.ColPrice: "12.5",
		},
		{
			feed.ColParentSKU: "P1", feed.ColSKU: "P1-BLUE", feed.ColCreate: "TRUE",
			feed.ColItem: "Color", feed.ColOption: "Blue", feed.ColPrice: "15",
		},
	}
}

func TestGenerate(t *testing.T) {
	id, profiles := testProfile()
	recorder := &fakeRecorder{}
	source := &fakeSource{
		rows: sourceRows(),
		cats: feed.CategoryMap{"1059": {Path: "Clothing", Condition: "1000-New"}},
	}

	g := NewGenerator(profiles, source, recorder)
	result, err := g.Generate(context.Background(), id)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.FileName != "ebay_bulk_rosie.xlsx" {
		t.Errorf("unexpected file name %q", result.FileName)
	}
	if result.RowCount != 3 {
		t.Errorf("expected 3 listing rows, got %d", result.RowCount)
	}
	if result.ProductCount != 1 {
		t.Errorf("expected 1 product, got %d", result.ProductCount)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty xlsx blob")
	}
	if len(result.Issues) != 0 {
		t.Errorf("expected clean validation, got %v", result.Issues)
	}

	if recorder.calls != 1 {
		t.Fatalf("expected 1 history record, got %d", recorder.calls)
	}
	if recorder.file != result.FileName || recorder.count != 1 {
		t.Errorf("history recorded %q/%d", recorder.file, recorder.count)
	}
}

func TestGenerateIssuesDoNotFail(t *testing.T) {
	id, profiles := testProfile()
	rows := sourceRows()
	delete(rows[0], feed.ColProductName) // parent will miss its Title

	g := NewGenerator(profiles, &fakeSource{rows: rows}, nil)
	result, err := g.Generate(context.Background(), id)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected validation issues")
	}
	if len(result.Data) == 0 {
		t.Error("feed must still be produced alongside issues")
	}
}

func TestGenerateUnknownProfile(t *testing.T) {
	_, profiles := testProfile()

	g := NewGenerator(profiles, &fakeSource{}, nil)
	_, err := g.Generate(context.Background(), uuid.New())
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected profile.ErrNotFound, got %v", err)
	}
	if MapError(err).Code != "PRF001" {
		t.Errorf("expected PRF001, got %s", MapError(err).Code)
	}
}

func TestGenerateEmptyDataset(t *testing.T) {
	id, profiles := testProfile()
	source := &fakeSource{rows: []feed.SourceRow{
		{feed.ColParentSKU: "P1", feed.ColCreate: "FALSE"},
	}}

	g := NewGenerator(profiles, source, nil)
	_, err := g.Generate(context.Background(), id)
	if !errors.Is(err, feed.ErrEmptyDataset) {
		t.Fatalf("expected feed.ErrEmptyDataset, got %v", err)
	}
	if MapError(err).Code != "GEN001" {
		t.Errorf("expected GEN001, got %s", MapError(err).Code)
	}
}

func TestGenerateSourceFailurePropagates(t *testing.T) {
	id, profiles := testProfile()
	srcErr := errors.New("read sheet sheet123 tab \"Bulk\": connect timeout")

	g := NewGenerator(profiles, &fakeSource{err: srcErr}, nil)
	_, err := g.Generate(context.Background(), id)
	if !errors.Is(err, srcErr) {
		t.Fatalf("expected source error to propagate unchanged, got %v", err)
	}
	if MapError(err).Code != "SRC002" {
		t.Errorf("expected SRC002, got %s", MapError(err).Code)
	}
}

func TestGenerateHistoryFailureNonFatal(t *testing.T) {
	id, profiles := testProfile()
	recorder := &fakeRecorder{err: errors.New("connection refused")}

	g := NewGenerator(profiles, &fakeSource{rows: sourceRows()}, recorder)
	result, err := g.Generate(context.Background(), id)
	if err != nil {
		t.Fatalf("history failure must not fail the run: %v", err)
	}
	if len(result.Data) == 0 {
		t.Error("expected xlsx blob despite history failure")
	}
}
