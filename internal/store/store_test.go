package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abiral/quizsight/internal/record"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(t *testing.T, title string, saved time.Time) (*record.SessionRecord, []byte) {
	t.Helper()
	rec := &record.SessionRecord{
		QuizTitle: title,
		Saved:     record.Timestamp{Time: saved},
		Questions: []record.Question{{Text: "Q1", CorrectAnswer: record.Scalar("A")}},
		Results: []record.PlayerResult{
			{Name: "Ana", Answers: []*record.PlayerAnswer{
				{Answer: record.Scalar("A"), IsCorrect: true, TimeMs: 4000},
			}},
		},
	}
	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	return rec, raw
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestArchiveSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Archives()
	ctx := context.Background()

	saved := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rec, raw := testRecord(t, "Fractions Review", saved)

	meta, err := repo.Save(ctx, "week1.json", rec, raw)
	require.NoError(t, err)
	assert.NotEmpty(t, meta.UID)
	assert.Equal(t, "Fractions Review", meta.QuizTitle)
	assert.Equal(t, 1, meta.ParticipantCount)
	assert.Equal(t, 1, meta.QuestionCount)

	stored, err := repo.Get(ctx, "week1.json")
	require.NoError(t, err)
	assert.Equal(t, meta.UID, stored.Meta.UID)
	assert.Equal(t, "Fractions Review", stored.Record.QuizTitle)
	assert.Len(t, stored.Record.Results, 1)
}

func TestArchiveSaveIsIdempotentPerFilename(t *testing.T) {
	s := openTestStore(t)
	repo := s.Archives()
	ctx := context.Background()

	saved := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rec, raw := testRecord(t, "Fractions Review", saved)

	first, err := repo.Save(ctx, "week1.json", rec, raw)
	require.NoError(t, err)

	rec.QuizTitle = "Fractions Review v2"
	raw2, err := json.Marshal(rec)
	require.NoError(t, err)
	second, err := repo.Save(ctx, "week1.json", rec, raw2)
	require.NoError(t, err)

	assert.Equal(t, first.UID, second.UID, "re-import must keep the UID")
	assert.Equal(t, "Fractions Review v2", second.QuizTitle)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestArchiveSaveRejectsBadInput(t *testing.T) {
	s := openTestStore(t)
	repo := s.Archives()
	ctx := context.Background()

	rec, raw := testRecord(t, "Quiz", time.Now())
	_, err := repo.Save(ctx, "", rec, raw)
	assert.Error(t, err, "empty filename")

	_, err = repo.Save(ctx, "x.json", nil, raw)
	assert.Error(t, err, "nil record")
}

func TestArchiveByQuizOrdersBySavedDate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Archives()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"week2.json", "week1.json", "week3.json"} {
		offsets := []int{7, 0, 14}
		rec, raw := testRecord(t, "Fractions Review", base.AddDate(0, 0, offsets[i]))
		_, err := repo.Save(ctx, name, rec, raw)
		require.NoError(t, err)
	}
	other, otherRaw := testRecord(t, "Geometry Intro", base)
	_, err := repo.Save(ctx, "geo.json", other, otherRaw)
	require.NoError(t, err)

	records, err := repo.ByQuiz(ctx, "Fractions Review")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "week1.json", records[0].Meta.Filename)
	assert.Equal(t, "week2.json", records[1].Meta.Filename)
	assert.Equal(t, "week3.json", records[2].Meta.Filename)
}

func TestArchiveDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Archives()
	ctx := context.Background()

	rec, raw := testRecord(t, "Quiz", time.Now())
	_, err := repo.Save(ctx, "gone.json", rec, raw)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "gone.json"))

	_, err = repo.Get(ctx, "gone.json")
	assert.Error(t, err)

	assert.Error(t, repo.Delete(ctx, "gone.json"), "double delete reports not found")
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='session_archives'",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "session_archives", name)
}
