package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abiral/quizsight/ent"
	"github.com/abiral/quizsight/ent/sessionarchive"
	"github.com/abiral/quizsight/internal/record"
)

// ArchivedSession is the listing view of a stored session.
type ArchivedSession struct {
	UID              string
	Filename         string
	QuizTitle        string
	GamePin          string
	Saved            time.Time
	ParticipantCount int
	QuestionCount    int
	ImportedAt       time.Time
}

// StoredRecord pairs archive metadata with the decoded session record.
type StoredRecord struct {
	Meta   ArchivedSession
	Record *record.SessionRecord
}

// ArchiveRepo manages imported session archives.
type ArchiveRepo interface {
	// Save stores a session record under its filename. Re-importing the
	// same filename replaces the stored payload.
	Save(ctx context.Context, filename string, rec *record.SessionRecord, raw []byte) (*ArchivedSession, error)

	// List returns all archived sessions, newest import first.
	List(ctx context.Context) ([]ArchivedSession, error)

	// Get loads one archived session by filename.
	Get(ctx context.Context, filename string) (*StoredRecord, error)

	// ByQuiz returns every session of a quiz, ordered by saved date
	// ascending, ready for comparison.
	ByQuiz(ctx context.Context, quizTitle string) ([]StoredRecord, error)

	// Delete removes an archived session by filename.
	Delete(ctx context.Context, filename string) error
}

type archiveRepo struct {
	client *ent.Client
}

func (r *archiveRepo) Save(ctx context.Context, filename string, rec *record.SessionRecord, raw []byte) (*ArchivedSession, error) {
	if filename == "" {
		return nil, fmt.Errorf("save archive: empty filename")
	}
	if rec == nil {
		return nil, fmt.Errorf("save archive: nil record")
	}

	var saved *time.Time
	if !rec.Saved.IsZero() {
		t := rec.Saved.Time
		saved = &t
	}
	participants := len(rec.Results)
	questionCount := len(rec.QuestionList())

	existing, err := r.client.SessionArchive.Query().
		Where(sessionarchive.FilenameEQ(filename)).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := existing.Update().
			SetQuizTitle(rec.QuizTitle).
			SetGamePin(rec.GamePin).
			SetNillableSaved(saved).
			SetParticipantCount(participants).
			SetQuestionCount(questionCount).
			SetPayload(raw).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update archive %q: %w", filename, err)
		}
		return toArchivedSession(updated), nil
	case ent.IsNotFound(err):
		created, err := r.client.SessionArchive.Create().
			SetUID(uuid.NewString()).
			SetFilename(filename).
			SetQuizTitle(rec.QuizTitle).
			SetGamePin(rec.GamePin).
			SetNillableSaved(saved).
			SetParticipantCount(participants).
			SetQuestionCount(questionCount).
			SetPayload(raw).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create archive %q: %w", filename, err)
		}
		return toArchivedSession(created), nil
	default:
		return nil, fmt.Errorf("query archive %q: %w", filename, err)
	}
}

func (r *archiveRepo) List(ctx context.Context) ([]ArchivedSession, error) {
	rows, err := r.client.SessionArchive.Query().
		Order(ent.Desc(sessionarchive.FieldImportedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	sessions := make([]ArchivedSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, *toArchivedSession(row))
	}
	return sessions, nil
}

func (r *archiveRepo) Get(ctx context.Context, filename string) (*StoredRecord, error) {
	row, err := r.client.SessionArchive.Query().
		Where(sessionarchive.FilenameEQ(filename)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("archive %q not found", filename)
		}
		return nil, fmt.Errorf("get archive %q: %w", filename, err)
	}
	return toStoredRecord(row)
}

func (r *archiveRepo) ByQuiz(ctx context.Context, quizTitle string) ([]StoredRecord, error) {
	rows, err := r.client.SessionArchive.Query().
		Where(sessionarchive.QuizTitleEQ(quizTitle)).
		Order(ent.Asc(sessionarchive.FieldSaved)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quiz %q archives: %w", quizTitle, err)
	}
	records := make([]StoredRecord, 0, len(rows))
	for _, row := range rows {
		sr, err := toStoredRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *sr)
	}
	return records, nil
}

func (r *archiveRepo) Delete(ctx context.Context, filename string) error {
	n, err := r.client.SessionArchive.Delete().
		Where(sessionarchive.FilenameEQ(filename)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete archive %q: %w", filename, err)
	}
	if n == 0 {
		return fmt.Errorf("archive %q not found", filename)
	}
	return nil
}

func toArchivedSession(row *ent.SessionArchive) *ArchivedSession {
	s := &ArchivedSession{
		UID:              row.UID,
		Filename:         row.Filename,
		QuizTitle:        row.QuizTitle,
		GamePin:          row.GamePin,
		ParticipantCount: row.ParticipantCount,
		QuestionCount:    row.QuestionCount,
		ImportedAt:       row.ImportedAt,
	}
	if row.Saved != nil {
		s.Saved = *row.Saved
	}
	return s
}

func toStoredRecord(row *ent.SessionArchive) (*StoredRecord, error) {
	rec, err := record.Decode(row.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode archive %q: %w", row.Filename, err)
	}
	return &StoredRecord{Meta: *toArchivedSession(row), Record: rec}, nil
}
