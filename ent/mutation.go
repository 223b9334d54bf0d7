// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abiral/quizsight/ent/predicate"
	"github.com/abiral/quizsight/ent/sessionarchive"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSessionArchive = "SessionArchive"
)

// SessionArchiveMutation represents an operation that mutates the SessionArchive nodes in the graph.
type SessionArchiveMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	uid                  *string
	filename             *string
	quiz_title           *string
	game_pin             *string
	saved                *time.Time
	participant_count    *int
	addparticipant_count *int
	question_count       *int
	addquestion_count    *int
	payload              *[]byte
	imported_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SessionArchive, error)
	predicates           []predicate.SessionArchive
}

var _ ent.Mutation = (*SessionArchiveMutation)(nil)

// sessionarchiveOption allows management of the mutation configuration using functional options.
type sessionarchiveOption func(*SessionArchiveMutation)

// newSessionArchiveMutation creates new mutation for the SessionArchive entity.
func newSessionArchiveMutation(c config, op Op, opts ...sessionarchiveOption) *SessionArchiveMutation {
	m := &SessionArchiveMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionArchive,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionArchiveID sets the ID field of the mutation.
func withSessionArchiveID(id int) sessionarchiveOption {
	return func(m *SessionArchiveMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionArchive
		)
		m.oldValue = func(ctx context.Context) (*SessionArchive, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionArchive.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionArchive sets the old SessionArchive of the mutation.
func withSessionArchive(node *SessionArchive) sessionarchiveOption {
	return func(m *SessionArchiveMutation) {
		m.oldValue = func(context.Context) (*SessionArchive, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionArchiveMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionArchiveMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionArchiveMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionArchiveMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionArchive.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUID sets the "uid" field.
func (m *SessionArchiveMutation) SetUID(s string) {
	m.uid = &s
}

// UID returns the value of the "uid" field in the mutation.
func (m *SessionArchiveMutation) UID() (r string, exists bool) {
	v := m.uid
	if v == nil {
		return
	}
	return *v, true
}

// OldUID returns the old "uid" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUID: %w", err)
	}
	return oldValue.UID, nil
}

// ResetUID resets all changes to the "uid" field.
func (m *SessionArchiveMutation) ResetUID() {
	m.uid = nil
}

// SetFilename sets the "filename" field.
func (m *SessionArchiveMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SessionArchiveMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SessionArchiveMutation) ResetFilename() {
	m.filename = nil
}

// SetQuizTitle sets the "quiz_title" field.
func (m *SessionArchiveMutation) SetQuizTitle(s string) {
	m.quiz_title = &s
}

// QuizTitle returns the value of the "quiz_title" field in the mutation.
func (m *SessionArchiveMutation) QuizTitle() (r string, exists bool) {
	v := m.quiz_title
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizTitle returns the old "quiz_title" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldQuizTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizTitle: %w", err)
	}
	return oldValue.QuizTitle, nil
}

// ClearQuizTitle clears the value of the "quiz_title" field.
func (m *SessionArchiveMutation) ClearQuizTitle() {
	m.quiz_title = nil
	m.clearedFields[sessionarchive.FieldQuizTitle] = struct{}{}
}

// QuizTitleCleared returns if the "quiz_title" field was cleared in this mutation.
func (m *SessionArchiveMutation) QuizTitleCleared() bool {
	_, ok := m.clearedFields[sessionarchive.FieldQuizTitle]
	return ok
}

// ResetQuizTitle resets all changes to the "quiz_title" field.
func (m *SessionArchiveMutation) ResetQuizTitle() {
	m.quiz_title = nil
	delete(m.clearedFields, sessionarchive.FieldQuizTitle)
}

// SetGamePin sets the "game_pin" field.
func (m *SessionArchiveMutation) SetGamePin(s string) {
	m.game_pin = &s
}

// GamePin returns the value of the "game_pin" field in the mutation.
func (m *SessionArchiveMutation) GamePin() (r string, exists bool) {
	v := m.game_pin
	if v == nil {
		return
	}
	return *v, true
}

// OldGamePin returns the old "game_pin" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldGamePin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGamePin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGamePin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGamePin: %w", err)
	}
	return oldValue.GamePin, nil
}

// ClearGamePin clears the value of the "game_pin" field.
func (m *SessionArchiveMutation) ClearGamePin() {
	m.game_pin = nil
	m.clearedFields[sessionarchive.FieldGamePin] = struct{}{}
}

// GamePinCleared returns if the "game_pin" field was cleared in this mutation.
func (m *SessionArchiveMutation) GamePinCleared() bool {
	_, ok := m.clearedFields[sessionarchive.FieldGamePin]
	return ok
}

// ResetGamePin resets all changes to the "game_pin" field.
func (m *SessionArchiveMutation) ResetGamePin() {
	m.game_pin = nil
	delete(m.clearedFields, sessionarchive.FieldGamePin)
}

// SetSaved sets the "saved" field.
func (m *SessionArchiveMutation) SetSaved(t time.Time) {
	m.saved = &t
}

// Saved returns the value of the "saved" field in the mutation.
func (m *SessionArchiveMutation) Saved() (r time.Time, exists bool) {
	v := m.saved
	if v == nil {
		return
	}
	return *v, true
}

// OldSaved returns the old "saved" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldSaved(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaved: %w", err)
	}
	return oldValue.Saved, nil
}

// ClearSaved clears the value of the "saved" field.
func (m *SessionArchiveMutation) ClearSaved() {
	m.saved = nil
	m.clearedFields[sessionarchive.FieldSaved] = struct{}{}
}

// SavedCleared returns if the "saved" field was cleared in this mutation.
func (m *SessionArchiveMutation) SavedCleared() bool {
	_, ok := m.clearedFields[sessionarchive.FieldSaved]
	return ok
}

// ResetSaved resets all changes to the "saved" field.
func (m *SessionArchiveMutation) ResetSaved() {
	m.saved = nil
	delete(m.clearedFields, sessionarchive.FieldSaved)
}

// SetParticipantCount sets the "participant_count" field.
func (m *SessionArchiveMutation) SetParticipantCount(i int) {
	m.participant_count = &i
	m.addparticipant_count = nil
}

// ParticipantCount returns the value of the "participant_count" field in the mutation.
func (m *SessionArchiveMutation) ParticipantCount() (r int, exists bool) {
	v := m.participant_count
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantCount returns the old "participant_count" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldParticipantCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantCount: %w", err)
	}
	return oldValue.ParticipantCount, nil
}

// AddParticipantCount adds i to the "participant_count" field.
func (m *SessionArchiveMutation) AddParticipantCount(i int) {
	if m.addparticipant_count != nil {
		*m.addparticipant_count += i
	} else {
		m.addparticipant_count = &i
	}
}

// AddedParticipantCount returns the value that was added to the "participant_count" field in this mutation.
func (m *SessionArchiveMutation) AddedParticipantCount() (r int, exists bool) {
	v := m.addparticipant_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetParticipantCount resets all changes to the "participant_count" field.
func (m *SessionArchiveMutation) ResetParticipantCount() {
	m.participant_count = nil
	m.addparticipant_count = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *SessionArchiveMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *SessionArchiveMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *SessionArchiveMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *SessionArchiveMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *SessionArchiveMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetPayload sets the "payload" field.
func (m *SessionArchiveMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SessionArchiveMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *SessionArchiveMutation) ResetPayload() {
	m.payload = nil
}

// SetImportedAt sets the "imported_at" field.
func (m *SessionArchiveMutation) SetImportedAt(t time.Time) {
	m.imported_at = &t
}

// ImportedAt returns the value of the "imported_at" field in the mutation.
func (m *SessionArchiveMutation) ImportedAt() (r time.Time, exists bool) {
	v := m.imported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedAt returns the old "imported_at" field's value of the SessionArchive entity.
// If the SessionArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionArchiveMutation) OldImportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedAt: %w", err)
	}
	return oldValue.ImportedAt, nil
}

// ResetImportedAt resets all changes to the "imported_at" field.
func (m *SessionArchiveMutation) ResetImportedAt() {
	m.imported_at = nil
}

// Where appends a list predicates to the SessionArchiveMutation builder.
func (m *SessionArchiveMutation) Where(ps ...predicate.SessionArchive) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionArchiveMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionArchiveMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionArchive, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionArchiveMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionArchiveMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionArchive).
func (m *SessionArchiveMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionArchiveMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.uid != nil {
		fields = append(fields, sessionarchive.FieldUID)
	}
	if m.filename != nil {
		fields = append(fields, sessionarchive.FieldFilename)
	}
	if m.quiz_title != nil {
		fields = append(fields, sessionarchive.FieldQuizTitle)
	}
	if m.game_pin != nil {
		fields = append(fields, sessionarchive.FieldGamePin)
	}
	if m.saved != nil {
		fields = append(fields, sessionarchive.FieldSaved)
	}
	if m.participant_count != nil {
		fields = append(fields, sessionarchive.FieldParticipantCount)
	}
	if m.question_count != nil {
		fields = append(fields, sessionarchive.FieldQuestionCount)
	}
	if m.payload != nil {
		fields = append(fields, sessionarchive.FieldPayload)
	}
	if m.imported_at != nil {
		fields = append(fields, sessionarchive.FieldImportedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionArchiveMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionarchive.FieldUID:
		return m.UID()
	case sessionarchive.FieldFilename:
		return m.Filename()
	case sessionarchive.FieldQuizTitle:
		return m.QuizTitle()
	case sessionarchive.FieldGamePin:
		return m.GamePin()
	case sessionarchive.FieldSaved:
		return m.Saved()
	case sessionarchive.FieldParticipantCount:
		return m.ParticipantCount()
	case sessionarchive.FieldQuestionCount:
		return m.QuestionCount()
	case sessionarchive.FieldPayload:
		return m.Payload()
	case sessionarchive.FieldImportedAt:
		return m.ImportedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionArchiveMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionarchive.FieldUID:
		return m.OldUID(ctx)
	case sessionarchive.FieldFilename:
		return m.OldFilename(ctx)
	case sessionarchive.FieldQuizTitle:
		return m.OldQuizTitle(ctx)
	case sessionarchive.FieldGamePin:
		return m.OldGamePin(ctx)
	case sessionarchive.FieldSaved:
		return m.OldSaved(ctx)
	case sessionarchive.FieldParticipantCount:
		return m.OldParticipantCount(ctx)
	case sessionarchive.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case sessionarchive.FieldPayload:
		return m.OldPayload(ctx)
	case sessionarchive.FieldImportedAt:
		return m.OldImportedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionArchive field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionArchiveMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionarchive.FieldUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUID(v)
		return nil
	case sessionarchive.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case sessionarchive.FieldQuizTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizTitle(v)
		return nil
	case sessionarchive.FieldGamePin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGamePin(v)
		return nil
	case sessionarchive.FieldSaved:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaved(v)
		return nil
	case sessionarchive.FieldParticipantCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantCount(v)
		return nil
	case sessionarchive.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case sessionarchive.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case sessionarchive.FieldImportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionArchive field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionArchiveMutation) AddedFields() []string {
	var fields []string
	if m.addparticipant_count != nil {
		fields = append(fields, sessionarchive.FieldParticipantCount)
	}
	if m.addquestion_count != nil {
		fields = append(fields, sessionarchive.FieldQuestionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionArchiveMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionarchive.FieldParticipantCount:
		return m.AddedParticipantCount()
	case sessionarchive.FieldQuestionCount:
		return m.AddedQuestionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionArchiveMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionarchive.FieldParticipantCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParticipantCount(v)
		return nil
	case sessionarchive.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	}
	return fmt.Errorf("unknown SessionArchive numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionArchiveMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionarchive.FieldQuizTitle) {
		fields = append(fields, sessionarchive.FieldQuizTitle)
	}
	if m.FieldCleared(sessionarchive.FieldGamePin) {
		fields = append(fields, sessionarchive.FieldGamePin)
	}
	if m.FieldCleared(sessionarchive.FieldSaved) {
		fields = append(fields, sessionarchive.FieldSaved)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionArchiveMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionArchiveMutation) ClearField(name string) error {
	switch name {
	case sessionarchive.FieldQuizTitle:
		m.ClearQuizTitle()
		return nil
	case sessionarchive.FieldGamePin:
		m.ClearGamePin()
		return nil
	case sessionarchive.FieldSaved:
		m.ClearSaved()
		return nil
	}
	return fmt.Errorf("unknown SessionArchive nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionArchiveMutation) ResetField(name string) error {
	switch name {
	case sessionarchive.FieldUID:
		m.ResetUID()
		return nil
	case sessionarchive.FieldFilename:
		m.ResetFilename()
		return nil
	case sessionarchive.FieldQuizTitle:
		m.ResetQuizTitle()
		return nil
	case sessionarchive.FieldGamePin:
		m.ResetGamePin()
		return nil
	case sessionarchive.FieldSaved:
		m.ResetSaved()
		return nil
	case sessionarchive.FieldParticipantCount:
		m.ResetParticipantCount()
		return nil
	case sessionarchive.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case sessionarchive.FieldPayload:
		m.ResetPayload()
		return nil
	case sessionarchive.FieldImportedAt:
		m.ResetImportedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionArchive field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionArchiveMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionArchiveMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionArchiveMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionArchiveMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionArchiveMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionArchiveMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionArchiveMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionArchive unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionArchiveMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionArchive edge %s", name)
}
