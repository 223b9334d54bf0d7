// Code generated by ent, DO NOT EDIT.

package sessionarchive

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abiral/quizsight/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldUID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldFilename, v))
}

// QuizTitle applies equality check predicate on the "quiz_title" field. It's identical to QuizTitleEQ.
func QuizTitle(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldQuizTitle, v))
}

// GamePin applies equality check predicate on the "game_pin" field. It's identical to GamePinEQ.
func GamePin(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldGamePin, v))
}

// Saved applies equality check predicate on the "saved" field. It's identical to SavedEQ.
func Saved(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldSaved, v))
}

// ParticipantCount applies equality check predicate on the "participant_count" field. It's identical to ParticipantCountEQ.
func ParticipantCount(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldParticipantCount, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldQuestionCount, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldPayload, v))
}

// ImportedAt applies equality check predicate on the "imported_at" field. It's identical to ImportedAtEQ.
func ImportedAt(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldImportedAt, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldContainsFold(FieldUID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldContainsFold(FieldFilename, v))
}

// QuizTitleEQ applies the EQ predicate on the "quiz_title" field.
func QuizTitleEQ(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldQuizTitle, v))
}

// QuizTitleNEQ applies the NEQ predicate on the "quiz_title" field.
func QuizTitleNEQ(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldQuizTitle, v))
}

// QuizTitleIn applies the In predicate on the "quiz_title" field.
func QuizTitleIn(vs ...string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldQuizTitle, vs...))
}

// QuizTitleNotIn applies the NotIn predicate on the "quiz_title" field.
func QuizTitleNotIn(vs ...string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldQuizTitle, vs...))
}

// QuizTitleGT applies the GT predicate on the "quiz_title" field.
func QuizTitleGT(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldQuizTitle, v))
}

// QuizTitleGTE applies the GTE predicate on the "quiz_title" field.
func QuizTitleGTE(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldQuizTitle, v))
}

// QuizTitleLT applies the LT predicate on the "quiz_title" field.
func QuizTitleLT(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldQuizTitle, v))
}

// QuizTitleLTE applies the LTE predicate on the "quiz_title" field.
func QuizTitleLTE(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldQuizTitle, v))
}

// QuizTitleContains applies the Contains predicate on the "quiz_title" field.
func QuizTitleContains(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldContains(FieldQuizTitle, v))
}

// QuizTitleHasPrefix applies the HasPrefix predicate on the "quiz_title" field.
func QuizTitleHasPrefix(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldHasPrefix(FieldQuizTitle, v))
}

// QuizTitleHasSuffix applies the HasSuffix predicate on the "quiz_title" field.
func QuizTitleHasSuffix(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldHasSuffix(FieldQuizTitle, v))
}

// QuizTitleIsNil applies the IsNil predicate on the "quiz_title" field.
func QuizTitleIsNil() predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIsNull(FieldQuizTitle))
}

// QuizTitleNotNil applies the NotNil predicate on the "quiz_title" field.
func QuizTitleNotNil() predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotNull(FieldQuizTitle))
}

// QuizTitleEqualFold applies the EqualFold predicate on the "quiz_title" field.
func QuizTitleEqualFold(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEqualFold(FieldQuizTitle, v))
}

// QuizTitleContainsFold applies the ContainsFold predicate on the "quiz_title" field.
func QuizTitleContainsFold(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldContainsFold(FieldQuizTitle, v))
}

// GamePinEQ applies the EQ predicate on the "game_pin" field.
func GamePinEQ(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldGamePin, v))
}

// GamePinNEQ applies the NEQ predicate on the "game_pin" field.
func GamePinNEQ(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldGamePin, v))
}

// GamePinIn applies the In predicate on the "game_pin" field.
func GamePinIn(vs ...string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldGamePin, vs...))
}

// GamePinNotIn applies the NotIn predicate on the "game_pin" field.
func GamePinNotIn(vs ...string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldGamePin, vs...))
}

// GamePinGT applies the GT predicate on the "game_pin" field.
func GamePinGT(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldGamePin, v))
}

// GamePinGTE applies the GTE predicate on the "game_pin" field.
func GamePinGTE(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldGamePin, v))
}

// GamePinLT applies the LT predicate on the "game_pin" field.
func GamePinLT(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldGamePin, v))
}

// GamePinLTE applies the LTE predicate on the "game_pin" field.
func GamePinLTE(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldGamePin, v))
}

// GamePinContains applies the Contains predicate on the "game_pin" field.
func GamePinContains(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldContains(FieldGamePin, v))
}

// GamePinHasPrefix applies the HasPrefix predicate on the "game_pin" field.
func GamePinHasPrefix(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldHasPrefix(FieldGamePin, v))
}

// GamePinHasSuffix applies the HasSuffix predicate on the "game_pin" field.
func GamePinHasSuffix(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldHasSuffix(FieldGamePin, v))
}

// GamePinIsNil applies the IsNil predicate on the "game_pin" field.
func GamePinIsNil() predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIsNull(FieldGamePin))
}

// GamePinNotNil applies the NotNil predicate on the "game_pin" field.
func GamePinNotNil() predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotNull(FieldGamePin))
}

// GamePinEqualFold applies the EqualFold predicate on the "game_pin" field.
func GamePinEqualFold(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEqualFold(FieldGamePin, v))
}

// GamePinContainsFold applies the ContainsFold predicate on the "game_pin" field.
func GamePinContainsFold(v string) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldContainsFold(FieldGamePin, v))
}

// SavedEQ applies the EQ predicate on the "saved" field.
func SavedEQ(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldSaved, v))
}

// SavedNEQ applies the NEQ predicate on the "saved" field.
func SavedNEQ(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldSaved, v))
}

// SavedIn applies the In predicate on the "saved" field.
func SavedIn(vs ...time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldSaved, vs...))
}

// SavedNotIn applies the NotIn predicate on the "saved" field.
func SavedNotIn(vs ...time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldSaved, vs...))
}

// SavedGT applies the GT predicate on the "saved" field.
func SavedGT(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldSaved, v))
}

// SavedGTE applies the GTE predicate on the "saved" field.
func SavedGTE(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldSaved, v))
}

// SavedLT applies the LT predicate on the "saved" field.
func SavedLT(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldSaved, v))
}

// SavedLTE applies the LTE predicate on the "saved" field.
func SavedLTE(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldSaved, v))
}

// SavedIsNil applies the IsNil predicate on the "saved" field.
func SavedIsNil() predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIsNull(FieldSaved))
}

// SavedNotNil applies the NotNil predicate on the "saved" field.
func SavedNotNil() predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotNull(FieldSaved))
}

// ParticipantCountEQ applies the EQ predicate on the "participant_count" field.
func ParticipantCountEQ(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldParticipantCount, v))
}

// ParticipantCountNEQ applies the NEQ predicate on the "participant_count" field.
func ParticipantCountNEQ(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldParticipantCount, v))
}

// ParticipantCountIn applies the In predicate on the "participant_count" field.
func ParticipantCountIn(vs ...int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldParticipantCount, vs...))
}

// ParticipantCountNotIn applies the NotIn predicate on the "participant_count" field.
func ParticipantCountNotIn(vs ...int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldParticipantCount, vs...))
}

// ParticipantCountGT applies the GT predicate on the "participant_count" field.
func ParticipantCountGT(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldParticipantCount, v))
}

// ParticipantCountGTE applies the GTE predicate on the "participant_count" field.
func ParticipantCountGTE(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldParticipantCount, v))
}

// ParticipantCountLT applies the LT predicate on the "participant_count" field.
func ParticipantCountLT(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldParticipantCount, v))
}

// ParticipantCountLTE applies the LTE predicate on the "participant_count" field.
func ParticipantCountLTE(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldParticipantCount, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldQuestionCount, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldPayload, v))
}

// ImportedAtEQ applies the EQ predicate on the "imported_at" field.
func ImportedAtEQ(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldEQ(FieldImportedAt, v))
}

// ImportedAtNEQ applies the NEQ predicate on the "imported_at" field.
func ImportedAtNEQ(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNEQ(FieldImportedAt, v))
}

// ImportedAtIn applies the In predicate on the "imported_at" field.
func ImportedAtIn(vs ...time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldIn(FieldImportedAt, vs...))
}

// ImportedAtNotIn applies the NotIn predicate on the "imported_at" field.
func ImportedAtNotIn(vs ...time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldNotIn(FieldImportedAt, vs...))
}

// ImportedAtGT applies the GT predicate on the "imported_at" field.
func ImportedAtGT(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGT(FieldImportedAt, v))
}

// ImportedAtGTE applies the GTE predicate on the "imported_at" field.
func ImportedAtGTE(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldGTE(FieldImportedAt, v))
}

// ImportedAtLT applies the LT predicate on the "imported_at" field.
func ImportedAtLT(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLT(FieldImportedAt, v))
}

// ImportedAtLTE applies the LTE predicate on the "imported_at" field.
func ImportedAtLTE(v time.Time) predicate.SessionArchive {
	return predicate.SessionArchive(sql.FieldLTE(FieldImportedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionArchive) predicate.SessionArchive {
	return predicate.SessionArchive(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionArchive) predicate.SessionArchive {
	return predicate.SessionArchive(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionArchive) predicate.SessionArchive {
	return predicate.SessionArchive(sql.NotPredicates(p))
}
