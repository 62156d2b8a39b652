// Code generated by ent, DO NOT EDIT.

package resultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dchen/streaklog/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RecordID applies equality check predicate on the "record_id" field. It's identical to RecordIDEQ.
func RecordID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldRecordID, v))
}

// GameID applies equality check predicate on the "game_id" field. It's identical to GameIDEQ.
func GameID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldGameID, v))
}

// GameName applies equality check predicate on the "game_name" field. It's identical to GameNameEQ.
func GameName(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldGameName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldScore, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldMaxAttempts, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldCompleted, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldRawText, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RecordIDEQ applies the EQ predicate on the "record_id" field.
func RecordIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldRecordID, v))
}

// RecordIDNEQ applies the NEQ predicate on the "record_id" field.
func RecordIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldRecordID, v))
}

// RecordIDIn applies the In predicate on the "record_id" field.
func RecordIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldRecordID, vs...))
}

// RecordIDNotIn applies the NotIn predicate on the "record_id" field.
func RecordIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldRecordID, vs...))
}

// RecordIDGT applies the GT predicate on the "record_id" field.
func RecordIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldRecordID, v))
}

// RecordIDGTE applies the GTE predicate on the "record_id" field.
func RecordIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldRecordID, v))
}

// RecordIDLT applies the LT predicate on the "record_id" field.
func RecordIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldRecordID, v))
}

// RecordIDLTE applies the LTE predicate on the "record_id" field.
func RecordIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldRecordID, v))
}

// RecordIDContains applies the Contains predicate on the "record_id" field.
func RecordIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldRecordID, v))
}

// RecordIDHasPrefix applies the HasPrefix predicate on the "record_id" field.
func RecordIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldRecordID, v))
}

// RecordIDHasSuffix applies the HasSuffix predicate on the "record_id" field.
func RecordIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldRecordID, v))
}

// RecordIDEqualFold applies the EqualFold predicate on the "record_id" field.
func RecordIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldRecordID, v))
}

// RecordIDContainsFold applies the ContainsFold predicate on the "record_id" field.
func RecordIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldRecordID, v))
}

// GameIDEQ applies the EQ predicate on the "game_id" field.
func GameIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldGameID, v))
}

// GameIDNEQ applies the NEQ predicate on the "game_id" field.
func GameIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldGameID, v))
}

// GameIDIn applies the In predicate on the "game_id" field.
func GameIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldGameID, vs...))
}

// GameIDNotIn applies the NotIn predicate on the "game_id" field.
func GameIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldGameID, vs...))
}

// GameIDGT applies the GT predicate on the "game_id" field.
func GameIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldGameID, v))
}

// GameIDGTE applies the GTE predicate on the "game_id" field.
func GameIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldGameID, v))
}

// GameIDLT applies the LT predicate on the "game_id" field.
func GameIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldGameID, v))
}

// GameIDLTE applies the LTE predicate on the "game_id" field.
func GameIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldGameID, v))
}

// GameIDContains applies the Contains predicate on the "game_id" field.
func GameIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldGameID, v))
}

// GameIDHasPrefix applies the HasPrefix predicate on the "game_id" field.
func GameIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldGameID, v))
}

// GameIDHasSuffix applies the HasSuffix predicate on the "game_id" field.
func GameIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldGameID, v))
}

// GameIDEqualFold applies the EqualFold predicate on the "game_id" field.
func GameIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldGameID, v))
}

// GameIDContainsFold applies the ContainsFold predicate on the "game_id" field.
func GameIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldGameID, v))
}

// GameNameEQ applies the EQ predicate on the "game_name" field.
func GameNameEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldGameName, v))
}

// GameNameNEQ applies the NEQ predicate on the "game_name" field.
func GameNameNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldGameName, v))
}

// GameNameIn applies the In predicate on the "game_name" field.
func GameNameIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldGameName, vs...))
}

// GameNameNotIn applies the NotIn predicate on the "game_name" field.
func GameNameNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldGameName, vs...))
}

// GameNameGT applies the GT predicate on the "game_name" field.
func GameNameGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldGameName, v))
}

// GameNameGTE applies the GTE predicate on the "game_name" field.
func GameNameGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldGameName, v))
}

// GameNameLT applies the LT predicate on the "game_name" field.
func GameNameLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldGameName, v))
}

// GameNameLTE applies the LTE predicate on the "game_name" field.
func GameNameLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldGameName, v))
}

// GameNameContains applies the Contains predicate on the "game_name" field.
func GameNameContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldGameName, v))
}

// GameNameHasPrefix applies the HasPrefix predicate on the "game_name" field.
func GameNameHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldGameName, v))
}

// GameNameHasSuffix applies the HasSuffix predicate on the "game_name" field.
func GameNameHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldGameName, v))
}

// GameNameEqualFold applies the EqualFold predicate on the "game_name" field.
func GameNameEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldGameName, v))
}

// GameNameContainsFold applies the ContainsFold predicate on the "game_name" field.
func GameNameContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldGameName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotNull(FieldScore))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldMaxAttempts, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldCompleted, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldRawText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.NotPredicates(p))
}
