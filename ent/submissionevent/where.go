// Code generated by ent, DO NOT EDIT.

package submissionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/smahajan/codequarry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSessionID, v))
}

// ProblemID applies equality check predicate on the "problem_id" field. It's identical to ProblemIDEQ.
func ProblemID(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldProblemID, v))
}

// ProblemTitle applies equality check predicate on the "problem_title" field. It's identical to ProblemTitleEQ.
func ProblemTitle(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldProblemTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldLanguage, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCode, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCorrect, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldFeedback, v))
}

// Batch applies equality check predicate on the "batch" field. It's identical to BatchEQ.
func Batch(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldBatch, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ProblemIDEQ applies the EQ predicate on the "problem_id" field.
func ProblemIDEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldProblemID, v))
}

// ProblemIDNEQ applies the NEQ predicate on the "problem_id" field.
func ProblemIDNEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldProblemID, v))
}

// ProblemIDIn applies the In predicate on the "problem_id" field.
func ProblemIDIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldProblemID, vs...))
}

// ProblemIDNotIn applies the NotIn predicate on the "problem_id" field.
func ProblemIDNotIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldProblemID, vs...))
}

// ProblemIDGT applies the GT predicate on the "problem_id" field.
func ProblemIDGT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldProblemID, v))
}

// ProblemIDGTE applies the GTE predicate on the "problem_id" field.
func ProblemIDGTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldProblemID, v))
}

// ProblemIDLT applies the LT predicate on the "problem_id" field.
func ProblemIDLT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldProblemID, v))
}

// ProblemIDLTE applies the LTE predicate on the "problem_id" field.
func ProblemIDLTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldProblemID, v))
}

// ProblemTitleEQ applies the EQ predicate on the "problem_title" field.
func ProblemTitleEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldProblemTitle, v))
}

// ProblemTitleNEQ applies the NEQ predicate on the "problem_title" field.
func ProblemTitleNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldProblemTitle, v))
}

// ProblemTitleIn applies the In predicate on the "problem_title" field.
func ProblemTitleIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldProblemTitle, vs...))
}

// ProblemTitleNotIn applies the NotIn predicate on the "problem_title" field.
func ProblemTitleNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldProblemTitle, vs...))
}

// ProblemTitleGT applies the GT predicate on the "problem_title" field.
func ProblemTitleGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldProblemTitle, v))
}

// ProblemTitleGTE applies the GTE predicate on the "problem_title" field.
func ProblemTitleGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldProblemTitle, v))
}

// ProblemTitleLT applies the LT predicate on the "problem_title" field.
func ProblemTitleLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldProblemTitle, v))
}

// ProblemTitleLTE applies the LTE predicate on the "problem_title" field.
func ProblemTitleLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldProblemTitle, v))
}

// ProblemTitleContains applies the Contains predicate on the "problem_title" field.
func ProblemTitleContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldProblemTitle, v))
}

// ProblemTitleHasPrefix applies the HasPrefix predicate on the "problem_title" field.
func ProblemTitleHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldProblemTitle, v))
}

// ProblemTitleHasSuffix applies the HasSuffix predicate on the "problem_title" field.
func ProblemTitleHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldProblemTitle, v))
}

// ProblemTitleEqualFold applies the EqualFold predicate on the "problem_title" field.
func ProblemTitleEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldProblemTitle, v))
}

// ProblemTitleContainsFold applies the ContainsFold predicate on the "problem_title" field.
func ProblemTitleContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldProblemTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldLanguage, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldCode, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldCorrect, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// BatchEQ applies the EQ predicate on the "batch" field.
func BatchEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldBatch, v))
}

// BatchNEQ applies the NEQ predicate on the "batch" field.
func BatchNEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldBatch, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.NotPredicates(p))
}
