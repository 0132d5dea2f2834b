// Code generated by ent, DO NOT EDIT.

package placementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/smahajan/codequarry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSessionID, v))
}

// SkillLevel applies equality check predicate on the "skill_level" field. It's identical to SkillLevelEQ.
func SkillLevel(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSkillLevel, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldFeedback, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SkillLevelEQ applies the EQ predicate on the "skill_level" field.
func SkillLevelEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSkillLevel, v))
}

// SkillLevelNEQ applies the NEQ predicate on the "skill_level" field.
func SkillLevelNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSkillLevel, v))
}

// SkillLevelIn applies the In predicate on the "skill_level" field.
func SkillLevelIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSkillLevel, vs...))
}

// SkillLevelNotIn applies the NotIn predicate on the "skill_level" field.
func SkillLevelNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSkillLevel, vs...))
}

// SkillLevelGT applies the GT predicate on the "skill_level" field.
func SkillLevelGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSkillLevel, v))
}

// SkillLevelGTE applies the GTE predicate on the "skill_level" field.
func SkillLevelGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSkillLevel, v))
}

// SkillLevelLT applies the LT predicate on the "skill_level" field.
func SkillLevelLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSkillLevel, v))
}

// SkillLevelLTE applies the LTE predicate on the "skill_level" field.
func SkillLevelLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSkillLevel, v))
}

// SkillLevelContains applies the Contains predicate on the "skill_level" field.
func SkillLevelContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldSkillLevel, v))
}

// SkillLevelHasPrefix applies the HasPrefix predicate on the "skill_level" field.
func SkillLevelHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldSkillLevel, v))
}

// SkillLevelHasSuffix applies the HasSuffix predicate on the "skill_level" field.
func SkillLevelHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldSkillLevel, v))
}

// SkillLevelEqualFold applies the EqualFold predicate on the "skill_level" field.
func SkillLevelEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldSkillLevel, v))
}

// SkillLevelContainsFold applies the ContainsFold predicate on the "skill_level" field.
func SkillLevelContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldSkillLevel, v))
}

// TopicStrengthIsNil applies the IsNil predicate on the "topic_strength" field.
func TopicStrengthIsNil() predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIsNull(FieldTopicStrength))
}

// TopicStrengthNotNil applies the NotNil predicate on the "topic_strength" field.
func TopicStrengthNotNil() predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotNull(FieldTopicStrength))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.NotPredicates(p))
}
