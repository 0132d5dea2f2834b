// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/smahajan/codequarry/ent/askevent"
	"github.com/smahajan/codequarry/ent/llmrequestevent"
	"github.com/smahajan/codequarry/ent/placementevent"
	"github.com/smahajan/codequarry/ent/schema"
	"github.com/smahajan/codequarry/ent/sessionevent"
	"github.com/smahajan/codequarry/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	askeventMixin := schema.AskEvent{}.Mixin()
	askeventMixinFields0 := askeventMixin[0].Fields()
	_ = askeventMixinFields0
	askeventFields := schema.AskEvent{}.Fields()
	_ = askeventFields
	// askeventDescTimestamp is the schema descriptor for timestamp field.
	askeventDescTimestamp := askeventMixinFields0[1].Descriptor()
	// askevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	askevent.DefaultTimestamp = askeventDescTimestamp.Default.(func() time.Time)
	// askeventDescSessionID is the schema descriptor for session_id field.
	askeventDescSessionID := askeventFields[0].Descriptor()
	// askevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	askevent.SessionIDValidator = askeventDescSessionID.Validators[0].(func(string) error)
	// askeventDescQuestion is the schema descriptor for question field.
	askeventDescQuestion := askeventFields[2].Descriptor()
	// askevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	askevent.QuestionValidator = askeventDescQuestion.Validators[0].(func(string) error)
	// askeventDescErrorMessage is the schema descriptor for error_message field.
	askeventDescErrorMessage := askeventFields[4].Descriptor()
	// askevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	askevent.DefaultErrorMessage = askeventDescErrorMessage.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	placementeventMixin := schema.PlacementEvent{}.Mixin()
	placementeventMixinFields0 := placementeventMixin[0].Fields()
	_ = placementeventMixinFields0
	placementeventFields := schema.PlacementEvent{}.Fields()
	_ = placementeventFields
	// placementeventDescTimestamp is the schema descriptor for timestamp field.
	placementeventDescTimestamp := placementeventMixinFields0[1].Descriptor()
	// placementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	placementevent.DefaultTimestamp = placementeventDescTimestamp.Default.(func() time.Time)
	// placementeventDescSessionID is the schema descriptor for session_id field.
	placementeventDescSessionID := placementeventFields[0].Descriptor()
	// placementevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	placementevent.SessionIDValidator = placementeventDescSessionID.Validators[0].(func(string) error)
	// placementeventDescFeedback is the schema descriptor for feedback field.
	placementeventDescFeedback := placementeventFields[3].Descriptor()
	// placementevent.DefaultFeedback holds the default value on creation for the feedback field.
	placementevent.DefaultFeedback = placementeventDescFeedback.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[1].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescProblemID is the schema descriptor for problem_id field.
	sessioneventDescProblemID := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultProblemID holds the default value on creation for the problem_id field.
	sessionevent.DefaultProblemID = sessioneventDescProblemID.Default.(int)
	// sessioneventDescQuestionCount is the schema descriptor for question_count field.
	sessioneventDescQuestionCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionevent.DefaultQuestionCount = sessioneventDescQuestionCount.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescSessionID is the schema descriptor for session_id field.
	submissioneventDescSessionID := submissioneventFields[0].Descriptor()
	// submissionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	submissionevent.SessionIDValidator = submissioneventDescSessionID.Validators[0].(func(string) error)
	// submissioneventDescProblemTitle is the schema descriptor for problem_title field.
	submissioneventDescProblemTitle := submissioneventFields[2].Descriptor()
	// submissionevent.DefaultProblemTitle holds the default value on creation for the problem_title field.
	submissionevent.DefaultProblemTitle = submissioneventDescProblemTitle.Default.(string)
	// submissioneventDescLanguage is the schema descriptor for language field.
	submissioneventDescLanguage := submissioneventFields[3].Descriptor()
	// submissionevent.DefaultLanguage holds the default value on creation for the language field.
	submissionevent.DefaultLanguage = submissioneventDescLanguage.Default.(string)
	// submissioneventDescCorrect is the schema descriptor for correct field.
	submissioneventDescCorrect := submissioneventFields[5].Descriptor()
	// submissionevent.DefaultCorrect holds the default value on creation for the correct field.
	submissionevent.DefaultCorrect = submissioneventDescCorrect.Default.(bool)
	// submissioneventDescFeedback is the schema descriptor for feedback field.
	submissioneventDescFeedback := submissioneventFields[6].Descriptor()
	// submissionevent.DefaultFeedback holds the default value on creation for the feedback field.
	submissionevent.DefaultFeedback = submissioneventDescFeedback.Default.(string)
	// submissioneventDescBatch is the schema descriptor for batch field.
	submissioneventDescBatch := submissioneventFields[7].Descriptor()
	// submissionevent.DefaultBatch holds the default value on creation for the batch field.
	submissionevent.DefaultBatch = submissioneventDescBatch.Default.(bool)
	// submissioneventDescLatencyMs is the schema descriptor for latency_ms field.
	submissioneventDescLatencyMs := submissioneventFields[8].Descriptor()
	// submissionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	submissionevent.DefaultLatencyMs = submissioneventDescLatencyMs.Default.(int64)
}
