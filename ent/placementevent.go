// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/smahajan/codequarry/ent/placementevent"
)

// PlacementEvent is the model entity for the PlacementEvent schema.
type PlacementEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session the assessment ran in
	SessionID string `json:"session_id,omitempty"`
	// Beginner, Intermediate or Advanced
	SkillLevel string `json:"skill_level,omitempty"`
	// Per-topic strength 0..1
	TopicStrength map[string]float64 `json:"topic_strength,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback     string `json:"feedback,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlacementEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case placementevent.FieldTopicStrength:
			values[i] = new([]byte)
		case placementevent.FieldID, placementevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case placementevent.FieldSessionID, placementevent.FieldSkillLevel, placementevent.FieldFeedback:
			values[i] = new(sql.NullString)
		case placementevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlacementEvent fields.
func (_m *PlacementEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case placementevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case placementevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case placementevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case placementevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case placementevent.FieldSkillLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_level", values[i])
			} else if value.Valid {
				_m.SkillLevel = value.String
			}
		case placementevent.FieldTopicStrength:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_strength", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicStrength); err != nil {
					return fmt.Errorf("unmarshal field topic_strength: %w", err)
				}
			}
		case placementevent.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlacementEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PlacementEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlacementEvent.
// Note that you need to call PlacementEvent.Unwrap() before calling this method if this PlacementEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlacementEvent) Update() *PlacementEventUpdateOne {
	return NewPlacementEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlacementEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlacementEvent) Unwrap() *PlacementEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlacementEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlacementEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PlacementEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("skill_level=")
	builder.WriteString(_m.SkillLevel)
	builder.WriteString(", ")
	builder.WriteString("topic_strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicStrength))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteByte(')')
	return builder.String()
}

// PlacementEvents is a parsable slice of PlacementEvent.
type PlacementEvents []*PlacementEvent
