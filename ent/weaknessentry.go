// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pvaidya/recheck/ent/weaknessentry"
)

// WeaknessEntry is the model entity for the WeaknessEntry schema.
type WeaknessEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// "<Subject>/<BaseBranch>/<DetailedBranch>"
	Key string `json:"key,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// BaseBranch holds the value of the "base_branch" field.
	BaseBranch string `json:"base_branch,omitempty"`
	// DetailedBranch holds the value of the "detailed_branch" field.
	DetailedBranch string `json:"detailed_branch,omitempty"`
	// Count holds the value of the "count" field.
	Count int `json:"count,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeaknessEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weaknessentry.FieldID, weaknessentry.FieldCount:
			values[i] = new(sql.NullInt64)
		case weaknessentry.FieldKey, weaknessentry.FieldSubject, weaknessentry.FieldBaseBranch, weaknessentry.FieldDetailedBranch:
			values[i] = new(sql.NullString)
		case weaknessentry.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeaknessEntry fields.
func (_m *WeaknessEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weaknessentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case weaknessentry.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case weaknessentry.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case weaknessentry.FieldBaseBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_branch", values[i])
			} else if value.Valid {
				_m.BaseBranch = value.String
			}
		case weaknessentry.FieldDetailedBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detailed_branch", values[i])
			} else if value.Valid {
				_m.DetailedBranch = value.String
			}
		case weaknessentry.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		case weaknessentry.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeaknessEntry.
// This includes values selected through modifiers, order, etc.
func (_m *WeaknessEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeaknessEntry.
// Note that you need to call WeaknessEntry.Unwrap() before calling this method if this WeaknessEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeaknessEntry) Update() *WeaknessEntryUpdateOne {
	return NewWeaknessEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeaknessEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeaknessEntry) Unwrap() *WeaknessEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeaknessEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeaknessEntry) String() string {
	var builder strings.Builder
	builder.WriteString("WeaknessEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("base_branch=")
	builder.WriteString(_m.BaseBranch)
	builder.WriteString(", ")
	builder.WriteString("detailed_branch=")
	builder.WriteString(_m.DetailedBranch)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WeaknessEntries is a parsable slice of WeaknessEntry.
type WeaknessEntries []*WeaknessEntry
