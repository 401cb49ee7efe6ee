// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/meridian-ml/data-curator/gen/ent/curationjob"
)

// CurationJob is the model entity for the CurationJob schema.
type CurationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// RawDataURI holds the value of the "raw_data_uri" field.
	RawDataURI string `json:"raw_data_uri,omitempty"`
	// CuratedDataURI holds the value of the "curated_data_uri" field.
	CuratedDataURI *string `json:"curated_data_uri,omitempty"`
	// ImagesForFeedback holds the value of the "images_for_feedback" field.
	ImagesForFeedback json.RawMessage `json:"images_for_feedback,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CurationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case curationjob.FieldImagesForFeedback:
			values[i] = new([]byte)
		case curationjob.FieldVersion:
			values[i] = new(sql.NullInt64)
		case curationjob.FieldProjectID, curationjob.FieldStatus, curationjob.FieldRawDataURI, curationjob.FieldCuratedDataURI, curationjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case curationjob.FieldCreatedAt, curationjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case curationjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CurationJob fields.
func (_m *CurationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case curationjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case curationjob.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case curationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case curationjob.FieldRawDataURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_data_uri", values[i])
			} else if value.Valid {
				_m.RawDataURI = value.String
			}
		case curationjob.FieldCuratedDataURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field curated_data_uri", values[i])
			} else if value.Valid {
				_m.CuratedDataURI = new(string)
				*_m.CuratedDataURI = value.String
			}
		case curationjob.FieldImagesForFeedback:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field images_for_feedback", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImagesForFeedback); err != nil {
					return fmt.Errorf("unmarshal field images_for_feedback: %w", err)
				}
			}
		case curationjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case curationjob.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case curationjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case curationjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CurationJob.
// This includes values selected through modifiers, order, etc.
func (_m *CurationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CurationJob.
// Note that you need to call CurationJob.Unwrap() before calling this method if this CurationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CurationJob) Update() *CurationJobUpdateOne {
	return NewCurationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CurationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CurationJob) Unwrap() *CurationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CurationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CurationJob) String() string {
	var builder strings.Builder
	builder.WriteString("CurationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("raw_data_uri=")
	builder.WriteString(_m.RawDataURI)
	builder.WriteString(", ")
	if v := _m.CuratedDataURI; v != nil {
		builder.WriteString("curated_data_uri=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("images_for_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImagesForFeedback))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CurationJobs is a parsable slice of CurationJob.
type CurationJobs []*CurationJob
