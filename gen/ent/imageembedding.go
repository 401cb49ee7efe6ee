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
	"github.com/meridian-ml/data-curator/gen/ent/imageembedding"
)

// ImageEmbedding is the model entity for the ImageEmbedding schema.
type ImageEmbedding struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// ImageURI holds the value of the "image_uri" field.
	ImageURI string `json:"image_uri,omitempty"`
	// Vector holds the value of the "vector" field.
	Vector []float32 `json:"vector,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImageEmbedding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case imageembedding.FieldVector:
			values[i] = new([]byte)
		case imageembedding.FieldProjectID, imageembedding.FieldImageURI:
			values[i] = new(sql.NullString)
		case imageembedding.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case imageembedding.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImageEmbedding fields.
func (_m *ImageEmbedding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case imageembedding.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case imageembedding.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case imageembedding.FieldImageURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_uri", values[i])
			} else if value.Valid {
				_m.ImageURI = value.String
			}
		case imageembedding.FieldVector:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vector", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Vector); err != nil {
					return fmt.Errorf("unmarshal field vector: %w", err)
				}
			}
		case imageembedding.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImageEmbedding.
// This includes values selected through modifiers, order, etc.
func (_m *ImageEmbedding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ImageEmbedding.
// Note that you need to call ImageEmbedding.Unwrap() before calling this method if this ImageEmbedding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImageEmbedding) Update() *ImageEmbeddingUpdateOne {
	return NewImageEmbeddingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImageEmbedding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImageEmbedding) Unwrap() *ImageEmbedding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImageEmbedding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImageEmbedding) String() string {
	var builder strings.Builder
	builder.WriteString("ImageEmbedding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("image_uri=")
	builder.WriteString(_m.ImageURI)
	builder.WriteString(", ")
	builder.WriteString("vector=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vector))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ImageEmbeddings is a parsable slice of ImageEmbedding.
type ImageEmbeddings []*ImageEmbedding
