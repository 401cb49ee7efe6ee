// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/meridian-ml/data-curator/gen/ent/curationjob"
	"github.com/meridian-ml/data-curator/gen/ent/imageembedding"
	"github.com/meridian-ml/data-curator/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCurationJob    = "CurationJob"
	TypeImageEmbedding = "ImageEmbedding"
)

// CurationJobMutation represents an operation that mutates the CurationJob nodes in the graph.
type CurationJobMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	project_id                *string
	status                    *string
	raw_data_uri              *string
	curated_data_uri          *string
	images_for_feedback       *json.RawMessage
	appendimages_for_feedback json.RawMessage
	error_message             *string
	version                   *int
	addversion                *int
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*CurationJob, error)
	predicates                []predicate.CurationJob
}

var _ ent.Mutation = (*CurationJobMutation)(nil)

// curationjobOption allows management of the mutation configuration using functional options.
type curationjobOption func(*CurationJobMutation)

// newCurationJobMutation creates new mutation for the CurationJob entity.
func newCurationJobMutation(c config, op Op, opts ...curationjobOption) *CurationJobMutation {
	m := &CurationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeCurationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCurationJobID sets the ID field of the mutation.
func withCurationJobID(id uuid.UUID) curationjobOption {
	return func(m *CurationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *CurationJob
		)
		m.oldValue = func(ctx context.Context) (*CurationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CurationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCurationJob sets the old CurationJob of the mutation.
func withCurationJob(node *CurationJob) curationjobOption {
	return func(m *CurationJobMutation) {
		m.oldValue = func(context.Context) (*CurationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CurationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CurationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CurationJob entities.
func (m *CurationJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CurationJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CurationJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CurationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *CurationJobMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *CurationJobMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *CurationJobMutation) ResetProjectID() {
	m.project_id = nil
}

// SetStatus sets the "status" field.
func (m *CurationJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CurationJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CurationJobMutation) ResetStatus() {
	m.status = nil
}

// SetRawDataURI sets the "raw_data_uri" field.
func (m *CurationJobMutation) SetRawDataURI(s string) {
	m.raw_data_uri = &s
}

// RawDataURI returns the value of the "raw_data_uri" field in the mutation.
func (m *CurationJobMutation) RawDataURI() (r string, exists bool) {
	v := m.raw_data_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldRawDataURI returns the old "raw_data_uri" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldRawDataURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawDataURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawDataURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawDataURI: %w", err)
	}
	return oldValue.RawDataURI, nil
}

// ResetRawDataURI resets all changes to the "raw_data_uri" field.
func (m *CurationJobMutation) ResetRawDataURI() {
	m.raw_data_uri = nil
}

// SetCuratedDataURI sets the "curated_data_uri" field.
func (m *CurationJobMutation) SetCuratedDataURI(s string) {
	m.curated_data_uri = &s
}

// CuratedDataURI returns the value of the "curated_data_uri" field in the mutation.
func (m *CurationJobMutation) CuratedDataURI() (r string, exists bool) {
	v := m.curated_data_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldCuratedDataURI returns the old "curated_data_uri" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldCuratedDataURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCuratedDataURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCuratedDataURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCuratedDataURI: %w", err)
	}
	return oldValue.CuratedDataURI, nil
}

// ClearCuratedDataURI clears the value of the "curated_data_uri" field.
func (m *CurationJobMutation) ClearCuratedDataURI() {
	m.curated_data_uri = nil
	m.clearedFields[curationjob.FieldCuratedDataURI] = struct{}{}
}

// CuratedDataURICleared returns if the "curated_data_uri" field was cleared in this mutation.
func (m *CurationJobMutation) CuratedDataURICleared() bool {
	_, ok := m.clearedFields[curationjob.FieldCuratedDataURI]
	return ok
}

// ResetCuratedDataURI resets all changes to the "curated_data_uri" field.
func (m *CurationJobMutation) ResetCuratedDataURI() {
	m.curated_data_uri = nil
	delete(m.clearedFields, curationjob.FieldCuratedDataURI)
}

// SetImagesForFeedback sets the "images_for_feedback" field.
func (m *CurationJobMutation) SetImagesForFeedback(jm json.RawMessage) {
	m.images_for_feedback = &jm
	m.appendimages_for_feedback = nil
}

// ImagesForFeedback returns the value of the "images_for_feedback" field in the mutation.
func (m *CurationJobMutation) ImagesForFeedback() (r json.RawMessage, exists bool) {
	v := m.images_for_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldImagesForFeedback returns the old "images_for_feedback" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldImagesForFeedback(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagesForFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagesForFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagesForFeedback: %w", err)
	}
	return oldValue.ImagesForFeedback, nil
}

// AppendImagesForFeedback adds jm to the "images_for_feedback" field.
func (m *CurationJobMutation) AppendImagesForFeedback(jm json.RawMessage) {
	m.appendimages_for_feedback = append(m.appendimages_for_feedback, jm...)
}

// AppendedImagesForFeedback returns the list of values that were appended to the "images_for_feedback" field in this mutation.
func (m *CurationJobMutation) AppendedImagesForFeedback() (json.RawMessage, bool) {
	if len(m.appendimages_for_feedback) == 0 {
		return nil, false
	}
	return m.appendimages_for_feedback, true
}

// ClearImagesForFeedback clears the value of the "images_for_feedback" field.
func (m *CurationJobMutation) ClearImagesForFeedback() {
	m.images_for_feedback = nil
	m.appendimages_for_feedback = nil
	m.clearedFields[curationjob.FieldImagesForFeedback] = struct{}{}
}

// ImagesForFeedbackCleared returns if the "images_for_feedback" field was cleared in this mutation.
func (m *CurationJobMutation) ImagesForFeedbackCleared() bool {
	_, ok := m.clearedFields[curationjob.FieldImagesForFeedback]
	return ok
}

// ResetImagesForFeedback resets all changes to the "images_for_feedback" field.
func (m *CurationJobMutation) ResetImagesForFeedback() {
	m.images_for_feedback = nil
	m.appendimages_for_feedback = nil
	delete(m.clearedFields, curationjob.FieldImagesForFeedback)
}

// SetErrorMessage sets the "error_message" field.
func (m *CurationJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CurationJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CurationJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[curationjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CurationJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[curationjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CurationJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, curationjob.FieldErrorMessage)
}

// SetVersion sets the "version" field.
func (m *CurationJobMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CurationJobMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CurationJobMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CurationJobMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CurationJobMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CurationJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CurationJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CurationJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CurationJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CurationJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CurationJob entity.
// If the CurationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurationJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CurationJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CurationJobMutation builder.
func (m *CurationJobMutation) Where(ps ...predicate.CurationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CurationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CurationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CurationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CurationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CurationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CurationJob).
func (m *CurationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CurationJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project_id != nil {
		fields = append(fields, curationjob.FieldProjectID)
	}
	if m.status != nil {
		fields = append(fields, curationjob.FieldStatus)
	}
	if m.raw_data_uri != nil {
		fields = append(fields, curationjob.FieldRawDataURI)
	}
	if m.curated_data_uri != nil {
		fields = append(fields, curationjob.FieldCuratedDataURI)
	}
	if m.images_for_feedback != nil {
		fields = append(fields, curationjob.FieldImagesForFeedback)
	}
	if m.error_message != nil {
		fields = append(fields, curationjob.FieldErrorMessage)
	}
	if m.version != nil {
		fields = append(fields, curationjob.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, curationjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, curationjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CurationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case curationjob.FieldProjectID:
		return m.ProjectID()
	case curationjob.FieldStatus:
		return m.Status()
	case curationjob.FieldRawDataURI:
		return m.RawDataURI()
	case curationjob.FieldCuratedDataURI:
		return m.CuratedDataURI()
	case curationjob.FieldImagesForFeedback:
		return m.ImagesForFeedback()
	case curationjob.FieldErrorMessage:
		return m.ErrorMessage()
	case curationjob.FieldVersion:
		return m.Version()
	case curationjob.FieldCreatedAt:
		return m.CreatedAt()
	case curationjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CurationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case curationjob.FieldProjectID:
		return m.OldProjectID(ctx)
	case curationjob.FieldStatus:
		return m.OldStatus(ctx)
	case curationjob.FieldRawDataURI:
		return m.OldRawDataURI(ctx)
	case curationjob.FieldCuratedDataURI:
		return m.OldCuratedDataURI(ctx)
	case curationjob.FieldImagesForFeedback:
		return m.OldImagesForFeedback(ctx)
	case curationjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case curationjob.FieldVersion:
		return m.OldVersion(ctx)
	case curationjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case curationjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CurationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case curationjob.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case curationjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case curationjob.FieldRawDataURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawDataURI(v)
		return nil
	case curationjob.FieldCuratedDataURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCuratedDataURI(v)
		return nil
	case curationjob.FieldImagesForFeedback:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagesForFeedback(v)
		return nil
	case curationjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case curationjob.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case curationjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case curationjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CurationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CurationJobMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, curationjob.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CurationJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case curationjob.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case curationjob.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown CurationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CurationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(curationjob.FieldCuratedDataURI) {
		fields = append(fields, curationjob.FieldCuratedDataURI)
	}
	if m.FieldCleared(curationjob.FieldImagesForFeedback) {
		fields = append(fields, curationjob.FieldImagesForFeedback)
	}
	if m.FieldCleared(curationjob.FieldErrorMessage) {
		fields = append(fields, curationjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CurationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CurationJobMutation) ClearField(name string) error {
	switch name {
	case curationjob.FieldCuratedDataURI:
		m.ClearCuratedDataURI()
		return nil
	case curationjob.FieldImagesForFeedback:
		m.ClearImagesForFeedback()
		return nil
	case curationjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown CurationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CurationJobMutation) ResetField(name string) error {
	switch name {
	case curationjob.FieldProjectID:
		m.ResetProjectID()
		return nil
	case curationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case curationjob.FieldRawDataURI:
		m.ResetRawDataURI()
		return nil
	case curationjob.FieldCuratedDataURI:
		m.ResetCuratedDataURI()
		return nil
	case curationjob.FieldImagesForFeedback:
		m.ResetImagesForFeedback()
		return nil
	case curationjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case curationjob.FieldVersion:
		m.ResetVersion()
		return nil
	case curationjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case curationjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CurationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CurationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CurationJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CurationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CurationJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CurationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CurationJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CurationJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CurationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CurationJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CurationJob edge %s", name)
}

// ImageEmbeddingMutation represents an operation that mutates the ImageEmbedding nodes in the graph.
type ImageEmbeddingMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	project_id    *string
	image_uri     *string
	vector        *[]float32
	appendvector  []float32
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ImageEmbedding, error)
	predicates    []predicate.ImageEmbedding
}

var _ ent.Mutation = (*ImageEmbeddingMutation)(nil)

// imageembeddingOption allows management of the mutation configuration using functional options.
type imageembeddingOption func(*ImageEmbeddingMutation)

// newImageEmbeddingMutation creates new mutation for the ImageEmbedding entity.
func newImageEmbeddingMutation(c config, op Op, opts ...imageembeddingOption) *ImageEmbeddingMutation {
	m := &ImageEmbeddingMutation{
		config:        c,
		op:            op,
		typ:           TypeImageEmbedding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImageEmbeddingID sets the ID field of the mutation.
func withImageEmbeddingID(id uuid.UUID) imageembeddingOption {
	return func(m *ImageEmbeddingMutation) {
		var (
			err   error
			once  sync.Once
			value *ImageEmbedding
		)
		m.oldValue = func(ctx context.Context) (*ImageEmbedding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImageEmbedding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImageEmbedding sets the old ImageEmbedding of the mutation.
func withImageEmbedding(node *ImageEmbedding) imageembeddingOption {
	return func(m *ImageEmbeddingMutation) {
		m.oldValue = func(context.Context) (*ImageEmbedding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImageEmbeddingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImageEmbeddingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImageEmbedding entities.
func (m *ImageEmbeddingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImageEmbeddingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImageEmbeddingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImageEmbedding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ImageEmbeddingMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ImageEmbeddingMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ImageEmbedding entity.
// If the ImageEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageEmbeddingMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ImageEmbeddingMutation) ResetProjectID() {
	m.project_id = nil
}

// SetImageURI sets the "image_uri" field.
func (m *ImageEmbeddingMutation) SetImageURI(s string) {
	m.image_uri = &s
}

// ImageURI returns the value of the "image_uri" field in the mutation.
func (m *ImageEmbeddingMutation) ImageURI() (r string, exists bool) {
	v := m.image_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURI returns the old "image_uri" field's value of the ImageEmbedding entity.
// If the ImageEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageEmbeddingMutation) OldImageURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURI: %w", err)
	}
	return oldValue.ImageURI, nil
}

// ResetImageURI resets all changes to the "image_uri" field.
func (m *ImageEmbeddingMutation) ResetImageURI() {
	m.image_uri = nil
}

// SetVector sets the "vector" field.
func (m *ImageEmbeddingMutation) SetVector(f []float32) {
	m.vector = &f
	m.appendvector = nil
}

// Vector returns the value of the "vector" field in the mutation.
func (m *ImageEmbeddingMutation) Vector() (r []float32, exists bool) {
	v := m.vector
	if v == nil {
		return
	}
	return *v, true
}

// OldVector returns the old "vector" field's value of the ImageEmbedding entity.
// If the ImageEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageEmbeddingMutation) OldVector(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVector: %w", err)
	}
	return oldValue.Vector, nil
}

// AppendVector adds f to the "vector" field.
func (m *ImageEmbeddingMutation) AppendVector(f []float32) {
	m.appendvector = append(m.appendvector, f...)
}

// AppendedVector returns the list of values that were appended to the "vector" field in this mutation.
func (m *ImageEmbeddingMutation) AppendedVector() ([]float32, bool) {
	if len(m.appendvector) == 0 {
		return nil, false
	}
	return m.appendvector, true
}

// ResetVector resets all changes to the "vector" field.
func (m *ImageEmbeddingMutation) ResetVector() {
	m.vector = nil
	m.appendvector = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ImageEmbeddingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImageEmbeddingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImageEmbedding entity.
// If the ImageEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageEmbeddingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImageEmbeddingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ImageEmbeddingMutation builder.
func (m *ImageEmbeddingMutation) Where(ps ...predicate.ImageEmbedding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImageEmbeddingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImageEmbeddingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImageEmbedding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImageEmbeddingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImageEmbeddingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImageEmbedding).
func (m *ImageEmbeddingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImageEmbeddingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project_id != nil {
		fields = append(fields, imageembedding.FieldProjectID)
	}
	if m.image_uri != nil {
		fields = append(fields, imageembedding.FieldImageURI)
	}
	if m.vector != nil {
		fields = append(fields, imageembedding.FieldVector)
	}
	if m.created_at != nil {
		fields = append(fields, imageembedding.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImageEmbeddingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case imageembedding.FieldProjectID:
		return m.ProjectID()
	case imageembedding.FieldImageURI:
		return m.ImageURI()
	case imageembedding.FieldVector:
		return m.Vector()
	case imageembedding.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImageEmbeddingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case imageembedding.FieldProjectID:
		return m.OldProjectID(ctx)
	case imageembedding.FieldImageURI:
		return m.OldImageURI(ctx)
	case imageembedding.FieldVector:
		return m.OldVector(ctx)
	case imageembedding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ImageEmbedding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageEmbeddingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case imageembedding.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case imageembedding.FieldImageURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURI(v)
		return nil
	case imageembedding.FieldVector:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVector(v)
		return nil
	case imageembedding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ImageEmbedding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImageEmbeddingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImageEmbeddingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageEmbeddingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ImageEmbedding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImageEmbeddingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImageEmbeddingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImageEmbeddingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ImageEmbedding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImageEmbeddingMutation) ResetField(name string) error {
	switch name {
	case imageembedding.FieldProjectID:
		m.ResetProjectID()
		return nil
	case imageembedding.FieldImageURI:
		m.ResetImageURI()
		return nil
	case imageembedding.FieldVector:
		m.ResetVector()
		return nil
	case imageembedding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ImageEmbedding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImageEmbeddingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImageEmbeddingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImageEmbeddingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImageEmbeddingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImageEmbeddingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImageEmbeddingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImageEmbeddingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImageEmbedding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImageEmbeddingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImageEmbedding edge %s", name)
}
