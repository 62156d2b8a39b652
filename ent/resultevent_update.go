// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dchen/streaklog/ent/predicate"
	"github.com/dchen/streaklog/ent/resultevent"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *ResultEventUpdate) SetRecordID(v string) *ResultEventUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableRecordID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *ResultEventUpdate) SetGameID(v string) *ResultEventUpdate {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableGameID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetGameName sets the "game_name" field.
func (_u *ResultEventUpdate) SetGameName(v string) *ResultEventUpdate {
	_u.mutation.SetGameName(v)
	return _u
}

// SetNillableGameName sets the "game_name" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableGameName(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetGameName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdate) SetScore(v int) *ResultEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableScore(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdate) AddScore(v int) *ResultEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ResultEventUpdate) ClearScore() *ResultEventUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *ResultEventUpdate) SetMaxAttempts(v int) *ResultEventUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableMaxAttempts(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *ResultEventUpdate) AddMaxAttempts(v int) *ResultEventUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ResultEventUpdate) SetCompleted(v bool) *ResultEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableCompleted(v *bool) *ResultEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ResultEventUpdate) SetRawText(v string) *ResultEventUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableRawText(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetExtras sets the "extras" field.
func (_u *ResultEventUpdate) SetExtras(v map[string]string) *ResultEventUpdate {
	_u.mutation.SetExtras(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := resultevent.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameID(); ok {
		if err := resultevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameName(); ok {
		if err := resultevent.GameNameValidator(v); err != nil {
			return &ValidationError{Name: "game_name", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.game_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawText(); ok {
		if err := resultevent.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.raw_text": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(resultevent.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(resultevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameName(); ok {
		_spec.SetField(resultevent.FieldGameName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(resultevent.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(resultevent.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(resultevent.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(resultevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(resultevent.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extras(); ok {
		_spec.SetField(resultevent.FieldExtras, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetRecordID sets the "record_id" field.
func (_u *ResultEventUpdateOne) SetRecordID(v string) *ResultEventUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableRecordID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *ResultEventUpdateOne) SetGameID(v string) *ResultEventUpdateOne {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableGameID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetGameName sets the "game_name" field.
func (_u *ResultEventUpdateOne) SetGameName(v string) *ResultEventUpdateOne {
	_u.mutation.SetGameName(v)
	return _u
}

// SetNillableGameName sets the "game_name" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableGameName(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetGameName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdateOne) SetScore(v int) *ResultEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableScore(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdateOne) AddScore(v int) *ResultEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ResultEventUpdateOne) ClearScore() *ResultEventUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *ResultEventUpdateOne) SetMaxAttempts(v int) *ResultEventUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableMaxAttempts(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *ResultEventUpdateOne) AddMaxAttempts(v int) *ResultEventUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ResultEventUpdateOne) SetCompleted(v bool) *ResultEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableCompleted(v *bool) *ResultEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ResultEventUpdateOne) SetRawText(v string) *ResultEventUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableRawText(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetExtras sets the "extras" field.
func (_u *ResultEventUpdateOne) SetExtras(v map[string]string) *ResultEventUpdateOne {
	_u.mutation.SetExtras(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := resultevent.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameID(); ok {
		if err := resultevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameName(); ok {
		if err := resultevent.GameNameValidator(v); err != nil {
			return &ValidationError{Name: "game_name", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.game_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawText(); ok {
		if err := resultevent.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.raw_text": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(resultevent.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(resultevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameName(); ok {
		_spec.SetField(resultevent.FieldGameName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(resultevent.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(resultevent.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(resultevent.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(resultevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(resultevent.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extras(); ok {
		_spec.SetField(resultevent.FieldExtras, field.TypeJSON, value)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
