// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avikram/studyloop/ent/aiactionevent"
	"github.com/avikram/studyloop/ent/predicate"
)

// AIActionEventUpdate is the builder for updating AIActionEvent entities.
type AIActionEventUpdate struct {
	config
	hooks    []Hook
	mutation *AIActionEventMutation
}

// Where appends a list predicates to the AIActionEventUpdate builder.
func (_u *AIActionEventUpdate) Where(ps ...predicate.AIActionEvent) *AIActionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AIActionEventUpdate) SetSessionID(v string) *AIActionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableSessionID(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDashboardID sets the "dashboard_id" field.
func (_u *AIActionEventUpdate) SetDashboardID(v string) *AIActionEventUpdate {
	_u.mutation.SetDashboardID(v)
	return _u
}

// SetNillableDashboardID sets the "dashboard_id" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableDashboardID(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetDashboardID(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *AIActionEventUpdate) SetActionType(v string) *AIActionEventUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableActionType(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetRequestMessages sets the "request_messages" field.
func (_u *AIActionEventUpdate) SetRequestMessages(v string) *AIActionEventUpdate {
	_u.mutation.SetRequestMessages(v)
	return _u
}

// SetNillableRequestMessages sets the "request_messages" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableRequestMessages(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetRequestMessages(*v)
	}
	return _u
}

// SetResponseData sets the "response_data" field.
func (_u *AIActionEventUpdate) SetResponseData(v string) *AIActionEventUpdate {
	_u.mutation.SetResponseData(v)
	return _u
}

// SetNillableResponseData sets the "response_data" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableResponseData(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetResponseData(*v)
	}
	return _u
}

// SetToolCallData sets the "tool_call_data" field.
func (_u *AIActionEventUpdate) SetToolCallData(v string) *AIActionEventUpdate {
	_u.mutation.SetToolCallData(v)
	return _u
}

// SetNillableToolCallData sets the "tool_call_data" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableToolCallData(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetToolCallData(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AIActionEventUpdate) SetReasoning(v string) *AIActionEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableReasoning(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AIActionEventUpdate) SetQuestionID(v string) *AIActionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableQuestionID(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AIActionEventUpdate) SetTopic(v string) *AIActionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableTopic(v *string) *AIActionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *AIActionEventUpdate) SetMasteryLevel(v int) *AIActionEventUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableMasteryLevel(v *int) *AIActionEventUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *AIActionEventUpdate) AddMasteryLevel(v int) *AIActionEventUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AIActionEventUpdate) SetDurationMs(v int64) *AIActionEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AIActionEventUpdate) SetNillableDurationMs(v *int64) *AIActionEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AIActionEventUpdate) AddDurationMs(v int64) *AIActionEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the AIActionEventMutation object of the builder.
func (_u *AIActionEventUpdate) Mutation() *AIActionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AIActionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIActionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AIActionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIActionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIActionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := aiactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AIActionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := aiactionevent.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "AIActionEvent.action_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AIActionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiactionevent.Table, aiactionevent.Columns, sqlgraph.NewFieldSpec(aiactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(aiactionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DashboardID(); ok {
		_spec.SetField(aiactionevent.FieldDashboardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(aiactionevent.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestMessages(); ok {
		_spec.SetField(aiactionevent.FieldRequestMessages, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseData(); ok {
		_spec.SetField(aiactionevent.FieldResponseData, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCallData(); ok {
		_spec.SetField(aiactionevent.FieldToolCallData, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(aiactionevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(aiactionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(aiactionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(aiactionevent.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(aiactionevent.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(aiactionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(aiactionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AIActionEventUpdateOne is the builder for updating a single AIActionEvent entity.
type AIActionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AIActionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AIActionEventUpdateOne) SetSessionID(v string) *AIActionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableSessionID(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDashboardID sets the "dashboard_id" field.
func (_u *AIActionEventUpdateOne) SetDashboardID(v string) *AIActionEventUpdateOne {
	_u.mutation.SetDashboardID(v)
	return _u
}

// SetNillableDashboardID sets the "dashboard_id" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableDashboardID(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetDashboardID(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *AIActionEventUpdateOne) SetActionType(v string) *AIActionEventUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableActionType(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetRequestMessages sets the "request_messages" field.
func (_u *AIActionEventUpdateOne) SetRequestMessages(v string) *AIActionEventUpdateOne {
	_u.mutation.SetRequestMessages(v)
	return _u
}

// SetNillableRequestMessages sets the "request_messages" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableRequestMessages(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetRequestMessages(*v)
	}
	return _u
}

// SetResponseData sets the "response_data" field.
func (_u *AIActionEventUpdateOne) SetResponseData(v string) *AIActionEventUpdateOne {
	_u.mutation.SetResponseData(v)
	return _u
}

// SetNillableResponseData sets the "response_data" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableResponseData(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetResponseData(*v)
	}
	return _u
}

// SetToolCallData sets the "tool_call_data" field.
func (_u *AIActionEventUpdateOne) SetToolCallData(v string) *AIActionEventUpdateOne {
	_u.mutation.SetToolCallData(v)
	return _u
}

// SetNillableToolCallData sets the "tool_call_data" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableToolCallData(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetToolCallData(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AIActionEventUpdateOne) SetReasoning(v string) *AIActionEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableReasoning(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AIActionEventUpdateOne) SetQuestionID(v string) *AIActionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableQuestionID(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AIActionEventUpdateOne) SetTopic(v string) *AIActionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableTopic(v *string) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *AIActionEventUpdateOne) SetMasteryLevel(v int) *AIActionEventUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableMasteryLevel(v *int) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *AIActionEventUpdateOne) AddMasteryLevel(v int) *AIActionEventUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AIActionEventUpdateOne) SetDurationMs(v int64) *AIActionEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AIActionEventUpdateOne) SetNillableDurationMs(v *int64) *AIActionEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AIActionEventUpdateOne) AddDurationMs(v int64) *AIActionEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the AIActionEventMutation object of the builder.
func (_u *AIActionEventUpdateOne) Mutation() *AIActionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AIActionEventUpdate builder.
func (_u *AIActionEventUpdateOne) Where(ps ...predicate.AIActionEvent) *AIActionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AIActionEventUpdateOne) Select(field string, fields ...string) *AIActionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AIActionEvent entity.
func (_u *AIActionEventUpdateOne) Save(ctx context.Context) (*AIActionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIActionEventUpdateOne) SaveX(ctx context.Context) *AIActionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AIActionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIActionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIActionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := aiactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AIActionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := aiactionevent.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "AIActionEvent.action_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AIActionEventUpdateOne) sqlSave(ctx context.Context) (_node *AIActionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiactionevent.Table, aiactionevent.Columns, sqlgraph.NewFieldSpec(aiactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AIActionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aiactionevent.FieldID)
		for _, f := range fields {
			if !aiactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aiactionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(aiactionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DashboardID(); ok {
		_spec.SetField(aiactionevent.FieldDashboardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(aiactionevent.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestMessages(); ok {
		_spec.SetField(aiactionevent.FieldRequestMessages, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseData(); ok {
		_spec.SetField(aiactionevent.FieldResponseData, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolCallData(); ok {
		_spec.SetField(aiactionevent.FieldToolCallData, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(aiactionevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(aiactionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(aiactionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(aiactionevent.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(aiactionevent.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(aiactionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(aiactionevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &AIActionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
