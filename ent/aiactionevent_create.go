// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avikram/studyloop/ent/aiactionevent"
)

// AIActionEventCreate is the builder for creating a AIActionEvent entity.
type AIActionEventCreate struct {
	config
	mutation *AIActionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AIActionEventCreate) SetSequence(v int64) *AIActionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AIActionEventCreate) SetTimestamp(v time.Time) *AIActionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableTimestamp(v *time.Time) *AIActionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AIActionEventCreate) SetSessionID(v string) *AIActionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDashboardID sets the "dashboard_id" field.
func (_c *AIActionEventCreate) SetDashboardID(v string) *AIActionEventCreate {
	_c.mutation.SetDashboardID(v)
	return _c
}

// SetNillableDashboardID sets the "dashboard_id" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableDashboardID(v *string) *AIActionEventCreate {
	if v != nil {
		_c.SetDashboardID(*v)
	}
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *AIActionEventCreate) SetActionType(v string) *AIActionEventCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetRequestMessages sets the "request_messages" field.
func (_c *AIActionEventCreate) SetRequestMessages(v string) *AIActionEventCreate {
	_c.mutation.SetRequestMessages(v)
	return _c
}

// SetNillableRequestMessages sets the "request_messages" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableRequestMessages(v *string) *AIActionEventCreate {
	if v != nil {
		_c.SetRequestMessages(*v)
	}
	return _c
}

// SetResponseData sets the "response_data" field.
func (_c *AIActionEventCreate) SetResponseData(v string) *AIActionEventCreate {
	_c.mutation.SetResponseData(v)
	return _c
}

// SetNillableResponseData sets the "response_data" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableResponseData(v *string) *AIActionEventCreate {
	if v != nil {
		_c.SetResponseData(*v)
	}
	return _c
}

// SetToolCallData sets the "tool_call_data" field.
func (_c *AIActionEventCreate) SetToolCallData(v string) *AIActionEventCreate {
	_c.mutation.SetToolCallData(v)
	return _c
}

// SetNillableToolCallData sets the "tool_call_data" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableToolCallData(v *string) *AIActionEventCreate {
	if v != nil {
		_c.SetToolCallData(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AIActionEventCreate) SetReasoning(v string) *AIActionEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableReasoning(v *string) *AIActionEventCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AIActionEventCreate) SetQuestionID(v string) *AIActionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableQuestionID(v *string) *AIActionEventCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AIActionEventCreate) SetTopic(v string) *AIActionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableTopic(v *string) *AIActionEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *AIActionEventCreate) SetMasteryLevel(v int) *AIActionEventCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableMasteryLevel(v *int) *AIActionEventCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AIActionEventCreate) SetDurationMs(v int64) *AIActionEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AIActionEventCreate) SetNillableDurationMs(v *int64) *AIActionEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the AIActionEventMutation object of the builder.
func (_c *AIActionEventCreate) Mutation() *AIActionEventMutation {
	return _c.mutation
}

// Save creates the AIActionEvent in the database.
func (_c *AIActionEventCreate) Save(ctx context.Context) (*AIActionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AIActionEventCreate) SaveX(ctx context.Context) *AIActionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIActionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIActionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AIActionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := aiactionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DashboardID(); !ok {
		v := aiactionevent.DefaultDashboardID
		_c.mutation.SetDashboardID(v)
	}
	if _, ok := _c.mutation.RequestMessages(); !ok {
		v := aiactionevent.DefaultRequestMessages
		_c.mutation.SetRequestMessages(v)
	}
	if _, ok := _c.mutation.ResponseData(); !ok {
		v := aiactionevent.DefaultResponseData
		_c.mutation.SetResponseData(v)
	}
	if _, ok := _c.mutation.ToolCallData(); !ok {
		v := aiactionevent.DefaultToolCallData
		_c.mutation.SetToolCallData(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := aiactionevent.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		v := aiactionevent.DefaultQuestionID
		_c.mutation.SetQuestionID(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := aiactionevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := aiactionevent.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := aiactionevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AIActionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AIActionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AIActionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AIActionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := aiactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AIActionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DashboardID(); !ok {
		return &ValidationError{Name: "dashboard_id", err: errors.New(`ent: missing required field "AIActionEvent.dashboard_id"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "AIActionEvent.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := aiactionevent.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "AIActionEvent.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestMessages(); !ok {
		return &ValidationError{Name: "request_messages", err: errors.New(`ent: missing required field "AIActionEvent.request_messages"`)}
	}
	if _, ok := _c.mutation.ResponseData(); !ok {
		return &ValidationError{Name: "response_data", err: errors.New(`ent: missing required field "AIActionEvent.response_data"`)}
	}
	if _, ok := _c.mutation.ToolCallData(); !ok {
		return &ValidationError{Name: "tool_call_data", err: errors.New(`ent: missing required field "AIActionEvent.tool_call_data"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "AIActionEvent.reasoning"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AIActionEvent.question_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "AIActionEvent.topic"`)}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "AIActionEvent.mastery_level"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AIActionEvent.duration_ms"`)}
	}
	return nil
}

func (_c *AIActionEventCreate) sqlSave(ctx context.Context) (*AIActionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AIActionEventCreate) createSpec() (*AIActionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AIActionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aiactionevent.Table, sqlgraph.NewFieldSpec(aiactionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(aiactionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(aiactionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(aiactionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DashboardID(); ok {
		_spec.SetField(aiactionevent.FieldDashboardID, field.TypeString, value)
		_node.DashboardID = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(aiactionevent.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.RequestMessages(); ok {
		_spec.SetField(aiactionevent.FieldRequestMessages, field.TypeString, value)
		_node.RequestMessages = value
	}
	if value, ok := _c.mutation.ResponseData(); ok {
		_spec.SetField(aiactionevent.FieldResponseData, field.TypeString, value)
		_node.ResponseData = value
	}
	if value, ok := _c.mutation.ToolCallData(); ok {
		_spec.SetField(aiactionevent.FieldToolCallData, field.TypeString, value)
		_node.ToolCallData = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(aiactionevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(aiactionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(aiactionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(aiactionevent.FieldMasteryLevel, field.TypeInt, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(aiactionevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// AIActionEventCreateBulk is the builder for creating many AIActionEvent entities in bulk.
type AIActionEventCreateBulk struct {
	config
	err      error
	builders []*AIActionEventCreate
}

// Save creates the AIActionEvent entities in the database.
func (_c *AIActionEventCreateBulk) Save(ctx context.Context) ([]*AIActionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AIActionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AIActionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AIActionEventCreateBulk) SaveX(ctx context.Context) []*AIActionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIActionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIActionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
