package session

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/avikram/studyloop/internal/mastery"
	"github.com/avikram/studyloop/internal/tutor"
)

// Tutor is the slice of the tutor service the orchestrator drives.
type Tutor interface {
	NextQuestion(ctx context.Context, sc tutor.SessionContext) (*tutor.StudyQuestion, error)
	Evaluate(ctx context.Context, sc tutor.SessionContext, q tutor.StudyQuestion, answer string) (*tutor.Evaluation, error)
	RequestHint(ctx context.Context, sc tutor.SessionContext, q tutor.StudyQuestion) (*tutor.HintOutcome, error)
	Decide(ctx context.Context, sc tutor.SessionContext, q tutor.StudyQuestion, eval tutor.Evaluation) (*tutor.Decision, error)
}

// Hooks are callbacks the orchestrator fires on lifecycle boundaries.
// Invoked outside the orchestrator's lock; may be nil.
type Hooks struct {
	// OnStart fires after the first question arrives.
	OnStart func(st State)

	// OnEnd fires when the user accepts an end-session suggestion or the
	// session ends on full mastery. Summary is empty on mastery-driven
	// ends.
	OnEnd func(st State, summary string)
}

// Orchestrator owns the session state and sequences agent calls. All
// public operations are safe for concurrent use; state is replaced
// wholesale on every mutation so State() snapshots are always complete.
type Orchestrator struct {
	tutor Tutor
	hooks Hooks

	dashboardID string
	topics      []string

	mu      sync.Mutex
	state   *State
	loading bool
	errMsg  string
	notice  string

	// generation invalidates in-flight async work when the session is
	// ended or restarted. Agent calls cannot be canceled; their results
	// are discarded instead.
	generation uint64

	// spawn runs the autonomous decision step. Tests replace it to run
	// the step inline.
	spawn func(func())
}

// NewOrchestrator creates an orchestrator for one run of topics. The
// session does not start until Start is called.
func NewOrchestrator(t Tutor, dashboardID string, topics []string, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		tutor:       t,
		hooks:       hooks,
		dashboardID: dashboardID,
		topics:      append([]string(nil), topics...),
		state:       newState("", dashboardID, topics),
		spawn:       func(f func()) { go f() },
	}
}

// State returns a snapshot of the session state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return *o.state.clone()
}

// Loading reports whether an agent call that blocks the next view is in
// flight.
func (o *Orchestrator) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// Err returns the last operation error message, empty if none.
func (o *Orchestrator) Err() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

// Notice returns the last informational message (for example an agent
// declining to give a hint), empty if none.
func (o *Orchestrator) Notice() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.notice
}

// Start begins a new session: fetches the first question and activates
// the state.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.state.Active {
		o.mu.Unlock()
		return o.fail(&ErrPrecondition{Op: "start", Reason: "session already active"})
	}
	o.errMsg = ""
	o.notice = ""
	o.generation++
	gen := o.generation

	st := newState(uuid.NewString(), o.dashboardID, o.topics)
	o.state = st
	o.loading = true
	sc := st.context()
	o.mu.Unlock()

	q, err := o.tutor.NextQuestion(ctx, sc)

	o.mu.Lock()
	o.loading = false
	if o.generation != gen {
		o.mu.Unlock()
		return nil
	}
	if err != nil {
		o.mu.Unlock()
		return o.fail(err)
	}

	next := o.state.clone()
	next.Active = true
	next.CurrentQuestion = q
	next.QuestionHistory = append(next.QuestionHistory, *q)
	o.state = next
	snap := *next.clone()
	o.mu.Unlock()

	if o.hooks.OnStart != nil {
		o.hooks.OnStart(snap)
	}
	return nil
}

// SubmitAnswer evaluates the learner's answer, updates mastery, parks
// the result as a pending evaluation, and schedules the autonomous
// decision step in the background so confirmation is instant.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, answer string) error {
	o.mu.Lock()
	if !o.state.Active || o.state.CurrentQuestion == nil {
		o.mu.Unlock()
		return o.fail(&ErrPrecondition{Op: "submit answer", Reason: "no active question"})
	}
	o.errMsg = ""
	o.notice = ""
	gen := o.generation
	q := *o.state.CurrentQuestion
	sc := o.state.context()
	o.loading = true
	o.mu.Unlock()

	eval, err := o.tutor.Evaluate(ctx, sc, q, answer)

	o.mu.Lock()
	o.loading = false
	if o.generation != gen {
		o.mu.Unlock()
		return nil
	}
	if err != nil {
		o.mu.Unlock()
		return o.fail(err)
	}

	now := timeNow()
	next := o.state.clone()

	// Agent-proposed levels first, then the counter update. The counter
	// recomputes the level from the tally, so it always wins.
	next.Mastery = mastery.ApplyUpdates(next.Mastery, eval.Updates)
	next.Mastery = mastery.RecordAnswer(next.Mastery, q.Topic, eval.IsCorrect, now)

	ua := tutor.UserAnswer{QuestionID: q.ID, Answer: answer, Timestamp: now}
	next.AnswerHistory = append(next.AnswerHistory, ua)
	next.EvaluationHistory = append(next.EvaluationHistory, tutor.EvaluationResult{
		QuestionID:     q.ID,
		IsCorrect:      eval.IsCorrect,
		Explanation:    eval.Explanation,
		CorrectAnswer:  eval.CorrectAnswer,
		MasteryUpdates: snapshotMastery(next.Mastery),
	})
	next.PendingEvaluation = &PendingEvaluation{Question: q, Answer: ua, Evaluation: *eval}
	next.CurrentQuestion = nil

	o.state = next
	updated := snapshotMastery(next.Mastery)
	o.mu.Unlock()

	// The decision step reads the mastery passed here, not the state, so
	// it can never reason about pre-answer levels.
	o.spawn(func() {
		o.executeAutonomousDecision(gen, q, *eval, updated)
	})
	return nil
}

// executeAutonomousDecision asks the agent what should happen after the
// evaluation the user is currently reading, and prepares that outcome.
// The original submit context is gone by the time this runs, so the
// call carries its own background context.
func (o *Orchestrator) executeAutonomousDecision(gen uint64, q tutor.StudyQuestion, eval tutor.Evaluation, updated []mastery.TopicMastery) {
	ctx := context.Background()

	o.mu.Lock()
	if o.generation != gen || !o.state.Active {
		o.mu.Unlock()
		return
	}
	sc := o.state.context()
	sc.Mastery = updated
	declined := o.state.UserDeclinedSessionEnd
	o.mu.Unlock()

	d, err := o.tutor.Decide(ctx, sc, q, eval)
	if err != nil {
		o.setErrIfCurrent(gen, err)
		return
	}

	switch d.Action {
	case tutor.ActionContinue:
		// Continuing after every topic crossed the mastery threshold
		// contradicts the point of the session, so offer to end instead,
		// unless the user already said no once.
		if mastery.AllMastered(updated) && !declined {
			o.setPendingEnd(gen, &PendingSessionEnd{
				SessionSummary: fmt.Sprintf("All %d topics mastered. Great work!", len(updated)),
				Reasoning:      "every topic has reached the mastery threshold",
			})
			return
		}
		o.preloadNextQuestion(ctx, gen, sc)

	case tutor.ActionSuggestHint:
		nq, err := o.tutor.NextQuestion(ctx, sc)
		if err != nil {
			o.setErrIfCurrent(gen, err)
			return
		}
		o.mu.Lock()
		if o.generation != gen || !o.state.Active || o.state.PendingEvaluation == nil {
			o.mu.Unlock()
			return
		}
		next := o.state.clone()
		next.PendingEvaluation = nil
		next.PendingHintSuggestion = &PendingHintSuggestion{
			Hint:         d.HintText,
			Reasoning:    d.Reasoning,
			NextQuestion: nq,
		}
		o.state = next
		o.mu.Unlock()

	case tutor.ActionEndSession:
		o.setPendingEnd(gen, &PendingSessionEnd{
			SessionSummary: d.SessionSummary,
			Reasoning:      d.Reasoning,
		})

	default:
		fmt.Fprintf(os.Stderr, "warning: unknown decision action %q\n", d.Action)
	}
}

// preloadNextQuestion fetches the follow-up question and attaches it to
// the pending evaluation so confirmation promotes it without a network
// round trip.
func (o *Orchestrator) preloadNextQuestion(ctx context.Context, gen uint64, sc tutor.SessionContext) {
	nq, err := o.tutor.NextQuestion(ctx, sc)
	if err != nil {
		o.setErrIfCurrent(gen, err)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation != gen || o.state.PendingEvaluation == nil {
		return
	}
	next := o.state.clone()
	next.PendingEvaluation.NextQuestion = nq
	o.state = next
}

// ConfirmEvaluation acknowledges the evaluation feedback. If every topic
// is mastered the session ends; otherwise the preloaded question (or a
// freshly fetched one) becomes current.
func (o *Orchestrator) ConfirmEvaluation(ctx context.Context) error {
	o.mu.Lock()
	pe := o.state.PendingEvaluation
	if pe == nil {
		o.mu.Unlock()
		return o.fail(&ErrPrecondition{Op: "confirm evaluation", Reason: "no pending evaluation"})
	}
	o.errMsg = ""

	if o.state.AllMastered() {
		next := o.state.clone()
		next.PendingEvaluation = nil
		next.CurrentQuestion = nil
		next.Active = false
		o.state = next
		snap := *next.clone()
		o.mu.Unlock()

		if o.hooks.OnEnd != nil {
			o.hooks.OnEnd(snap, "")
		}
		return nil
	}

	if pe.NextQuestion != nil {
		next := o.state.clone()
		q := *pe.NextQuestion
		next.PendingEvaluation = nil
		next.CurrentQuestion = &q
		next.QuestionHistory = append(next.QuestionHistory, q)
		o.state = next
		o.mu.Unlock()
		return nil
	}

	// Preload has not landed; fetch synchronously.
	next := o.state.clone()
	next.PendingEvaluation = nil
	o.state = next
	gen := o.generation
	sc := next.context()
	o.loading = true
	o.mu.Unlock()

	return o.fetchQuestion(ctx, gen, sc)
}

// fetchQuestion gets a question from the agent and makes it current.
func (o *Orchestrator) fetchQuestion(ctx context.Context, gen uint64, sc tutor.SessionContext) error {
	q, err := o.tutor.NextQuestion(ctx, sc)

	o.mu.Lock()
	o.loading = false
	if o.generation != gen {
		o.mu.Unlock()
		return nil
	}
	if err != nil {
		o.mu.Unlock()
		return o.fail(err)
	}

	next := o.state.clone()
	next.CurrentQuestion = q
	next.QuestionHistory = append(next.QuestionHistory, *q)
	o.state = next
	o.mu.Unlock()
	return nil
}

// RequestHint asks the agent for a hint on the current question. A
// provided hint becomes pending; a decline surfaces as a notice.
func (o *Orchestrator) RequestHint(ctx context.Context) error {
	o.mu.Lock()
	if !o.state.Active || o.state.CurrentQuestion == nil {
		o.mu.Unlock()
		return o.fail(&ErrPrecondition{Op: "request hint", Reason: "no active question"})
	}
	o.errMsg = ""
	o.notice = ""
	gen := o.generation
	q := *o.state.CurrentQuestion
	sc := o.state.context()
	o.loading = true
	o.mu.Unlock()

	outcome, err := o.tutor.RequestHint(ctx, sc, q)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.loading = false
	if o.generation != gen {
		return nil
	}
	if err != nil {
		o.errMsg = err.Error()
		return err
	}

	if outcome.Hint == nil {
		o.notice = outcome.Message
		return nil
	}

	next := o.state.clone()
	h := *outcome.Hint
	next.PendingHint = &h
	o.state = next
	return nil
}

// AcceptHint attaches the pending hint to the current question.
func (o *Orchestrator) AcceptHint() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.PendingHint == nil || o.state.CurrentQuestion == nil {
		return o.failLocked(&ErrPrecondition{Op: "accept hint", Reason: "no pending hint"})
	}

	next := o.state.clone()
	next.CurrentQuestion.Hint = next.PendingHint.Hint
	next.PendingHint = nil
	o.state = next
	return nil
}

// RejectHint discards the pending hint.
func (o *Orchestrator) RejectHint() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.PendingHint == nil {
		return o.failLocked(&ErrPrecondition{Op: "reject hint", Reason: "no pending hint"})
	}

	next := o.state.clone()
	next.PendingHint = nil
	o.state = next
	return nil
}

// AcceptHintSuggestion promotes the preloaded question with the
// suggested hint attached.
func (o *Orchestrator) AcceptHintSuggestion() error {
	return o.resolveHintSuggestion(true)
}

// RejectHintSuggestion promotes the preloaded question without the
// hint.
func (o *Orchestrator) RejectHintSuggestion() error {
	return o.resolveHintSuggestion(false)
}

func (o *Orchestrator) resolveHintSuggestion(withHint bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	hs := o.state.PendingHintSuggestion
	if hs == nil {
		return o.failLocked(&ErrPrecondition{Op: "resolve hint suggestion", Reason: "no pending suggestion"})
	}
	if hs.NextQuestion == nil {
		// Ordering bug: the suggestion is only ever created with its
		// question already preloaded.
		fmt.Fprintf(os.Stderr, "warning: hint suggestion has no preloaded question\n")
		return nil
	}

	next := o.state.clone()
	q := *next.PendingHintSuggestion.NextQuestion
	if withHint {
		q.Hint = next.PendingHintSuggestion.Hint
	}
	next.PendingHintSuggestion = nil
	next.CurrentQuestion = &q
	next.QuestionHistory = append(next.QuestionHistory, q)
	o.state = next
	return nil
}

// AcceptSessionEnd ends the session on the agent's suggestion.
func (o *Orchestrator) AcceptSessionEnd() error {
	o.mu.Lock()
	se := o.state.PendingSessionEnd
	if se == nil {
		o.mu.Unlock()
		return o.fail(&ErrPrecondition{Op: "accept session end", Reason: "no pending session end"})
	}

	summary := se.SessionSummary
	o.generation++
	next := o.state.clone()
	next.Active = false
	next.CurrentQuestion = nil
	next.PendingEvaluation = nil
	next.PendingHint = nil
	next.PendingHintSuggestion = nil
	next.PendingSessionEnd = nil
	o.state = next
	snap := *next.clone()
	o.mu.Unlock()

	if o.hooks.OnEnd != nil {
		o.hooks.OnEnd(snap, summary)
	}
	return nil
}

// RejectSessionEnd declines the agent's end suggestion and fetches the
// next question. The decline sticks for the rest of the session.
func (o *Orchestrator) RejectSessionEnd(ctx context.Context) error {
	o.mu.Lock()
	if o.state.PendingSessionEnd == nil {
		o.mu.Unlock()
		return o.fail(&ErrPrecondition{Op: "reject session end", Reason: "no pending session end"})
	}
	o.errMsg = ""

	next := o.state.clone()
	next.PendingSessionEnd = nil
	next.PendingEvaluation = nil
	next.UserDeclinedSessionEnd = true
	o.state = next
	gen := o.generation
	sc := next.context()
	o.loading = true
	o.mu.Unlock()

	return o.fetchQuestion(ctx, gen, sc)
}

// End stops the session unconditionally, from any state. In-flight
// agent calls are not canceled; their results are discarded.
func (o *Orchestrator) End() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.generation++
	o.loading = false
	next := o.state.clone()
	next.Active = false
	next.CurrentQuestion = nil
	next.PendingEvaluation = nil
	next.PendingHint = nil
	next.PendingHintSuggestion = nil
	next.PendingSessionEnd = nil
	o.state = next
}

// setPendingEnd replaces the pending evaluation with a session-end
// offer. The decision only applies while its evaluation is still on
// screen; once the user has confirmed and moved on, a late end offer
// would stack on top of the promoted question, so it is dropped.
func (o *Orchestrator) setPendingEnd(gen uint64, se *PendingSessionEnd) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation != gen || !o.state.Active || o.state.PendingEvaluation == nil {
		return
	}
	next := o.state.clone()
	next.PendingEvaluation = nil
	next.PendingSessionEnd = se
	o.state = next
}

// setErrIfCurrent records an async failure unless the session moved on.
func (o *Orchestrator) setErrIfCurrent(gen uint64, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation != gen {
		return
	}
	o.errMsg = err.Error()
}

// fail records the error message and returns the error.
func (o *Orchestrator) fail(err error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errMsg = err.Error()
	return err
}

// failLocked is fail for callers already holding the lock.
func (o *Orchestrator) failLocked(err error) error {
	o.errMsg = err.Error()
	return err
}
