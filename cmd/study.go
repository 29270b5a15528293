package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avikram/studyloop/internal/actionlog"
	"github.com/avikram/studyloop/internal/agent"
	"github.com/avikram/studyloop/internal/mastery"
	"github.com/avikram/studyloop/internal/session"
	"github.com/avikram/studyloop/internal/store"
	"github.com/avikram/studyloop/internal/tutor"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Run an adaptive study session",
	RunE:  runStudy,
}

func init() {
	studyCmd.Flags().StringSlice("topics", nil, "Comma-separated topics to study (required)")
	studyCmd.Flags().String("dashboard", "", "Dashboard id to tag recorded actions with")
	studyCmd.MarkFlagRequired("topics")
}

// runStudy opens the store, builds the agent and tutor service, and
// drives the session state machine from stdin.
func runStudy(cmd *cobra.Command, args []string) error {
	topics, _ := cmd.Flags().GetStringSlice("topics")
	dashboardID, _ := cmd.Flags().GetString("dashboard")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := agent.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("agent not configured: %w", err)
	}
	client, err := agent.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("build agent client: %w", err)
	}

	recorder := buildRecorder(st)
	svc := tutor.NewService(client, recorder)

	sessions := st.Sessions()
	hooks := session.Hooks{
		OnStart: func(s session.State) {
			if err := sessions.AppendStart(context.Background(), s.SessionID, s.Topics); err != nil {
				fmt.Fprintf(os.Stderr, "warning: record session start: %v\n", err)
			}
		},
		OnEnd: func(s session.State, summary string) {
			err := sessions.AppendEnd(context.Background(), s.SessionID,
				len(s.AnswerHistory), s.CorrectCount(), summary)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: record session end: %v\n", err)
			}
		},
	}

	o := session.NewOrchestrator(svc, dashboardID, topics, hooks)
	return runLoop(cmd.Context(), o, sessions)
}

// buildRecorder wires the store-backed action log, fanned out to the
// remote endpoint when one is configured.
func buildRecorder(st *store.Store) actionlog.Recorder {
	local := store.NewRecorder(st.Actions())

	baseURL := os.Getenv("STUDYLOOP_ACTIONS_URL")
	if baseURL == "" {
		return local
	}
	remote := actionlog.NewHTTPRecorder(baseURL, os.Getenv("STUDYLOOP_ACTIONS_TOKEN"))
	return actionlog.Multi{local, remote}
}

// runLoop renders the current view and reads one command per turn.
func runLoop(ctx context.Context, o *session.Orchestrator, sessions store.SessionRepo) error {
	fmt.Println("Fetching your first question...")
	if err := o.Start(ctx); err != nil {
		return err
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		st := o.State()
		if !st.Active {
			printSummary(st)
			return nil
		}

		if msg := o.Err(); msg != "" {
			fmt.Println("! " + msg)
		}
		if msg := o.Notice(); msg != "" {
			fmt.Println("· " + msg)
		}

		switch st.View() {
		case session.ViewQuestion:
			promptQuestion(ctx, o, st, in, sessions)
		case session.ViewEvaluation:
			promptEvaluation(ctx, o, st, in)
		case session.ViewHint:
			promptHint(o, st, in)
		case session.ViewHintSuggestion:
			promptHintSuggestion(o, st, in)
		case session.ViewSessionEnd:
			promptSessionEnd(ctx, o, st, in)
		default:
			// Transient: the decision step is still preparing the next view.
			fmt.Println("...")
		}
	}
}

func promptQuestion(ctx context.Context, o *session.Orchestrator, st session.State, in *bufio.Scanner, sessions store.SessionRepo) {
	q := st.CurrentQuestion
	fmt.Printf("\n[%s · %s · %s]\n%s\n", q.Topic, q.Type, q.Difficulty, q.Question)
	for i, opt := range q.Options {
		fmt.Printf("  %d. %s\n", i+1, opt.Text)
	}
	if q.Hint != "" {
		fmt.Println("Hint:", q.Hint)
	}
	fmt.Print("answer (or /hint, /quit) > ")

	if !in.Scan() {
		o.End()
		return
	}
	line := strings.TrimSpace(in.Text())

	switch line {
	case "":
		return
	case "/hint":
		if err := o.RequestHint(ctx); err != nil {
			return
		}
	case "/quit":
		o.End()
		recordManualEnd(o, sessions)
	default:
		// Numeric shortcuts select an option by index.
		if n := optionIndex(line, len(q.Options)); n >= 0 {
			line = q.Options[n].Text
		}
		o.SubmitAnswer(ctx, line)
	}
}

func promptEvaluation(ctx context.Context, o *session.Orchestrator, st session.State, in *bufio.Scanner) {
	ev := st.PendingEvaluation.Evaluation
	if ev.IsCorrect {
		fmt.Println("\n✓ Correct!")
	} else {
		fmt.Println("\n✗ Not quite.")
		if ev.CorrectAnswer != "" {
			fmt.Println("Correct answer:", ev.CorrectAnswer)
		}
	}
	if ev.Explanation != "" {
		fmt.Println(ev.Explanation)
	}
	printMastery(st.Mastery)
	fmt.Print("press enter to continue > ")
	in.Scan()
	o.ConfirmEvaluation(ctx)
}

func promptHint(o *session.Orchestrator, st session.State, in *bufio.Scanner) {
	fmt.Printf("\nHint available: %s\nUse it? (y/n) > ", st.PendingHint.Hint)
	if readYes(in) {
		o.AcceptHint()
	} else {
		o.RejectHint()
	}
}

func promptHintSuggestion(o *session.Orchestrator, st session.State, in *bufio.Scanner) {
	hs := st.PendingHintSuggestion
	fmt.Printf("\nThe tutor suggests a hint for the next question: %s\nTake it? (y/n) > ", hs.Hint)
	if readYes(in) {
		o.AcceptHintSuggestion()
	} else {
		o.RejectHintSuggestion()
	}
}

func promptSessionEnd(ctx context.Context, o *session.Orchestrator, st session.State, in *bufio.Scanner) {
	se := st.PendingSessionEnd
	fmt.Printf("\nThe tutor suggests wrapping up: %s\nEnd the session? (y/n) > ", se.SessionSummary)
	if readYes(in) {
		o.AcceptSessionEnd()
	} else {
		o.RejectSessionEnd(ctx)
	}
}

func printSummary(st session.State) {
	fmt.Printf("\nSession over: %d questions, %d correct.\n",
		len(st.AnswerHistory), st.CorrectCount())
	printMastery(st.Mastery)
}

func printMastery(levels []mastery.TopicMastery) {
	for _, m := range levels {
		marker := " "
		if mastery.IsMastered(m.Level) {
			marker = "★"
		}
		fmt.Printf("  %s %-20s %3d/100 (%d/%d correct)\n",
			marker, m.Topic, m.Level, m.QuestionsCorrect, m.QuestionsAnswered)
	}
}

// recordManualEnd persists an end event for sessions stopped with /quit,
// which bypass the orchestrator's OnEnd hook.
func recordManualEnd(o *session.Orchestrator, sessions store.SessionRepo) {
	st := o.State()
	if st.SessionID == "" {
		return
	}
	err := sessions.AppendEnd(context.Background(), st.SessionID,
		len(st.AnswerHistory), st.CorrectCount(), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: record session end: %v\n", err)
	}
}

func readYes(in *bufio.Scanner) bool {
	if !in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(in.Text()))
	return answer == "y" || answer == "yes"
}

func optionIndex(line string, n int) int {
	if len(line) != 1 || line[0] < '1' {
		return -1
	}
	idx := int(line[0] - '1')
	if idx >= n {
		return -1
	}
	return idx
}
