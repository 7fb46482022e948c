// Package session owns the lifecycle of a single help desk question:
// submit it, poll the backend until the answer is ready, and record the
// exchange in the session history. At most one query is ever
// outstanding; a new submission is refused while one is in flight.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/getdeskhelp/deskhelp-cli/client"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateInProgress State = "in-progress"
	StateAnswered   State = "answered"
)

var (
	// ErrEmptyQuestion rejects questions that are empty after trimming.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrPending rejects a submission while another query is outstanding.
	ErrPending = errors.New("a question is already waiting for an answer")
	// ErrBackendReported means the backend processed the query and
	// reported failure.
	ErrBackendReported = errors.New("backend reported an error")
	// ErrUnexpectedStatus means the backend answered with a status value
	// the client does not know.
	ErrUnexpectedStatus = errors.New("unexpected status from backend")
	// ErrTooManyAttempts means the optional poll attempt cap was hit.
	ErrTooManyAttempts = errors.New("gave up polling for an answer")
)

const DefaultPollInterval = 1000 * time.Millisecond

// User-facing failure messages. Every failure is terminal for the
// current attempt; the user resubmits manually.
const (
	submitFailedMsg       = "could not reach the help desk, please try again"
	pollFailedMsg         = "lost contact with the help desk while waiting, please try again"
	backendErrorMsg       = "the help desk could not answer this question, please try again"
	unexpectedResponseMsg = "unexpected response from the help desk, please try again"
	gaveUpMsg             = "the help desk is taking too long, please try again"
)

type Option func(*Session)

func WithPollInterval(d time.Duration) Option {
	return func(s *Session) {
		s.pollInterval = d
	}
}

// WithMaxAttempts caps how many poll cycles a single query may take.
// n <= 0 keeps polling until the backend reaches a terminal status,
// which is also the default.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		s.maxAttempts = n
	}
}

// Session is the explicit state object shared by the submission path
// and the poll loop. The mutex matters because bubbletea runs commands
// on their own goroutines.
type Session struct {
	cl client.Client

	pollInterval time.Duration
	maxAttempts  int

	mu       sync.Mutex
	state    State
	question string
	handle   client.Handle
	answer   string
	errMsg   string
	history  *History
}

func New(cl client.Client, opts ...Option) *Session {
	s := &Session{
		cl:           cl,
		pollInterval: DefaultPollInterval,
		state:        StateIdle,
		history:      NewHistory(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Question is the text of the current or most recently submitted query.
func (s *Session) Question() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.question
}

// Answer is the markdown answer of the current query. Empty until the
// query reaches StateAnswered.
func (s *Session) Answer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answer
}

// ErrorMessage is the user-facing message of the last failure. Empty
// while nothing is wrong; cleared by the next accepted submission.
func (s *Session) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Session) History() *History {
	return s.history
}

func (s *Session) PollInterval() time.Duration {
	return s.pollInterval
}

// Submit validates the question and sends it to the backend. Empty
// questions and submissions while a query is outstanding are refused
// before any network call. A transport failure or malformed ack is
// terminal for this attempt: the session returns to idle with a
// user-facing message and the caller must resubmit.
func (s *Session) Submit(ctx context.Context, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return ErrEmptyQuestion
	}

	s.mu.Lock()
	if s.state == StateSubmitting || s.state == StateInProgress {
		s.mu.Unlock()
		return ErrPending
	}
	s.state = StateSubmitting
	s.question = question
	s.answer = ""
	s.errMsg = ""
	s.mu.Unlock()

	handle, err := s.cl.SubmitQuery(ctx, question)
	if err != nil {
		s.fail(submitFailedMsg)
		return err
	}

	s.mu.Lock()
	s.handle = handle
	s.state = StateInProgress
	s.mu.Unlock()
	return nil
}

// PollOnce runs a single poll cycle for the outstanding query. done
// reports whether the lifecycle reached a terminal outcome; once it has,
// further calls are no-ops. Only a completed status ever touches the
// history.
func (s *Session) PollOnce(ctx context.Context) (done bool, err error) {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return true, nil
	}
	handle := s.handle
	question := s.question
	s.mu.Unlock()

	qs, err := s.cl.GetQuery(ctx, handle)
	if err != nil {
		// a body we cannot make sense of is not a transport problem
		if errors.Is(err, client.ErrMalformedResponse) {
			s.fail(unexpectedResponseMsg)
			return true, ErrUnexpectedStatus
		}
		s.fail(pollFailedMsg)
		return true, err
	}

	switch qs.Status {
	case client.StatusCompleted:
		s.mu.Lock()
		s.answer = qs.Answer
		s.state = StateAnswered
		s.mu.Unlock()
		s.history.Add(Entry{Question: question, Answer: qs.Answer})
		return true, nil
	case client.StatusInProgress:
		return false, nil
	case client.StatusError:
		s.fail(backendErrorMsg)
		return true, ErrBackendReported
	default:
		s.fail(unexpectedResponseMsg)
		return true, ErrUnexpectedStatus
	}
}

// Wait drives PollOnce until the query is terminal: one poll right
// away, then a fixed interval between cycles. Cancelling ctx stops the
// loop before the next cycle fires and leaves no timer running.
func (s *Session) Wait(ctx context.Context) error {
	attempts := 0
	for {
		done, err := s.PollOnce(ctx)
		if done {
			return err
		}

		attempts++
		if s.maxAttempts > 0 && attempts >= s.maxAttempts {
			s.fail(gaveUpMsg)
			return ErrTooManyAttempts
		}

		timer := time.NewTimer(s.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// fail records a terminal failure: the message is surfaced to the user
// and the session returns to idle, ready for a fresh submission.
func (s *Session) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
	s.state = StateIdle
}
