// Package local implements client.Client entirely in memory so the
// submit/poll lifecycle can run without a backend. Answers are canned,
// and a query only completes after a couple of status requests, which
// keeps the real poll loop honest.
package local

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getdeskhelp/deskhelp-cli/client"
)

var ErrNotFound = errors.New("query not found")

// DefaultReadyAfter is the number of status requests a query stays
// in-progress for before it completes.
const DefaultReadyAfter = 2

type Option func(*local)

// WithReadyAfter overrides how many status requests a query remains
// in-progress for. n <= 0 completes on the first request.
func WithReadyAfter(n int) Option {
	return func(l *local) {
		l.readyAfter = n
	}
}

func New(opts ...Option) client.Client {
	l := &local{
		readyAfter: DefaultReadyAfter,
		queries:    make(map[client.Handle]*pendingQuery),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type pendingQuery struct {
	queryText string
	polls     int
}

type local struct {
	readyAfter int

	mu      sync.Mutex
	nextID  client.Handle
	queries map[client.Handle]*pendingQuery
}

var _ client.Client = (*local)(nil)

func (l *local) SubmitQuery(ctx context.Context, queryText string) (client.Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.queries[l.nextID] = &pendingQuery{queryText: queryText}
	return l.nextID, nil
}

func (l *local) GetQuery(ctx context.Context, handle client.Handle) (*client.QueryStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	q, ok := l.queries[handle]
	if !ok {
		return nil, fmt.Errorf("query %d: %w", handle, ErrNotFound)
	}

	q.polls++
	if q.polls < l.readyAfter {
		return &client.QueryStatus{Status: client.StatusInProgress}, nil
	}
	return &client.QueryStatus{
		Status: client.StatusCompleted,
		Answer: cannedAnswer(q.queryText),
	}, nil
}

func cannedAnswer(queryText string) string {
	var b strings.Builder
	b.WriteString("## Local responder\n\n")
	b.WriteString("No backend is configured, so this answer is canned.\n\n")
	fmt.Fprintf(&b, "> %s\n\n", queryText)
	b.WriteString("For a real answer, point `api_host` in the config file at a running help desk service and drop the `--local` flag.\n")
	return b.String()
}
