package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/getdeskhelp/deskhelp-cli/config"
)

// Handle identifies a submitted query on the backend. The client never
// inspects it beyond echoing it back on status requests.
type Handle int64

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusError      Status = "error"
)

// QueryStatus is the backend's view of a submitted query. Answer is
// markdown and is only meaningful when Status is StatusCompleted.
type QueryStatus struct {
	Status Status `json:"status"`
	Answer string `json:"answer,omitempty"`
}

type Client interface {
	SubmitQuery(ctx context.Context, queryText string) (Handle, error)
	GetQuery(ctx context.Context, handle Handle) (*QueryStatus, error)
}

var ErrMalformedResponse = errors.New("malformed response from backend")

type client struct {
	cl      *http.Client
	apiHost string
}

var _ Client = (*client)(nil)

func New() Client {
	return NewWithHost(config.APIHost())
}

func NewWithHost(apiHost string) Client {
	return &client{
		cl: &http.Client{
			Transport: &VersionRoundTripper{deskhelpVersion: config.Version()},
		},
		apiHost: apiHost,
	}
}

type VersionRoundTripper struct {
	deskhelpVersion string
}

func (v *VersionRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to ensure thread safety
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("X-Deskhelp-Version", v.deskhelpVersion)

	return http.DefaultTransport.RoundTrip(clonedReq)
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// apiURL returns the full url to the api endpoint
// path must start with a slash. e.g. /submit_query
// apiURL will add a slash if it's missing
func (c *client) apiURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.apiHost + path
}

type submitAck struct {
	Message string `json:"message"`
	ID      Handle `json:"id"`
}

func (c *client) SubmitQuery(ctx context.Context, queryText string) (Handle, error) {
	bs, err := json.Marshal(struct {
		QueryText string `json:"query_text"`
	}{QueryText: queryText})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL("/submit_query"), bytes.NewReader(bs))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cl.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return 0, fmt.Errorf("error submitting query: %w", err)
	}

	var ack submitAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if ack.ID == 0 {
		return 0, fmt.Errorf("%w: submit ack carries no id", ErrMalformedResponse)
	}
	return ack.ID, nil
}

func (c *client) GetQuery(ctx context.Context, handle Handle) (*QueryStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL("/get_query"), nil)
	if err != nil {
		return nil, err
	}

	qp := req.URL.Query()
	qp.Set("id", strconv.FormatInt(int64(handle), 10))
	req.URL.RawQuery = qp.Encode()

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("error fetching query %d: %w", handle, err)
	}

	var qs QueryStatus
	if err := json.NewDecoder(resp.Body).Decode(&qs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &qs, nil
}

// checkStatus surfaces non-2xx responses as errors, using the backend's
// error message when the body carries one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
		return fmt.Errorf("backend returned %s", resp.Status)
	}
	return fmt.Errorf("backend returned %s: %s", resp.Status, errResp.Message)
}
