package autograder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public autograder.io deployment
const DefaultBaseURL = "https://autograder.io/"

const userAgent = "agio/0.1.0 (https://github.com/eecs485staff/agio-cli)"

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s for url %s", e.Status, e.URL)
}

// Client sends token-authenticated requests to the autograder.io REST API
type Client struct {
	rest *resty.Client
	log  zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rest.SetTimeout(d) }
}

// WithLogger sets the logger used for request tracing at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRetryWait sets the pause between retries of transient failures.
func WithRetryWait(d time.Duration) Option {
	return func(c *Client) {
		c.rest.SetRetryWaitTime(d)
		c.rest.SetRetryMaxWaitTime(d)
	}
}

// NewClient creates a client for baseURL authenticating with token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		rest: resty.New().
			SetBaseURL(baseURL).
			SetAuthScheme("Token").
			SetAuthToken(token).
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", "application/json").
			SetTimeout(30*time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(time.Second).
			SetRetryMaxWaitTime(3*time.Second).
			AddRetryCondition(isTransient),
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rest.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("elapsed", resp.Time()).
			RawJSON("body", jsonOrQuoted(resp.Body())).
			Msg("api response")
		return nil
	})

	return c
}

// isTransient retries gateway hiccups the same way for every route
func isTransient(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.rest.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, &HTTPError{
			Method:     resp.Request.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
		}
	}
	return resp.Body(), nil
}

func getOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	body, err := c.get(ctx, path)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("failed to decode JSON from %s: %w", path, err)
	}
	return out, nil
}

// getList accepts both plain JSON arrays and paginated
// {"results": [...], "next": url} envelopes, following next links.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var all []T

	next := path
	for next != "" {
		body, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		trimmed := bytes.TrimSpace(body)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var items []T
			if err := json.Unmarshal(trimmed, &items); err != nil {
				return nil, fmt.Errorf("failed to decode JSON list from %s: %w", next, err)
			}
			return append(all, items...), nil
		}

		var page struct {
			Results []T     `json:"results"`
			Next    *string `json:"next"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("failed to decode JSON page from %s: %w", next, err)
		}
		all = append(all, page.Results...)
		next = deref(page.Next)
	}

	return all, nil
}

// CurrentUser returns the account that owns the token
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	return getOne[User](ctx, c, "/api/users/current/")
}

// CoursesForUser lists the courses where the user holds role.
func (c *Client) CoursesForUser(ctx context.Context, userPK int, role Role) ([]Course, error) {
	var route string
	switch role {
	case RoleAdmin:
		route = "courses_is_admin_for"
	case RoleStaff:
		route = "courses_is_staff_for"
	default:
		return nil, fmt.Errorf("unsupported course role: %q", role)
	}
	return getList[Course](ctx, c, fmt.Sprintf("/api/users/%d/%s/", userPK, route))
}

// Course fetches one course by pk.
func (c *Client) Course(ctx context.Context, pk int) (Course, error) {
	return getOne[Course](ctx, c, fmt.Sprintf("/api/courses/%d/", pk))
}

// Projects lists the projects of a course.
func (c *Client) Projects(ctx context.Context, coursePK int) ([]Project, error) {
	return getList[Project](ctx, c, fmt.Sprintf("/api/courses/%d/projects/", coursePK))
}

// Project fetches one project by pk.
func (c *Client) Project(ctx context.Context, pk int) (Project, error) {
	return getOne[Project](ctx, c, fmt.Sprintf("/api/projects/%d/", pk))
}

// Groups lists the groups registered for a project.
func (c *Client) Groups(ctx context.Context, projectPK int) ([]Group, error) {
	return getList[Group](ctx, c, fmt.Sprintf("/api/projects/%d/groups/", projectPK))
}

// Group fetches one group by pk.
func (c *Client) Group(ctx context.Context, pk int) (Group, error) {
	return getOne[Group](ctx, c, fmt.Sprintf("/api/groups/%d/", pk))
}

// Submissions lists every submission made by a group.
func (c *Client) Submissions(ctx context.Context, groupPK int) ([]Submission, error) {
	return getList[Submission](ctx, c, fmt.Sprintf("/api/groups/%d/submissions/", groupPK))
}

// Submission fetches one submission by pk.
func (c *Client) Submission(ctx context.Context, pk int) (Submission, error) {
	return getOne[Submission](ctx, c, fmt.Sprintf("/api/submissions/%d/", pk))
}

// UltimateSubmission returns the submission the server's policy counts
// toward the final score.
func (c *Client) UltimateSubmission(ctx context.Context, groupPK int) (Submission, error) {
	return getOne[Submission](ctx, c, fmt.Sprintf("/api/groups/%d/ultimate_submission/", groupPK))
}

func jsonOrQuoted(body []byte) []byte {
	if json.Valid(body) {
		return body
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
