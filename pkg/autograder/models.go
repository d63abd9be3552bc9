package autograder

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EmailDomain is stripped from member usernames to obtain uniqnames.
const EmailDomain = "@umich.edu"

// Role selects which of the current user's course lists to fetch.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User is the authenticated account returned by /api/users/current/
type User struct {
	PK        int    `json:"pk"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Course is a course offering. Semester and Year are zero when the
// server reports them as null.
type Course struct {
	PK       int
	Name     string
	Semester string
	Year     int
	Subtitle string

	Raw json.RawMessage
}

// Project is an assignment inside a course. Its Name embeds the
// assignment type, number and subtitle, e.g. "Project 1 - Static Site".
type Project struct {
	PK              int
	Name            string
	Course          int
	ClosingTime     *time.Time
	SoftClosingTime *time.Time

	Raw json.RawMessage
}

// Member is one user in a group
type Member struct {
	PK        int    `json:"pk"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Uniqname returns the username without the email domain.
func (m Member) Uniqname() string {
	return strings.TrimSuffix(m.Username, EmailDomain)
}

// Group is a set of students working on one project.
type Group struct {
	PK      int
	Project int
	Members []Member

	Raw json.RawMessage
}

// Uniqnames lists the group members in server order.
func (g Group) Uniqnames() []string {
	names := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		names = append(names, m.Uniqname())
	}
	return names
}

// Submission is one graded upload by a group.
type Submission struct {
	PK        int
	Group     int
	Timestamp time.Time

	Raw json.RawMessage
}

func (c *Course) UnmarshalJSON(data []byte) error {
	var wire struct {
		PK       int     `json:"pk"`
		Name     *string `json:"name"`
		Semester *string `json:"semester"`
		Year     *int    `json:"year"`
		Subtitle *string `json:"subtitle"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode course: %w", err)
	}
	if wire.PK <= 0 {
		return fmt.Errorf("failed to decode course: missing pk in %s", snippet(data))
	}

	*c = Course{
		PK:       wire.PK,
		Name:     deref(wire.Name),
		Semester: deref(wire.Semester),
		Year:     deref(wire.Year),
		Subtitle: deref(wire.Subtitle),
		Raw:      clone(data),
	}
	return nil
}

func (c Course) MarshalJSON() ([]byte, error) {
	if len(c.Raw) > 0 {
		return c.Raw, nil
	}
	return json.Marshal(map[string]any{
		"pk":       c.PK,
		"name":     c.Name,
		"semester": nullString(c.Semester),
		"year":     nullInt(c.Year),
		"subtitle": c.Subtitle,
	})
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var wire struct {
		PK              int     `json:"pk"`
		Name            *string `json:"name"`
		Course          int     `json:"course"`
		ClosingTime     *string `json:"closing_time"`
		SoftClosingTime *string `json:"soft_closing_time"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode project: %w", err)
	}
	if wire.PK <= 0 {
		return fmt.Errorf("failed to decode project: missing pk in %s", snippet(data))
	}

	closing, err := parseOptionalTime(wire.ClosingTime)
	if err != nil {
		return fmt.Errorf("failed to decode project %d closing_time: %w", wire.PK, err)
	}
	softClosing, err := parseOptionalTime(wire.SoftClosingTime)
	if err != nil {
		return fmt.Errorf("failed to decode project %d soft_closing_time: %w", wire.PK, err)
	}

	*p = Project{
		PK:              wire.PK,
		Name:            deref(wire.Name),
		Course:          wire.Course,
		ClosingTime:     closing,
		SoftClosingTime: softClosing,
		Raw:             clone(data),
	}
	return nil
}

func (p Project) MarshalJSON() ([]byte, error) {
	if len(p.Raw) > 0 {
		return p.Raw, nil
	}
	return json.Marshal(map[string]any{
		"pk":                p.PK,
		"name":              p.Name,
		"course":            p.Course,
		"closing_time":      p.ClosingTime,
		"soft_closing_time": p.SoftClosingTime,
	})
}

func (g *Group) UnmarshalJSON(data []byte) error {
	var wire struct {
		PK      int      `json:"pk"`
		Project int      `json:"project"`
		Members []Member `json:"members"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode group: %w", err)
	}
	if wire.PK <= 0 {
		return fmt.Errorf("failed to decode group: missing pk in %s", snippet(data))
	}

	*g = Group{
		PK:      wire.PK,
		Project: wire.Project,
		Members: wire.Members,
		Raw:     clone(data),
	}
	return nil
}

func (g Group) MarshalJSON() ([]byte, error) {
	if len(g.Raw) > 0 {
		return g.Raw, nil
	}
	members := g.Members
	if members == nil {
		members = []Member{}
	}
	return json.Marshal(map[string]any{
		"pk":      g.PK,
		"project": g.Project,
		"members": members,
	})
}

func (s *Submission) UnmarshalJSON(data []byte) error {
	var wire struct {
		PK        int    `json:"pk"`
		Group     int    `json:"group"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode submission: %w", err)
	}
	if wire.PK <= 0 {
		return fmt.Errorf("failed to decode submission: missing pk in %s", snippet(data))
	}

	ts, err := time.Parse(time.RFC3339Nano, wire.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to decode submission %d timestamp: %w", wire.PK, err)
	}

	*s = Submission{
		PK:        wire.PK,
		Group:     wire.Group,
		Timestamp: ts,
		Raw:       clone(data),
	}
	return nil
}

func (s Submission) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}
	return json.Marshal(map[string]any{
		"pk":        s.PK,
		"group":     s.Group,
		"timestamp": s.Timestamp.Format(time.RFC3339Nano),
	})
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(i int) any {
	if i == 0 {
		return nil
	}
	return i
}

func parseOptionalTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func clone(data []byte) json.RawMessage {
	return append(json.RawMessage(nil), data...)
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
