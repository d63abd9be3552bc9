// Package resolve turns a possibly absent command-line argument into
// exactly one course, project, group or submission. Parents are resolved
// first: submission needs a group, group a project, project a course.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"agioctl/pkg/autograder"
	"agioctl/pkg/match"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Submission literals accepted in place of a pk.
const (
	Best = "best"
	Last = "last"
)

// ErrNoPicker is returned when an argument is missing and nothing can ask
// the user for one.
var ErrNoPicker = errors.New("no argument given and no interactive picker available")

// API is the subset of the autograder client the resolver needs.
type API interface {
	CurrentUser(ctx context.Context) (autograder.User, error)
	CoursesForUser(ctx context.Context, userPK int, role autograder.Role) ([]autograder.Course, error)
	Course(ctx context.Context, pk int) (autograder.Course, error)
	Projects(ctx context.Context, coursePK int) ([]autograder.Project, error)
	Project(ctx context.Context, pk int) (autograder.Project, error)
	Groups(ctx context.Context, projectPK int) ([]autograder.Group, error)
	Group(ctx context.Context, pk int) (autograder.Group, error)
	Submissions(ctx context.Context, groupPK int) ([]autograder.Submission, error)
	Submission(ctx context.Context, pk int) (autograder.Submission, error)
	UltimateSubmission(ctx context.Context, groupPK int) (autograder.Submission, error)
}

// Picker asks the user to choose. PickOne returns an index into labels;
// Prompt returns free text, offering suggestions for completion.
type Picker interface {
	PickOne(title string, labels []string) (int, error)
	Prompt(title string, suggestions []string) (string, error)
}

type Options struct {
	// AllSemesters disables the current-semester filter of the course picker.
	AllSemesters bool
	// GroupPrompt asks for a uniqname instead of showing a group list.
	GroupPrompt bool
	// Now defaults to time.Now.
	Now func() time.Time
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Scope carries the raw parent arguments of a resolution. Empty fields
// are resolved interactively.
type Scope struct {
	Course  string
	Project string
	Group   string
}

type Resolver struct {
	api    API
	picker Picker
	opts   Options
	log    *zerolog.Logger
}

// New returns a resolver. picker may be nil when every argument is given.
func New(api API, picker Picker, opts Options) *Resolver {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = &log.Logger
	}
	return &Resolver{api: api, picker: picker, opts: opts, log: logger}
}

// Course resolves arg to one course. A pk is fetched directly; a term such
// as "eecs485sp21" is matched against every course the user teaches; an
// empty arg opens the picker over current courses.
func (r *Resolver) Course(ctx context.Context, arg string) (autograder.Course, error) {
	if pk, ok := parsePK(arg); ok {
		return r.api.Course(ctx, pk)
	}

	user, courses, err := r.courses(ctx)
	if err != nil {
		return autograder.Course{}, err
	}
	if len(courses) == 0 {
		return autograder.Course{}, match.NoCandidatesError("courses", "user "+user.Username,
			"only courses you are admin or staff for are listed")
	}

	if strings.TrimSpace(arg) == "" {
		return pick(r, "Select a course", r.currentCourses(courses))
	}

	matches, err := match.Courses(arg, courses)
	if err != nil {
		return autograder.Course{}, err
	}
	return match.Unique("course", arg, matches, courses)
}

// Project resolves arg within the course named by scope.Course.
func (r *Resolver) Project(ctx context.Context, arg string, scope Scope) (autograder.Project, error) {
	if pk, ok := parsePK(arg); ok {
		return r.api.Project(ctx, pk)
	}

	course, projects, err := r.projectsIn(ctx, scope)
	if err != nil {
		return autograder.Project{}, err
	}
	if len(projects) == 0 {
		return autograder.Project{}, match.NoCandidatesError("projects", course.Summary(),
			"list courses with: agio courses --list")
	}

	if strings.TrimSpace(arg) == "" {
		return pick(r, "Select a project", projects)
	}

	matches, err := match.Projects(arg, projects)
	if err != nil {
		return autograder.Project{}, err
	}
	return match.Unique("project", arg, matches, projects)
}

// Group resolves arg, a pk or a member uniqname, within the project named
// by scope.
func (r *Resolver) Group(ctx context.Context, arg string, scope Scope) (autograder.Group, error) {
	if pk, ok := parsePK(arg); ok {
		return r.api.Group(ctx, pk)
	}

	project, groups, err := r.groupsIn(ctx, scope)
	if err != nil {
		return autograder.Group{}, err
	}
	if len(groups) == 0 {
		return autograder.Group{}, match.NoCandidatesError("groups", project.Summary(),
			"list projects with: agio projects --list")
	}

	if strings.TrimSpace(arg) == "" {
		if !r.opts.GroupPrompt {
			return pick(r, "Select a group", groups)
		}
		if r.picker == nil {
			return autograder.Group{}, ErrNoPicker
		}
		arg, err = r.picker.Prompt("Uniqname", uniqnames(groups))
		if err != nil {
			return autograder.Group{}, err
		}
	}

	return match.Unique("group", arg, match.Groups(arg, groups), groups)
}

// Submission resolves arg within the group named by scope. Besides a pk,
// arg may be "best" for the group's ultimate submission or "last" for the
// most recent one. An empty arg means "last".
func (r *Resolver) Submission(ctx context.Context, arg string, scope Scope) (autograder.Submission, error) {
	if pk, ok := parsePK(arg); ok {
		return r.api.Submission(ctx, pk)
	}

	literal := strings.ToLower(strings.TrimSpace(arg))
	if literal == "" {
		literal = Last
	}
	if literal != Best && literal != Last {
		return autograder.Submission{}, &match.Error{
			Kind:    match.UnsupportedFormat,
			Input:   arg,
			Message: fmt.Sprintf("unsupported submission %q (use a pk, %q or %q)", arg, Best, Last),
		}
	}

	group, err := r.Group(ctx, scope.Group, scope)
	if err != nil {
		return autograder.Submission{}, err
	}
	if literal == Best {
		return r.api.UltimateSubmission(ctx, group.PK)
	}

	submissions, err := r.api.Submissions(ctx, group.PK)
	if err != nil {
		return autograder.Submission{}, err
	}
	if len(submissions) == 0 {
		return autograder.Submission{}, match.NoCandidatesError("submissions", group.Summary(),
			"list groups with: agio groups --list")
	}
	sortSubmissions(submissions)
	return submissions[len(submissions)-1], nil
}

// currentCourses keeps the courses of this semester and later. If none
// remain, every course is returned instead.
func (r *Resolver) currentCourses(courses []autograder.Course) []autograder.Course {
	if r.opts.AllSemesters {
		return courses
	}

	now := r.opts.Now()
	rank := match.MonthSemesterRank(now.Month())

	var current []autograder.Course
	for _, c := range courses {
		if c.Year > now.Year() || (c.Year == now.Year() && match.SemesterRank(c.Semester) >= rank) {
			current = append(current, c)
		}
	}
	if len(current) == 0 {
		r.log.Warn().Msg("no current courses, showing all semesters")
		return courses
	}
	return current
}

func pick[T match.Summarizer](r *Resolver, title string, items []T) (T, error) {
	var zero T
	if r.picker == nil {
		return zero, ErrNoPicker
	}
	i, err := r.picker.PickOne(title, match.Summaries(items))
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(items) {
		return zero, fmt.Errorf("picker returned index %d for %d choices", i, len(items))
	}
	return items[i], nil
}

// parsePK reports whether arg is purely numeric.
func parsePK(arg string) (int, bool) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return 0, false
	}
	for _, r := range arg {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	pk, err := strconv.Atoi(arg)
	return pk, err == nil
}

func uniqnames(groups []autograder.Group) []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.Uniqnames()...)
	}
	return names
}
