package match

import (
	"strings"

	"agioctl/pkg/autograder"

	"golang.org/x/text/cases"
)

// Summarizer is any record with a one-line summary
type Summarizer interface {
	Summary() string
}

// Matches reports whether course satisfies every constraint in t.
func (t CourseTerm) Matches(course autograder.Course) bool {
	if t.Year != 0 && course.Year != t.Year {
		return false
	}
	if t.Semester != "" && course.Semester != t.Semester {
		return false
	}
	return strings.Contains(course.Name, t.Name)
}

// Matches reports whether project satisfies every constraint in t. The
// project's own name is decomposed with the same rules as the term, so
// "Project 02" and "p2" agree on number 2.
func (t ProjectTerm) Matches(project autograder.Project) bool {
	candidate := parseProjectName(project.Name)

	if t.Type != "" && !strings.EqualFold(t.Type, candidate.Type) {
		return false
	}
	if t.HasNumber && (!candidate.HasNumber || candidate.Number != t.Number) {
		return false
	}
	if t.Subtitle != "" && !strings.Contains(foldSubtitle(candidate.Subtitle), foldSubtitle(t.Subtitle)) {
		return false
	}
	return true
}

// Courses parses term and returns the courses it matches, in input order.
// An empty result is not an error; see Unique.
func Courses(term string, courses []autograder.Course) ([]autograder.Course, error) {
	ct, err := ParseCourse(term)
	if err != nil {
		return nil, err
	}
	return filter(courses, ct.Matches), nil
}

// Projects parses term and returns the projects it matches, in input order.
func Projects(term string, projects []autograder.Project) ([]autograder.Project, error) {
	pt, err := ParseProject(term)
	if err != nil {
		return nil, err
	}
	return filter(projects, pt.Matches), nil
}

// Groups returns the groups with a member whose uniqname equals uniqname.
// A trailing email domain on the input is ignored.
func Groups(uniqname string, groups []autograder.Group) []autograder.Group {
	uniqname = strings.TrimSuffix(strings.TrimSpace(uniqname), autograder.EmailDomain)
	return filter(groups, func(g autograder.Group) bool {
		for _, name := range g.Uniqnames() {
			if name == uniqname {
				return true
			}
		}
		return false
	})
}

// Unique reduces a match result to exactly one record. Zero matches
// yields a NoMatch error listing every candidate; several matches yield an
// AmbiguousMatch error listing the matches. It never picks among several.
func Unique[T Summarizer](what, input string, matches, candidates []T) (T, error) {
	var zero T
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return zero, newError(NoMatch, input, Summaries(candidates),
			"no %s matches %q", what, input)
	default:
		return zero, newError(AmbiguousMatch, input, Summaries(matches),
			"%q matches more than one %s", input, what)
	}
}

// Summaries renders one summary line per record.
func Summaries[T Summarizer](items []T) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.Summary())
	}
	return lines
}

// foldSubtitle case-folds s and drops all whitespace.
func foldSubtitle(s string) string {
	return strings.Join(strings.Fields(cases.Fold().String(s)), "")
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
