package resolve

import (
	"context"
	"sort"
	"strings"

	"agioctl/pkg/autograder"
	"agioctl/pkg/match"
)

// Courses lists every course the current user is admin or staff for,
// newest first.
func (r *Resolver) Courses(ctx context.Context) ([]autograder.Course, error) {
	_, courses, err := r.courses(ctx)
	return courses, err
}

// Projects lists the projects of the course named by scope, sorted by name.
func (r *Resolver) Projects(ctx context.Context, scope Scope) ([]autograder.Project, error) {
	_, projects, err := r.projectsIn(ctx, scope)
	return projects, err
}

// Groups lists the groups of the project named by scope.
func (r *Resolver) Groups(ctx context.Context, scope Scope) ([]autograder.Group, error) {
	_, groups, err := r.groupsIn(ctx, scope)
	return groups, err
}

// Submissions lists the submissions of the group named by scope, oldest
// first.
func (r *Resolver) Submissions(ctx context.Context, scope Scope) ([]autograder.Submission, error) {
	group, err := r.Group(ctx, scope.Group, scope)
	if err != nil {
		return nil, err
	}
	submissions, err := r.api.Submissions(ctx, group.PK)
	if err != nil {
		return nil, err
	}
	sortSubmissions(submissions)
	return submissions, nil
}

func (r *Resolver) courses(ctx context.Context) (autograder.User, []autograder.Course, error) {
	user, err := r.api.CurrentUser(ctx)
	if err != nil {
		return autograder.User{}, nil, err
	}

	seen := make(map[int]bool)
	var courses []autograder.Course
	for _, role := range []autograder.Role{autograder.RoleAdmin, autograder.RoleStaff} {
		list, err := r.api.CoursesForUser(ctx, user.PK, role)
		if err != nil {
			return autograder.User{}, nil, err
		}
		for _, c := range list {
			if seen[c.PK] {
				continue
			}
			seen[c.PK] = true
			courses = append(courses, c)
		}
	}

	sortCourses(courses)
	return user, courses, nil
}

func (r *Resolver) projectsIn(ctx context.Context, scope Scope) (autograder.Course, []autograder.Project, error) {
	course, err := r.Course(ctx, scope.Course)
	if err != nil {
		return autograder.Course{}, nil, err
	}
	projects, err := r.api.Projects(ctx, course.PK)
	if err != nil {
		return autograder.Course{}, nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return course, projects, nil
}

func (r *Resolver) groupsIn(ctx context.Context, scope Scope) (autograder.Project, []autograder.Group, error) {
	project, err := r.Project(ctx, scope.Project, scope)
	if err != nil {
		return autograder.Project{}, nil, err
	}
	groups, err := r.api.Groups(ctx, project.PK)
	if err != nil {
		return autograder.Project{}, nil, err
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return strings.Join(groups[i].Uniqnames(), ",") < strings.Join(groups[j].Uniqnames(), ",")
	})
	return project, groups, nil
}

// sortCourses orders by (year, semester rank, name), descending. Missing
// year and semester count as zero.
func sortCourses(courses []autograder.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if ra, rb := match.SemesterRank(a.Semester), match.SemesterRank(b.Semester); ra != rb {
			return ra > rb
		}
		return a.Name > b.Name
	})
}

func sortSubmissions(submissions []autograder.Submission) {
	sort.SliceStable(submissions, func(i, j int) bool {
		a, b := submissions[i], submissions[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.PK < b.PK
	})
}
