package match

import (
	"errors"
	"testing"

	"agioctl/pkg/autograder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCourses = []autograder.Course{
	{PK: 17, Name: "EECS 280", Semester: "Spring", Year: 2018},
	{PK: 26, Name: "EECS 280", Semester: "Fall", Year: 2018},
	{PK: 32, Name: "EECS 280", Semester: "Winter", Year: 2019},
	{PK: 43, Name: "EECS 280", Semester: "Spring", Year: 2019},
	{PK: 50, Name: "EECS 280", Semester: "Fall", Year: 2019},
	{PK: 100, Name: "EECS 280", Semester: "Winter", Year: 2021},
	{PK: 111, Name: "EECS 280", Semester: "Spring", Year: 2021},
	{PK: 21, Name: "EECS 280 Diagnostic"},
	{PK: 35, Name: "EECS 485", Semester: "Winter", Year: 2019},
	{PK: 46, Name: "EECS 485", Semester: "Fall", Year: 2019},
	{PK: 74, Name: "EECS 485", Semester: "Summer", Year: 2020},
	{PK: 85, Name: "EECS 485", Semester: "Fall", Year: 2020},
	{PK: 109, Name: "EECS 485", Semester: "Spring", Year: 2021},
}

var testProjects = []autograder.Project{
	{PK: 1005, Name: "Project 1 - Templated Static Site Generator"},
	{PK: 1009, Name: "Project 2 - Server-side Dynamic Pages"},
	{PK: 1020, Name: "Project 20 - Stretch Goal"},
	{PK: 1030, Name: "Lab 2 - SQL"},
	{PK: 1006, Name: "Project 4 - MapReduce"},
	{PK: 1040, Name: "Images"},
}

var testGroups = []autograder.Group{
	{PK: 243636, Members: []autograder.Member{{Username: "achitta@umich.edu"}}},
	{PK: 246965, Members: []autograder.Member{{Username: "awdeorio@umich.edu"}}},
	{PK: 250000, Members: []autograder.Member{{Username: "jklooste@umich.edu"}, {Username: "noah@umich.edu"}}},
}

func TestCourses_ReturnsUnmodifiedRecord(t *testing.T) {
	matches, err := Courses("EECS 485 Spring 2021", testCourses)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, autograder.Course{PK: 109, Name: "EECS 485", Semester: "Spring", Year: 2021}, matches[0])
}

func TestCourses_Shortcut(t *testing.T) {
	courses := []autograder.Course{
		{PK: 109, Name: "EECS 485", Semester: "Spring", Year: 2021},
		{PK: 111, Name: "EECS 280", Semester: "Spring", Year: 2021},
	}
	matches, err := Courses("eecs485sp21", courses)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 109, matches[0].PK)
}

func TestCourses_CaseInsensitiveInput(t *testing.T) {
	lower, err := Courses("eecs 280 spring 2021", testCourses)
	require.NoError(t, err)
	upper, err := Courses("EECS 280 SPRING 2021", testCourses)
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	require.Len(t, lower, 1)
	assert.Equal(t, 111, lower[0].PK)
}

func TestCourses_NoYearMatch(t *testing.T) {
	matches, err := Courses("EECS 280 Spring 2016", testCourses)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCourses_PartialTermMatchesMany(t *testing.T) {
	matches, err := Courses("eecs485", testCourses)
	require.NoError(t, err)
	assert.Len(t, matches, 5)

	// Substring containment also finds differently suffixed names.
	matches, err = Courses("eecs280", testCourses)
	require.NoError(t, err)
	assert.Len(t, matches, 8)
}

func TestCourses_UnsupportedFormat(t *testing.T) {
	_, err := Courses("web systems", testCourses)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestProjects_NumberDisambiguation(t *testing.T) {
	for _, in := range []string{"p2", "P02", "Project-2", "project 2"} {
		matches, err := Projects(in, testProjects)
		require.NoError(t, err, in)
		require.Len(t, matches, 1, in)
		assert.Equal(t, 1009, matches[0].PK, in)
	}

	matches, err := Projects("l2", testProjects)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1030, matches[0].PK)

	matches, err = Projects("p20", testProjects)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1020, matches[0].PK)
}

func TestProjects_BareNumberIsAmbiguous(t *testing.T) {
	matches, err := Projects("2", testProjects)
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	_, err = Unique("project", "2", matches, testProjects)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAmbiguousMatch))

	var mErr *Error
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, []string{
		"[1009] Project 2 - Server-side Dynamic Pages",
		"[1030] Lab 2 - SQL",
	}, mErr.Listing)
}

func TestProjects_Subtitle(t *testing.T) {
	tests := []struct {
		in string
		pk int
	}{
		{"Project 1 - Templated Static Site Generator", 1005},
		{"mapreduce", 1006},
		{"Images", 1040},
		{"p4 map reduce", 1006},
	}
	for _, tt := range tests {
		matches, err := Projects(tt.in, testProjects)
		require.NoError(t, err, tt.in)
		require.Len(t, matches, 1, tt.in)
		assert.Equal(t, tt.pk, matches[0].PK, tt.in)
	}
}

func TestProjects_UnknownType(t *testing.T) {
	_, err := Projects("x1", testProjects)
	assert.True(t, errors.Is(err, ErrUnknownAbbreviation))
}

func TestProjects_MultiWordNameReadsLeadingWordAsType(t *testing.T) {
	projects := []autograder.Project{
		{PK: 1100, Name: "Final Project"},
		{PK: 1101, Name: "Project 5 - Search Engine"},
	}

	_, err := Projects("Final Project", projects)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAbbreviation))
	assert.Contains(t, err.Error(), `"Final"`)

	matches, err := Projects("search", projects)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1101, matches[0].PK)
}

func TestGroups_ByUniqname(t *testing.T) {
	matches := Groups("awdeorio", testGroups)
	require.Len(t, matches, 1)
	assert.Equal(t, 246965, matches[0].PK)

	matches = Groups("noah@umich.edu", testGroups)
	require.Len(t, matches, 1)
	assert.Equal(t, 250000, matches[0].PK)

	assert.Empty(t, Groups("nobody", testGroups))
}

func TestUnique_NoMatchListsAllCandidates(t *testing.T) {
	_, err := Unique[autograder.Group]("group", "nobody", nil, testGroups)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatch))

	var mErr *Error
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, NoMatch, mErr.Kind)
	assert.Equal(t, "nobody", mErr.Input)
	assert.Len(t, mErr.Listing, len(testGroups))
	assert.Equal(t, "[250000] jklooste, noah", mErr.Listing[2])
}
