package match

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCourse_SeparatorVariants(t *testing.T) {
	want := CourseTerm{Year: 2021, Semester: "Spring", Name: "EECS 485"}

	inputs := []string{
		"eecs485sp21",
		"EECS 485 Spring 21",
		"eecs-485-sp-21",
		"eecs_485_sp_2021",
		"EECS 485 Spring 2021",
		"  eecs485 s 21 ",
		"Eecs485SPRING2021",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := ParseCourse(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseCourse_SemesterTable(t *testing.T) {
	tests := map[string]string{
		"eecs280w21":               "Winter",
		"eecs280wn21":              "Winter",
		"eecs280 winter 21":        "Winter",
		"eecs280su21":              "Summer",
		"eecs280 summer 2021":      "Summer",
		"eecs280f21":               "Fall",
		"eecs280fa21":              "Fall",
		"eecs280 fall 21":          "Fall",
		"eecs280sp/su21":           "Spring/Summer",
		"eecs280spsu21":            "Spring/Summer",
		"eecs280ss21":              "Spring/Summer",
		"eecs280 spring/summer 21": "Spring/Summer",
	}
	for in, semester := range tests {
		got, err := ParseCourse(in)
		require.NoError(t, err, in)
		assert.Equal(t, semester, got.Semester, in)
	}
}

// Every abbreviation in the table must be reachable through the pattern.
func TestParseCourse_PatternCoversTable(t *testing.T) {
	for abbr, semester := range semesterAbbreviations {
		got, err := ParseCourse("eecs 485 " + abbr + " 21")
		require.NoError(t, err, abbr)
		assert.Equal(t, semester, got.Semester, abbr)
	}
}

func TestParseCourse_TwoDigitYear(t *testing.T) {
	for in, year := range map[string]int{
		"eecs485f99":   2099,
		"eecs485f00":   2000,
		"eecs485f21":   2021,
		"eecs485f1999": 1999,
	} {
		got, err := ParseCourse(in)
		require.NoError(t, err)
		assert.Equal(t, year, got.Year, in)
	}
}

func TestParseCourse_DefaultDepartment(t *testing.T) {
	got, err := ParseCourse("485sp21")
	require.NoError(t, err)
	assert.Equal(t, "EECS 485", got.Name)
}

func TestParseCourse_OptionalSemesterAndYear(t *testing.T) {
	got, err := ParseCourse("eecs 280")
	require.NoError(t, err)
	assert.Equal(t, CourseTerm{Name: "EECS 280"}, got)

	got, err = ParseCourse("math 217 2020")
	require.NoError(t, err)
	assert.Equal(t, CourseTerm{Name: "MATH 217", Year: 2020}, got)
}

func TestParseCourse_Unsupported(t *testing.T) {
	for _, in := range []string{"", "eecs", "eecs48sp21", "eecs485xx21", "eecs485sp021"} {
		_, err := ParseCourse(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "%q: %v", in, err)

		var mErr *Error
		require.True(t, errors.As(err, &mErr))
		assert.Equal(t, in, mErr.Input)
	}
}

func TestParseCourse_MisspelledSemesterListsShortcuts(t *testing.T) {
	_, err := ParseCourse("eecs485autumn21")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	var mErr *Error
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, "eecs485autumn21", mErr.Input)
	assert.Contains(t, mErr.Listing, "f, fa, fall → Fall")
	assert.Contains(t, mErr.Listing, "w, winter, wn → Winter")
}

func TestExpandSemester_Unknown(t *testing.T) {
	_, err := ExpandSemester("autumn")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAbbreviation))

	var mErr *Error
	require.True(t, errors.As(err, &mErr))
	assert.Contains(t, mErr.Listing, "f, fa, fall → Fall")
}

func TestParseProject(t *testing.T) {
	tests := []struct {
		in   string
		want ProjectTerm
	}{
		{"p1", ProjectTerm{Type: "Project", Number: 1, HasNumber: true}},
		{"P02", ProjectTerm{Type: "Project", Number: 2, HasNumber: true}},
		{"Project-2", ProjectTerm{Type: "Project", Number: 2, HasNumber: true}},
		{"proj 3", ProjectTerm{Type: "Project", Number: 3, HasNumber: true}},
		{"l2", ProjectTerm{Type: "Lab", Number: 2, HasNumber: true}},
		{"hw4", ProjectTerm{Type: "Homework", Number: 4, HasNumber: true}},
		{"homework_10", ProjectTerm{Type: "Homework", Number: 10, HasNumber: true}},
		{"7", ProjectTerm{Number: 7, HasNumber: true}},
		{"Images", ProjectTerm{Subtitle: "Images"}},
		{
			"Project 1 - Templated Static Site Generator",
			ProjectTerm{Type: "Project", Number: 1, HasNumber: true, Subtitle: "Templated Static Site Generator"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProject(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProject_UnknownType(t *testing.T) {
	_, err := ParseProject("q3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAbbreviation))

	var mErr *Error
	require.True(t, errors.As(err, &mErr))
	assert.Contains(t, mErr.Listing, "l, lab → Lab")
	assert.Contains(t, mErr.Listing, "p, proj, project → Project")
}

func TestParseProject_Empty(t *testing.T) {
	_, err := ParseProject("   ")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestSemesterRanks(t *testing.T) {
	assert.Less(t, SemesterRank("Winter"), SemesterRank("Spring"))
	assert.Less(t, SemesterRank("Spring"), SemesterRank("Summer"))
	assert.Less(t, SemesterRank("Summer"), SemesterRank("Fall"))
	assert.Equal(t, 0, SemesterRank(""))

	assert.Equal(t, SemesterRank("Winter"), MonthSemesterRank(time.January))
	assert.Equal(t, SemesterRank("Winter"), MonthSemesterRank(time.April))
	assert.Equal(t, SemesterRank("Spring"), MonthSemesterRank(time.May))
	assert.Equal(t, SemesterRank("Spring"), MonthSemesterRank(time.June))
	assert.Equal(t, SemesterRank("Summer"), MonthSemesterRank(time.August))
	assert.Equal(t, SemesterRank("Fall"), MonthSemesterRank(time.September))
	assert.Equal(t, SemesterRank("Fall"), MonthSemesterRank(time.December))
}
