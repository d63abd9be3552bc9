// Package match turns human-typed course and project shorthands into
// structured terms and filters candidate records against them.
package match

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDepartment is assumed when a course term has no department.
const DefaultDepartment = "EECS"

// semesterAbbreviations maps every accepted (lower-case) spelling to the
// canonical semester name. The course pattern is generated from these
// keys.
var semesterAbbreviations = map[string]string{
	"w":             "Winter",
	"wn":            "Winter",
	"winter":        "Winter",
	"s":             "Spring",
	"sp":            "Spring",
	"spring":        "Spring",
	"su":            "Summer",
	"summer":        "Summer",
	"f":             "Fall",
	"fa":            "Fall",
	"fall":          "Fall",
	"sp/su":         "Spring/Summer",
	"spsu":          "Spring/Summer",
	"ss":            "Spring/Summer",
	"spring/summer": "Spring/Summer",
}

// assignmentTypes maps accepted (lower-case) project type shortcuts to
// the type word used in project names.
var assignmentTypes = map[string]string{
	"p":        "Project",
	"proj":     "Project",
	"project":  "Project",
	"l":        "Lab",
	"lab":      "Lab",
	"h":        "Homework",
	"hw":       "Homework",
	"hwk":      "Homework",
	"homework": "Homework",
}

var semesterRanks = map[string]int{
	"Winter":        1,
	"Spring":        2,
	"Spring/Summer": 2,
	"Summer":        3,
	"Fall":          4,
}

var (
	coursePattern  = compileCoursePattern()
	projectPattern = regexp.MustCompile(`(?i)^\s*(?P<type>[a-z]+)?[\s_-]*(?P<number>\d+)?[\s_-]*(?P<subtitle>.*?)\s*$`)
)

// compileCoursePattern builds the alternation longest-first so that "sp"
// wins over "s" and "spsu" over "sp".
func compileCoursePattern() *regexp.Regexp {
	alternatives := sortedKeys(semesterAbbreviations)
	sort.SliceStable(alternatives, func(i, j int) bool {
		return len(alternatives[i]) > len(alternatives[j])
	})
	for i, a := range alternatives {
		alternatives[i] = regexp.QuoteMeta(a)
	}

	return regexp.MustCompile(`(?i)^\s*(?P<dept>[a-z]+)?[\s_-]*(?P<number>\d{3})[\s_-]*` +
		`(?P<semester>` + strings.Join(alternatives, "|") + `)?[\s_-]*` +
		`(?P<year>\d{4}|\d{2})?\s*$`)
}

// CourseTerm is a normalized course search. Zero Year and empty Semester
// impose no constraint.
type CourseTerm struct {
	Year     int
	Semester string
	Name     string
}

// ProjectTerm is a normalized project search. Empty Type, HasNumber false
// and empty Subtitle each impose no constraint.
type ProjectTerm struct {
	Type      string
	Number    int
	HasNumber bool
	Subtitle  string
}

// ParseCourse normalizes shorthands like "eecs485sp21",
// "EECS 485 Spring 2021" or "eecs-485-sp-21" into the same CourseTerm.
func ParseCourse(term string) (CourseTerm, error) {
	groups, ok := submatches(coursePattern, term)
	if !ok {
		return CourseTerm{}, newError(UnsupportedFormat, term, shortcutListing(semesterAbbreviations),
			"unsupported course format: %q (try something like eecs485sp21)", term)
	}

	var ct CourseTerm

	if abbr := groups["semester"]; abbr != "" {
		semester, err := ExpandSemester(abbr)
		if err != nil {
			return CourseTerm{}, err
		}
		ct.Semester = semester
	}

	if y := groups["year"]; y != "" {
		year, _ := strconv.Atoi(y)
		if len(y) == 2 {
			year += 2000
		}
		ct.Year = year
	}

	dept := groups["dept"]
	if dept == "" {
		dept = DefaultDepartment
		log.Warn().Str("term", term).Msgf("no department given, assuming %s", DefaultDepartment)
	}
	ct.Name = fmt.Sprintf("%s %s", cases.Upper(language.Und).String(dept), groups["number"])

	return ct, nil
}

// ExpandSemester maps an abbreviation such as "sp" or "FA" to its
// canonical semester name.
func ExpandSemester(abbr string) (string, error) {
	if semester, ok := semesterAbbreviations[strings.ToLower(abbr)]; ok {
		return semester, nil
	}
	return "", newError(UnknownAbbreviation, abbr, shortcutListing(semesterAbbreviations),
		"unrecognized semester abbreviation: %q", abbr)
}

// ParseProject normalizes shorthands like "p1", "P02", "Project-2",
// "hw3" or a bare subtitle like "MapReduce".
func ParseProject(term string) (ProjectTerm, error) {
	pt, rawType, err := splitProject(term)
	if err != nil {
		return ProjectTerm{}, err
	}
	if rawType == "" {
		return pt, nil
	}

	t, ok := assignmentTypes[strings.ToLower(rawType)]
	if !ok {
		return ProjectTerm{}, newError(UnknownAbbreviation, term, shortcutListing(assignmentTypes),
			"unrecognized assignment type %q in %q", rawType, term)
	}
	pt.Type = t
	return pt, nil
}

// parseProjectName decomposes a project's own name the same way a search
// term is decomposed. Unknown type words are kept as-is so that a project
// named "Exam 1 - Review" still has a number and a subtitle.
func parseProjectName(name string) ProjectTerm {
	pt, rawType, err := splitProject(name)
	if err != nil {
		return ProjectTerm{Subtitle: name}
	}
	if rawType != "" {
		if t, ok := assignmentTypes[strings.ToLower(rawType)]; ok {
			pt.Type = t
		} else {
			pt.Type = rawType
		}
	}
	return pt
}

// splitProject applies the project pattern. The returned raw type is
// empty when the type word was absent or reinterpreted as a subtitle.
func splitProject(term string) (ProjectTerm, string, error) {
	groups, ok := submatches(projectPattern, term)
	if !ok || strings.TrimSpace(term) == "" {
		return ProjectTerm{}, "", newError(UnsupportedFormat, term, nil,
			"unsupported project format: %q (try something like p1)", term)
	}

	rawType, number, subtitle := groups["type"], groups["number"], groups["subtitle"]

	// "Images" parses as a lone type word; it is really a subtitle search.
	if rawType != "" && number == "" && subtitle == "" {
		return ProjectTerm{Subtitle: rawType}, "", nil
	}

	pt := ProjectTerm{Subtitle: subtitle}
	if number != "" {
		n, err := strconv.Atoi(number)
		if err != nil {
			return ProjectTerm{}, "", newError(UnsupportedFormat, term, nil,
				"unsupported project number %q in %q", number, term)
		}
		pt.Number = n
		pt.HasNumber = true
	}
	return pt, rawType, nil
}

// SemesterRank orders semesters within a year. Unknown or empty names
// rank 0 so they sort first.
func SemesterRank(semester string) int {
	return semesterRanks[semester]
}

// MonthSemesterRank returns the rank of the semester that month falls in.
func MonthSemesterRank(month time.Month) int {
	switch {
	case month <= time.April:
		return semesterRanks["Winter"]
	case month <= time.June:
		return semesterRanks["Spring"]
	case month <= time.August:
		return semesterRanks["Summer"]
	default:
		return semesterRanks["Fall"]
	}
}

func submatches(re *regexp.Regexp, s string) (map[string]string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	groups := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	return groups, true
}

// shortcutListing renders "abbr → Name" lines grouped by canonical name.
func shortcutListing(table map[string]string) []string {
	byName := make(map[string][]string)
	for abbr, name := range table {
		byName[name] = append(byName[name], abbr)
	}

	var lines []string
	for _, name := range sortedKeys(byName) {
		abbrs := byName[name]
		sort.Strings(abbrs)
		lines = append(lines, fmt.Sprintf("%s → %s", strings.Join(abbrs, ", "), name))
	}
	return lines
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
