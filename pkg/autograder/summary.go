package autograder

import (
	"fmt"
	"strconv"
	"strings"
)

// Summary lines are shared by listings and the interactive picker, so
// keep them stable.

// Summary renders "[pk] name semester year". Null semester or year is
// left out instead of printing a placeholder.
func (c Course) Summary() string {
	parts := []string{fmt.Sprintf("[%d]", c.PK), c.Name}
	if c.Semester != "" {
		parts = append(parts, c.Semester)
	}
	if c.Year != 0 {
		parts = append(parts, strconv.Itoa(c.Year))
	}
	return strings.Join(parts, " ")
}

// Summary renders "[pk] name".
func (p Project) Summary() string {
	return fmt.Sprintf("[%d] %s", p.PK, p.Name)
}

// Summary renders "[pk] uniqname, uniqname".
func (g Group) Summary() string {
	return fmt.Sprintf("[%d] %s", g.PK, strings.Join(g.Uniqnames(), ", "))
}

// Summary renders "[pk] YYYY-MM-DD HH:MM:SS" in the timestamp's own offset.
func (s Submission) Summary() string {
	return fmt.Sprintf("[%d] %s", s.PK, s.Timestamp.Format("2006-01-02 15:04:05"))
}
