package exporter

import (
	"fmt"
	"io"
	"time"

	"agioctl/pkg/autograder"

	ics "github.com/arran4/golang-ical"
)

var now = time.Now

// GenerateDeadlinesICS writes one event per project deadline of course.
// Projects without a closing time are skipped. It returns the number of
// events written.
func GenerateDeadlinesICS(course autograder.Course, projects []autograder.Project, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//agio//deadlines//EN")
	cal.SetXWRCalName(fmt.Sprintf("%s deadlines", course.Name))

	stamp := now()
	count := 0
	for _, p := range projects {
		if p.ClosingTime == nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("agio-project-%d@autograder.io", p.PK))
		event.SetDtStampTime(stamp)
		event.SetStartAt(*p.ClosingTime)
		event.SetEndAt(*p.ClosingTime)
		event.SetSummary(fmt.Sprintf("%s: %s", course.Name, p.Name))

		description := fmt.Sprintf("Project %d", p.PK)
		if p.SoftClosingTime != nil {
			description += fmt.Sprintf("\nSoft deadline: %s", p.SoftClosingTime.Format("2006-01-02 15:04 MST"))
		}
		event.SetDescription(description)
		count++
	}

	if err := cal.SerializeTo(w); err != nil {
		return 0, fmt.Errorf("failed to write calendar: %w", err)
	}
	return count, nil
}
