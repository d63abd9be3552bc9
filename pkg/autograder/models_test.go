package autograder

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseSummary(t *testing.T) {
	tests := []struct {
		course Course
		want   string
	}{
		{Course{PK: 109, Name: "EECS 485", Semester: "Spring", Year: 2021}, "[109] EECS 485 Spring 2021"},
		{Course{PK: 21, Name: "EECS 280 Diagnostic"}, "[21] EECS 280 Diagnostic"},
		{Course{PK: 7, Name: "EECS 441", Year: 2020}, "[7] EECS 441 2020"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.course.Summary())
	}
}

func TestGroupSummary(t *testing.T) {
	g := Group{
		PK: 243636,
		Members: []Member{
			{Username: "achitta@umich.edu"},
			{Username: "guest@example.com"},
		},
	}
	assert.Equal(t, "[243636] achitta, guest@example.com", g.Summary())
}

func TestSubmissionSummary_KeepsOffset(t *testing.T) {
	loc := time.FixedZone("EDT", -4*60*60)
	s := Submission{PK: 1128572, Timestamp: time.Date(2021, 6, 29, 21, 5, 9, 0, loc)}
	assert.Equal(t, "[1128572] 2021-06-29 21:05:09", s.Summary())
}

func TestProjectDecode_OptionalTimes(t *testing.T) {
	var p Project
	err := json.Unmarshal([]byte(`{"pk": 1005, "name": "Project 1 - Templated Static Site Generator", "course": 109, "closing_time": "2021-05-12T04:30:00Z", "soft_closing_time": null}`), &p)
	require.NoError(t, err)

	require.NotNil(t, p.ClosingTime)
	assert.Equal(t, time.Date(2021, 5, 12, 4, 30, 0, 0, time.UTC), p.ClosingTime.UTC())
	assert.Nil(t, p.SoftClosingTime)
	assert.Equal(t, "[1005] Project 1 - Templated Static Site Generator", p.Summary())
}

func TestSubmissionDecode_BadTimestamp(t *testing.T) {
	var s Submission
	err := json.Unmarshal([]byte(`{"pk": 3, "group": 1, "timestamp": "yesterday"}`), &s)
	assert.Error(t, err)
}

func TestMarshal_PrefersRawRecord(t *testing.T) {
	raw := `{"pk":109,"name":"EECS 485","semester":"Spring","year":2021,"num_late_days":0}`
	var c Course
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))

	out, err = json.Marshal(Course{PK: 21, Name: "EECS 280 Diagnostic"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pk":21,"name":"EECS 280 Diagnostic","semester":null,"year":null,"subtitle":""}`, string(out))
}
