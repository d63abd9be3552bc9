package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"agioctl/pkg/match"
)

// printDetail writes v as JSON indented by four spaces. Records keep the
// fields the server sent.
func printDetail(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to render record: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printSummaries[T match.Summarizer](w io.Writer, items []T) {
	for _, line := range match.Summaries(items) {
		fmt.Fprintln(w, line)
	}
}
