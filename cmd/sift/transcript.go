package main

import (
	"fmt"
	"strconv"
)

// Run executes the transcript command.
func (c *TranscriptCmd) Run(deps *Dependencies) error {
	segments, err := deps.Transcripts.FetchTranscript(deps.Ctx, c.VideoID, c.Languages)
	if err != nil {
		return fail(deps, err)
	}

	if !c.Lines {
		return writeJSON(deps.Stdout, segments)
	}
	for _, s := range segments {
		fmt.Fprintf(deps.Stdout, "%s:%s:%s\n", formatSeconds(s.Start), formatSeconds(s.Duration), s.Text)
	}
	return nil
}

// formatSeconds prints whole seconds with a trailing ".0".
func formatSeconds(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == float64(int64(f)) {
		s += ".0"
	}
	return s
}
