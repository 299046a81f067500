package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/sift"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fail reports err on stderr in the form shown to users and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", sift.ErrorMessage(err))
	return err
}
