// Package iojson reads and writes JSON on the command line: decoding a
// payload from a file flag or piped stdin, and printing results as indented
// JSON envelopes.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/scopepad/pkg/result"
)

func jsonError(msg string, jsonErr error) string {
	// Use json.Marshal to properly escape strings
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"error":%s,"json_error":%s}`, msgBytes, errBytes)
}

// WriteWith marshals obj as indented JSON to w. A marshal failure writes a
// fallback error blob to ew instead; such a failure indicates a bug.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		errStr := jsonError("error marshaling in iojson.WriteWith", err)
		_, err = fmt.Fprintln(ew, errStr)
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr].
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}

// WriteLine marshals obj as a single compact JSON line to w.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal json line: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteResult prints a result envelope to stdout and returns its failure as
// an error so CLI handlers exit non-zero on failed operations.
func WriteResult[T any](res result.Result[T]) error {
	if err := Write(res); err != nil {
		return err
	}
	return res.Err()
}
