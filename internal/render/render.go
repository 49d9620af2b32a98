// Package render turns decoded control API responses into terminal output.
// It is purely textual: the underlying response data is never modified.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"bravactl/internal/bravia"
)

// Truthy reports whether a decoded JSON value counts as non-empty for
// rendering purposes: nil, false, 0, "" and empty collections do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// Unwrap flattens a result whose single element is itself an array, so a
// list-returning operation prints one row per inner element. Anything else
// is returned unchanged, including a genuine single row that happens to be
// array-shaped.
func Unwrap(result []any) []any {
	if len(result) == 1 {
		if inner, ok := result[0].([]any); ok {
			return inner
		}
	}
	return result
}

// Flatten pretty-prints one result row with all braces stripped, and
// optionally the quotes as well. The transformation is cosmetic and applies
// to the JSON text, not the value.
func Flatten(row any, stripQuotes bool) (string, error) {
	text, err := json.MarshalIndent(row, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to render row: %w", err)
	}

	s := strings.ReplaceAll(string(text), "{", "")
	s = strings.ReplaceAll(s, "}", "")
	if stripQuotes {
		s = strings.ReplaceAll(s, `"`, "")
	}
	return s, nil
}

// FormatArgs renders the bound arguments of a failed call for the error line
func FormatArgs(args map[string]any) string {
	text, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("%v", args)
	}
	return string(text)
}

// FormatError builds the failure message for a device-reported error,
// including the version hints for unknown-method and unsupported-version
// codes. The Illegal Argument usage help is appended by the caller, which
// owns the command context.
func FormatError(devErr *bravia.DeviceError, args map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s\n", devErr.Message, FormatArgs(args))

	switch devErr.Code {
	case bravia.ErrNoSuchMethod:
		b.WriteString("No Such Method (Check version)\n")
	case bravia.ErrUnsupportedVersion:
		b.WriteString("Unsupported Version\n")
	}

	return b.String()
}

// Rows renders a successful result for the terminal. The empty string with
// ok=false means there is nothing to print, which is a valid outcome for
// set-style operations.
func Rows(result []any, stripQuotes bool) (string, bool, error) {
	if len(result) == 0 || !Truthy(result[0]) {
		return "", false, nil
	}

	var b strings.Builder
	for _, row := range Unwrap(result) {
		text, err := Flatten(row, stripQuotes)
		if err != nil {
			return "", false, err
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), true, nil
}
