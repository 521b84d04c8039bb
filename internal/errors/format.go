package errors

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"
)

// asGstanzl returns the GstanzlError in err's chain, wrapping plain errors
// as internal errors.
func asGstanzl(err error) *GstanzlError {
	var ge *GstanzlError
	if stderrors.As(err, &ge) {
		return ge
	}
	return Wrap(ErrCodeInternal, err)
}

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	ge := asGstanzl(err)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", ge.Message))

	if ge.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", ge.Suggestion))
	}

	sb.WriteString(fmt.Sprintf("  Code: %s\n", ge.Code))

	return sb.String()
}

// FormatForLog formats an error for structured logging.
// Returns key-value pairs suitable for slog attributes.
func FormatForLog(err error) map[string]any {
	if err == nil {
		return nil
	}

	var ge *GstanzlError
	if !stderrors.As(err, &ge) {
		return map[string]any{
			"error": err.Error(),
		}
	}

	result := map[string]any{
		"error_code": ge.Code,
		"message":    ge.Message,
		"category":   string(ge.Category),
		"severity":   string(ge.Severity),
	}

	if ge.Cause != nil {
		result["cause"] = ge.Cause.Error()
	}

	if ge.Suggestion != "" {
		result["suggestion"] = ge.Suggestion
	}

	for k, v := range ge.Details {
		result["detail_"+k] = v
	}

	return result
}

// LogAttrs flattens FormatForLog into alternating key/value arguments for
// slog's variadic logging calls, with keys in stable order.
func LogAttrs(err error) []any {
	fields := FormatForLog(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
