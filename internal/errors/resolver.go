package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
)

// FallbackMessage is shown when a failure carries no usable message.
const FallbackMessage = "An error occurred"

// Resolve converts any error into the string displayed to the user. A
// not-found error carrying nearby candidates is composed into a single
// suggestion message; anything else degrades to its message or the
// generic fallback. Resolve never panics.
func Resolve(err error) string {
	if err == nil {
		return FallbackMessage
	}

	var appErr *AppError
	if !goerrors.As(err, &appErr) {
		if msg := err.Error(); msg != "" {
			return msg
		}
		return FallbackMessage
	}

	msg := appErr.Message
	if msg == "" {
		msg = FallbackMessage
	}

	if len(appErr.NearbyZips) == 0 {
		return msg
	}

	suggestions := make([]string, 0, len(appErr.NearbyZips))
	for _, zip := range appErr.NearbyZips {
		suggestions = append(suggestions, fmt.Sprintf("%s (%s, %s)", zip.ZipCode, zip.City, zip.State))
	}
	return fmt.Sprintf("%s. However, we found data for these nearby ZIP codes: %s", msg, strings.Join(suggestions, ", "))
}
