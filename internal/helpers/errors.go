package helpers

import "strings"

// DefaultErrorMessage is shown when an error carries no usable text.
const DefaultErrorMessage = "Something went wrong. Please try again."

// ErrorMessage extracts a message suitable for an alert. A nil error or one
// with blank text yields fallback, or DefaultErrorMessage if fallback is empty.
func ErrorMessage(err error, fallback string) string {
	if fallback == "" {
		fallback = DefaultErrorMessage
	}
	if err == nil {
		return fallback
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
