// Package core wires the feed pipeline to its collaborators: profile
// lookup, spreadsheet source, xlsx encoding and history recording.
//
// # Error Codes Reference
//
// Fatal errors surface to users with a stable code they can quote to
// support. Codes are grouped by origin:
//
//	PRF001 - Unknown profile: the selected profile no longer exists
//	SRC001 - Missing tab: the Bulk tab was not found in the sheet
//	SRC002 - Source unreachable: the Google sheet could not be read
//	GEN001 - Empty dataset: no row has Create=TRUE
//	DB001  - Database unavailable
//	ERR000 - Fallback for unrecognized errors
//
// Validation findings are not errors: they ride alongside a successful
// result as a feed.Issue list and never carry a code.
package core

import (
	"fmt"
	"strings"
)

// UserMessage is a user-friendly rendering of a technical error.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Stable code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

// Ordered: first match wins, so more specific patterns come first.
var errorPatterns = []errorPattern{
	{"profile not found", UserMessage{
		Message: "The selected profile does not exist",
		Action:  "Refresh the profile list and pick another profile",
		Code:    "PRF001",
	}},
	{"tab not found", UserMessage{
		Message: "The spreadsheet is missing a required tab",
		Action:  "Check that the sheet has a Bulk tab",
		Code:    "SRC001",
	}},
	{"read sheet", UserMessage{
		Message: "The source spreadsheet could not be read",
		Action:  "Verify the sheet id and that the sheet is link-shared",
		Code:    "SRC002",
	}},
	{"no rows flagged", UserMessage{
		Message: "No row in the Bulk tab has Create set to TRUE",
		Action:  "Flag at least one row with Create=TRUE and regenerate",
		Code:    "GEN001",
	}},
	{"connection refused", UserMessage{
		Message: "The database is unavailable",
		Action:  "Please try again in a few moments",
		Code:    "DB001",
	}},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again; contact support if it persists",
	Code:    "ERR000",
}

// MapError maps a technical error onto its user-facing message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders an error as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
