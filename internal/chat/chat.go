// Package chat implements StudyBot, a static keyword-matching study
// helper. There is no AI behind it.
package chat

import "strings"

const (
	assignmentReply = "Make a checklist, break the task into 25-minute pomodoro sessions, and set small milestones."
	budgetReply     = "Track all incomes and expenses for 2 weeks to find savings opportunities. Use categories."
	defaultReply    = "Good question! Try splitting it into smaller parts — what specifically would you like help with?"
)

// Reply returns StudyBot's canned answer for a question. Matching is
// case-insensitive on a few keywords; anything else gets the generic
// nudge.
func Reply(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "assignment") || strings.Contains(q, "due"):
		return assignmentReply
	case strings.Contains(q, "budget") || strings.Contains(q, "money"):
		return budgetReply
	default:
		return defaultReply
	}
}
