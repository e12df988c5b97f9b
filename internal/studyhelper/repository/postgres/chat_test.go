package postgres

import (
	"strings"
	"testing"
)

func TestListTurnsQuery(t *testing.T) {
	t.Run("Thread Filter Applied When ID Present", func(t *testing.T) {
		query, args := listTurnsQuery("user-1", "assignment-1")
		if !strings.Contains(query, "COALESCE(assignment_id, '') = $2") {
			t.Errorf("expected thread predicate in query, got:\n%s", query)
		}
		if len(args) != 2 || args[0] != "user-1" || args[1] != "assignment-1" {
			t.Errorf("args = %v, want [user-1 assignment-1]", args)
		}
	})

	t.Run("Omitted ID Spans All Threads", func(t *testing.T) {
		query, args := listTurnsQuery("user-1", "")
		if strings.Contains(query, "assignment_id, '') = $2") {
			t.Errorf("expected no thread predicate in query, got:\n%s", query)
		}
		if len(args) != 1 || args[0] != "user-1" {
			t.Errorf("args = %v, want [user-1]", args)
		}
	})

	t.Run("Both Shapes Order Oldest First", func(t *testing.T) {
		for _, id := range []string{"", "assignment-1"} {
			query, _ := listTurnsQuery("user-1", id)
			if !strings.Contains(query, "ORDER BY created_at ASC, seq ASC") {
				t.Errorf("assignmentID %q: expected ascending order, got:\n%s", id, query)
			}
		}
	})
}
