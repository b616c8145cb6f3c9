package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/alan/issues-downloader/internal/github"
	"github.com/stretchr/testify/assert"
)

func testIssue() github.Issue {
	return github.Issue{
		Number:    5,
		Title:     "Bug/Crash",
		URL:       "https://github.com/octo/demo/issues/5",
		State:     "open",
		Author:    "alice",
		Body:      "It crashes on start.",
		CreatedAt: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestFormatIssue(t *testing.T) {
	t.Run("open issue without comments", func(t *testing.T) {
		got := FormatIssue(testIssue(), nil)

		expected := `# #5 Bug/Crash

* Issue url: https://github.com/octo/demo/issues/5
* State: open
* Created at: alice opened this issue at 2020-01-02T03:04:05Z
* Closed at: -

***
alice commented at 2020-01-02T03:04:05Z
***
It crashes on start.


`
		assert.Equal(t, expected, got)
	})

	t.Run("closed issue renders closed_at", func(t *testing.T) {
		issue := testIssue()
		closedAt := time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC)
		issue.ClosedAt = &closedAt
		issue.State = "closed"

		got := FormatIssue(issue, nil)

		assert.Contains(t, got, "* State: closed\n")
		assert.Contains(t, got, "* Closed at: 2020-03-04T05:06:07Z\n")
	})

	t.Run("non-UTC timestamps are normalised", func(t *testing.T) {
		issue := testIssue()
		issue.CreatedAt = time.Date(2020, 1, 2, 12, 4, 5, 0, time.FixedZone("JST", 9*60*60))

		got := FormatIssue(issue, nil)

		assert.Contains(t, got, "opened this issue at 2020-01-02T03:04:05Z")
	})

	t.Run("comments follow the issue body in order", func(t *testing.T) {
		comments := []github.Comment{
			{ID: 1, User: "bob", Body: "first reply", URL: "https://github.com/octo/demo/issues/5#issuecomment-1", CreatedAt: time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)},
			{ID: 2, User: "carol", Body: "second reply", URL: "https://github.com/octo/demo/issues/5#issuecomment-2", CreatedAt: time.Date(2020, 1, 4, 0, 0, 0, 0, time.UTC)},
		}

		got := FormatIssue(testIssue(), comments)

		assert.Equal(t, 3, strings.Count(got, " commented at "), "issue body plus one block per comment")
		first := strings.Index(got, "first reply")
		second := strings.Index(got, "second reply")
		assert.Greater(t, first, strings.Index(got, "It crashes on start."))
		assert.Greater(t, second, first)
		assert.Contains(t, got, "(https://github.com/octo/demo/issues/5#issuecomment-2)")
	})

	t.Run("percent signs in text are kept verbatim", func(t *testing.T) {
		issue := testIssue()
		issue.Title = "100% CPU"
		issue.Body = "load is %d%%"

		got := FormatIssue(issue, nil)

		assert.True(t, strings.HasPrefix(got, "# #5 100% CPU\n"))
		assert.Contains(t, got, "load is %d%%")
	})
}

func TestFormatComment(t *testing.T) {
	comment := github.Comment{
		ID:        42,
		User:      "bob",
		Body:      "Same here.",
		URL:       "https://github.com/octo/demo/issues/5#issuecomment-42",
		CreatedAt: time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	expected := `***
bob commented at 2020-01-03T00:00:00Z
(https://github.com/octo/demo/issues/5#issuecomment-42)
***

Same here.

`
	assert.Equal(t, expected, FormatComment(comment))
}

func TestFormatComments(t *testing.T) {
	assert.Empty(t, FormatComments(nil))

	comments := make([]github.Comment, 4)
	for i := range comments {
		comments[i] = github.Comment{User: "user", Body: "body"}
	}
	assert.Equal(t, 4, strings.Count(FormatComments(comments), "user commented at"))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		number   int
		title    string
		expected string
	}{
		{name: "plain title", number: 7, title: "Feature", expected: "7_Feature.md"},
		{name: "slash replaced", number: 5, title: "Bug/Crash", expected: "5_Bug-Crash.md"},
		{name: "every slash replaced", number: 9, title: "a/b/c", expected: "9_a-b-c.md"},
		{name: "title trimmed", number: 3, title: "  padded title \n", expected: "3_padded title.md"},
		{name: "other characters untouched", number: 4, title: `what? *really*: "yes"`, expected: `4_what? *really*: "yes".md`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := github.Issue{Number: tt.number, Title: tt.title}
			assert.Equal(t, tt.expected, Filename(issue))
			assert.Equal(t, Filename(issue), Filename(issue), "filename must be deterministic")
		})
	}
}
