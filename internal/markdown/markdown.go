// Package markdown renders issues and their comments into the archived markdown layout.
package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/alan/issues-downloader/internal/github"
)

// issueTemplate arguments: number, title, url, state, author, created_at, closed_at, body, comments
const issueTemplate = `# #%[1]d %[2]s

* Issue url: %[3]s
* State: %[4]s
* Created at: %[5]s opened this issue at %[6]s
* Closed at: %[7]s

***
%[5]s commented at %[6]s
***
%[8]s

%[9]s
`

// commentTemplate arguments: user, created_at, url, body
const commentTemplate = `***
%[1]s commented at %[2]s
(%[3]s)
***

%[4]s

`

// notClosed is rendered in place of closed_at for open issues
const notClosed = "-"

// FormatIssue renders an issue header, its body and the given comments
func FormatIssue(issue github.Issue, comments []github.Comment) string {
	closedAt := notClosed
	if issue.ClosedAt != nil {
		closedAt = formatTime(*issue.ClosedAt)
	}

	return fmt.Sprintf(issueTemplate,
		issue.Number,
		issue.Title,
		issue.URL,
		issue.State,
		issue.Author,
		formatTime(issue.CreatedAt),
		closedAt,
		issue.Body,
		FormatComments(comments),
	)
}

// FormatComments renders comments in the order given
func FormatComments(comments []github.Comment) string {
	var sb strings.Builder
	for _, comment := range comments {
		sb.WriteString(FormatComment(comment))
	}
	return sb.String()
}

// FormatComment renders a single comment block
func FormatComment(comment github.Comment) string {
	return fmt.Sprintf(commentTemplate,
		comment.User,
		formatTime(comment.CreatedAt),
		comment.URL,
		comment.Body,
	)
}

// Filename returns "{number}_{title}.md" with the title trimmed and every "/" replaced by "-".
// No other characters are escaped.
func Filename(issue github.Issue) string {
	title := strings.ReplaceAll(strings.TrimSpace(issue.Title), "/", "-")
	return fmt.Sprintf("%d_%s.md", issue.Number, title)
}

// formatTime renders timestamps the way the GitHub API returns them
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
