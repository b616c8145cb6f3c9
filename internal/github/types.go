package github

import (
	"time"

	"github.com/google/go-github/v57/github"
)

// Issue represents a repository issue (or pull request) from the issues endpoint
type Issue struct {
	Number        int
	Title         string
	URL           string
	State         string
	Author        string
	Body          string
	CommentsURL   string // kept for the record; comments are fetched by issue number
	CreatedAt     time.Time
	ClosedAt      *time.Time // nil while the issue is open
	IsPullRequest bool
}

// Comment represents a comment on an issue
type Comment struct {
	ID        int64
	IssueURL  string // back-reference to the parent issue, kept for the record
	User      string
	Body      string
	URL       string
	CreatedAt time.Time
}

// IssuePage is one page of the issues listing
type IssuePage struct {
	Issues []Issue
	// NextPage is the page number from the Link header's rel="next", or 0 on the last page
	NextPage int
}

func newIssue(issue *github.Issue) Issue {
	converted := Issue{
		Number:        issue.GetNumber(),
		Title:         issue.GetTitle(),
		URL:           issue.GetHTMLURL(),
		State:         issue.GetState(),
		Author:        issue.GetUser().GetLogin(),
		Body:          issue.GetBody(),
		CommentsURL:   issue.GetCommentsURL(),
		CreatedAt:     issue.GetCreatedAt().Time,
		IsPullRequest: issue.IsPullRequest(),
	}
	if issue.ClosedAt != nil {
		closedAt := issue.ClosedAt.Time
		converted.ClosedAt = &closedAt
	}
	return converted
}

func newComment(comment *github.IssueComment) Comment {
	return Comment{
		ID:        comment.GetID(),
		IssueURL:  comment.GetIssueURL(),
		User:      comment.GetUser().GetLogin(),
		Body:      comment.GetBody(),
		URL:       comment.GetHTMLURL(),
		CreatedAt: comment.GetCreatedAt().Time,
	}
}
