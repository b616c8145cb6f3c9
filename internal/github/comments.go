package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// ListIssueComments retrieves all comments for a specific issue in the order GitHub returns them
func (c *Client) ListIssueComments(ctx context.Context, issueNumber int) ([]Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{
			PerPage: c.perPage,
		},
	}

	allComments := []Comment{}
	for {
		slog.Debug("GitHub API: Listing issue comments", "owner", c.owner, "repo", c.repo, "issue", issueNumber, "page", opts.Page)
		comments, resp, err := c.client.Issues.ListComments(ctx, c.owner, c.repo, issueNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for issue #%d: %w", issueNumber, wrapError(err))
		}

		for _, comment := range comments {
			allComments = append(allComments, newComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allComments, nil
}
