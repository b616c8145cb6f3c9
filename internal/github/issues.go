package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// ListIssuesPage fetches one page of the repository's issues listing.
// Page 0 requests the first page. The listing includes pull requests; callers filter them.
func (c *Client) ListIssuesPage(ctx context.Context, state string, page int) (*IssuePage, error) {
	opts := &github.IssueListByRepoOptions{
		State: state,
		ListOptions: github.ListOptions{
			PerPage: c.perPage,
			Page:    page,
		},
	}

	slog.Debug("GitHub API: Listing issues", "owner", c.owner, "repo", c.repo, "state", state, "page", page)
	issues, resp, err := c.client.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", wrapError(err))
	}

	result := &IssuePage{
		Issues:   make([]Issue, 0, len(issues)),
		NextPage: resp.NextPage,
	}
	for _, issue := range issues {
		result.Issues = append(result.Issues, newIssue(issue))
	}

	return result, nil
}
