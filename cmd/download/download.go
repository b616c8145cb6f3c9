// Package download implements the root command that archives a repository's issues as markdown.
package download

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alan/issues-downloader/cmd"
	"github.com/alan/issues-downloader/internal/archive"
	"github.com/alan/issues-downloader/internal/commands"
	"github.com/alan/issues-downloader/internal/contents"
	"github.com/alan/issues-downloader/internal/github"
	"github.com/alan/issues-downloader/internal/markdown"
	"github.com/spf13/cobra"
)

// DownloadCommand encapsulates the download command with common functionality
type DownloadCommand struct {
	commands.BaseCommand
	State        string
	WithContents bool
	IssuesDir    string
	ContentsDir  string
}

// issueSource is the part of the GitHub client the download loop needs
type issueSource interface {
	ListIssuesPage(ctx context.Context, state string, page int) (*github.IssuePage, error)
	ListIssueComments(ctx context.Context, issueNumber int) ([]github.Comment, error)
}

// contentDownloader saves content groups to disk
type contentDownloader interface {
	Download(ctx context.Context, groups []contents.ContentGroup) (contents.Result, error)
}

// options controls a single download run. A nil extractor disables content download.
type options struct {
	state      cmd.IssueState
	issuesDir  string
	extractor  *contents.Extractor
	downloader contentDownloader
}

// NewDownloadCmd creates and returns the download command
func NewDownloadCmd(globalConfigFile, envFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	downloadCmd := &DownloadCommand{}

	command := &cobra.Command{
		Use:   "issues-downloader <repo-owner> <repo-name>",
		Short: "Download GitHub issues and their comments as markdown files",
		Long: `Download every issue of a GitHub repository, together with its comments,
into one markdown file per issue. Pull requests are skipped.

With --with-contents, images and attachments referenced from issue and comment
bodies are downloaded as well. Files already on disk are not downloaded again.

Requires GITHUB_USER and GITHUB_PASSWORD, or GITHUB_TOKEN, in the environment
or in the env file.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			state, err := cmd.ParseIssueState(downloadCmd.State)
			if err != nil {
				return err
			}

			repoArgs, err := commands.ParseRepositoryArgs(args)
			if err != nil {
				return err
			}

			downloadCmd.ConfigFile = globalConfigFile
			downloadCmd.EnvFile = envFile
			downloadCmd.LoadConfig = loadConfig
			if err := downloadCmd.Init(cobraCmd.Context(), repoArgs.Owner, repoArgs.Repo); err != nil {
				return err
			}

			return downloadCmd.Run(cobraCmd.Context(), state)
		},
	}

	command.Flags().StringVarP(&downloadCmd.State, "state", "s", string(cmd.IssueStateOpen), "Issue state to download (open, closed, all)")
	command.Flags().BoolVarP(&downloadCmd.WithContents, "with-contents", "w", false, "Also download images and attachments")
	command.Flags().StringVar(&downloadCmd.IssuesDir, "issues-dir", "", "Directory for issue markdown files (overrides the config file)")
	command.Flags().StringVar(&downloadCmd.ContentsDir, "contents-dir", "", "Directory for downloaded contents (overrides the config file)")

	return command
}

// Run executes the download command
func (dc *DownloadCommand) Run(ctx context.Context, state cmd.IssueState) error {
	issuesDir := dc.Config.IssuesDir
	if dc.IssuesDir != "" {
		issuesDir = dc.IssuesDir
	}
	contentsDir := dc.Config.ContentsDir
	if dc.ContentsDir != "" {
		contentsDir = dc.ContentsDir
	}

	opts := options{
		state:     state,
		issuesDir: issuesDir,
	}
	if dc.WithContents {
		opts.extractor = contents.NewExtractor(dc.GitHubClient.Owner(), dc.GitHubClient.Repo())
		opts.downloader = contents.NewDownloader(dc.GitHubClient, contentsDir, dc.Config.ContentDelay)
	}

	slog.Info("Downloading issues",
		"owner", dc.GitHubClient.Owner(),
		"repo", dc.GitHubClient.Repo(),
		"state", state,
		"issues_dir", issuesDir,
		"with_contents", dc.WithContents)

	_, err := downloadIssues(ctx, dc.GitHubClient, opts)
	return err
}

// skipIssue reports whether an issue listing entry must not be archived
func skipIssue(issue github.Issue) bool {
	return issue.IsPullRequest
}

// downloadIssues pages through the issue listing, writing each page before requesting the next.
// It returns the number of issues written.
func downloadIssues(ctx context.Context, source issueSource, opts options) (int, error) {
	var (
		total        int
		pages        int
		contentTotal contents.Result
	)

	page := 0
	for {
		issuePage, err := source.ListIssuesPage(ctx, string(opts.state), page)
		if err != nil {
			return total, err
		}
		pages++

		files, groups, err := serializePage(ctx, source, issuePage.Issues, opts.extractor)
		if err != nil {
			return total, err
		}

		if err := archive.WriteFiles(opts.issuesDir, files); err != nil {
			return total, err
		}
		total += len(files)

		if opts.downloader != nil && len(groups) > 0 {
			result, err := opts.downloader.Download(ctx, groups)
			contentTotal.Add(result)
			if err != nil {
				return total, err
			}
		}

		slog.Info("Downloaded issues", "page", pages, "total", total)

		if issuePage.NextPage == 0 {
			break
		}
		page = issuePage.NextPage
	}

	slog.Info("Download complete",
		"issues", total,
		"pages", pages,
		"contents_downloaded", contentTotal.Downloaded,
		"contents_skipped", contentTotal.Skipped,
		"contents_failed", contentTotal.Failed)

	return total, nil
}

// serializePage renders every non-pull-request issue of a page and collects its content groups
func serializePage(ctx context.Context, source issueSource, issues []github.Issue, extractor *contents.Extractor) (map[string]string, []contents.ContentGroup, error) {
	files := make(map[string]string, len(issues))
	var groups []contents.ContentGroup

	for _, issue := range issues {
		if skipIssue(issue) {
			slog.Debug("Skipping pull request", "number", issue.Number)
			continue
		}

		comments, err := source.ListIssueComments(ctx, issue.Number)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to serialize issue #%d: %w", issue.Number, err)
		}

		files[markdown.Filename(issue)] = markdown.FormatIssue(issue, comments)

		if extractor != nil {
			groups = append(groups, extractor.Groups(issue, comments)...)
		}
	}

	return files, groups, nil
}
