// Package cmd defines core data structures for issues-downloader settings and issue filtering.
package cmd

import (
	"fmt"
	"time"
)

// IssueState represents the state filter passed to the issues endpoint
type IssueState string

const (
	// IssueStateOpen selects open issues only
	IssueStateOpen IssueState = "open"
	// IssueStateClosed selects closed issues only
	IssueStateClosed IssueState = "closed"
	// IssueStateAll selects issues in any state
	IssueStateAll IssueState = "all"
)

// ParseIssueState converts a string to IssueState, rejecting unknown values
func ParseIssueState(s string) (IssueState, error) {
	switch s {
	case "open":
		return IssueStateOpen, nil
	case "closed":
		return IssueStateClosed, nil
	case "all":
		return IssueStateAll, nil
	default:
		return "", fmt.Errorf("invalid state %q (must be open, closed or all)", s)
	}
}

const (
	// DefaultIssuesDir is where markdown files are written when no setting is given
	DefaultIssuesDir = "issues"
	// DefaultContentsDir is where images and attachments are written when no setting is given
	DefaultContentsDir = "contents"
	// DefaultContentDelay keeps content downloads below GitHub's abuse detection threshold
	DefaultContentDelay = time.Second
	// DefaultPerPage is the page size requested from list endpoints
	DefaultPerPage = 100
)

// Config represents the structure of issues-downloader.yaml
type Config struct {
	IssuesDir    string        `yaml:"issues_dir"`
	ContentsDir  string        `yaml:"contents_dir"`
	ContentDelay time.Duration `yaml:"content_delay"`
	APIURL       string        `yaml:"api_url,omitempty"` // GitHub Enterprise API base URL
	PerPage      int           `yaml:"per_page"`
}

// DefaultConfig returns the settings used when no configuration file exists
func DefaultConfig() *Config {
	return &Config{
		IssuesDir:    DefaultIssuesDir,
		ContentsDir:  DefaultContentsDir,
		ContentDelay: DefaultContentDelay,
		PerPage:      DefaultPerPage,
	}
}
