// Package contents finds images and attachments referenced from issue bodies and downloads them.
package contents

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/alan/issues-downloader/internal/github"
)

// linkTitle matches the optional "title" of a markdown link
const linkTitle = `(?:\s+"[^"]*")?`

// imagePattern matches ![alt](https://user-images.githubusercontent.com/... "title")
var imagePattern = regexp.MustCompile(`!\[[^\]]*\]\((https://user-images\.githubusercontent\.com/[^\s)]+)` + linkTitle + `\)`)

// ContentGroup is the set of content URLs found in one issue body or one comment body
type ContentGroup struct {
	// Key is "{issue_number}" for the issue body and "{issue_number}_{comment_id}" for a comment
	Key  string
	URLs []string
}

// Extractor finds content URLs for a single repository
type Extractor struct {
	attachmentPattern *regexp.Regexp
}

// NewExtractor builds the attachment pattern for owner/repo.
// Both names are escaped so metacharacters match literally, and compared case-insensitively like GitHub does.
func NewExtractor(owner, repo string) *Extractor {
	pattern := fmt.Sprintf(`\[[^\]]*\]\((https://github\.com/(?i:%s/%s)/files/[^\s)]+)%s\)`,
		regexp.QuoteMeta(owner), regexp.QuoteMeta(repo), linkTitle)

	return &Extractor{
		attachmentPattern: regexp.MustCompile(pattern),
	}
}

// Extract returns image URLs in order of appearance followed by attachment URLs in order of appearance
func (e *Extractor) Extract(body string) []string {
	urls := []string{}
	for _, match := range imagePattern.FindAllStringSubmatch(body, -1) {
		urls = append(urls, match[1])
	}
	for _, match := range e.attachmentPattern.FindAllStringSubmatch(body, -1) {
		urls = append(urls, match[1])
	}
	return urls
}

// Groups collects the content of an issue and its comments; groups without URLs are omitted
func (e *Extractor) Groups(issue github.Issue, comments []github.Comment) []ContentGroup {
	var groups []ContentGroup

	issueKey := strconv.Itoa(issue.Number)
	if urls := e.Extract(issue.Body); len(urls) > 0 {
		groups = append(groups, ContentGroup{Key: issueKey, URLs: urls})
	}

	for _, comment := range comments {
		if urls := e.Extract(comment.Body); len(urls) > 0 {
			groups = append(groups, ContentGroup{
				Key:  fmt.Sprintf("%s_%d", issueKey, comment.ID),
				URLs: urls,
			})
		}
	}

	return groups
}
