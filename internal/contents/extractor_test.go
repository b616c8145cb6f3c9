package contents

import (
	"testing"

	"github.com/alan/issues-downloader/internal/github"
	"github.com/stretchr/testify/assert"
)

const (
	imageURL1      = "https://user-images.githubusercontent.com/1/screen-1.png"
	imageURL2      = "https://user-images.githubusercontent.com/1/screen-2.gif"
	attachmentURL1 = "https://github.com/octo/demo/files/100/crash.log"
	attachmentURL2 = "https://github.com/octo/demo/files/101/trace.zip"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor("octo", "demo")

	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "no links",
			body:     "Nothing to see here.",
			expected: []string{},
		},
		{
			name:     "empty body",
			body:     "",
			expected: []string{},
		},
		{
			name:     "images before attachments",
			body:     "see [log](" + attachmentURL1 + ") and ![shot](" + imageURL1 + ")",
			expected: []string{imageURL1, attachmentURL1},
		},
		{
			name: "order of appearance is kept within each kind",
			body: "![b](" + imageURL2 + ")\n[t](" + attachmentURL2 + ")\n![a](" + imageURL1 + ")\n[c](" + attachmentURL1 + ")",
			expected: []string{
				imageURL2, imageURL1,
				attachmentURL2, attachmentURL1,
			},
		},
		{
			name:     "image url outside markdown image syntax is ignored",
			body:     "raw link " + imageURL1 + " and [not an image](" + imageURL2 + ")",
			expected: []string{},
		},
		{
			name:     "attachments of other repositories are ignored",
			body:     "[log](https://github.com/other/demo/files/1/a.log) [log](https://github.com/octo/demo2/files/1/a.log)",
			expected: []string{},
		},
		{
			name:     "links with a title",
			body:     `![shot](` + imageURL1 + ` "screen") and [log](` + attachmentURL1 + ` "crash log")`,
			expected: []string{imageURL1, attachmentURL1},
		},
		{
			name:     "non-github images are ignored",
			body:     "![x](https://example.com/a.png)",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.Extract(tt.body))
		})
	}
}

func TestExtractor_EscapesRepositoryName(t *testing.T) {
	extractor := NewExtractor("my.org", "repo+js")

	body := "[a](https://github.com/my.org/repo+js/files/1/a.txt) [b](https://github.com/myXorg/repooojs/files/2/b.txt)"

	assert.Equal(t, []string{"https://github.com/my.org/repo+js/files/1/a.txt"}, extractor.Extract(body))
}

func TestExtractor_OwnerAndRepoIgnoreCase(t *testing.T) {
	extractor := NewExtractor("Octo", "Demo")

	body := "[a](" + attachmentURL1 + ") [b](https://github.com/OCTO/DEMO/files/2/b.txt)"

	assert.Equal(t, []string{attachmentURL1, "https://github.com/OCTO/DEMO/files/2/b.txt"}, extractor.Extract(body))
}

func TestExtractor_Groups(t *testing.T) {
	extractor := NewExtractor("octo", "demo")

	issue := github.Issue{Number: 5, Body: "![shot](" + imageURL1 + ")"}
	comments := []github.Comment{
		{ID: 10, Body: "no content"},
		{ID: 11, Body: "[log](" + attachmentURL1 + ")"},
	}

	groups := extractor.Groups(issue, comments)

	assert.Equal(t, []ContentGroup{
		{Key: "5", URLs: []string{imageURL1}},
		{Key: "5_11", URLs: []string{attachmentURL1}},
	}, groups)
}

func TestExtractor_GroupsEmpty(t *testing.T) {
	extractor := NewExtractor("octo", "demo")

	groups := extractor.Groups(github.Issue{Number: 7, Body: "plain"}, nil)

	assert.Empty(t, groups)
}
