package commands

import (
	"fmt"
	"strings"
)

// RepositoryArgs holds the parsed <repo-owner> <repo-name> arguments
type RepositoryArgs struct {
	Owner string
	Repo  string
}

// ParseRepositoryArgs parses the owner and repository name arguments
func ParseRepositoryArgs(args []string) (*RepositoryArgs, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected <repo-owner> <repo-name>, got %d argument(s)", len(args))
	}

	owner, err := validateName("repository owner", args[0])
	if err != nil {
		return nil, err
	}
	repo, err := validateName("repository name", args[1])
	if err != nil {
		return nil, err
	}

	return &RepositoryArgs{
		Owner: owner,
		Repo:  repo,
	}, nil
}

// validateName rejects names that cannot form a single URL path segment
func validateName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%s must not be empty", kind)
	}
	if strings.ContainsAny(name, "/ \t?#") {
		return "", fmt.Errorf("invalid %s %q", kind, name)
	}
	return name, nil
}
