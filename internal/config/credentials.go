package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingCredentials is returned when neither a token nor a user/password pair is configured
var ErrMissingCredentials = errors.New("GITHUB_TOKEN or GITHUB_USER and GITHUB_PASSWORD environment variables are required")

// Credentials holds GitHub authentication read from the environment
type Credentials struct {
	User     string
	Password string
	Token    string
}

// UseToken reports whether token authentication takes precedence over basic auth
func (c Credentials) UseToken() bool {
	return c.Token != ""
}

// LoadCredentials reads credentials from the environment after loading envFile.
// A missing env file is ignored and variables already set in the process environment win.
func LoadCredentials(envFile string) (Credentials, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	creds := Credentials{
		User:     os.Getenv("GITHUB_USER"),
		Password: os.Getenv("GITHUB_PASSWORD"),
		Token:    os.Getenv("GITHUB_TOKEN"),
	}

	if !creds.UseToken() && (creds.User == "" || creds.Password == "") {
		return Credentials{}, ErrMissingCredentials
	}

	return creds, nil
}
