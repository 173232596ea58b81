package cmd

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/sys/unix"

	"github.com/ghlatest/ghlatest/internal/github"
	"github.com/ghlatest/ghlatest/internal/utils"
)

// newGitHubClient builds the API client from the current configuration.
// The credential is read once here and passed into the client; nothing
// else touches the environment.
func newGitHubClient() (client *github.Client, err error) {
	baseURL, err := utils.RequireConfigString("APIBaseURL")
	if err != nil {
		return
	}

	credential, _ := github.ParseCredential(viper.GetString("GitHubAuth"))

	client, err = github.NewClient(baseURL, credential)
	return
}

func checkDownloadDir(dir string) (err error) {
	_, err = os.Stat(dir)
	if err != nil {
		err = fmt.Errorf(
			"download directory %s does not exist",
			wrapInQuotesIfContainsSpace(dir),
		)
		return
	}

	if unix.Access(dir, unix.W_OK) != nil {
		var currentUser *user.User
		currentUser, err = user.Current()
		if err != nil {
			return
		}
		err = fmt.Errorf(
			"%s is not writable by user %s",
			wrapInQuotesIfContainsSpace(dir), currentUser.Username,
		)
		return
	}

	return
}

func wrapInQuotesIfContainsSpace(s string) string {
	if strings.Contains(s, " ") {
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}
