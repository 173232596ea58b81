package github

import "strings"

// Credential is an optional username/token pair used for HTTP Basic
// authentication. The data this tool requests is public anyway; a
// credential only serves to lift the anonymous rate limit of 60 requests
// per hour.
type Credential struct {
	Username string
	Secret   string
}

// Empty reports whether the credential is unset, meaning anonymous requests.
func (c Credential) Empty() bool {
	return c.Username == "" && c.Secret == ""
}

// ParseCredential parses a colon-delimited "username:secret" value, as
// supplied via the GITHUB_AUTH environment variable. Only the first colon
// separates, so tokens containing colons stay intact. Values without a
// colon, or with an empty username, are treated as no credential.
func ParseCredential(value string) (cred Credential, ok bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return
	}

	cred = Credential{Username: parts[0], Secret: parts[1]}
	ok = true

	return
}
