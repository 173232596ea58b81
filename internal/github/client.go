// Package github resolves the latest release of a repository via the
// GitHub REST v3 API.
package github

import (
	"io/ioutil"
	"net/http"
	"net/url"
)

// acceptHeader pins the API to the v3 media type.
// See https://developer.github.com/v3/
const acceptHeader = "application/vnd.github.v3+json"

// Client performs requests against the GitHub REST API.
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	Credential Credential
}

// NewClient returns a client for the API at baseURL. The credential may be
// the zero value, in which case all requests are anonymous.
func NewClient(baseURL string, credential Credential) (*Client, error) {
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		BaseURL:    parsedBaseURL,
		HTTPClient: http.DefaultClient,
		Credential: credential,
	}, nil
}

// get performs a single API GET and reads the whole response body.
//
// A transport error or a non-2xx status yields found == false. Callers
// treat "request failed" and "resource absent" identically and fall back
// to their next strategy, so the two are deliberately not distinguished.
func (c *Client) get(rawURL string) (found bool, body []byte, nextPage string) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return
	}
	req.Header.Set("Accept", acceptHeader)
	if !c.Credential.Empty() {
		req.SetBasicAuth(c.Credential.Username, c.Credential.Secret)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return
	}

	body, err = ioutil.ReadAll(resp.Body)
	if err != nil {
		body = nil
		return
	}

	found = true
	nextPage = nextPageURL(resp.Header.Get("Link"))

	return
}

// endpoint resolves an API path against the base URL.
func (c *Client) endpoint(path string) string {
	return c.BaseURL.ResolveReference(&url.URL{Path: path}).String()
}
