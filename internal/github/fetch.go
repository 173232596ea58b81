package github

import (
	"encoding/json"
	"strings"
)

// FetchAllPages retrieves every page of a collection endpoint, following
// the Link header's rel="next" URL until the server stops providing one.
// Items are returned in server order, first page first.
//
// found is false when the first request fails. A failure on any later page
// also yields found == false with no items: a truncated list must never be
// presented as the complete collection.
func (c *Client) FetchAllPages(rawURL string) (found bool, items []json.RawMessage) {
	for rawURL != "" {
		ok, body, nextPage := c.get(rawURL)
		if !ok {
			return false, nil
		}

		var page []json.RawMessage
		if err := json.Unmarshal(body, &page); err != nil {
			return false, nil
		}

		items = append(items, page...)
		rawURL = nextPage
	}

	found = true

	return
}

// nextPageURL extracts the rel="next" target from a Link header, e.g.:
//
//	<https://api.github.com/...?page=2>; rel="next", <https://api.github.com/...?page=4>; rel="last"
//
// It returns "" when the header carries no next relation.
func nextPageURL(linkHeader string) string {
	for _, link := range strings.Split(linkHeader, ",") {
		sections := strings.Split(link, ";")
		if len(sections) < 2 {
			continue
		}

		target := strings.Trim(strings.TrimSpace(sections[0]), "<>")
		for _, param := range sections[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return target
			}
		}
	}

	return ""
}
