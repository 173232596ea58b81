package github

import (
	"encoding/json"
	"fmt"
)

// releaseResponse models the fields of the releases/latest payload that
// ghlatest consumes.
type releaseResponse struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	TarballURL  string `json:"tarball_url"`
	HTMLURL     string `json:"html_url"`
	PublishedAt string `json:"published_at"`
}

// Release is the resolved latest release of a repository.
//
// It comes in two shapes: a full release, backed by the GitHub release
// resource, and a tag-derived stand-in, synthesized when a repository only
// publishes tags. Both carry a tag name; only a full release carries a
// tarball URL, reachable through the TarballURL accessor.
type Release struct {
	TagName     string
	Name        string
	HTMLURL     string
	PublishedAt string

	tarballURL string
	tagDerived bool
}

// TarballURL returns the source tarball download URL of the release.
// ok is false for tag-derived releases, which have no release resource to
// point into.
func (r Release) TarballURL() (url string, ok bool) {
	return r.tarballURL, !r.tagDerived && r.tarballURL != ""
}

// TagDerived reports whether the release was synthesized from a tag.
func (r Release) TagDerived() bool {
	return r.tagDerived
}

// LatestRelease resolves the latest release of org/repo.
//
// A formal GitHub release is looked up first. Releases are an optional,
// separately curated annotation and many repositories only ever publish
// tags, so when no release exists the tags are enumerated instead and the
// highest version-like tag stands in; the resulting release carries no
// tarball URL. NotFoundError is returned when both strategies come up
// empty.
func (c *Client) LatestRelease(org, repo string) (Release, error) {
	found, body, _ := c.get(c.endpoint(fmt.Sprintf("/repos/%s/%s/releases/latest", org, repo)))
	if found {
		var resp releaseResponse
		if err := json.Unmarshal(body, &resp); err == nil {
			return Release{
				TagName:     resp.TagName,
				Name:        resp.Name,
				HTMLURL:     resp.HTMLURL,
				PublishedAt: resp.PublishedAt,
				tarballURL:  resp.TarballURL,
			}, nil
		}
	}

	return c.latestTagRelease(org, repo)
}

// latestTagRelease is the fallback strategy: enumerate all tags and
// synthesize a release from the latest version-like one.
func (c *Client) latestTagRelease(org, repo string) (Release, error) {
	found, items := c.FetchAllPages(c.endpoint(fmt.Sprintf("/repos/%s/%s/tags", org, repo)))
	if !found {
		return Release{}, fmt.Errorf("release of %s/%s %w", org, repo, NotFoundError{})
	}

	tags := make([]Tag, 0, len(items))
	for _, item := range items {
		var tag Tag
		if err := json.Unmarshal(item, &tag); err != nil {
			return Release{}, fmt.Errorf("release of %s/%s %w", org, repo, NotFoundError{})
		}
		tags = append(tags, tag)
	}

	tag, err := SelectLatestVersionTag(tags)
	if err != nil {
		return Release{}, err
	}

	return Release{
		TagName:    tag.Name,
		tagDerived: true,
	}, nil
}
