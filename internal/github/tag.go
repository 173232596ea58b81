package github

import (
	"fmt"
	"regexp"
	"sort"
)

// Tag is an entry of the tags collection endpoint. Only the name takes
// part in selection; the commit reference is passed through untouched.
type Tag struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
		URL string `json:"url"`
	} `json:"commit"`
}

// versionTagRegexp matches version-like tag names: major.minor or
// major.minor.patch, separated by "." or "-", with an optional leading R.
var versionTagRegexp = regexp.MustCompile(`^R?\d+[-.]\d+([-.]\d+)?$`)

// SelectLatestVersionTag returns the latest version-like tag.
//
// Tags whose names do not look like versions are discarded. The remaining
// names are ranked by plain descending string comparison, NOT by semantic
// versioning: "9.0" ranks above "10.0". This matches the behavior that the
// consuming build scripts were written against and is kept as a known
// limitation. If several tags share the winning name, the first one in
// input order wins.
func SelectLatestVersionTag(tags []Tag) (Tag, error) {
	var names []string
	for _, tag := range tags {
		if versionTagRegexp.MatchString(tag.Name) {
			names = append(names, tag.Name)
		}
	}
	if len(names) == 0 {
		return Tag{}, fmt.Errorf("version tag %w", NotFoundError{})
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, tag := range tags {
		if tag.Name == names[0] {
			return tag, nil
		}
	}

	// Unreachable: names[0] was taken from tags.
	return Tag{}, fmt.Errorf("version tag %w", NotFoundError{})
}
