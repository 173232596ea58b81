package cmd

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// releaseInfo is the YAML shape of `ghlatest info`.
type releaseInfo struct {
	TagName     string `yaml:"tagName"`
	Name        string `yaml:"name,omitempty"`
	Source      string `yaml:"source"`
	TarballURL  string `yaml:"tarballURL,omitempty"`
	HTMLURL     string `yaml:"htmlURL,omitempty"`
	PublishedAt string `yaml:"publishedAt,omitempty"`
}

func newInfoCmd(ghlatestWriter io.Writer) *cobra.Command {
	var infoCmd = &cobra.Command{
		Use:   "info ORGANISATION REPO",
		Short: "Show the resolved latest release as YAML",
		Example: `  # Show the full resolved release record
  ghlatest info kubernetes kubernetes`,
		Args: cobra.ExactArgs(2),
		RunE: newRunInfo(ghlatestWriter),
	}
	return infoCmd
}

func newRunInfo(ghlatestWriter io.Writer) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		client, err := newGitHubClient()
		if err != nil {
			return
		}

		release, err := client.LatestRelease(args[0], args[1])
		if err != nil {
			return
		}

		info := releaseInfo{
			TagName:     release.TagName,
			Name:        release.Name,
			Source:      "release",
			HTMLURL:     release.HTMLURL,
			PublishedAt: release.PublishedAt,
		}
		if release.TagDerived() {
			info.Source = "tag"
		}
		if tarballURL, ok := release.TarballURL(); ok {
			info.TarballURL = tarballURL
		}

		yamlBuffer := &bytes.Buffer{}
		yamlEncoder := yaml.NewEncoder(yamlBuffer)
		yamlEncoder.SetIndent(2)
		err = yamlEncoder.Encode(info)
		if err != nil {
			return
		}
		err = yamlEncoder.Close()
		if err != nil {
			return
		}

		_, err = ghlatestWriter.Write(yamlBuffer.Bytes())

		return
	}
}
