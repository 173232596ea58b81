package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	versionFlag bool
	tarballFlag bool
	outputFile  string
)

// NewRootCmd returns the root command.
func NewRootCmd(ghlatestWriter io.Writer, outputFS afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ghlatest ORGANISATION REPO",
		Short: "ghlatest prints the latest release of a GitHub repository",
		Example: `  # Print the latest release tag of a repository
  ghlatest kubernetes kubernetes

  # Print the tarball URL of the latest release instead
  ghlatest --tarball kubernetes kubernetes

  # Download and extract the latest release tarball
  ghlatest download kubernetes kubernetes --extract`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
		Args: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) != 0 && len(args) != 2 {
				err = fmt.Errorf("expected exactly 2 arguments: ORGANISATION and REPO")
			}
			return
		},
		RunE: newRunRoot(ghlatestWriter, outputFS),
	}

	// Flags
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "display the version of ghlatest")
	rootCmd.Flags().BoolVarP(
		&tarballFlag, "tarball", "t", false,
		"print the URL of the release tarball instead of the tag name",
	)
	rootCmd.Flags().StringVarP(
		&outputFile, "output", "o", "",
		"write the result to a file instead of standard output",
	)

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path of the config file (default is $HOME/.config/ghlatest/config.yaml)")

	// Commands
	rootCmd.AddCommand(newDownloadCmd(ghlatestWriter, outputFS))
	rootCmd.AddCommand(newInfoCmd(ghlatestWriter))
	rootCmd.AddCommand(newVersionCmd(ghlatestWriter))

	return rootCmd
}

func newRunRoot(
	ghlatestWriter io.Writer, outputFS afero.Fs,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if versionFlag {
			return printVersion(ghlatestWriter)
		}
		if len(args) == 0 {
			return cmd.Help()
		}

		client, err := newGitHubClient()
		if err != nil {
			return
		}

		release, err := client.LatestRelease(args[0], args[1])
		if err != nil {
			return
		}

		result := release.TagName
		if tarballFlag {
			var ok bool
			result, ok = release.TarballURL()
			if !ok {
				err = fmt.Errorf(
					"%s/%s has no release tarball: the latest release was derived from tag %s",
					args[0], args[1], release.TagName,
				)
				return
			}
		}

		if outputFile != "" {
			err = afero.WriteFile(outputFS, outputFile, []byte(result), 0644)
			return
		}

		// Exactly the resolved string, no trailing newline: build scripts
		// consume this verbatim.
		_, err = fmt.Fprint(ghlatestWriter, result)

		return
	}
}
