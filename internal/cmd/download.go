package cmd

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/mholt/archiver/v3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	downloadDir string
	extractFlag bool
)

func newDownloadCmd(
	ghlatestWriter io.Writer, downloadFS afero.Fs,
) *cobra.Command {
	var downloadCmd = &cobra.Command{
		Use:   "download ORGANISATION REPO",
		Short: "Download the latest release tarball",
		Example: `  # Download the latest release tarball into the current directory
  ghlatest download kubernetes kubernetes

  # Download and extract into a specific directory
  ghlatest download kubernetes kubernetes --dir /tmp/k8s --extract`,
		Args: cobra.ExactArgs(2),
		RunE: newRunDownload(ghlatestWriter, downloadFS),
	}

	downloadCmd.Flags().StringVar(&downloadDir, "dir", ".", "directory to download into")
	downloadCmd.Flags().BoolVar(
		&extractFlag, "extract", false,
		"extract the tarball after downloading and remove the archive",
	)

	return downloadCmd
}

func newRunDownload(
	ghlatestWriter io.Writer, downloadFS afero.Fs,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		client, err := newGitHubClient()
		if err != nil {
			return
		}

		release, err := client.LatestRelease(args[0], args[1])
		if err != nil {
			return
		}

		tarballURL, ok := release.TarballURL()
		if !ok {
			err = fmt.Errorf(
				"%s/%s has no release tarball: the latest release was derived from tag %s",
				args[0], args[1], release.TagName,
			)
			return
		}

		err = checkDownloadDir(downloadDir)
		if err != nil {
			return
		}

		archivePath := filepath.Join(downloadDir, args[1]+"-"+release.TagName+".tar.gz")
		sha, err := downloadTarball(downloadFS, tarballURL, archivePath)
		if err != nil {
			return
		}
		fmt.Fprintf(ghlatestWriter, "📦 Downloaded %s\n", archivePath)
		fmt.Fprintf(ghlatestWriter, "SHA256: %s\n", sha)

		if extractFlag {
			err = archiver.Unarchive(archivePath, downloadDir)
			if err != nil {
				return
			}
			err = downloadFS.Remove(archivePath)
			if err != nil {
				return
			}
			fmt.Fprintf(ghlatestWriter, "📂 Extracted into %s\n", downloadDir)
		}

		return
	}
}

// downloadTarball streams the tarball to archivePath and returns the
// SHA-256 of the downloaded bytes.
func downloadTarball(
	downloadFS afero.Fs, tarballURL, archivePath string,
) (sha string, err error) {
	resp, err := http.Get(tarballURL)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("could not download %s: %s", tarballURL, resp.Status)
		return
	}

	archiveFile, err := downloadFS.Create(archivePath)
	if err != nil {
		return
	}
	defer archiveFile.Close()

	hash := sha256.New()
	_, err = io.Copy(io.MultiWriter(archiveFile, hash), resp.Body)
	if err != nil {
		return
	}
	sha = fmt.Sprintf("%x", hash.Sum(nil))

	return
}
