// Package cmd contains the Cobra CLI.
package cmd

import (
	"fmt"
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ghlatestWriter is a writer that prints to stdout. When testing, we replace
// this with a writer that prints to a buffer.
type ghlatestWriter struct{}

func (g ghlatestWriter) Write(p []byte) (n int, err error) {
	fmt.Print(string(p))
	return len(p), nil
}

// Execute uses the default settings and executes the root command.
func Execute() {
	err := NewRootCmd(ghlatestWriter{}, afero.NewOsFs()).Execute()
	if err != nil {
		// Cobra prints the error message to stderr; stdout stays empty so
		// that scripts can rely on exit status and output alone.
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads in the config file if it exists.
func initConfig() {
	home, err := homedir.Dir()
	cobra.CheckErr(err)

	viper.SetDefault("APIBaseURL", "https://api.github.com")

	// GITHUB_AUTH holds "username:token". The data ghlatest requests is
	// public; a credential only lifts the anonymous rate limit.
	err = viper.BindEnv("GitHubAuth", "GITHUB_AUTH")
	cobra.CheckErr(err)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(home + "/.config/ghlatest")
		viper.SetConfigName("config")
	}

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file: %s", err)
		}
	}
}
