// Package cmd implements the CLI commands for LinkPipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/linkpipe/config"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

// globalOptions holds the persistent flags that are not configuration keys.
type globalOptions struct {
	configFile string
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"verbose":    "verbose",
	"provider":   "llm.provider",
	"model":      "llm.model",
	"base_url":   "llm.base_url",
	"chunk_size": "chunk.size",
	"prompt":     "user_prompt",
	"keep_nav":   "fetch.keep_navigation",
	"timeout":    "fetch.timeout",
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "linkpipe",
		Short: "LinkPipe — extract candidate links from webpage content",
		Long: `LinkPipe fetches a webpage, isolates its main content, splits it into
chunks and extracts the links found in each chunk. Chunks that are not plain
text are handed to a language model which returns the relevant links.

Usage:
  linkpipe links <url> [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default ./linkpipe.yaml or ~/.config/linkpipe/linkpipe.yaml)")
	// Read back through the viper binding in loadConfig.
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show progress over chunks")

	rootCmd.AddCommand(newLinksCmd(opts))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "linkpipe %s\n", version)
		},
	})

	return rootCmd
}

// loadConfig binds the command's changed flags and loads the configuration.
// Flags only override file and environment values when set explicitly.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	v := viper.New()
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return nil, fmt.Errorf("binding flags: %w", bindErr)
	}

	cfg, err := config.Load(v, opts.configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
