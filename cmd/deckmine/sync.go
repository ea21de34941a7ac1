package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/deckmine/internal/app"
	"github.com/hyperifyio/deckmine/internal/community"
	crmsync "github.com/hyperifyio/deckmine/internal/sync"
	"github.com/hyperifyio/deckmine/internal/twenty"
)

var (
	syncFile       string
	syncDryRun     bool
	syncCommunity  string
	syncConfigPath string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync a mined community profile to Twenty CRM",
	Long: `Reads a mined community profile (JSON from --file or stdin, e.g. the
output of parse-community) and syncs it to Twenty CRM: the company record,
one person per contact, and section notes attached to the company.

Requires TWENTY_API_URL and TWENTY_API_TOKEN (or a config file).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.Config{
			ProfilePath: syncFile,
			Community:   syncCommunity,
			DryRun:      syncDryRun,
			Verbose:     verbose,
		}
		if syncConfigPath != "" {
			fc, err := app.LoadConfigFile(syncConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			app.ApplyFileConfig(&cfg, fc)
		}
		app.ApplyEnvToConfig(&cfg)
		if err := app.ValidateConfig(cfg); err != nil {
			return err
		}

		profile, err := loadProfile(cmd.InOrStdin(), cfg.ProfilePath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cfg.Community != "" && profile.Name != cfg.Community {
			fmt.Fprintf(out, "Skipping: %s (filter: %s)\n", profile.Name, cfg.Community)
			return nil
		}

		client := &twenty.Client{BaseURL: cfg.TwentyURL, APIKey: cfg.TwentyToken}
		syncer := &crmsync.Syncer{CRM: client}
		results := syncer.Run(cmd.Context(), profile, cfg.DryRun)

		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("=", 50))
		fmt.Fprintln(out, "SYNC RESULTS")
		fmt.Fprintln(out, strings.Repeat("=", 50))
		return printJSON(out, results)
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncFile, "file", "", "JSON file with community profile (default: stdin)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Log the intended sync without CRM calls")
	syncCmd.Flags().StringVar(&syncCommunity, "community", "", "Only sync when the mined name matches exactly")
	syncCmd.Flags().StringVar(&syncConfigPath, "config", "", "Optional YAML/JSON config file")

	rootCmd.AddCommand(syncCmd)
}

func loadProfile(stdin io.Reader, path string) (community.Profile, error) {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return community.Profile{}, fmt.Errorf("read profile: %w", err)
		}
		defer f.Close()
		r = f
	}
	var p community.Profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return p, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}
