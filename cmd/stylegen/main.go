// cmd/stylegen/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/julianshen/stylegen/internal/config"
	"github.com/julianshen/stylegen/internal/guide"
	"github.com/julianshen/stylegen/internal/provider"

	// Register the provider via init() side effect.
	_ "github.com/julianshen/stylegen/internal/provider/anthropic"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath     string
	outputFlag     string
	maxFilesFlag   int
	extensionsFlag string
	modelFlag      string
	previewFlag    bool
	refineFlag     bool
)

func versionString() string {
	return fmt.Sprintf("stylegen %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	// A .env in the working directory may carry the API credential; absence
	// is fine, the credential is only needed at the first service call.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stylegen [path]",
		Short: "Extract a coding style guide from a repository",
		Long: `stylegen samples source files from a repository, sends them to an LLM
for pattern analysis, and writes back a prescriptive markdown style guide.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runExtract,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&outputFlag, "output", "", "output path for the generated style guide")
	rootCmd.Flags().IntVar(&maxFilesFlag, "max-files", 0, "override maximum number of files to sample")
	rootCmd.Flags().StringVar(&extensionsFlag, "extensions", "", "comma-separated file extensions to sample (e.g. .go,.py)")
	rootCmd.Flags().StringVar(&modelFlag, "model", "", "override model name")
	rootCmd.Flags().BoolVar(&previewFlag, "preview", false, "render the generated guide to the terminal")
	rootCmd.Flags().BoolVar(&refineFlag, "refine", false, "interactively refine the guide after generation")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(versionString())
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	printBanner(out)

	repoPath, err := resolveRepoPath(args)
	if err != nil {
		return err
	}

	// Soft early exits: a bad path gets a message, not an error status.
	info, err := os.Stat(repoPath)
	if err != nil {
		fmt.Fprintf(out, "\nError: Path does not exist. Check path: %s\n", repoPath)
		return nil
	}
	if !info.IsDir() {
		fmt.Fprintf(out, "\nError: Not a directory. Check path: %s\n", repoPath)
		return nil
	}

	cfg, err := loadConfig(repoPath)
	if err != nil {
		return err
	}

	p, err := provider.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("creating provider: %w", err)
	}

	session, err := guide.Run(cmd.Context(), guide.Config{
		RepoRoot:   repoPath,
		OutputPath: cfg.Extract.Output,
		MaxFiles:   cfg.Extract.MaxFiles,
		Extensions: cfg.Extract.Extensions,
		Model:      cfg.Provider.Model,
		MaxTokens:  cfg.Provider.MaxTokens,
	}, p, out)
	if err != nil {
		return err
	}
	if session == nil {
		// Nothing to analyze; the pipeline already said why.
		return nil
	}

	if previewFlag {
		showPreview(session, out)
	}
	if refineFlag {
		if err := refineLoop(cmd.Context(), session, cfg.Extract.Output, out); err != nil {
			return err
		}
	}

	printEpilogue(out, cfg.Extract.Output)
	return nil
}

// resolveRepoPath returns the positional path argument, or prompts for one
// interactively when the command runs in a terminal.
func resolveRepoPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !stdinIsTerminal() {
		return "", fmt.Errorf("repository path required (no terminal to prompt on)")
	}
	return promptRepoPath()
}

// loadConfig resolves the config path, loads the config, applies any
// per-repository .stylegen.yaml override, and finally the flag overrides.
func loadConfig(repoRoot string) (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".config", "stylegen", "config.toml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := config.ApplyProject(cfg, repoRoot); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if outputFlag != "" {
		cfg.Extract.Output = outputFlag
	}
	if maxFilesFlag > 0 {
		cfg.Extract.MaxFiles = maxFilesFlag
	}
	if exts := parseExtensionsFlag(extensionsFlag); len(exts) > 0 {
		cfg.Extract.Extensions = exts
	}
	if modelFlag != "" {
		cfg.Provider.Model = modelFlag
	}

	return cfg, nil
}

// parseExtensionsFlag splits a comma-separated extensions string, trimming
// whitespace and adding a leading dot where missing. Returns nil for empty
// input.
func parseExtensionsFlag(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var exts []string
	for _, e := range strings.Split(s, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}
