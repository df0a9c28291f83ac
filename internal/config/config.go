package config

// Config represents the top-level application configuration. It is fixed
// for the lifetime of a run.
type Config struct {
	Provider ProviderConfig `toml:"provider"`
	Extract  ExtractConfig  `toml:"extract"`
}

// ProviderConfig holds settings for the text-generation service.
type ProviderConfig struct {
	Model        string `toml:"model"`
	MaxTokens    int    `toml:"max_tokens"`
	APIKeySource string `toml:"api_key_source"`
	APIKey       string `toml:"api_key"`
}

// ExtractConfig holds settings for the extraction pipeline.
type ExtractConfig struct {
	MaxFiles   int      `toml:"max_files"`
	Extensions []string `toml:"extensions"`
	Output     string   `toml:"output"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Model:        "claude-sonnet-4-20250514",
			MaxTokens:    8000,
			APIKeySource: "env",
		},
		Extract: ExtractConfig{
			MaxFiles:   20,
			Extensions: []string{".py"},
			Output:     "coding_style_guide_DRAFT.md",
		},
	}
}
