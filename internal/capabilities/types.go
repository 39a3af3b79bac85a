package capabilities

// ModelCapabilities represents the metadata for a specific model
type ModelCapabilities struct {
	ID          string `yaml:"id" json:"id"`
	DisplayName string `yaml:"display_name" json:"display_name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// SupportsStreaming marks models whose endpoint can deliver deltas
	SupportsStreaming bool `yaml:"supports_streaming" json:"supports_streaming"`

	// Default marks the model a provider falls back to when a request
	// names none
	Default bool `yaml:"default,omitempty" json:"default,omitempty"`

	// Limits (zero = unknown)
	ContextWindow int `yaml:"context_window,omitempty" json:"context_window,omitempty"`
	MaxOutput     int `yaml:"max_output,omitempty" json:"max_output,omitempty"`
}

// ProviderCapabilities represents all models for a provider, in the order
// they appear in the YAML file
type ProviderCapabilities struct {
	Provider string              `yaml:"provider" json:"provider"`
	Models   []ModelCapabilities `yaml:"models" json:"models"`
}
