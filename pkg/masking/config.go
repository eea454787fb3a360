package masking

// Config controls a single masking call. It is immutable for the duration
// of the call; resolution of per-site overrides into a Config happens in
// the services layer before the engine is invoked.
type Config struct {
	// Enabled gates the whole engine. When false, Mask returns its input
	// unchanged. Both call sites (HTTP and gRPC) share this gating because
	// it lives inside the engine rather than in the callers.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// HideMagnitude selects the replacement policy. When true, every masked
	// expression collapses to a fixed 3-character placeholder, destroying
	// information about its original length and scale. When false (default),
	// masked expressions keep their length and punctuation and only
	// digit/letter characters become placeholders.
	HideMagnitude bool `json:"hide_magnitude" yaml:"hide_magnitude"`
}

// DefaultConfig returns the configuration used when a site has no stored
// or static override: masking off, character-preserving policy.
func DefaultConfig() Config {
	return Config{Enabled: false, HideMagnitude: false}
}
