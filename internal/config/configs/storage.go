package configs

// Storage selects the persistence backends.
type Storage struct {
	// Artifacts is "file" (default) or "postgres".
	Artifacts string `env:"ARTIFACTS" envDefault:"file"`
	// OutputDir is the root directory of the file artifact store.
	OutputDir string `env:"OUTPUT_DIR" envDefault:"./artifacts"`
	// Sessions is "memory" (default) or "redis".
	Sessions string `env:"SESSIONS" envDefault:"memory"`
}
