package domain

// Configuration is the top-level input: one contribution plan compared across providers.
type Configuration struct {
	Simulation SimulationParameters `yaml:"simulation" json:"simulation"`
	Providers  []Provider           `yaml:"providers" json:"providers"`
}
