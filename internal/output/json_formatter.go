package output

import (
	"encoding/json"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// JSONFormatter serializes the simulation result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
