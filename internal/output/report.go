package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported report format")

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport writes results in the given format to a file in dir and
// returns the paths written. "all" writes the verbose console report plus both CSV tables.
func GenerateReport(results *domain.SimulationResult, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range []string{"console", "detailed-csv", "withdrawal-csv"} {
			path, err := WriteFormatted(GetFormatterByName(name), results, dir, Extension(name))
			if err != nil {
				return written, err
			}
			written = append(written, path)
		}
		return written, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	path, err := WriteFormatted(f, results, dir, Extension(format))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// Render writes results in the given format to w.
func Render(w io.Writer, results *domain.SimulationResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
