// pkg/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// Header is the first CSV row
var Header = []string{"time_s", "x_m", "y_m", "vx_mps", "vy_mps", "speed_mps", "mach"}

// WriteCSV writes one row per state, oldest first
func WriteCSV(w io.Writer, states []physics.KinematicState) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, s := range states {
		if err := cw.Write(row(s)); err != nil {
			return fmt.Errorf("write state %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes states to a new file at path
func SaveCSV(path string, states []physics.KinematicState) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err := WriteCSV(f, states); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func row(s physics.KinematicState) []string {
	speed := s.Speed()
	return []string{
		format(s.Time),
		format(s.Position.X),
		format(s.Position.Y),
		format(s.Velocity.X),
		format(s.Velocity.Y),
		format(speed),
		strconv.FormatFloat(physics.MachNumber(speed, s.Altitude()), 'f', 4, 64),
	}
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
