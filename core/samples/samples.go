// Package samples loads observation files for the report tool. A sample
// file is plain text, one observation per line for single sequences or
// two whitespace-separated columns for paired sequences. Blank lines and
// lines starting with '#' are ignored.
package samples

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"example.com/sample-stats/base/crypto"
	"example.com/sample-stats/base/stats"
)

func scanLines(path string, visit func(lineno int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err = visit(lineno, strings.Fields(line))
		if err != nil {
			return err
		}
	}
	return s.Err()
}

func parseValue(path string, lineno int, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%s:%d: invalid sample value %q: %w",
			path, lineno, field, err)
	}
	return v, nil
}

// Load reads a single-column sample file.
func Load(path string) ([]float64, error) {
	var xs []float64
	err := scanLines(path, func(lineno int, fields []string) error {
		if len(fields) != 1 {
			return fmt.Errorf("%s:%d: expected 1 value, got %d",
				path, lineno, len(fields))
		}
		v, err := parseValue(path, lineno, fields[0])
		if err != nil {
			return err
		}
		xs = append(xs, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return xs, nil
}

// LoadPairs reads a two-column sample file of paired observations.
func LoadPairs(path string) ([]stats.Pair[float64], error) {
	var ps []stats.Pair[float64]
	err := scanLines(path, func(lineno int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("%s:%d: expected 2 values, got %d",
				path, lineno, len(fields))
		}
		x, err := parseValue(path, lineno, fields[0])
		if err != nil {
			return err
		}
		y, err := parseValue(path, lineno, fields[1])
		if err != nil {
			return err
		}
		ps = append(ps, stats.Pair[float64]{X: x, Y: y})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// Downsample reduces xs to a uniform random subset of at most k samples.
// When k is zero or xs already fits, xs is returned unchanged.
func Downsample(ctx context.Context, xs []float64, k int) ([]float64, error) {
	if k <= 0 || len(xs) <= k {
		return xs, nil
	}
	res := make([]float64, k)
	n, err := crypto.Sample(ctx, k, len(xs), func(dst, src int) {
		res[dst] = xs[src]
	})
	if err != nil {
		return nil, err
	}
	return res[:n], nil
}
