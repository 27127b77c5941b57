package runner

import (
	"io"
	"os"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

// resolveTestCases assembles the final ordered, deduplicated list of test
// case strings from every source the CLI accepts: the repeatable -i flag,
// a -f/--file of newline-separated entries, and piped stdin. At least one
// source must yield something, or the caller's Fatal message applies.
func resolveTestCases(fromFlag []string, filePath string) ([]string, error) {
	var all []string
	all = append(all, fromFlag...)

	if filePath != "" {
		lines, err := readLines(filePath)
		if err != nil {
			return nil, errorutil.NewWithErr(err).Msgf("failed to read input file %v", filePath)
		}
		all = append(all, lines...)
	}

	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errorutil.NewWithErr(err).Msgf("failed to read input from stdin")
		}
		all = append(all, splitLines(string(bin))...)
	}

	return dedupeOrdered(all), nil
}

// readLines reads path and splits it into lines. Trailing blank lines are
// dropped; blank lines between entries are kept as empty test cases.
func readLines(path string) ([]string, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(bin)), nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\r\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// dedupeOrdered drops duplicate test cases while preserving first-seen
// order, mirroring the way the synthesis pipeline treats input order as
// insignificant but output order as deterministic.
func dedupeOrdered(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSuffix(s, "\r")
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
