// Package frames groups extracted recording frames by test-name prefix and
// matches frame groups to test titles.
//
// Frames are PNG files named <prefix>-<order>-<label>.png, where prefix is
// the hyphenated test name, order is a digit run with an optional trailing
// lowercase letter, and label describes the captured moment.
package frames

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Frame is a single image extracted from the screen recording.
type Frame struct {
	Order    string // order token from the filename, e.g. "0" or "2a"
	Label    string // remainder of the stem, e.g. "after-swipe-up"
	B64      string // base64-encoded PNG content
	Filename string
}

// Groups holds frames grouped by inferred test-name prefix. Prefixes keep
// first-seen order (files are scanned in sorted filename order), which is
// also the iteration order used by Match, so results stay deterministic.
type Groups struct {
	prefixes []string
	byPrefix map[string][]Frame
}

// stemPattern splits "<prefix>-<order>-<label>". The non-greedy prefix means
// the first order-shaped token wins.
var stemPattern = regexp.MustCompile(`^(.+?)-(\d+[a-z]?)-(.+)$`)

// Collect scans dir for PNG frames and groups them by test-name prefix.
// A missing directory yields empty groups. Unreadable files are skipped;
// every kept frame is read fully and base64-encoded.
func Collect(dir string) (*Groups, error) {
	g := &Groups{byPrefix: make(map[string][]Frame)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return g, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		prefix, order, label := splitStem(stem)

		if _, ok := g.byPrefix[prefix]; !ok {
			g.prefixes = append(g.prefixes, prefix)
		}
		g.byPrefix[prefix] = append(g.byPrefix[prefix], Frame{
			Order:    order,
			Label:    label,
			B64:      base64.StdEncoding.EncodeToString(data),
			Filename: name,
		})
	}

	// Order tokens compare as strings, not numbers: "10" sorts before "2".
	// Existing frame sets rely on this ordering.
	for _, group := range g.byPrefix {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Order < group[j].Order
		})
	}

	return g, nil
}

// splitStem splits a filename stem into prefix, order token and label.
// Stems that do not match the frame pattern become a group of their own.
func splitStem(stem string) (prefix, order, label string) {
	if m := stemPattern.FindStringSubmatch(stem); m != nil {
		return m[1], m[2], m[3]
	}
	return stem, "0", "unknown"
}

// Prefixes returns the group keys in first-seen order.
func (g *Groups) Prefixes() []string {
	if g == nil {
		return nil
	}
	return g.prefixes
}

// Get returns the ordered frames for a prefix, or nil.
func (g *Groups) Get(prefix string) []Frame {
	if g == nil {
		return nil
	}
	return g.byPrefix[prefix]
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.prefixes)
}
