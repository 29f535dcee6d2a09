package report

import "strings"

// Narrative maps a step-name substring to the caption rendered under
// matching step screenshots.
type Narrative struct {
	Match string
	Text  string
}

// defaultNarratives describe the well-known workflow exploration steps.
// First matching entry wins, so more specific keys come first.
var defaultNarratives = []Narrative{
	{"fresh-start", "Application loaded with cleared state (localStorage wiped, page reloaded)"},
	{"connected", "SSH connection established via the test SSH server"},
	{"scrollback-generated", "Terminal filled with scrollback content (seq 1 100)"},
	{"after-swipe-up", "Vertical swipe up performed on terminal (scroll back through output)"},
	{"after-second-swipe", "Second vertical swipe up (continued scrolling)"},
	{"tmux-started", "tmux session started inside SSH connection"},
	{"tmux-second-window", "Second tmux window created (Ctrl-B c)"},
	{"after-swipe-left", "Horizontal swipe left (should trigger tmux prev window)"},
	{"after-swipe-right", "Horizontal swipe right (should trigger tmux next window)"},
	{"terminal-loaded", "Terminal view loaded, ready for interaction"},
	{"settings-panel", "Navigated to Settings panel via tab bar"},
	{"after-pinch-zoom-in", "Pinch-to-zoom gesture performed on settings panel"},
	{"back-to-terminal", "Navigated back to terminal view after zoom test"},
}

// narrativeFor returns the caption for a step name, checking extra entries
// before the built-in table. No match yields "".
func narrativeFor(name string, extra []Narrative) string {
	for _, n := range extra {
		if n.Match != "" && strings.Contains(name, n.Match) {
			return n.Text
		}
	}
	for _, n := range defaultNarratives {
		if strings.Contains(name, n.Match) {
			return n.Text
		}
	}
	return ""
}
