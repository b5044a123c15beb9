// Package command interprets the text typed into the dashboard's command line
// and tracks which dataset the central region shows.
package command

import "strings"

// View selects what the central display region shows
type View int

const (
	ViewPods View = iota
	ViewContexts
	ViewHelp
)

func (v View) String() string {
	switch v {
	case ViewPods:
		return "pods"
	case ViewContexts:
		return "contexts"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Commands recognised by HandleCommand
const (
	CmdPods     = ":pods"
	CmdContexts = ":ctx"
	CmdHelp     = ":help"
)

var commandViews = map[string]View{
	CmdPods:     ViewPods,
	CmdContexts: ViewContexts,
	CmdHelp:     ViewHelp,
}

// State holds the command line buffer and the selected view
type State struct {
	Input string
	View  View
}

// NewState returns a state with an empty buffer showing pods
func NewState() *State {
	return &State{View: ViewPods}
}

// HandleCommand consumes the whole buffer. Known commands switch the view;
// anything else is dropped. The buffer is always empty afterwards. The
// return value reports whether the command was recognised.
func (s *State) HandleCommand() bool {
	view, ok := commandViews[strings.TrimSpace(s.Input)]
	if ok {
		s.View = view
	}
	s.Input = ""
	return ok
}

// Append adds typed characters to the buffer
func (s *State) Append(runes ...rune) {
	s.Input += string(runes)
}

// Backspace removes the last character. Empty buffers are left alone.
func (s *State) Backspace() {
	if s.Input == "" {
		return
	}
	r := []rune(s.Input)
	s.Input = string(r[:len(r)-1])
}
