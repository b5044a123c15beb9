package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, "", s.Input)
	assert.Equal(t, ViewPods, s.View)
}

func TestHandleCommandKnown(t *testing.T) {
	tests := []struct {
		input string
		want  View
	}{
		{":pods", ViewPods},
		{":ctx", ViewContexts},
		{":help", ViewHelp},
		{"  :ctx  ", ViewContexts},
		{":help\t", ViewHelp},
	}

	starts := []View{ViewPods, ViewContexts, ViewHelp}

	for _, tt := range tests {
		for _, start := range starts {
			t.Run(tt.input+" from "+start.String(), func(t *testing.T) {
				s := &State{Input: tt.input, View: start}
				assert.True(t, s.HandleCommand())
				assert.Equal(t, tt.want, s.View)
				assert.Equal(t, "", s.Input)
			})
		}
	}
}

func TestHandleCommandUnknownKeepsView(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		":unknown",
		"pods",
		":Pods",
		":pods extra",
		":q",
		":togglesim",
		":ctx:help",
	}

	for _, input := range inputs {
		for _, start := range []View{ViewPods, ViewContexts, ViewHelp} {
			t.Run(input+" from "+start.String(), func(t *testing.T) {
				s := &State{Input: input, View: start}
				assert.False(t, s.HandleCommand())
				assert.Equal(t, start, s.View)
				assert.Equal(t, "", s.Input)
			})
		}
	}
}

func TestBackspace(t *testing.T) {
	s := NewState()

	s.Backspace()
	assert.Equal(t, "", s.Input, "backspace on empty buffer is a no-op")

	s.Append(':', 'c', 't', 'x')
	s.Backspace()
	assert.Equal(t, ":ct", s.Input)

	s.Input = "ü"
	s.Backspace()
	assert.Equal(t, "", s.Input, "multi-byte characters are removed whole")
}

func TestTypedSequenceSwitchesToPods(t *testing.T) {
	s := &State{View: ViewContexts}

	s.Append([]rune(":p")...)
	s.Append('o')
	s.Append('d')
	s.Append('s')
	s.HandleCommand()

	assert.Equal(t, ViewPods, s.View)
	assert.Equal(t, "", s.Input)
}

func TestEmptySubmitAfterHelpStaysOnHelp(t *testing.T) {
	s := NewState()

	s.Append([]rune(":h")...)
	s.Append('e', 'l', 'p')
	s.HandleCommand()
	assert.Equal(t, ViewHelp, s.View)

	s.HandleCommand()
	assert.Equal(t, ViewHelp, s.View)
	assert.Equal(t, "", s.Input)
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "pods", ViewPods.String())
	assert.Equal(t, "contexts", ViewContexts.String())
	assert.Equal(t, "help", ViewHelp.String())
	assert.Equal(t, "unknown", View(42).String())
}
