package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()

	bindings := map[string]key.Binding{
		"Search":     km.Search,
		"Regenerate": km.Regenerate,
		"Help":       km.Help,
		"Quit":       km.Quit,
	}
	for name, b := range bindings {
		assert.True(t, b.Enabled(), "%s should be enabled", name)
		assert.NotEmpty(t, b.Keys(), "%s should have keys", name)
		assert.NotEmpty(t, b.Help().Desc, "%s should have a description", name)
	}
}

func TestDefaultKeyMap_Keys(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()

	assert.ElementsMatch(t, []string{"q", "ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, []string{"enter"}, km.Search.Keys())
	assert.Equal(t, []string{"r"}, km.Regenerate.Keys())
	assert.Equal(t, []string{"?"}, km.Help.Keys())
}

func TestKeyMap_HelpGroups(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	assert.Equal(t, 4, total)
}
