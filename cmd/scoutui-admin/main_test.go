package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintUsageListsEveryCommand(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)

	out := buf.String()
	require.Contains(t, out, "usage: scoutui-admin")
	for name := range commands() {
		require.Contains(t, out, name)
	}
}

func TestCommandsHaveDescriptions(t *testing.T) {
	for name, cmd := range commands() {
		require.Equal(t, name, cmd.name)
		require.NotEmpty(t, cmd.description, "command %s has no description", name)
		require.NotNil(t, cmd.run, "command %s has no run function", name)
	}
}
