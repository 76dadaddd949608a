package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newToggleCommand(tree *bool, clipboard *bool) *cobra.Command {
	command := &cobra.Command{Use: "toggle-test", Args: cobra.ArbitraryArgs, Run: func(*cobra.Command, []string) {}}
	registerToggleFlags(command.Flags(),
		toggleFlag{name: treeFlagName, usage: treeFlagDescription, defaultValue: false, target: tree},
		toggleFlag{name: clipboardFlagName, usage: clipboardFlagDescription, defaultValue: true, target: clipboard},
	)
	return command
}

func TestToggleFlagParsing(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name              string
		arguments         []string
		expectedTree      bool
		expectedClipboard bool
		expectedArguments []string
	}{
		{name: "defaults", arguments: nil, expectedTree: false, expectedClipboard: true, expectedArguments: []string{}},
		{name: "bare toggle", arguments: []string{"--tree"}, expectedTree: true, expectedClipboard: true, expectedArguments: []string{}},
		{name: "assigned literal", arguments: []string{"--clipboard=off"}, expectedClipboard: false, expectedArguments: []string{}},
		{name: "separate literal", arguments: []string{"--clipboard", "no", "src"}, expectedClipboard: false, expectedArguments: []string{"src"}},
		{name: "keyword stays positional", arguments: []string{"--clipboard", "tree", "."}, expectedTree: false, expectedClipboard: true, expectedArguments: []string{"tree", "."}},
		{name: "upper case separate literal", arguments: []string{"--tree", "YES"}, expectedTree: true, expectedClipboard: true, expectedArguments: []string{}},
		{name: "short literal stays positional", arguments: []string{"--tree", "on"}, expectedTree: true, expectedClipboard: true, expectedArguments: []string{"on"}},
		{name: "numeric literal stays positional", arguments: []string{"--clipboard", "0"}, expectedClipboard: true, expectedArguments: []string{"0"}},
		{name: "short literal after assignment", arguments: []string{"--clipboard=off"}, expectedClipboard: false, expectedArguments: []string{}},
		{name: "terminator keeps literal positional", arguments: []string{"--", "yes"}, expectedClipboard: true, expectedArguments: []string{"yes"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var tree, clipboard bool
			command := newToggleCommand(&tree, &clipboard)
			require.NoError(t, command.ParseFlags(joinToggleValues(command, testCase.arguments)))
			require.Equal(t, testCase.expectedTree, tree)
			require.Equal(t, testCase.expectedClipboard, clipboard)
			require.Equal(t, testCase.expectedArguments, append([]string{}, command.Flags().Args()...))
		})
	}
}

func TestToggleFlagRejectsUnknownLiteral(t *testing.T) {
	var tree, clipboard bool
	command := newToggleCommand(&tree, &clipboard)
	err := command.ParseFlags([]string{"--tree=maybe"})
	require.Error(t, err)
	require.Contains(t, err.Error(), errInvalidToggle.Error())
}
