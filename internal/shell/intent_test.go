package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Intent
	}{
		{"empty", "", Intent{Kind: IntentEmpty}},
		{"whitespace only", "   \t ", Intent{Kind: IntentEmpty}},
		{"bare cd means home", "cd", Intent{Kind: IntentChangeDir}},
		{"cd with path", "cd /tmp", Intent{Kind: IntentChangeDir, Arg: "/tmp"}},
		{"cd with tilde", "cd ~/projects", Intent{Kind: IntentChangeDir, Arg: "~/projects"}},
		{"cd tab separated", "cd\t/tmp", Intent{Kind: IntentChangeDir, Arg: "/tmp"}},
		{"cd -list", "cd -list", Intent{Kind: IntentOpenNavigator}},
		{"cd --list", "cd --list", Intent{Kind: IntentOpenNavigator}},
		{"clear", "clear", Intent{Kind: IntentClear}},
		{"exit", "exit", Intent{Kind: IntentExit}},
		{"quit", "quit", Intent{Kind: IntentExit}},
		{"save bookmark", "skiff save", Intent{Kind: IntentSaveBookmark}},
		{"open picker", "skiff goto", Intent{Kind: IntentOpenBookmarks}},
		{"unknown subcommand falls through", "skiff frobnicate", Intent{Kind: IntentShell, Arg: "skiff frobnicate"}},
		{"bare namespace falls through", "skiff", Intent{Kind: IntentShell, Arg: "skiff"}},
		{"shell command", "ls -la", Intent{Kind: IntentShell, Arg: "ls -la"}},
		{"shell command trimmed", "  echo hi  ", Intent{Kind: IntentShell, Arg: "echo hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}
