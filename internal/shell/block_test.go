package shell

import "testing"

func TestCommandsBlocker(t *testing.T) {
	blocker := CommandsBlocker([]string{"rm", "dd", "sudo"})

	tests := []struct {
		args    []string
		blocked bool
	}{
		{[]string{"rm", "-rf", "/"}, true},
		{[]string{"dd", "if=/dev/zero"}, true},
		{[]string{"sudo", "ls"}, true},
		{[]string{"/bin/rm", "victim"}, true},
		{[]string{"./dd"}, true},
		{[]string{"/usr/bin/ls", "-la"}, false},
		{[]string{"ls", "-la"}, false},
		{[]string{"grep", "rm"}, false},
		{[]string{}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := blocker(tt.args); got != tt.blocked {
			t.Errorf("CommandsBlocker(%v) = %v, want %v", tt.args, got, tt.blocked)
		}
	}
}

func TestArgumentsBlocker(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		sub     []string
		flags   []string
		args    []string
		blocked bool
	}{
		{"git reset --hard", "git", []string{"reset"}, []string{"--hard"}, []string{"git", "reset", "--hard", "HEAD~1"}, true},
		{"git reset file", "git", []string{"reset"}, []string{"--hard"}, []string{"git", "reset", "main.go"}, false},
		{"git log", "git", []string{"reset"}, []string{"--hard"}, []string{"git", "log"}, false},
		{"different cmd", "git", []string{"reset"}, []string{"--hard"}, []string{"hg", "reset", "--hard"}, false},
		{"by path", "git", []string{"push"}, nil, []string{"/usr/bin/git", "push"}, true},
		{"no flags required", "git", []string{"push"}, nil, []string{"git", "push", "origin"}, true},
		{"any listed flag", "find", nil, []string{"-delete", "-exec"}, []string{"find", ".", "-name", "*.o", "-exec", "echo", "{}", ";"}, true},
		{"find without action", "find", nil, []string{"-delete", "-exec"}, []string{"find", ".", "-name", "*.go"}, false},
		{"empty args", "git", []string{"push"}, nil, []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocker := ArgumentsBlocker(tt.cmd, tt.sub, tt.flags)
			if got := blocker(tt.args); got != tt.blocked {
				t.Errorf("ArgumentsBlocker(%q, %v, %v)(%v) = %v, want %v",
					tt.cmd, tt.sub, tt.flags, tt.args, got, tt.blocked)
			}
		})
	}
}

func TestWrapperBlocker(t *testing.T) {
	blocker := WrapperBlocker(Wrappers, CommandsBlocker([]string{"rm"}))

	tests := []struct {
		args    []string
		blocked bool
	}{
		{[]string{"xargs", "rm"}, true},
		{[]string{"xargs", "-0", "-n", "rm"}, true},
		{[]string{"nice", "-n", "10", "rm", "x"}, true},
		{[]string{"timeout", "5", "rm", "x"}, true},
		{[]string{"env", "FOO=bar", "rm", "x"}, true},
		{[]string{"nohup", "nice", "rm", "x"}, true},
		{[]string{"/usr/bin/xargs", "/bin/rm"}, true},
		{[]string{"xargs", "grep", "rm"}, false},
		{[]string{"xargs", "echo"}, false},
		{[]string{"rm", "x"}, false}, // not wrapped; left to the inner blockers
		{[]string{"xargs"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := blocker(tt.args); got != tt.blocked {
			t.Errorf("WrapperBlocker(%v) = %v, want %v", tt.args, got, tt.blocked)
		}
	}
}

func TestDefaultBlockFuncs(t *testing.T) {
	blockers := DefaultBlockFuncs([]string{"rm", "mv", "sudo"})

	mustBlock := [][]string{
		{"rm", "-rf", "/"},
		{"mv", "a", "b"},
		{"sudo", "ls"},
		{"find", ".", "-delete"},
		{"find", ".", "-exec", "rm", "{}", ";"},
		{"sed", "-i", "s/a/b/", "file"},
		{"git", "push", "--force"},
		{"git", "reset", "--hard"},
		{"git", "clean", "-fdx"},
		{"git", "checkout", "--", "."},
		// Bypass vectors
		{"bash", "-c", "rm -rf /"},
		{"sh", "-c", "echo hi"},
		{"xargs", "rm"},
		{"xargs", "-I{}", "mv", "{}", "/tmp"},
		{"env", "sudo", "ls"},
		{"nice", "git", "push"},
	}
	mustAllow := [][]string{
		{"ls", "-la"},
		{"grep", "-r", "rm", "."},
		{"find", ".", "-name", "*.go"},
		{"sed", "s/a/b/"},
		{"git", "status"},
		{"git", "log", "--oneline"},
		{"git", "checkout", "main"},
		{"xargs", "echo"},
		{"sort", "-u"},
	}

	for _, args := range mustBlock {
		blocked := false
		for _, bf := range blockers {
			if bf(args) {
				blocked = true
				break
			}
		}
		if !blocked {
			t.Errorf("expected %v to be blocked", args)
		}
	}
	for _, args := range mustAllow {
		for _, bf := range blockers {
			if bf(args) {
				t.Errorf("expected %v to be allowed", args)
				break
			}
		}
	}
}
