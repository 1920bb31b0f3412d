// Package shell evaluates pipelines with an in-process POSIX interpreter and
// refuses commands on a block list, so live evaluation of half-typed input
// cannot destroy anything.
package shell

import (
	"path/filepath"
	"strings"
)

// BlockFunc returns true if the given command args should be blocked.
type BlockFunc func(args []string) bool

// commandName is the name a command is blocked by: "/bin/rm" is "rm".
func commandName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return filepath.Base(args[0])
}

// CommandsBlocker returns a BlockFunc that blocks command name matches,
// however the command is spelled on the path.
func CommandsBlocker(cmds []string) BlockFunc {
	blocked := make(map[string]struct{}, len(cmds))
	for _, c := range cmds {
		blocked[c] = struct{}{}
	}
	return func(args []string) bool {
		if len(args) == 0 {
			return false
		}
		_, ok := blocked[commandName(args)]
		return ok
	}
}

// ArgumentsBlocker returns a BlockFunc that blocks a command when specific
// subcommand args and/or flags are present.
//
// For example, ArgumentsBlocker("git", []string{"reset"}, []string{"--hard"})
// blocks "git reset --hard HEAD~1" but allows "git reset file.go".
func ArgumentsBlocker(cmd string, subArgs, flags []string) BlockFunc {
	return func(args []string) bool {
		if len(args) == 0 || commandName(args) != cmd {
			return false
		}
		posArgs, posFlags := splitArgsFlags(args[1:])
		if !prefixMatch(posArgs, subArgs) {
			return false
		}
		if len(flags) > 0 && !flagsPresent(posFlags, flags) {
			return false
		}
		return true
	}
}

// WrapperBlocker returns a BlockFunc that looks through commands which run
// another command (xargs rm, nice rm, ...) and applies inner to the wrapped
// command line. Leading flags, VAR=value assignments and numeric arguments
// (timeout durations, nice levels) of the wrapper are skipped.
func WrapperBlocker(wrappers []string, inner ...BlockFunc) BlockFunc {
	isWrapper := make(map[string]struct{}, len(wrappers))
	for _, w := range wrappers {
		isWrapper[w] = struct{}{}
	}
	var check BlockFunc
	check = func(args []string) bool {
		if len(args) == 0 {
			return false
		}
		if _, ok := isWrapper[commandName(args)]; !ok {
			return false
		}
		rest := args[1:]
		for len(rest) > 0 && isWrapperOperand(rest[0]) {
			rest = rest[1:]
		}
		for _, bf := range inner {
			if bf(rest) {
				return true
			}
		}
		return check(rest)
	}
	return check
}

func isWrapperOperand(arg string) bool {
	if arg == "" {
		return true
	}
	return arg[0] == '-' || (arg[0] >= '0' && arg[0] <= '9') || strings.Contains(arg, "=")
}

// splitArgsFlags separates positional arguments from flags (anything
// starting with '-').
func splitArgsFlags(args []string) (positional, flags []string) {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
		} else {
			positional = append(positional, a)
		}
	}
	return
}

// prefixMatch returns true if haystack starts with all elements of needle.
func prefixMatch(haystack, needle []string) bool {
	if len(haystack) < len(needle) {
		return false
	}
	for i, n := range needle {
		if haystack[i] != n {
			return false
		}
	}
	return true
}

// flagsPresent returns true if any of the listed flags appears in the
// actual flags.
func flagsPresent(actual, anyOf []string) bool {
	have := make(map[string]struct{}, len(actual))
	for _, f := range actual {
		have[f] = struct{}{}
	}
	for _, r := range anyOf {
		if _, ok := have[r]; ok {
			return true
		}
	}
	return false
}

// Wrappers run their arguments as a command.
var Wrappers = []string{"xargs", "nice", "nohup", "timeout", "env", "command", "exec", "time", "stdbuf"}

// DefaultBlockFuncs returns the standard block functions for the given
// command block list.
func DefaultBlockFuncs(blocked []string) []BlockFunc {
	byName := CommandsBlocker(blocked)
	byArgs := []BlockFunc{
		ArgumentsBlocker("find", nil, []string{"-delete", "-exec", "-execdir", "-ok"}),
		ArgumentsBlocker("sed", nil, []string{"-i", "--in-place"}),
		ArgumentsBlocker("git", []string{"push"}, nil),
		ArgumentsBlocker("git", []string{"reset"}, []string{"--hard"}),
		ArgumentsBlocker("git", []string{"clean"}, nil),
		ArgumentsBlocker("git", []string{"checkout"}, []string{"--", "-f", "--force"}),
		ArgumentsBlocker("bash", nil, []string{"-c"}),
		ArgumentsBlocker("sh", nil, []string{"-c"}),
		ArgumentsBlocker("zsh", nil, []string{"-c"}),
	}
	funcs := append([]BlockFunc{byName}, byArgs...)
	return append(funcs, WrapperBlocker(Wrappers, funcs...))
}
