package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// TruncatedMarker is appended to a stream that hit the output cap.
const TruncatedMarker = "\n[output truncated]"

// ErrRedirectBlocked is reported for a redirection that would write a file.
var ErrRedirectBlocked = errors.New("redirect blocked")

// writeFlags are the open flags that can modify a file.
const writeFlags = os.O_WRONLY | os.O_RDWR | os.O_CREATE | os.O_TRUNC | os.O_APPEND

// Shell evaluates pipelines with an in-process POSIX interpreter. Every call
// starts from the same directory and environment; nothing carries over
// between evaluations.
type Shell struct {
	dir        string
	env        []string
	blockFuncs []BlockFunc
	timeout    time.Duration
	maxOutput  int
}

// Options configures a Shell. Zero values mean: cwd, no deadline, no cap.
type Options struct {
	Dir        string
	Env        []string // defaults to os.Environ()
	BlockFuncs []BlockFunc
	Timeout    time.Duration
	MaxOutput  int // per stream, in bytes
}

// New creates a Shell.
func New(opts Options) *Shell {
	dir := opts.Dir
	if dir == "" {
		dir, _ = os.Getwd()
	}
	env := opts.Env
	if env == nil {
		env = os.Environ()
	}
	return &Shell{
		dir:        dir,
		env:        env,
		blockFuncs: opts.BlockFuncs,
		timeout:    opts.Timeout,
		maxOutput:  opts.MaxOutput,
	}
}

// Result is the outcome of one evaluation.
type Result struct {
	Stdout   string
	Stderr   string
	Err      error
	ExitCode int
	Duration time.Duration
}

// Run evaluates command and packages the outcome. It never returns a Go
// error; failures are reported in Result.Err and Result.ExitCode.
func (s *Shell) Run(ctx context.Context, command string) Result {
	start := time.Now()
	stdout, stderr, err := s.Exec(ctx, command)
	return Result{
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
		ExitCode: ExitCode(err),
		Duration: time.Since(start),
	}
}

// ErrText describes a failure that is not a plain non-zero exit (parse
// errors, blocked commands, timeouts). It is empty otherwise.
func (r Result) ErrText() string {
	if r.Err == nil {
		return ""
	}
	var exitErr interp.ExitStatus
	if errors.As(r.Err, &exitErr) {
		return ""
	}
	return r.Err.Error()
}

// Exec runs a command synchronously, returning stdout, stderr, and any error.
func (s *Shell) Exec(ctx context.Context, command string) (string, string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	stdout := newCapWriter(s.maxOutput)
	stderr := newCapWriter(s.maxOutput)
	err := s.execCommon(ctx, command, stdout, stderr)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("timed out after %s: %w", s.timeout, err)
	}
	return stdout.String(), stderr.String(), err
}

// Dir returns the evaluation directory.
func (s *Shell) Dir() string { return s.dir }

// Parse checks that command is syntactically valid shell.
func Parse(command string) (*syntax.File, error) {
	parsed, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, fmt.Errorf("could not parse command: %w", err)
	}
	return parsed, nil
}

func (s *Shell) execCommon(ctx context.Context, command string, stdout, stderr io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command execution panic: %v", r)
		}
	}()

	parsed, err := Parse(command)
	if err != nil {
		return err
	}

	runner, err := s.newInterp(stdout, stderr)
	if err != nil {
		return fmt.Errorf("could not create interpreter: %w", err)
	}

	return runner.Run(ctx, parsed)
}

func (s *Shell) newInterp(stdout, stderr io.Writer) (*interp.Runner, error) {
	return interp.New(
		interp.StdIO(nil, stdout, stderr),
		interp.Interactive(false),
		interp.Env(expand.ListEnviron(s.env...)),
		interp.Dir(s.dir),
		interp.ExecHandlers(s.blockHandler()),
		interp.OpenHandler(readOnlyOpenHandler(interp.DefaultOpenHandler())),
	)
}

// readOnlyOpenHandler refuses redirections that would write to a file, so a
// half-typed "> file" cannot clobber anything. /dev/null stays writable.
func readOnlyOpenHandler(next interp.OpenHandlerFunc) interp.OpenHandlerFunc {
	return func(ctx context.Context, path string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
		if flag&writeFlags != 0 && path != os.DevNull {
			// The interpreter prints a PathError and fails the statement;
			// any other error would abort the whole run.
			return nil, &os.PathError{Op: "open", Path: path, Err: ErrRedirectBlocked}
		}
		return next(ctx, path, flag, perm)
	}
}

func (s *Shell) blockHandler() func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return next(ctx, args)
			}
			for _, bf := range s.blockFuncs {
				if bf(args) {
					hc := interp.HandlerCtx(ctx)
					fmt.Fprintf(hc.Stderr, "pipr: command blocked: %q\n", args[0])
					return fmt.Errorf("command blocked: %q", args[0])
				}
			}
			return next(ctx, args)
		}
	}
}

// ExitCode extracts the exit code from an interpreter error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr interp.ExitStatus
	if errors.As(err, &exitErr) {
		return int(exitErr)
	}
	return 1
}

// capWriter buffers up to limit bytes and drops the rest. Writes never fail,
// so producers are not killed by EPIPE-style errors.
type capWriter struct {
	mu        sync.Mutex // pipeline stages write concurrently
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newCapWriter(limit int) *capWriter {
	return &capWriter{limit: limit}
}

func (w *capWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.limit <= 0 {
		return w.buf.Write(p)
	}
	room := w.limit - w.buf.Len()
	if room <= 0 {
		w.truncated = true
		return len(p), nil
	}
	if len(p) > room {
		w.buf.Write(p[:room])
		w.truncated = true
		return len(p), nil
	}
	return w.buf.Write(p)
}

func (w *capWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.truncated {
		return string(trimPartialRune(w.buf.Bytes())) + TruncatedMarker
	}
	return w.buf.String()
}

// trimPartialRune drops a rune the cap cut in half. Everything before it is
// left as written.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			return b
		}
	}
	return b
}
