package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) record(name string, args []string) error {
	s.calls = append(s.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (s *stubExec) Login(ctx context.Context) error  { return s.record("login", nil) }
func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout", nil) }
func (s *stubExec) List(ctx context.Context) error   { return s.record("list", nil) }
func (s *stubExec) Show(ctx context.Context, args []string) error {
	return s.record("show", args)
}
func (s *stubExec) Upvote(ctx context.Context, args []string) error {
	return s.record("upvote", args)
}
func (s *stubExec) Pending(ctx context.Context) error { return s.record("pending", nil) }
func (s *stubExec) Approve(ctx context.Context, args []string) error {
	return s.record("approve", args)
}
func (s *stubExec) Reject(ctx context.Context, args []string) error {
	return s.record("reject", args)
}

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()

	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "anonymous" }, scanner)
	return printed
}

func TestRunREPL_DispatchesCommandsWithArgs(t *testing.T) {
	exec := &stubExec{loggedIn: true}

	runScript(t, exec, strings.Join([]string{
		"list",
		"show 2",
		"upvote E1",
		"pending",
		"approve interview E2",
		"reject oa Q1",
		"logout",
		"exit",
	}, "\n"))

	require.Equal(t, []string{
		"list",
		"show 2",
		"upvote E1",
		"pending",
		"approve interview E2",
		"reject oa Q1",
		"logout",
	}, exec.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	exec := &stubExec{}
	printed := runScript(t, exec, "frobnicate\nexit")

	var saw bool
	for _, line := range printed {
		if strings.Contains(line, "Unknown command: frobnicate") {
			saw = true
		}
	}
	require.True(t, saw)
	require.Empty(t, exec.calls)
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	printedOut := runScript(t, &stubExec{loggedIn: false}, "help\nexit")
	joined := strings.Join(printedOut, "\n")
	require.Contains(t, joined, "login")
	require.NotContains(t, joined, "approve")

	printedIn := runScript(t, &stubExec{loggedIn: true}, "help\nexit")
	joined = strings.Join(printedIn, "\n")
	require.Contains(t, joined, "approve")
	require.Contains(t, joined, "logout")
}

func TestRunREPL_BlankLinesSkippedAndEOFExits(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "\n\n\nlist\n")
	require.Equal(t, []string{"list"}, exec.calls)
}
