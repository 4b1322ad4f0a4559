package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Upvote(ctx context.Context, args []string) error
	Pending(ctx context.Context) error
	Approve(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
}

// runREPL is the prepshare read–eval–print loop.
//
// It reads a line from scanner, parses the first token as the command and
// dispatches to methods on 'a'. Unknown commands are reported back. The loop
// exits on scanner EOF or on "exit"/"quit".
//
// Commands:
//
//	Always:
//	  - help               — show available commands
//	  - list               — browse the experience feed
//	  - show <n|id>        — show one experience in full
//	  - exit | quit        — leave the program
//
//	Not logged in:
//	  - login              — paste an ID token to sign in
//
//	Logged in:
//	  - upvote <n|id>      — toggle your upvote on an experience
//	  - pending            — load the moderation queues
//	  - approve <cat> <id> — approve a pending item
//	  - reject <cat> <id>  — reject a pending item
//	  - logout             — sign out
//
// Command handlers surface their own errors through notifications; errors
// returned here are ignored to keep the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ps (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, show <n|id>, upvote <n|id>, pending, approve <cat> <id>, reject <cat> <id>, logout, exit")
			} else {
				printlnFn("Available commands: list, show <n|id>, login, exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "list":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "upvote":
			_ = a.Upvote(ctx, args)
		case "pending":
			_ = a.Pending(ctx)
		case "approve":
			_ = a.Approve(ctx, args)
		case "reject":
			_ = a.Reject(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
