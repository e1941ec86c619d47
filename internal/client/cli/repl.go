package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	loggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Guest(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	SetCategory(ctx context.Context, arg string) error
	Locate(ctx context.Context) error
	Refresh(ctx context.Context) error
	SetTheme(ctx context.Context, arg string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to a. The loop exits on scanner EOF or "exit"/"quit". Command
// handlers surface their own errors; the loop stays resilient and only
// does I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rp %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.loggedIn() {
				printlnFn("Available commands: (l)ist, category <name>, locate, refresh, theme <light|dark>, logout, exit")
			} else {
				printlnFn("Available commands: login, register, guest, (l)ist, category <name>, locate, refresh, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "guest":
			_ = a.Guest(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list", "vendors":
			_ = a.List(ctx)

		case "category":
			_ = a.SetCategory(ctx, arg)

		case "locate":
			_ = a.Locate(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "theme":
			_ = a.SetTheme(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
