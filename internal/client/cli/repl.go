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
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Metrics(ctx context.Context, category string) error
	WhoAmI(ctx context.Context) error
	JSON(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the dashboard CLI.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on EOF, when
// ctx is cancelled (e.g. Ctrl+C) or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help              show available commands
//	  - register          create an account
//	  - login             authenticate
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - help              show available commands
//	  - dashboard | show  load and render the dashboard
//	  - metrics [cat]     list metrics, optionally of one category
//	  - json              print the chart options of the loaded dashboard
//	  - whoami            describe the stored session
//	  - logout            clear the session
//	  - exit | quit       leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves. Prompts issued by the handlers read from the
// same reader, so no input is lost to read-ahead buffering.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("dash %s> ", statusFn()))
		line, ok := readLine(ctx, reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: dashboard (show), metrics [category], json, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard", "show":
			_ = a.Dashboard(ctx)

		case "metrics":
			category := ""
			if len(parts) > 1 {
				category = parts[1]
			}
			_ = a.Metrics(ctx, category)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "json":
			_ = a.JSON(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine waits for the next line of reader or for ctx to be done. The read
// runs in its own goroutine; only one is in flight at a time, so command
// prompts reading from the same reader never race with it. ok is false on
// cancellation or on EOF without data.
func readLine(ctx context.Context, reader *bufio.Reader) (string, bool) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", false
	case r := <-ch:
		if r.err != nil && r.line == "" {
			return "", false
		}
		return r.line, true
	}
}
