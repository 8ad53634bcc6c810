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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Workouts(ctx context.Context, args []string) error
	DietPlans(ctx context.Context, args []string) error
	Sleep(ctx context.Context, args []string) error
	Analytics(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - whoami                      - show the current user
//	  - profile                     - view/edit the profile
//	  - workouts [list|add|edit <id>|del <id>]
//	  - diet     [list|add|edit <id>|del <id>]
//	  - sleep    [list|add|edit <id>|del <id>]
//	  - analytics                   - dashboard and health score
//	  - logout, exit | quit
//
// Errors returned by command handlers are printed here; handlers surface
// their own notifications for save/delete outcomes. This keeps the loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("fp> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, workouts, diet, sleep, analytics, logout, exit")
				printlnFn("Resource subcommands: list (default), add, edit <id>, del <id>")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "workouts", "w":
			cmdErr = a.Workouts(ctx, args)

		case "diet", "d":
			cmdErr = a.DietPlans(ctx, args)

		case "sleep", "s":
			cmdErr = a.Sleep(ctx, args)

		case "analytics":
			cmdErr = a.Analytics(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
	}
}
