package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Strength(ctx context.Context) error
	Forgot(ctx context.Context) error
	Contact(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - signup         create an account
//	  - login          authenticate, optionally remembered
//	  - strength       rate a password
//	  - forgot         request a password reset
//	  - contact        send a message
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help, strength, contact, exit | quit as above
//	  - whoami         show the current user, re-checking session expiry
//	  - logout         end the session
//
// The loop also ends when ctx is cancelled, even while waiting for input.
//
// Errors returned by command handlers are not fatal: the user has already
// been told through the presenter, and the loop keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("portal%s> ", statusFn()))
		line, err := readLine(ctx, reader)
		if ctx.Err() != nil {
			return
		}
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, strength, contact, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, strength, forgot, contact, exit")
			}

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "strength":
			_ = a.Strength(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// readLine reads one line from reader, giving up when ctx is done. The read
// itself cannot be interrupted; after cancellation the reader must not be
// used again.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}
