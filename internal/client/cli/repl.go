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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	RegisterOwner(ctx context.Context) error
	RegisterRenter(ctx context.Context) error
	Rent(ctx context.Context, args []string) error
	ShowOwner(ctx context.Context, args []string) error
	ListOwners(ctx context.Context) error
	ShowRenter(ctx context.Context, args []string) error
	ListRenters(ctx context.Context) error
	ListTransfers(ctx context.Context, args []string) error
	Snapshot(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the registry CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. The loop exits on EOF, on context
// cancellation, or when the user types "exit" or "quit".
//
// Commands
//
//	Always:
//	  - help                    show available commands
//	  - ping                    check the server
//	  - owner [account]         show one owner (defaults to yourself)
//	  - owners                  list owners
//	  - renter [account]        show one renter (defaults to yourself)
//	  - renters                 list renters
//	  - transfers [account]     list payments (defaults to yourself)
//	  - exit | quit             leave the program
//
//	Not logged in:
//	  - login                   mint a token for an account
//
//	Logged in:
//	  - register-owner          list your car
//	  - register-renter         register as a renter
//	  - rent [owner-account]    rent a car
//	  - snapshot                export a registry snapshot (admin only)
//	  - logout                  forget the token
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("cr %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
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
				printlnFn("Available commands: register-owner, register-renter, rent, owner, owners, renter, renters, transfers, snapshot, ping, logout, exit")
			} else {
				printlnFn("Available commands: login, owner, owners, renter, renters, transfers, ping, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "ping":
			cmdErr = a.Ping(ctx)

		case "register-owner":
			cmdErr = a.RegisterOwner(ctx)

		case "register-renter":
			cmdErr = a.RegisterRenter(ctx)

		case "rent":
			cmdErr = a.Rent(ctx, args)

		case "owner":
			cmdErr = a.ShowOwner(ctx, args)

		case "owners":
			cmdErr = a.ListOwners(ctx)

		case "renter":
			cmdErr = a.ShowRenter(ctx, args)

		case "renters":
			cmdErr = a.ListRenters(ctx)

		case "transfers":
			cmdErr = a.ListTransfers(ctx, args)

		case "snapshot":
			cmdErr = a.Snapshot(ctx)

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
