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
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	ListClients(ctx context.Context) error
	ShowClient(ctx context.Context) error
	AddClient(ctx context.Context) error
	UpdateClient(ctx context.Context) error
	DeleteClient(ctx context.Context) error
	BrowseOrders(ctx context.Context) error
	AddOrder(ctx context.Context) error
	DeleteOrder(ctx context.Context) error
	ListAccounts(ctx context.Context) error
	ListDropdowns(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the StitchDesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sd %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: clients, showclient, addclient, editclient, delclient, orders, addorder, delorder, accounts, dropdowns, ping, logout, exit")
			} else {
				printlnFn("Available commands: login, register, ping, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "c", "clients":
			_ = a.ListClients(ctx)

		case "showclient":
			_ = a.ShowClient(ctx)

		case "addclient":
			_ = a.AddClient(ctx)

		case "editclient":
			_ = a.UpdateClient(ctx)

		case "delclient":
			_ = a.DeleteClient(ctx)

		case "o", "orders":
			_ = a.BrowseOrders(ctx)

		case "addorder":
			_ = a.AddOrder(ctx)

		case "delorder":
			_ = a.DeleteOrder(ctx)

		case "accounts":
			_ = a.ListAccounts(ctx)

		case "dropdowns":
			_ = a.ListDropdowns(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
