package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/listen/internal/logging"
)

// printlnFn is a test seam for the prompt and REPL messages.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a stub.
type execIface interface {
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Day(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Setup(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Reset(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  add                 write a new entry
  edit <n|id>         rewrite an entry (resets its date)
  delete <n|id>       remove an entry
  (l)ist              entries, today first
  show <n|id>         print one entry
  day [YYYY-MM-DD]    entries written on a day
  stats               total, today and streak
  profile             show the profile
  setup               create or edit the profile
  avatar [path|clear] show, set or clear the avatar
  reset               clear the profile and avatar
  exit | quit         leave`

// runREPL reads one command per line from reader and dispatches it. The
// loop ends on EOF, on "exit" or "quit", or when ctx is done. Command
// errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("listen %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		cmdCtx := logging.WithFields(ctx, "command", cmd)

		var cmdErr error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)
		case "add", "new":
			cmdErr = a.Add(cmdCtx, args)
		case "edit":
			cmdErr = a.Edit(cmdCtx, args)
		case "delete", "rm":
			cmdErr = a.Delete(cmdCtx, args)
		case "l", "list":
			cmdErr = a.List(cmdCtx, args)
		case "show":
			cmdErr = a.Show(cmdCtx, args)
		case "day":
			cmdErr = a.Day(cmdCtx, args)
		case "stats":
			cmdErr = a.Stats(cmdCtx, args)
		case "profile":
			cmdErr = a.Profile(cmdCtx, args)
		case "setup":
			cmdErr = a.Setup(cmdCtx, args)
		case "avatar":
			cmdErr = a.Avatar(cmdCtx, args)
		case "reset":
			cmdErr = a.Reset(cmdCtx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
