package cli

import (
	"bufio"
	"context"
	"flag"
	"os"

	"github.com/avasquez/taskkeeper/internal/client/client"
)

// Run parses client flags, builds the App, and hands control to the REPL.
func Run(ctx context.Context) error {

	addr := flag.String("addr", "http://localhost:3000", "base URL of the task server")
	flag.Parse()

	// one buffered reader shared by prompts and the command scanner, so no
	// input is lost between the two
	reader := bufio.NewReader(os.Stdin)

	app := NewApp(client.New(*addr), reader, os.Stdout)
	scanner := bufio.NewScanner(reader)

	runREPL(ctx, app, app.status, scanner)
	return nil
}
