// Package cli implements the interactive terminal frontend for the task
// service: a small REPL over the HTTP client with prompts for credentials
// and task text.
package cli

import (
	"bufio"
	"io"

	"github.com/avasquez/taskkeeper/internal/client/client"
)

// App bundles the API client with the input/output streams the command
// handlers use.
type App struct {
	client *client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *client.Client, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		client: c,
		reader: reader,
		out:    out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.IsAuthenticated()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "logged in"
	}
	return "not logged in"
}
