package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/carregistry/internal/client/client"
	"github.com/dmitrijs2005/carregistry/internal/client/config"
)

type App struct {
	config  *config.Config
	client  client.Client
	account string
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewRentalClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.client.Close(); err != nil {
			log.Printf("error closing connection: %v", err)
		}
	}()

	printlnFn("Welcome to car registry CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.account != ""
}

func (a *App) getStatus() string {
	if a.account == "" {
		return "(anonymous)"
	}
	return "(" + a.account + ")"
}
