package main

import (
	"context"
	"log"

	"github.com/avasquez/taskkeeper/internal/client/cli"
)

func main() {

	ctx := context.Background()

	if err := cli.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
