package main

import (
	"context"
	"log"
	"os"
)

func main() {
	container := buildContainer()

	root := newRootCommand(container, os.Stdin, os.Stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Printf("autocomplete: %v", err)
		os.Exit(1)
	}
}
