// Package main is the entry point for the ja2cfg settings CLI.
package main

import (
	"os"

	"github.com/simonmarcel/ja2-stracciatella/cmd/ja2cfg/app"
	"github.com/simonmarcel/ja2-stracciatella/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
