package main

import (
	"context"
	"os"

	"github.com/walteh/gsmigrate/pkg/status"
)

func main() {
	ctx := context.Background()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger := status.NewUserLogger(ctx, os.Stdout, nil)
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
