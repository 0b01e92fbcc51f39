package main

import (
	"context"
	"os"
	"os/signal"

	"cloud-gen/cmd/cloudgen/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Execute(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}
