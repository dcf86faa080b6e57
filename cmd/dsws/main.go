package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	clientcmd "github.com/rzbill/dsws/internal/cmd/client"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := clientcmd.NewRoot(clientcmd.Options{RedirectGRPCLog: true})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", clientcmd.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}
