// Package main is the entry point for the todos CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todos/internal/backend/badgerstore"
	"todos/internal/cli"
	"todos/internal/commands"
	"todos/internal/config"
	"todos/internal/service"
	"todos/internal/todo"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// One generator per process; every unit of work raises its floor past
	// the ids it loads.
	ops := service.New(todo.NewIDGenerator(0))

	factory := func(ctx context.Context, cfg *config.Config) (*commands.Env, error) {
		storeCfg := badgerstore.DefaultConfig(cfg.DataDir)
		storeCfg.SyncWrites = cfg.SyncWrites
		storeCfg.Logger = cfg.Log()
		store, err := badgerstore.Open(storeCfg)
		if err != nil {
			return nil, err
		}
		return &commands.Env{Sessions: store, Ops: ops}, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
