package main

import (
	"context"
	"os"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/arena"
	"github.com/outofforest/arena/console"
)

// Demo heap size, matching the original walkthrough.
const heapCapacity = 20

func main() {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
	defer cancel()

	c := console.New(arena.New(heapCapacity), os.Stdin, os.Stdout)

	group := parallel.NewGroup(ctx)
	group.Spawn("console", parallel.Exit, c.Run)

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Get(ctx).Fatal("console failed", zap.Error(err))
	}
}
