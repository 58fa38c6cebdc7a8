package main

import (
	"context"
	"log"
	"os"

	"github.com/trezcool/genmo/core"
	"github.com/trezcool/genmo/core/content"
	logsvc "github.com/trezcool/genmo/services/logger"
	"github.com/trezcool/genmo/storage"
)

func main() {
	conf := core.NewConfig()

	zl, err := logsvc.NewZapLogger(conf.Debug)
	if err != nil {
		log.Fatal(err)
	}
	logger := zl.With("app", "admin")

	ctx := context.Background()
	kv, err := storage.Open(ctx, conf, logger)
	if err != nil {
		logger.Fatal("opening storage", "error", err)
	}

	store, err := content.NewStore(ctx, kv, logger, content.Options{
		KeyPrefix: conf.Storage.KeyPrefix,
		ActorID:   conf.ActorID,
	})
	if err != nil {
		_ = kv.Close()
		logger.Fatal("loading content", "error", err)
	}

	// start CLI
	cli := commandLine{store: store, in: os.Stdin, out: os.Stdout}
	err = cli.run(os.Args)
	_ = kv.Close()
	zl.Sync()
	if err != nil {
		if err != errHelp {
			logger.Error("command failed", "error", err)
		}
		os.Exit(1)
	}
}
