package dig_container

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/genmo/apps/api/echo"
	"github.com/trezcool/genmo/core"
	"github.com/trezcool/genmo/core/content"
	logsvc "github.com/trezcool/genmo/services/logger"
	"github.com/trezcool/genmo/storage"
)

// Shutdown receives OS signals and internal shutdown requests alike.
type Shutdown chan os.Signal

type ServerParams struct {
	dig.In
	Conf       *core.Config
	Store      *content.Store
	Validate   *validator.Validate
	Translator ut.Translator
	Logger     core.Logger
	Shutdown   Shutdown
}

func newZapLogger(conf *core.Config) *logsvc.ZapLogger {
	zl, err := logsvc.NewZapLogger(conf.Debug)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	return zl.With("app", conf.AppName, "env", conf.Env)
}

func newLogger(conf *core.Config, zl *logsvc.ZapLogger) core.Logger {
	logger := logsvc.NewRollbarLogger(zl, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

func newKVStore(conf *core.Config, logger core.Logger) core.KVStore {
	kv, err := storage.Open(context.Background(), conf, logger)
	if err != nil {
		logger.Fatal("opening storage", "error", err, "backend", conf.Storage.Backend)
	}
	return kv
}

func newContentStore(conf *core.Config, kv core.KVStore, logger core.Logger) *content.Store {
	store, err := content.NewStore(context.Background(), kv, logger, content.Options{
		KeyPrefix: conf.Storage.KeyPrefix,
		ActorID:   conf.ActorID,
	})
	if err != nil {
		logger.Fatal("loading content", "error", err)
	}
	return store
}

func newValidate(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newShutdown() Shutdown {
	ch := make(Shutdown, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return ch
}

func newServer(p ServerParams) *echoapi.Server {
	return echoapi.NewServer(
		&echoapi.Options{
			Address:        p.Conf.Server.Address,
			Debug:          p.Conf.Debug,
			TestMode:       p.Conf.TestMode,
			DisableReqLogs: p.Conf.Server.DisableReqLogs,
			AppName:        p.Conf.AppName,
		},
		&echoapi.Deps{
			Store:      p.Store,
			Validate:   p.Validate,
			Translator: p.Translator,
			Logger:     p.Logger,
		},
		func() {
			select {
			case p.Shutdown <- syscall.SIGTERM:
			default: // already shutting down
			}
		},
	)
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newZapLogger))
	must(c.Provide(newLogger))
	must(c.Provide(newKVStore))
	must(c.Provide(newContentStore))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidate))
	must(c.Provide(newShutdown))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
