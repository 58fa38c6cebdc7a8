package logsvc

import (
	"fmt"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/genmo/core"
)

// RollbarLogger writes every entry to the underlying logger and reports
// warnings and errors to Rollbar.
type RollbarLogger struct {
	next core.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(next core.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Address)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{next: next}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// prepare turns msg and keysAndValues into rollbar args: msg | error, map[string]interface{}.
func (l RollbarLogger) prepare(msg string, keysAndValues []interface{}) []interface{} {
	args := []interface{}{msg}
	extras := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		var val interface{}
		if i+1 < len(keysAndValues) {
			val = keysAndValues[i+1]
		}
		if err, ok := val.(error); ok {
			args = append(args, err)
			continue
		}
		extras[key] = val
	}
	if len(extras) > 0 {
		args = append(args, extras)
	}
	return args
}

func (l RollbarLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.next.Debug(msg, keysAndValues...)
}

func (l RollbarLogger) Info(msg string, keysAndValues ...interface{}) {
	l.next.Info(msg, keysAndValues...)
}

func (l RollbarLogger) Warn(msg string, keysAndValues ...interface{}) {
	rollbar.Warning(l.prepare(msg, keysAndValues)...)
	l.next.Warn(msg, keysAndValues...)
}

func (l RollbarLogger) Error(msg string, keysAndValues ...interface{}) {
	rollbar.Error(l.prepare(msg, keysAndValues)...)
	l.next.Error(msg, keysAndValues...)
}

func (l RollbarLogger) Fatal(msg string, keysAndValues ...interface{}) {
	rollbar.Critical(l.prepare(msg, keysAndValues)...)
	rollbar.Wait()
	l.next.Fatal(msg, keysAndValues...)
}
