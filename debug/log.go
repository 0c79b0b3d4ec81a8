package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/signadot/scl-format/encode"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/token"

	"go.uber.org/zap"
)

var (
	logOnce sync.Once
	sugar   *zap.SugaredLogger
)

// Logger returns the logger used for debug traces.  It writes development
// formatted entries to stderr.
func Logger() *zap.SugaredLogger {
	logOnce.Do(func() {
		cfg := zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		zl, err := cfg.Build()
		if err != nil {
			zl = zap.NewNop()
		}
		sugar = zl.Sugar().Named("scl")
	})
	return sugar
}

// SetLogger replaces the debug logger.
func SetLogger(l *zap.Logger) {
	logOnce.Do(func() {})
	sugar = l.Sugar()
}

type SCL struct{ *ir.Node }

func (y SCL) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %s %s", x.Type(), x.Path())
	}
	return buf.String()
}

// Logf formats msg with args and logs it at debug level.  *ir.Node
// arguments are rendered as SCL text, maps and slices as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			if x.Type() != ir.ClassType {
				args[i] = fmt.Sprintf("%s at %s", x.Type(), x.Path())
				continue
			}
			args[i] = SCL{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	Logger().Debugf(strings.TrimSuffix(msg, "\n"), args...)
}

// LogTokens logs a token listing.
func LogTokens(toks []token.Token, msg string) {
	buf := &strings.Builder{}
	token.PrintTokens(buf, toks, msg)
	Logger().Debug(buf.String())
}
