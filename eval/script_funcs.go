package eval

import (
	"os"

	"github.com/signadot/scl-format/gomap"
	"github.com/signadot/scl-format/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("has", func(params ...any) (any, error) {
			_, err := doc.GetPath(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("typeof", func(params ...any) (any, error) {
			y, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if kw := y.Type().Keyword(); kw != "" {
				return kw, nil
			}
			return "null", nil
		},
			new(func(string) string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			y, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return plain(y), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// plain converts y for use in expressions: classes become unordered maps.
func plain(y *ir.Node) any {
	if y.Type() == ir.ClassType {
		return gomap.ToMap(y)
	}
	return gomap.ToAny(y)
}
