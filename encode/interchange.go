package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/scl-format/gomap"
	"github.com/signadot/scl-format/ir"
)

// encodeJSON writes indented JSON keeping entry order.  Floats always carry
// a fraction so they decode back as floats.
func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	if err := jsonValue(node, buf, es); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}

func jsonNL(buf *bytes.Buffer, es *EncState) {
	buf.WriteByte('\n')
	writeIndent(buf, es)
}

func jsonString(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(d)
}

func jsonValue(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	t := node.Type()
	switch t {
	case ir.ClassType:
		if node.Len() == 0 {
			buf.WriteString(applyColor(es, t, SepColor, "{}"))
			return nil
		}
		buf.WriteString(applyColor(es, t, SepColor, "{"))
		es.depth++
		i := 0
		for k, v := range node.Entries() {
			if i > 0 {
				buf.WriteString(applyColor(es, t, SepColor, ","))
			}
			i++
			jsonNL(buf, es)
			buf.WriteString(applyColor(es, v.Type(), FieldColor, jsonString(k)))
			buf.WriteString(applyColor(es, t, SepColor, ": "))
			if err := jsonValue(v, buf, es); err != nil {
				return err
			}
		}
		es.depth--
		jsonNL(buf, es)
		buf.WriteString(applyColor(es, t, SepColor, "}"))
		return nil
	case ir.ListType:
		if node.Len() == 0 {
			buf.WriteString(applyColor(es, t, SepColor, "[]"))
			return nil
		}
		buf.WriteString(applyColor(es, t, SepColor, "["))
		for i, v := range node.Values() {
			if i > 0 {
				buf.WriteString(applyColor(es, t, SepColor, ", "))
			}
			if err := jsonValue(v, buf, es); err != nil {
				return err
			}
		}
		buf.WriteString(applyColor(es, t, SepColor, "]"))
		return nil
	case ir.NullType:
		buf.WriteString(applyColor(es, t, ValueColor, "null"))
	case ir.BoolType:
		buf.WriteString(applyColor(es, t, ValueColor, strconv.FormatBool(node.Bool())))
	case ir.IntType:
		buf.WriteString(applyColor(es, t, ValueColor, strconv.FormatInt(node.Int64(), 10)))
	case ir.FloatType:
		f, err := formatFloat(node.Float64())
		if err != nil {
			return fmt.Errorf("%w at %s", err, node.Path())
		}
		buf.WriteString(applyColor(es, t, ValueColor, f))
	case ir.StringType, ir.MLStringType:
		buf.WriteString(applyColor(es, t, ValueColor, jsonString(node.Str())))
	default:
		panic("impossible production")
	}
	return nil
}

func encodeYAML(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	if err := checkFloats(node); err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(gomap.ToAny(node),
		yaml.Indent(es.indent),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf.Write(d)
	return nil
}

func checkFloats(node *ir.Node) error {
	return node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type() != ir.FloatType {
			return true, nil
		}
		if _, err := formatFloat(y.Float64()); err != nil {
			return false, fmt.Errorf("%w at %s", err, y.Path())
		}
		return true, nil
	})
}
