package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/scl-format/format"
	"github.com/signadot/scl-format/ir"
	"github.com/signadot/scl-format/token"
)

type EncState struct {
	depth, indent int
	comments      bool
	bools         BoolStyle

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w.  In SCL format node must be a class, the
// document root.  The output is produced in full before anything is
// written to w, so an encoding error leaves w untouched.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if node == nil {
		return fmt.Errorf("%w: %w", ErrEncoding, ir.ErrNil)
	}
	buf := bytes.NewBuffer(nil)
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, buf, es)
	case format.YAMLFormat:
		err = encodeYAML(node, buf, es)
	default:
		err = encodeDoc(node, buf, es)
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// EncodeValue writes node in SCL as it appears after "key ::" in an entry,
// eg "num { 3 }".  Nested classes are indented from column 0.
func EncodeValue(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if node == nil {
		return fmt.Errorf("%w: %w", ErrEncoding, ir.ErrNil)
	}
	buf := bytes.NewBuffer(nil)
	if err := encodeValue(node, buf, es); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent <= 0 {
		es.indent = 4
	}
	return es
}

func encodeDoc(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	if node.Type() != ir.ClassType {
		return fmt.Errorf("%w: document root is %s, not Class", ErrEncoding, node.Type())
	}
	if es.comments && node.Comment != nil && len(node.Comment.Head) > 0 {
		for _, ln := range node.Comment.Head {
			if err := writeComment(buf, ln, es); err != nil {
				return err
			}
			buf.WriteByte('\n')
		}
		if node.Len() != 0 {
			buf.WriteByte('\n')
		}
	}
	if node.Len() == 0 {
		if buf.Len() == 0 {
			buf.WriteByte('\n')
		}
		return nil
	}
	return encodeEntries(node, buf, es)
}

func writeIndent(buf *bytes.Buffer, es *EncState) {
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func writeComment(buf *bytes.Buffer, txt string, es *EncState) error {
	if strings.Contains(txt, "]") {
		return fmt.Errorf("%w: comment %q contains ']'", ErrEncoding, txt)
	}
	buf.WriteString(applyColor(es, ir.NullType, CommentColor, "[ "+txt+" ]"))
	return nil
}

func encodeEntries(class *ir.Node, buf *bytes.Buffer, es *EncState) error {
	for k, v := range class.Entries() {
		if err := encodeEntry(k, v, buf, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntry(key string, val *ir.Node, buf *bytes.Buffer, es *EncState) error {
	withComments := es.comments && val.Comment != nil
	if withComments {
		for _, ln := range val.Comment.Head {
			writeIndent(buf, es)
			if err := writeComment(buf, ln, es); err != nil {
				return err
			}
			buf.WriteByte('\n')
		}
	}
	writeIndent(buf, es)
	if token.KeyNeedsQuote(key) {
		key = token.Quote(key)
	}
	buf.WriteString(applyColor(es, val.Type(), FieldColor, key))
	buf.WriteString(applyColor(es, val.Type(), SepColor, " :: "))
	if err := encodeValue(val, buf, es); err != nil {
		return err
	}
	if withComments && val.Comment.Line != "" {
		buf.WriteString("  ")
		if err := writeComment(buf, val.Comment.Line, es); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	return nil
}

func encodeValue(val *ir.Node, buf *bytes.Buffer, es *EncState) error {
	t := val.Type()
	switch t {
	case ir.NullType:
		return fmt.Errorf("%w: Null value at %s has no SCL form", ErrEncoding, val.Path())
	case ir.ClassType:
		return encodeClass(val, buf, es)
	case ir.ListType:
		return encodeList(val, buf, es)
	}
	lit, err := literal(val, es)
	if err != nil {
		return err
	}
	buf.WriteString(applyColor(es, t, KeywordColor, t.Keyword()))
	buf.WriteString(applyColor(es, t, SepColor, " { "))
	buf.WriteString(lit)
	buf.WriteString(applyColor(es, t, SepColor, " }"))
	return nil
}

func encodeClass(val *ir.Node, buf *bytes.Buffer, es *EncState) error {
	buf.WriteString(applyColor(es, ir.ClassType, KeywordColor, "class"))
	if val.Len() == 0 {
		buf.WriteString(applyColor(es, ir.ClassType, SepColor, " { }"))
		return nil
	}
	buf.WriteString(applyColor(es, ir.ClassType, SepColor, " {"))
	buf.WriteByte('\n')
	es.depth++
	if err := encodeEntries(val, buf, es); err != nil {
		return err
	}
	es.depth--
	writeIndent(buf, es)
	buf.WriteString(applyColor(es, ir.ClassType, SepColor, "}"))
	return nil
}

func encodeList(val *ir.Node, buf *bytes.Buffer, es *EncState) error {
	elem := val.ElemType()
	if elem == ir.NullType {
		elem = ir.StringType
	}
	buf.WriteString(applyColor(es, ir.ListType, KeywordColor, "list"))
	buf.WriteString(applyColor(es, ir.ListType, SepColor, "("))
	buf.WriteString(applyColor(es, elem, KeywordColor, elem.Keyword()))
	buf.WriteString(applyColor(es, ir.ListType, SepColor, ") {"))
	for i, v := range val.Values() {
		if !v.Type().IsScalar() {
			return fmt.Errorf("%w: list element %s is %s", ErrEncoding, v.Path(), v.Type())
		}
		lit, err := literal(v, es)
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteString(applyColor(es, ir.ListType, SepColor, ","))
		}
		buf.WriteByte(' ')
		buf.WriteString(lit)
	}
	buf.WriteString(applyColor(es, ir.ListType, SepColor, " }"))
	return nil
}

// literal renders the payload of a scalar node.
func literal(val *ir.Node, es *EncState) (string, error) {
	t := val.Type()
	var s string
	switch t {
	case ir.BoolType:
		s = formatBool(val.Bool(), es.bools)
	case ir.IntType:
		s = strconv.FormatInt(val.Int64(), 10)
	case ir.FloatType:
		f, err := formatFloat(val.Float64())
		if err != nil {
			return "", fmt.Errorf("%w at %s", err, val.Path())
		}
		s = f
	case ir.StringType:
		s = token.Quote(val.Str())
	case ir.MLStringType:
		if strings.Contains(val.Str(), "'") {
			return "", fmt.Errorf("%w: multiline string at %s contains '", ErrEncoding, val.Path())
		}
		s = "'" + val.Str() + "'"
	default:
		return "", fmt.Errorf("%w: %s at %s is not a literal", ErrEncoding, t, val.Path())
	}
	return applyColor(es, t, ValueColor, s), nil
}

func formatBool(v bool, style BoolStyle) string {
	switch {
	case style == TrueFalse && v:
		return "true"
	case style == TrueFalse:
		return "false"
	case v:
		return "yes"
	default:
		return "no"
	}
}

// formatFloat gives the shortest decimal which parses back to f, always
// with a '.' so that it lexes as a float.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: float %v has no SCL form", ErrEncoding, f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}
