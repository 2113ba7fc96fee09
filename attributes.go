package svgdom

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// AttrMap is an ephemeral dictionary of attribute values, consumed by
// Element.SetAttributes and discarded. Values may be
//
//   - nil               the attribute is removed
//   - string            used as-is
//   - dimen.DU          rendered as a dimension, e.g. "10pt"
//   - percent.Percent   rendered as a percentage, e.g. "80%"
//   - Go numbers/bools  rendered in their canonical text form
//
// Any other value falls back to its fmt representation, with fmt.Stringer
// honored first.
type AttrMap map[string]any

func attrValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case dimen.DU:
		return v.String()
	case percent.Percent:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}
