package tools

import (
	"encoding/json"
	"fmt"

	"github.com/cleitonmarx/moneypilot/internal/common"
	"github.com/cleitonmarx/moneypilot/internal/domain"
)

// Serialize renders a tool return value as JSON text.
//
// Values implementing json.Marshaler use their own encoding and record
// dumpers are encoded through their dump. Errors and fmt.Stringer values
// become the JSON string of their text. Everything else goes through
// encoding/json; values that cannot be encoded become the JSON string of
// their default format.
func Serialize(value any) string {
	switch v := value.(type) {
	case json.Marshaler:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	case domain.RecordDumper:
		if b, err := json.Marshal(v.Dump()); err == nil {
			return string(b)
		}
	case error:
		return common.SafeJSON(v.Error())
	case fmt.Stringer:
		return common.SafeJSON(v.String())
	default:
		return common.SafeJSON(v)
	}
	return common.SafeJSON(fmt.Sprint(value))
}
