package dialog

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeOptions decodes begin options into a typed struct. Options arriving
// through in-process callers are usually already the right type; options that
// crossed a serialization boundary (HTTP, MCP) arrive as map[string]any and
// are decoded by mapstructure tag.
func DecodeOptions(options any, target any) error {
	if options == nil {
		return nil
	}
	if err := mapstructure.Decode(options, target); err != nil {
		return fmt.Errorf("decode dialog options: %w", err)
	}
	return nil
}
