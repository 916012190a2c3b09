package propschema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrParsingCancelled  = errors.New("schema parsing cancelled")
	ErrFailedToParse     = errors.New("failed to parse schema document")
	ErrFailedToReadFile  = errors.New("failed to read schema file")
	ErrUnsupportedFormat = errors.New("unsupported schema file format")
	ErrInvalidDocument   = errors.New("invalid schema document")
	ErrUnknownType       = errors.New("unknown type")
	ErrUnknownClass      = errors.New("unknown instanceOf class")
	ErrUnknownCheck      = errors.New("unknown custom check")
)

// nodeErr attaches the document path and source line of node to sentinel.
func nodeErr(sentinel error, path string, node *yaml.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if path != "" {
		msg = path + ": " + msg
	}
	if node != nil && node.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", node.Line, msg)
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
