package formats

import (
	"errors"

	"storefront/models"
)

// LineParser is an interface for parsing bulk order lines from different formats
type LineParser interface {
	// Parse parses the input data and returns the requested order lines
	Parse(data []byte) ([]models.OrderLineRequest, error)
}

// ErrUnsupportedFormat is returned when the requested format is not supported
var ErrUnsupportedFormat = errors.New("unsupported format")

// GetParser returns the appropriate parser for the given format.
// An empty format defaults to CSV.
func GetParser(format string) (LineParser, error) {
	switch format {
	case "", "csv":
		return &CSVParser{}, nil
	case "jsoneachrow":
		return &JSONEachRowParser{}, nil
	case "msgpack":
		return &MsgpackParser{}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
