package formats

import (
	"fmt"

	"storefront/models"

	"github.com/hashicorp/go-msgpack/codec"
)

// MsgpackParser implements LineParser for MessagePack format.
// Expects an array of maps with "id" and "amount" keys.
type MsgpackParser struct{}

// Parse parses MessagePack order lines
func (p *MsgpackParser) Parse(data []byte) ([]models.OrderLineRequest, error) {
	var rows []map[string]interface{}

	decoder := codec.NewDecoderBytes(data, &codec.MsgpackHandle{})
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("invalid MessagePack data: %w", err)
	}

	lines := make([]models.OrderLineRequest, 0, len(rows))
	for i, row := range rows {
		id, ok := toInt(row["id"])
		if !ok {
			return nil, fmt.Errorf("invalid product id in row %d", i+1)
		}
		amount, ok := toInt(row["amount"])
		if !ok {
			return nil, fmt.Errorf("invalid amount in row %d", i+1)
		}
		lines = append(lines, models.OrderLineRequest{ID: id, Amount: amount})
	}

	return lines, nil
}

// toInt normalizes the numeric types the msgpack decoder may produce
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
