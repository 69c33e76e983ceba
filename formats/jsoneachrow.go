package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"storefront/models"

	"github.com/bytedance/sonic"
)

// JSONEachRowParser implements LineParser for JSON Lines format.
// Each line is a separate JSON object {"id": …, "amount": …}.
type JSONEachRowParser struct{}

// Parse parses JSON Lines order lines
func (p *JSONEachRowParser) Parse(data []byte) ([]models.OrderLineRequest, error) {
	var lines []models.OrderLineRequest

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip empty lines
		if strings.TrimSpace(line) == "" {
			continue
		}

		var req models.OrderLineRequest
		if err := sonic.UnmarshalString(line, &req); err != nil {
			return nil, fmt.Errorf("invalid JSON on line %d: %w", lineNum, err)
		}

		lines = append(lines, req)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read JSON lines: %w", err)
	}

	return lines, nil
}
