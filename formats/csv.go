package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"storefront/models"
)

// CSVParser implements LineParser for comma-separated order lines.
// Each line is "product_id,amount".
type CSVParser struct{}

// Parse parses CSV order lines
func (p *CSVParser) Parse(data []byte) ([]models.OrderLineRequest, error) {
	var lines []models.OrderLineRequest

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid CSV on line %d: expected 2 fields, got %d", lineNum, len(fields))
		}

		productID, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid product id on line %d: %w", lineNum, err)
		}
		amount, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid amount on line %d: %w", lineNum, err)
		}

		lines = append(lines, models.OrderLineRequest{ID: productID, Amount: amount})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	return lines, nil
}
