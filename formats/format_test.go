package formats

import (
	"strings"
	"testing"

	"storefront/models"

	"github.com/hashicorp/go-msgpack/codec"
)

func TestGetParser(t *testing.T) {
	for _, format := range []string{"", "csv", "jsoneachrow", "msgpack"} {
		if _, err := GetParser(format); err != nil {
			t.Errorf("GetParser(%q) failed: %v", format, err)
		}
	}
	if _, err := GetParser("xml"); err != ErrUnsupportedFormat {
		t.Errorf("GetParser(xml) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestCSVParser(t *testing.T) {
	data := []byte("1,3\n2,1\n\n17, 4\n")
	lines, err := (&CSVParser{}).Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []models.OrderLineRequest{{ID: 1, Amount: 3}, {ID: 2, Amount: 1}, {ID: 17, Amount: 4}}
	if len(lines) != len(want) {
		t.Fatalf("Parsed %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line[%d] = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestCSVParserReportsLineNumber(t *testing.T) {
	data := []byte("1,3\ntwo,1\n")
	_, err := (&CSVParser{}).Parse(data)
	if err == nil {
		t.Fatal("Expected parse error, got nil")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Error %q does not name line 2", err)
	}
}

func TestJSONEachRowParser(t *testing.T) {
	data := []byte("{\"id\": 5, \"amount\": 2}\n\n{\"id\": 9, \"amount\": 1}\n")
	lines, err := (&JSONEachRowParser{}).Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lines) != 2 || lines[0].ID != 5 || lines[1].Amount != 1 {
		t.Fatalf("Parsed lines = %+v", lines)
	}
}

func TestJSONEachRowParserInvalidLine(t *testing.T) {
	data := []byte("{\"id\": 5, \"amount\": 2}\nnot json\n")
	if _, err := (&JSONEachRowParser{}).Parse(data); err == nil {
		t.Fatal("Expected parse error, got nil")
	}
}

func TestMsgpackParser(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": 3, "amount": 2},
		{"id": 8, "amount": 5},
	}
	var data []byte
	if err := codec.NewEncoderBytes(&data, &codec.MsgpackHandle{}).Encode(rows); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	lines, err := (&MsgpackParser{}).Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lines) != 2 || lines[0].ID != 3 || lines[1].Amount != 5 {
		t.Fatalf("Parsed lines = %+v", lines)
	}
}

func TestMsgpackParserRejectsGarbage(t *testing.T) {
	if _, err := (&MsgpackParser{}).Parse([]byte("not msgpack at all")); err == nil {
		t.Fatal("Expected parse error, got nil")
	}
}
