package huffman

import (
	"strings"
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "", expect: "\"\""},
		{input: "0", expect: "\"0\""},
		{input: "1101", expect: "\"1101\""},
		{input: strings.Repeat("10", 40), expect: "\"" + strings.Repeat("10", 40) + "\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if int(hc.Size) != len(row.input) {
				t.Errorf("expected size %d, got %d", len(row.input), hc.Size)
			}
			if actual := hc.String(); actual != row.expect {
				t.Errorf("expected %s, got %s", row.expect, actual)
			}
		})
	}
}

func TestCode_HasPrefix(t *testing.T) {
	long := strings.Repeat("0110", 20)

	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "0", prefix: "", expect: true},
		{code: "0", prefix: "0", expect: true},
		{code: "0", prefix: "1", expect: false},
		{code: "0", prefix: "01", expect: false},
		{code: "1011", prefix: "10", expect: true},
		{code: "1011", prefix: "11", expect: false},
		{code: long + "1", prefix: long, expect: true},
		{code: long + "1", prefix: long[:71] + "1", expect: false},
	}
	for _, row := range testData {
		hc, _ := ParseCode(row.code)
		prefix, _ := ParseCode(row.prefix)
		if actual := hc.HasPrefix(prefix); actual != row.expect {
			t.Errorf("%s.HasPrefix(%s): expected %v, got %v", hc, prefix, row.expect, actual)
		}
	}
}

func TestParseCode_Invalid(t *testing.T) {
	if _, err := ParseCode("01x"); err == nil {
		t.Errorf("expected error for invalid character")
	}
	if _, err := ParseCode(strings.Repeat("1", maxBitsPerCode+1)); err == nil {
		t.Errorf("expected error for overlong code")
	}
	if hc, err := ParseCode(strings.Repeat("1", maxBitsPerCode)); err != nil || hc.Size != maxBitsPerCode {
		t.Errorf("expected a %d-bit code, got %s, %v", maxBitsPerCode, hc, err)
	}
}
