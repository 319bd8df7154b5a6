package engine

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0.0", 0},
		{"0.1", 1},
		{"1.2", 12},
		{"9.9", 99},
		{"10.0", 100},
		{"12.3", 123},
		{"99.9", 999},
		{"-0.0", 0},
		{"-0.1", -1},
		{"-3.7", -37},
		{"-12.3", -123},
		{"-99.9", -999},
	}

	for _, tt := range tests {
		got, err := parseValue([]byte(tt.in))
		if err != nil {
			t.Errorf("parseValue(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseValue(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseValueRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"-",
		"5",      // no fractional digit
		"42",     // no fractional digit
		"5.25",   // two fractional digits
		"500.0",  // three integer digits
		"1.",     // missing fractional digit
		".5",     // missing integer digit
		"+1.2",   // explicit plus not in the grammar
		"--1.2",  // double sign
		" 1.2",   // leading space
		"1.2 ",   // trailing space
		"a.5",    // non-digit integer part
		"1.x",    // non-digit fraction
		"1x.3",   // non-digit in two-digit integer part
		"1,2",    // wrong separator
		"NaN",
	}

	for _, in := range inputs {
		if _, err := parseValue([]byte(in)); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("parseValue(%q) = %v, want ErrMalformedNumber", in, err)
		}
	}
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		line    string
		wantKey string
		wantVal int64
	}{
		{"a;1.0", "a", 10},
		{"sensor_0001;-42.7", "sensor_0001", -427},
		{"key with spaces;0.3", "key with spaces", 3},
		{"ülm;9.9", "ülm", 99},
	}

	for _, tt := range tests {
		key, val, err := ParseRecord([]byte(tt.line))
		if err != nil {
			t.Errorf("ParseRecord(%q): unexpected error: %v", tt.line, err)
			continue
		}
		if string(key) != tt.wantKey || val != tt.wantVal {
			t.Errorf("ParseRecord(%q) = (%q, %d), want (%q, %d)",
				tt.line, key, val, tt.wantKey, tt.wantVal)
		}
	}
}

func TestParseRecordRejectsMalformed(t *testing.T) {
	inputs := []string{
		"no delimiter at all",
		"",
		"key;",
		"key;abc",
		"key;1",
		"key;1.23",
	}

	for _, in := range inputs {
		if _, _, err := ParseRecord([]byte(in)); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("ParseRecord(%q) = %v, want ErrMalformedNumber", in, err)
		}
	}
}

func TestParseRecordSplitsAtFirstDelimiter(t *testing.T) {
	// A second ';' lands in the value token, which then fails the grammar.
	if _, _, err := ParseRecord([]byte("a;b;1.0")); !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("ParseRecord(%q) = %v, want ErrMalformedNumber", "a;b;1.0", err)
	}
}

func TestParseRecordKeyAliasesInput(t *testing.T) {
	line := []byte("alpha;1.0")
	key, _, err := ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if &key[0] != &line[0] {
		t.Fatal("returned key does not alias the input slice")
	}
}
