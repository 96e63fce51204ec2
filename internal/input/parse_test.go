package input

import (
	"errors"
	"testing"

	"github.com/samdwyer/connectfour/internal/board"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{MalformedDimensions, "malformed_dimensions"},
		{MalformedGameCount, "malformed_game_count"},
		{MalformedColumn, "malformed_column"},
		{ColumnOutOfRange, "column_out_of_range"},
		{ColumnFull, "column_full"},
		{MalformedName, "malformed_name"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

// errorKind extracts the labeled kind from err, failing the test if err is not labeled.
func errorKind(t *testing.T, err error) Kind {
	t.Helper()
	var inputErr *Error
	if !errors.As(err, &inputErr) {
		t.Fatalf("error %v is not an *input.Error", err)
	}
	return inputErr.Kind
}

func TestParseMove(t *testing.T) {
	full := board.New(6, 7)
	for i := 0; i < 6; i++ {
		if _, err := full.Place(2, board.First); err != nil {
			t.Fatalf("Place: %v", err)
		}
	}

	tests := []struct {
		name    string
		raw     string
		want    Move
		kind    Kind
		message string
	}{
		{name: "end", raw: "end", want: Move{End: true}},
		{name: "first column", raw: "1", want: Move{Column: 1}},
		{name: "last column", raw: "7", want: Move{Column: 7}},
		{name: "leading zero", raw: "04", want: Move{Column: 4}},
		{name: "above range", raw: "8", kind: ColumnOutOfRange, message: "The column number is out of range (1 - 7)"},
		{name: "zero", raw: "0", kind: ColumnOutOfRange, message: "The column number is out of range (1 - 7)"},
		{name: "overflow", raw: "99999999999999999999999", kind: ColumnOutOfRange, message: "The column number is out of range (1 - 7)"},
		{name: "full column", raw: "3", kind: ColumnFull, message: "Column 3 is full"},
		{name: "letters", raw: "abc", kind: MalformedColumn, message: "Incorrect column number"},
		{name: "empty", raw: "", kind: MalformedColumn, message: "Incorrect column number"},
		{name: "negative", raw: "-1", kind: MalformedColumn, message: "Incorrect column number"},
		{name: "spaces", raw: " 3", kind: MalformedColumn, message: "Incorrect column number"},
		{name: "end is case sensitive", raw: "END", kind: MalformedColumn, message: "Incorrect column number"},
		{name: "non ascii digit", raw: "٣", kind: MalformedColumn, message: "Incorrect column number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.raw, full)
			if tt.message == "" {
				if err != nil {
					t.Fatalf("ParseMove(%q) error = %v", tt.raw, err)
				}
				if got != tt.want {
					t.Errorf("ParseMove(%q) = %+v, want %+v", tt.raw, got, tt.want)
				}
				return
			}
			if err == nil {
				t.Fatalf("ParseMove(%q) = %+v, want error", tt.raw, got)
			}
			if kind := errorKind(t, err); kind != tt.kind {
				t.Errorf("ParseMove(%q) kind = %v, want %v", tt.raw, kind, tt.kind)
			}
			if err.Error() != tt.message {
				t.Errorf("ParseMove(%q) message = %q, want %q", tt.raw, err.Error(), tt.message)
			}
		})
	}
}

func TestParseMoveRangeFollowsBoard(t *testing.T) {
	b := board.New(5, 9)
	if _, err := ParseMove("9", b); err != nil {
		t.Errorf("ParseMove(9) on 5x9 error = %v", err)
	}
	_, err := ParseMove("10", b)
	if err == nil || err.Error() != "The column number is out of range (1 - 9)" {
		t.Errorf("ParseMove(10) on 5x9 error = %v", err)
	}
}

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		raw     string
		want    Dimensions
		message string
	}{
		{raw: "", want: Dimensions{Rows: 6, Cols: 7}},
		{raw: "5x5", want: Dimensions{Rows: 5, Cols: 5}},
		{raw: "9 X 9", want: Dimensions{Rows: 9, Cols: 9}},
		{raw: "  7\tx 8  ", want: Dimensions{Rows: 7, Cols: 8}},
		{raw: "6 x 5", want: Dimensions{Rows: 6, Cols: 5}},
		{raw: "4x7", message: "Board rows should be from 5 to 9"},
		{raw: "10 x 7", message: "Board rows should be from 5 to 9"},
		{raw: "6x4", message: "Board columns should be from 5 to 9"},
		{raw: "6x10", message: "Board columns should be from 5 to 9"},
		{raw: "3x3", message: "Board rows should be from 5 to 9"},
		{raw: "99999999999999999999x7", message: "Board rows should be from 5 to 9"},
		{raw: "six by seven", message: "Invalid input"},
		{raw: "6x", message: "Invalid input"},
		{raw: "6*7", message: "Invalid input"},
		{raw: "   ", message: "Invalid input"},
		{raw: "-6x7", message: "Invalid input"},
	}

	for _, tt := range tests {
		got, err := ParseDimensions(tt.raw)
		if tt.message == "" {
			if err != nil {
				t.Errorf("ParseDimensions(%q) error = %v", tt.raw, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseDimensions(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("ParseDimensions(%q) = %+v, want error %q", tt.raw, got, tt.message)
			continue
		}
		if kind := errorKind(t, err); kind != MalformedDimensions {
			t.Errorf("ParseDimensions(%q) kind = %v, want MalformedDimensions", tt.raw, kind)
		}
		if err.Error() != tt.message {
			t.Errorf("ParseDimensions(%q) message = %q, want %q", tt.raw, err.Error(), tt.message)
		}
	}
}

func TestParseGameCount(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		invalid bool
	}{
		{raw: "", want: 1},
		{raw: "1", want: 1},
		{raw: "3", want: 3},
		{raw: "10", want: 10},
		{raw: "0", invalid: true},
		{raw: "-2", invalid: true},
		{raw: "two", invalid: true},
		{raw: " 2", invalid: true},
		{raw: "99999999999999999999999", invalid: true},
	}

	for _, tt := range tests {
		got, err := ParseGameCount(tt.raw)
		if tt.invalid {
			if err == nil {
				t.Errorf("ParseGameCount(%q) = %d, want error", tt.raw, got)
				continue
			}
			if kind := errorKind(t, err); kind != MalformedGameCount {
				t.Errorf("ParseGameCount(%q) kind = %v, want MalformedGameCount", tt.raw, kind)
			}
			if err.Error() != "Invalid input" {
				t.Errorf("ParseGameCount(%q) message = %q", tt.raw, err.Error())
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGameCount(%q) error = %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGameCount(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseName(t *testing.T) {
	if got, err := ParseName("  Anna "); err != nil || got != "Anna" {
		t.Errorf("ParseName(%q) = (%q, %v), want (%q, nil)", "  Anna ", got, err, "Anna")
	}
	if got, err := ParseName("Joan of Arc"); err != nil || got != "Joan of Arc" {
		t.Errorf("ParseName(%q) = (%q, %v)", "Joan of Arc", got, err)
	}

	for _, raw := range []string{"", "   ", "\t"} {
		_, err := ParseName(raw)
		if err == nil {
			t.Errorf("ParseName(%q) accepted a blank name", raw)
			continue
		}
		if kind := errorKind(t, err); kind != MalformedName {
			t.Errorf("ParseName(%q) kind = %v, want MalformedName", raw, kind)
		}
	}
}
