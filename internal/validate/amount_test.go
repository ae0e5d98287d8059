package validate

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantSet bool
		want    uint64
		wantErr error
	}{
		{"number", `{"v": 1000000}`, true, 1000000, nil},
		{"string", `{"v": "1000000"}`, true, 1000000, nil},
		{"padded string", `{"v": " 42 "}`, true, 42, nil},
		{"exponent", `{"v": 1e6}`, true, 1000000, nil},
		{"string exponent", `{"v": "2.5e3"}`, true, 2500, nil},
		{"integral decimal", `{"v": "10.0"}`, true, 10, nil},
		{"zero", `{"v": 0}`, true, 0, nil},
		{"max uint64", `{"v": "18446744073709551615"}`, true, math.MaxUint64, nil},
		{"overflow", `{"v": 18446744073709551616}`, true, 0, ErrOutOfRange},
		{"huge exponent", `{"v": "1e999999999"}`, true, 0, ErrOutOfRange},
		{"negative", `{"v": -5}`, true, 0, ErrNegative},
		{"fraction", `{"v": 1.5}`, true, 0, ErrFractional},
		{"tiny exponent", `{"v": "1e-999999999"}`, true, 0, ErrFractional},
		{"integral with large negative exponent", `{"v": "1` + strings.Repeat("0", 43) + `e-41"}`, true, 100, nil},
		{"fraction with large negative exponent", `{"v": "1` + strings.Repeat("0", 43) + `e-44"}`, true, 0, ErrFractional},
		{"word", `{"v": "lots"}`, true, 0, ErrNotNumeric},
		{"bool", `{"v": true}`, true, 0, ErrNotNumeric},
		{"null", `{"v": null}`, false, 0, nil},
		{"blank string", `{"v": "  "}`, false, 0, nil},
		{"absent", `{}`, false, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				V *Amount `json:"v"`
			}
			if err := json.Unmarshal([]byte(tt.json), &body); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if body.V.IsSet() != tt.wantSet {
				t.Fatalf("IsSet() = %v, want %v", body.V.IsSet(), tt.wantSet)
			}
			if !tt.wantSet {
				return
			}
			got, err := body.V.Uint64()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Uint64() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Uint64(): %v", err)
			}
			if got != tt.want {
				t.Errorf("Uint64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewAmount("15"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"15"` {
		t.Errorf("Marshal = %s, want \"15\"", b)
	}

	b, err = json.Marshal(Amount{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("Marshal = %s, want null", b)
	}
}
