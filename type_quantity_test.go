package stockpile

import (
	"errors"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "0", want: 0},
		{in: "42", want: 42},
		{in: "007", want: 7},
		{in: "9223372036854775807", want: 9223372036854775807},
		{in: "", wantErr: ErrInvalidAmount},
		{in: "abc", wantErr: ErrInvalidAmount},
		{in: "12x", wantErr: ErrInvalidAmount},
		{in: "1.5", wantErr: ErrInvalidAmount},
		{in: "9223372036854775808", wantErr: ErrInvalidAmount},
		{in: "-1", wantErr: ErrNegativeAmount},
		{in: "-0.5", wantErr: ErrInvalidAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseQuantity(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseQuantity(%q) error = %v, want %v", tc.in, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuantity(%q) returned an unexpected error: %v", tc.in, err)
			}
			if got.Int64() != tc.want {
				t.Errorf("ParseQuantity(%q) = %s, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestQuantity_Arithmetic(t *testing.T) {
	if got := Q(7).Add(Q(5)); !got.Equal(Q(12)) {
		t.Errorf("7+5 = %s, want 12", got)
	}
	if got := Q(7).Sub(Q(5)); !got.Equal(Q(2)) {
		t.Errorf("7-5 = %s, want 2", got)
	}
	if !Q(3).LessThan(Q(4)) || Q(4).LessThan(Q(4)) {
		t.Error("LessThan is not a strict order")
	}
	if !Q(0).IsZero() || Q(1).IsZero() {
		t.Error("IsZero misreports")
	}
	if !Q(2).Sub(Q(5)).IsNegative() {
		t.Error("2-5 should be negative")
	}
	var zero Quantity
	if !zero.IsZero() {
		t.Error("zero value Quantity should be zero")
	}
}
