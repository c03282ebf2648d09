package books

import (
	"encoding/json"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{in: M(0), want: "$0.00"},
		{in: M(5000), want: "$5,000.00"},
		{in: M(1234.5), want: "$1,234.50"},
		{in: M(-40), want: "-$40.00"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{in: M(0), want: "-"},
		{in: M(350.5), want: "+$350.50"},
		{in: M(-40), want: "-$40.00"},
	}
	for _, tc := range testCases {
		if got := tc.in.SignedString(); got != tc.want {
			t.Errorf("SignedString() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	// Classic float trap: 0.1 + 0.2 must be exactly 0.3.
	if got := M(0.1).Add(M(0.2)); !got.Equal(M(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want %s", got, M(0.3))
	}
	if got := M(100).Sub(M(35.25)); !got.Equal(M(64.75)) {
		t.Errorf("100 - 35.25 = %s, want %s", got, M(64.75))
	}
	if got := M(40).Neg(); !got.Equal(M(-40)) {
		t.Errorf("Neg(40) = %s, want %s", got, M(-40))
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(M(1234.5))
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	// Plain number, no quotes, rounded to cents.
	if string(data) != "1234.5" {
		t.Errorf("Marshal() = %s, want 1234.5", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("1234.5"), &m); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if !m.Equal(M(1234.5)) {
		t.Errorf("Unmarshal() = %s, want %s", m, M(1234.5))
	}
	// Quoted numbers from older blobs still decode.
	if err := json.Unmarshal([]byte(`"250"`), &m); err != nil {
		t.Fatalf("Unmarshal(quoted) = %v", err)
	}
	if !m.Equal(M(250)) {
		t.Errorf("Unmarshal(quoted) = %s, want %s", m, M(250))
	}
}
