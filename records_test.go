package books

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewIncome_Total(t *testing.T) {
	rec := NewIncome(day("2026-01-04"), "10:30", ServiceIncome, "Sunday Service", "", "",
		M(120.50), M(200), M(30), Cash)
	if !rec.Total.Equal(M(350.50)) {
		t.Errorf("Total = %s, want %s", rec.Total, M(350.50))
	}
	if rec.RecordID() == "" {
		t.Error("NewIncome() assigned no id")
	}
}

func TestIncomeRecord_Credits(t *testing.T) {
	testCases := []struct {
		method PaymentMethod
		want   Account
	}{
		{method: Cash, want: CashInHand},
		{method: BankTransfer, want: Bank},
	}
	for _, tc := range testCases {
		rec := serviceIncome("2026-01-04", 100, tc.method)
		if got := rec.Credits(); got != tc.want {
			t.Errorf("Credits() with %s = %s, want %s", tc.method, got, tc.want)
		}
	}
}

func TestNewBaseRec_DefaultsDate(t *testing.T) {
	rec := NewExpense(Date{}, "supplies", Operational, M(10), Bank)
	if rec.When().IsZero() {
		t.Error("When() is zero, want today")
	}
	if got := rec.When(); got != Today() {
		t.Errorf("When() = %s, want %s", got, Today())
	}
}

func TestIncomeRecord_JSON(t *testing.T) {
	rec := NewIncome(day("2026-01-04"), "10:30", ServiceIncome, "Sunday Service", "", "",
		M(120.50), M(200), M(30), Cash)

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	// Fields come out in declaration order, amounts as plain numbers, and
	// empty optionals vanish.
	s := string(data)
	if !strings.HasPrefix(s, `{"id":"`) {
		t.Errorf("marshal starts with %q, want the id first", s[:20])
	}
	for _, want := range []string{`"offerings":120.5`, `"total":350.5`, `"method":"Cash"`} {
		if !strings.Contains(s, want) {
			t.Errorf("marshal %s misses %s", s, want)
		}
	}
	if strings.Contains(s, "donorName") {
		t.Errorf("marshal %s carries an empty donorName", s)
	}

	var back IncomeRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if !back.Equal(rec) {
		t.Errorf("round trip = %+v, want %+v", back, rec)
	}
}

func TestTransferRecord_JSON(t *testing.T) {
	rec := NewTransfer(day("2026-01-06"), Bank, PettyCash, M(250), "top up")

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	for _, want := range []string{`"fromAccount":"Bank"`, `"toAccount":"Petty Cash"`, `"amount":250`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("marshal %s misses %s", data, want)
		}
	}

	var back TransferRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if !back.Equal(rec) {
		t.Errorf("round trip = %+v, want %+v", back, rec)
	}
}

func TestParseAccount(t *testing.T) {
	testCases := []struct {
		in      string
		want    Account
		wantErr bool
	}{
		{in: "Bank", want: Bank},
		{in: "bank", want: Bank},
		{in: "Petty Cash", want: PettyCash},
		{in: "petty-cash", want: PettyCash},
		{in: "Cash in Hand", want: CashInHand},
		{in: "cash-in-hand", want: CashInHand},
		{in: "vault", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseAccount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAccount(%q) = %s, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAccount(%q) = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAccount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
