package books

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// RecordType is a typed string identifying the three money movements.
type RecordType string

const (
	RecIncome   RecordType = "Income"
	RecExpense  RecordType = "Expense"
	RecTransfer RecordType = "Transfer"
)

// Record is the common interface of the three financial record shapes.
// Records are immutable once created: the store only ever appends them.
type Record interface {
	What() RecordType // What returns the record type ("Income", "Expense", "Transfer").
	When() Date       // When returns the business date of the record.
	RecordID() string // RecordID returns the unique id assigned at creation.
	Equal(Record) bool
}

// baseRec carries the fields shared by every record type.
type baseRec struct {
	ID   string `json:"id"`
	Date Date   `json:"date"`
}

func (r baseRec) RecordID() string { return r.ID }
func (r baseRec) When() Date       { return r.Date }

// newBaseRec assigns a fresh id and defaults a zero date to today.
func newBaseRec(day Date) baseRec {
	if day.IsZero() {
		day = Today()
	}
	return baseRec{ID: uuid.NewString(), Date: day}
}

// MarshalJSON implements the json.Marshaler interface for baseRec.
func (r baseRec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("date", r.Date)
	return w.MarshalJSON()
}

// --- Income ---

// IncomeKind distinguishes a service collection from a direct donation.
type IncomeKind string

const (
	ServiceIncome IncomeKind = "Service"
	DirectIncome  IncomeKind = "Direct"
)

// ParseIncomeKind parses a string into an IncomeKind.
func ParseIncomeKind(s string) (IncomeKind, error) {
	switch s {
	case "Service", "service":
		return ServiceIncome, nil
	case "Direct", "direct":
		return DirectIncome, nil
	default:
		return "", fmt.Errorf("unknown income kind: %q", s)
	}
}

// PaymentMethod is how income money physically arrived. It decides which
// account the income credits: Cash goes to cash in hand, a bank transfer
// goes to the bank.
type PaymentMethod string

const (
	Cash         PaymentMethod = "Cash"
	BankTransfer PaymentMethod = "Bank Transfer"
)

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "Cash", "cash":
		return Cash, nil
	case "Bank Transfer", "bank-transfer", "bank":
		return BankTransfer, nil
	default:
		return "", fmt.Errorf("unknown payment method: %q", s)
	}
}

// IncomeRecord is a service collection or a direct donation. Total is the
// sum of the three envelopes, computed once at creation and stored; it is
// never recomputed afterwards.
type IncomeRecord struct {
	baseRec
	Time        string        `json:"time,omitempty"` // wall-clock time of the service, informational only
	Kind        IncomeKind    `json:"kind"`
	ServiceName string        `json:"serviceName,omitempty"`
	DonorName   string        `json:"donorName,omitempty"`
	Destination string        `json:"destination,omitempty"`
	Offerings   Money         `json:"offerings"`
	Tithes      Money         `json:"tithes"`
	Donations   Money         `json:"donations"`
	Method      PaymentMethod `json:"method"`
	Total       Money         `json:"total"`
}

// NewIncome creates an IncomeRecord with a fresh id and the total computed
// from the three envelopes.
func NewIncome(day Date, clock string, kind IncomeKind, serviceName, donorName, destination string, offerings, tithes, donations Money, method PaymentMethod) IncomeRecord {
	return IncomeRecord{
		baseRec:     newBaseRec(day),
		Time:        clock,
		Kind:        kind,
		ServiceName: serviceName,
		DonorName:   donorName,
		Destination: destination,
		Offerings:   offerings,
		Tithes:      tithes,
		Donations:   donations,
		Method:      method,
		Total:       offerings.Add(tithes).Add(donations),
	}
}

func (r IncomeRecord) What() RecordType { return RecIncome }

// Credits returns the account this income credits, decided by its method.
func (r IncomeRecord) Credits() Account {
	if r.Method == Cash {
		return CashInHand
	}
	return Bank
}

func (r IncomeRecord) Equal(other Record) bool {
	o, ok := other.(IncomeRecord)
	return ok && r.baseRec == o.baseRec && r.Time == o.Time && r.Kind == o.Kind &&
		r.ServiceName == o.ServiceName && r.DonorName == o.DonorName && r.Destination == o.Destination &&
		r.Offerings.Equal(o.Offerings) && r.Tithes.Equal(o.Tithes) && r.Donations.Equal(o.Donations) &&
		r.Method == o.Method && r.Total.Equal(o.Total)
}

// MarshalJSON implements the json.Marshaler interface for IncomeRecord.
func (r IncomeRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Optional("time", r.Time)
	w.Append("kind", r.Kind)
	w.Optional("serviceName", r.ServiceName)
	w.Optional("donorName", r.DonorName)
	w.Optional("destination", r.Destination)
	w.Append("offerings", r.Offerings)
	w.Append("tithes", r.Tithes)
	w.Append("donations", r.Donations)
	w.Append("method", r.Method)
	w.Append("total", r.Total)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for IncomeRecord.
func (r *IncomeRecord) UnmarshalJSON(data []byte) error {
	type plain IncomeRecord // shed the custom marshaler
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*r = IncomeRecord(temp)
	return nil
}

// --- Expense ---

// ExpenseCategory is the closed set of expense buckets.
type ExpenseCategory string

const (
	Salaries       ExpenseCategory = "Salaries"
	Charity        ExpenseCategory = "Charity"
	CapitalExpense ExpenseCategory = "Capital Expense"
	Operational    ExpenseCategory = "Operational Expenses"
)

// ParseExpenseCategory parses a string into an ExpenseCategory.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch s {
	case "Salaries", "salaries":
		return Salaries, nil
	case "Charity", "charity":
		return Charity, nil
	case "Capital Expense", "capital-expense", "capital":
		return CapitalExpense, nil
	case "Operational Expenses", "operational", "operational-expenses":
		return Operational, nil
	default:
		return "", fmt.Errorf("unknown expense category: %q", s)
	}
}

// ExpenseRecord is money paid out of exactly one account.
type ExpenseRecord struct {
	baseRec
	Description string          `json:"description"`
	Category    ExpenseCategory `json:"category"`
	Amount      Money           `json:"amount"`
	Source      Account         `json:"sourceAccount"`
}

// NewExpense creates an ExpenseRecord with a fresh id.
func NewExpense(day Date, description string, category ExpenseCategory, amount Money, source Account) ExpenseRecord {
	return ExpenseRecord{
		baseRec:     newBaseRec(day),
		Description: description,
		Category:    category,
		Amount:      amount,
		Source:      source,
	}
}

func (r ExpenseRecord) What() RecordType { return RecExpense }

func (r ExpenseRecord) Equal(other Record) bool {
	o, ok := other.(ExpenseRecord)
	return ok && r.baseRec == o.baseRec && r.Description == o.Description &&
		r.Category == o.Category && r.Amount.Equal(o.Amount) && r.Source == o.Source
}

// MarshalJSON implements the json.Marshaler interface for ExpenseRecord.
func (r ExpenseRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("description", r.Description)
	w.Append("category", r.Category)
	w.Append("amount", r.Amount)
	w.Append("sourceAccount", r.Source)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for ExpenseRecord.
func (r *ExpenseRecord) UnmarshalJSON(data []byte) error {
	type plain ExpenseRecord
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*r = ExpenseRecord(temp)
	return nil
}

// --- Transfer ---

// TransferRecord moves money between two distinct accounts. It is
// balance-neutral in aggregate.
type TransferRecord struct {
	baseRec
	From        Account `json:"fromAccount"`
	To          Account `json:"toAccount"`
	Amount      Money   `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// NewTransfer creates a TransferRecord with a fresh id.
func NewTransfer(day Date, from, to Account, amount Money, description string) TransferRecord {
	return TransferRecord{
		baseRec:     newBaseRec(day),
		From:        from,
		To:          to,
		Amount:      amount,
		Description: description,
	}
}

func (r TransferRecord) What() RecordType { return RecTransfer }

func (r TransferRecord) Equal(other Record) bool {
	o, ok := other.(TransferRecord)
	return ok && r.baseRec == o.baseRec && r.From == o.From && r.To == o.To &&
		r.Amount.Equal(o.Amount) && r.Description == o.Description
}

// MarshalJSON implements the json.Marshaler interface for TransferRecord.
func (r TransferRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.baseRec)
	w.Append("fromAccount", r.From)
	w.Append("toAccount", r.To)
	w.Append("amount", r.Amount)
	w.Optional("description", r.Description)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for TransferRecord.
func (r *TransferRecord) UnmarshalJSON(data []byte) error {
	type plain TransferRecord
	var temp plain
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*r = TransferRecord(temp)
	return nil
}
