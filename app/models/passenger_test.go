package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func TestResolveTariff(t *testing.T) {
	tests := []struct {
		name     string
		custom   *float64
		weekly   *float64
		general  float64
		expected float64
	}{
		{"custom wins over everything", fptr(15), fptr(8), 10, 15},
		{"custom zero still wins", fptr(0), fptr(8), 10, 0},
		{"weekly wins over general", nil, fptr(8), 10, 8},
		{"weekly zero still wins", nil, fptr(0), 10, 0},
		{"general as fallback", nil, nil, 10, 10},
		{"no tariff anywhere", nil, nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Passenger{CustomTariffUSD: tt.custom, WeeklyTariffUSD: tt.weekly}
			assert.Equal(t, tt.expected, p.ResolveTariff(tt.general))
		})
	}
}

func TestPassengerValidate(t *testing.T) {
	child := &Passenger{Name: "Luis", Type: PassengerChild, RepresentativeID: sptr("rep-1")}
	assert.NoError(t, child.Validate())

	orphan := &Passenger{Name: "Luis", Type: PassengerChild}
	assert.Error(t, orphan.Validate())

	teacher := &Passenger{Name: "Sra. Pérez", Type: PassengerTeacher, Code: sptr("DOC-12345")}
	assert.NoError(t, teacher.Validate())

	badCode := &Passenger{Name: "Sra. Pérez", Type: PassengerTeacher, Code: sptr("DOC-123")}
	assert.Error(t, badCode.Validate())

	negative := &Passenger{Name: "Luis", Type: PassengerChild, RepresentativeID: sptr("rep-1"), WeeklyTariffUSD: fptr(-5)}
	assert.Error(t, negative.Validate())

	unknownType := &Passenger{Name: "Luis", Type: "driver"}
	assert.Error(t, unknownType.Validate())
}

func TestRepresentativeValidate(t *testing.T) {
	rep := &Representative{Alias: "Familia García", Code: "REP-12345"}
	assert.NoError(t, rep.Validate())

	assert.Error(t, (&Representative{Alias: "", Code: "REP-12345"}).Validate())
	assert.Error(t, (&Representative{Alias: "x", Code: "REP-1234"}).Validate())
	assert.Error(t, (&Representative{Alias: "x", Code: "DOC-12345"}).Validate())
}

func TestTransactionValidate(t *testing.T) {
	tx := &Transaction{RepresentativeID: "rep-1", Kind: TransactionPayment, AmountUSD: 20, Concept: "Abono"}
	assert.NoError(t, tx.Validate())

	assert.Error(t, (&Transaction{RepresentativeID: "rep-1", Kind: "refund", AmountUSD: 20, Concept: "x"}).Validate())
	assert.Error(t, (&Transaction{RepresentativeID: "rep-1", Kind: TransactionCharge, AmountUSD: 0, Concept: "x"}).Validate())
	assert.Error(t, (&Transaction{Kind: TransactionCharge, AmountUSD: 5, Concept: "x"}).Validate())
	assert.Error(t, (&Transaction{RepresentativeID: "rep-1", Kind: TransactionCharge, AmountUSD: 5}).Validate())
}
