package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyMarshalsAsBareNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"integer", "1500", "1500.00"},
		{"one decimal", "99.5", "99.50"},
		{"two decimals", "0.01", "0.01"},
		{"zero", "0", "0.00"},
		{"rounds to two decimals", "10.005", "10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.value)
			if err != nil {
				t.Fatalf("bad test value: %v", err)
			}

			data, err := json.Marshal(NewMoney(d))
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}

			if string(data) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, data)
			}
		})
	}
}

func TestMoneyUnmarshal(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`123.45`), &m); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if !m.Equal(decimal.RequireFromString("123.45")) {
		t.Errorf("expected 123.45, got %s", m)
	}

	if err := json.Unmarshal([]byte(`"67.89"`), &m); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if !m.Equal(decimal.RequireFromString("67.89")) {
		t.Errorf("expected 67.89, got %s", m)
	}

	if err := json.Unmarshal([]byte(`"abc"`), &m); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestMoneyInsideStruct(t *testing.T) {
	payload := struct {
		Amount Money `json:"amount"`
	}{Amount: NewMoney(decimal.RequireFromString("300"))}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if string(data) != `{"amount":300.00}` {
		t.Errorf("unexpected payload: %s", data)
	}
}
