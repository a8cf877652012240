package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"small amount", decimal.NewFromInt(5000), "R5,000"},
		{"mid amount", decimal.NewFromInt(45000), "R45,000"},
		{"no separator needed", decimal.NewFromInt(950), "R950"},
		{"millions", decimal.NewFromInt(1234567), "R1,234,567"},
		{"zero", decimal.Zero, "R0"},
		{"fractional keeps two decimals", decimal.NewFromFloat(1234.5), "R1,234.50"},
		{"negative", decimal.NewFromInt(-2000), "-R2,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Money(tt.amount))
		})
	}
}

func TestMoneyThousands(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"round thousands", decimal.NewFromInt(125000), "R125K"},
		{"rounds up", decimal.NewFromInt(125500), "R126K"},
		{"payroll total", decimal.NewFromInt(615000), "R615K"},
		{"under a thousand", decimal.NewFromInt(400), "R0K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MoneyThousands(tt.amount))
		})
	}
}

func TestEmployeeCode(t *testing.T) {
	assert.Equal(t, "EMP-0001", EmployeeCode(1))
	assert.Equal(t, "EMP-0042", EmployeeCode(42))
	assert.Equal(t, "EMP-12345", EmployeeCode(12345))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "90%", Percent(90))
	assert.Equal(t, "0%", Percent(0))
}

func TestDateLayouts(t *testing.T) {
	date := time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 Jul 2025", ShortDate(date))
	assert.Equal(t, "3 July 2025", LongDate(date))
	assert.Equal(t, "2025/07/03", NumericDate(date))
	assert.Equal(t, "July 2025", MonthYear(date))
	assert.Equal(t, "2025-07-03", ISODate(date))
}
