package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaymentStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "short paid", input: "P", want: "Paid"},
		{name: "long paid", input: "PAID", want: "Paid"},
		{name: "lowercase paid", input: "paid", want: "Paid"},
		{name: "short unpaid", input: "U", want: "Unpaid"},
		{name: "long unpaid", input: "UNPAID", want: "Unpaid"},
		{name: "short partial", input: "PP", want: "Partially Paid"},
		{name: "long partial", input: "partially paid", want: "Partially Paid"},
		{name: "short closed", input: "CD", want: "Closed"},
		{name: "long closed", input: "Closed", want: "Closed"},
		{name: "whitespace", input: "  P  ", want: "Paid"},
		{name: "unknown passes through trimmed", input: "  Pending  ", want: "Pending"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePaymentStatus(tt.input))
		})
	}
}

func TestNormalizeCreditStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "short credit", input: "CR", want: "Credit"},
		{name: "long credit", input: "CREDIT", want: "Credit"},
		{name: "short closed", input: "CD", want: "Closed"},
		{name: "long closed", input: "closed", want: "Closed"},
		{name: "unknown passes through", input: "Hold", want: "Hold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCreditStatus(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"P", "PAID", "Paid", "U", "PP", "CD", "Pending", ""}
	for _, input := range inputs {
		once := NormalizePaymentStatus(input)
		twice := NormalizePaymentStatus(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestNormalizeStatusColumnKeepsMissing(t *testing.T) {
	f := testFrame([]string{"payment_status"},
		[]string{"P"},
		[]string{""},
		[]string{"Pending"},
	)

	normalizeStatusColumn(f, "payment_status", paymentStatusTable)

	assert.Equal(t, "Paid", f.Rows[0][0].Raw)
	assert.True(t, f.Rows[1][0].Missing)
	assert.Equal(t, "", f.Rows[1][0].Raw)
	assert.Equal(t, "Pending", f.Rows[2][0].Raw)
}
