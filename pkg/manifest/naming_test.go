package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowerSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"customer", true},
		{"order_line", true},
		{"a", true},
		{"customer_", true},
		{"item2", true},
		{"order_line_2", true},
		{"_customer", false},
		{"Customer", false},
		{"CUSTOMER", false},
		{"2customer", false},
		{"order-line", false},
		{"order line", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLowerSnakeCase(tt.in), tt.in)
	}
}

func TestIsUpperSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"CRM", true},
		{"SAP", true},
		{"NORTH_AMERICA_ERP", true},
		{"A", true},
		{"ERP2", true},
		{"CRM_", true},
		{"_CRM", false},
		{"crm", false},
		{"Crm", false},
		{"2CRM", false},
		{"NORTH-AMERICA", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUpperSnakeCase(tt.in), tt.in)
	}
}

func TestIsValidHookName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"_hk__customer", true},
		{"_hk__order_line", true},
		{"_hk__employee__manager", true},
		{"_hk__order__ship_to", true},
		{"_wk__order_line", true},
		{"_wk__invoice__line", true},
		{"_hk__item2", true},
		{"customer", false},
		{"hk__customer", false},
		{"_hk_customer", false},
		{"_hk__Customer", false},
		{"_hk__customer__", false},
		{"_hk__customer___manager", false},
		{"_hk___customer", false},
		{"_hk__", false},
		{"_xx__customer", false},
		{"_hk__customer__manager__extra", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidHookName(tt.in), tt.in)
	}
}

func TestIsValidFrameName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"frame.customer", true},
		{"psa.order_header", true},
		{"staging.order2", true},
		{"customer", false},
		{"Frame.customer", false},
		{"frame.Customer", false},
		{"frame.", false},
		{".customer", false},
		{"a.b.c", false},
		{"frame customer", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidFrameName(tt.in), tt.in)
	}
}

func TestIsValidSemver(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1.0.0", true},
		{"0.1.0", true},
		{"12.34.56", true},
		{"1.0", false},
		{"1", false},
		{"v1.0.0", false},
		{"1.0.0-rc1", false},
		{"1.0.0+build", false},
		{"1.0.0.0", false},
		{"invalid", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidSemver(tt.in), tt.in)
	}
}
