package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExpr_Valid(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "plain column", expr: "customer_id"},
		{name: "function call", expr: "UPPER(TRIM(customer_code))"},
		{name: "concatenation", expr: "first_name || '-' || last_name"},
		{name: "arithmetic", expr: "(amount * 100) + tax"},
		{name: "case expression", expr: "CASE WHEN status = 'active' THEN id ELSE legacy_id END"},
		{name: "cast", expr: "CAST(order_number AS VARCHAR)"},
		{name: "coalesce", expr: "COALESCE(new_id, old_id)"},
		{name: "keyword inside identifier", expr: "selector_id"},
		{name: "keyword as identifier prefix", expr: "withholding_tax_code"},
		{name: "now inside identifier", expr: "nowhere_flag"},
		{name: "update inside identifier", expr: "last_updated_by"},
		{name: "from inside identifier", expr: "shipped_from_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ValidateExpr(tt.expr, "frames[0].hooks[0].expr"))
		})
	}
}

func TestValidateExpr_Forbidden(t *testing.T) {
	tests := []struct {
		name        string
		expr        string
		wantKeyword string
	}{
		{name: "select statement", expr: "SELECT id FROM customers", wantKeyword: "SELECT"},
		{name: "lowercase select", expr: "select id", wantKeyword: "SELECT"},
		{name: "mixed case", expr: "SeLeCt id", wantKeyword: "SELECT"},
		{name: "from clause", expr: "id FROM customers", wantKeyword: "FROM"},
		{name: "join", expr: "a JOIN b", wantKeyword: "JOIN"},
		{name: "where clause", expr: "id WHERE active", wantKeyword: "WHERE"},
		{name: "group by with extra spaces", expr: "id GROUP   BY x", wantKeyword: "GROUP BY"},
		{name: "order by", expr: "id ORDER BY x", wantKeyword: "ORDER BY"},
		{name: "cte", expr: "WITH t AS (x)", wantKeyword: "WITH"},
		{name: "random", expr: "RANDOM()", wantKeyword: "RANDOM"},
		{name: "newid", expr: "NEWID()", wantKeyword: "NEWID"},
		{name: "getdate", expr: "GETDATE()", wantKeyword: "GETDATE"},
		{name: "now", expr: "NOW()", wantKeyword: "NOW"},
		{name: "current_timestamp", expr: "CURRENT_TIMESTAMP", wantKeyword: "CURRENT_TIMESTAMP"},
		{name: "sysdate", expr: "SYSDATE", wantKeyword: "SYSDATE"},
		{name: "insert", expr: "INSERT INTO t", wantKeyword: "INSERT"},
		{name: "update statement", expr: "UPDATE t SET x = 1", wantKeyword: "UPDATE"},
		{name: "delete", expr: "DELETE t", wantKeyword: "DELETE"},
		{name: "create", expr: "CREATE TABLE t", wantKeyword: "CREATE"},
		{name: "drop", expr: "DROP TABLE t", wantKeyword: "DROP"},
		{name: "alter", expr: "ALTER TABLE t", wantKeyword: "ALTER"},
		{name: "truncate", expr: "TRUNCATE t", wantKeyword: "TRUNCATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := ValidateExpr(tt.expr, "frames[0].hooks[0].expr")

			require.Len(t, diags, 1)
			assert.Equal(t, "HOOK-006", diags[0].RuleID)
			assert.Equal(t, SeverityError, diags[0].Severity)
			assert.Contains(t, diags[0].Message, tt.wantKeyword)
			assert.Equal(t, "frames[0].hooks[0].expr", diags[0].Path)
		})
	}
}

func TestValidateExpr_Empty(t *testing.T) {
	for _, expr := range []string{"", "   ", "\t\n"} {
		diags := ValidateExpr(expr, "frames[0].hooks[0].expr")

		require.Len(t, diags, 1)
		assert.Equal(t, "HOOK-006", diags[0].RuleID)
		assert.Equal(t, "Expression must be non-empty", diags[0].Message)
	}
}

func TestValidateExpr_FirstMatchOnly(t *testing.T) {
	// A statement full of forbidden keywords reports only the first.
	diags := ValidateExpr("SELECT id FROM t WHERE x JOIN y", "frames[0].hooks[0].expr")

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "SELECT")
}
