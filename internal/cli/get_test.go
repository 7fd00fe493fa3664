package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/AriDB/internal/querysql"
	"github.com/aristath/AriDB/internal/schema"
)

func TestParseConds(t *testing.T) {
	testCases := []struct {
		name    string
		entries []string
		want    querysql.Conds
	}{
		{"empty", nil, nil},
		{
			"equality text",
			[]string{"name=John Doe"},
			querysql.Conds{"name": querysql.Eq(schema.Text("John Doe"))},
		},
		{
			"equality number",
			[]string{"age=25"},
			querysql.Conds{"age": querysql.Eq(schema.Int(25))},
		},
		{
			"greater than",
			[]string{"age>18"},
			querysql.Conds{"age": querysql.Op(">", schema.Int(18))},
		},
		{
			"greater or equal",
			[]string{"age>=18"},
			querysql.Conds{"age": querysql.Op(">=", schema.Int(18))},
		},
		{
			"not equal",
			[]string{"age!=18"},
			querysql.Conds{"age": querysql.Op("!=", schema.Int(18))},
		},
		{
			"multiple entries",
			[]string{"age<65", "name=x"},
			querysql.Conds{
				"age":  querysql.Op("<", schema.Int(65)),
				"name": querysql.Eq(schema.Text("x")),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseConds(tc.entries)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseConds_NoOperator(t *testing.T) {
	_, err := parseConds([]string{"just-a-column"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operator")
}

func TestParseScalar(t *testing.T) {
	assert.Equal(t, schema.Int(42), parseScalar("42"))
	assert.Equal(t, schema.Float(1.5), parseScalar("1.5"))
	assert.Equal(t, schema.Bool(true), parseScalar("true"))
	assert.Equal(t, schema.Null{}, parseScalar("null"))
	assert.Equal(t, schema.Text("John Doe"), parseScalar("John Doe"))
	assert.Equal(t, schema.Text("12 monkeys"), parseScalar("12 monkeys"))
	assert.Equal(t, schema.Text("quoted"), parseScalar(`"quoted"`))
}
