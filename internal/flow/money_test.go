package flow

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "1234.05", Money(123405).String())
	assert.Equal(t, "-0.50", Money(-50).String())
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}{A: FromFloat(100), B: FromFloat(12.34)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":100,"b":12.34}`, string(data))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`70.1`), &m))
	assert.Equal(t, Money(7010), m)

	require.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}

func TestShareRoundsSymmetrically(t *testing.T) {
	cases := []struct {
		amount  Money
		percent int64
		want    Money
	}{
		{amount: 10000, percent: 70, want: 7000},
		{amount: 1, percent: 50, want: 1},
		{amount: 1, percent: 30, want: 0},
		{amount: 333, percent: 10, want: 33},
		{amount: 335, percent: 10, want: 34},
		{amount: 10000, percent: -100, want: -10000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, share(tc.amount, tc.percent))
		assert.Equal(t, -tc.want, share(-tc.amount, tc.percent))
	}
}

func TestShareLargeAmountsKeepSign(t *testing.T) {
	amount := Money(math.MaxInt64 / 10)
	assert.Equal(t, amount, share(amount, 100))
	assert.Equal(t, -amount, share(amount, -100))
	assert.Equal(t, Money(645636042579834306), share(amount, 70))
	assert.Equal(t, -share(amount, 30), share(-amount, 30))
}

func TestParseMoneyRejectsOutOfRange(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e17, -1e18} {
		_, err := ParseMoney(v)
		assert.Errorf(t, err, "value %v", v)
	}
	m, err := ParseMoney(1e12)
	require.NoError(t, err)
	assert.Equal(t, MaxAmount, m)
}

func TestFromFloatSaturates(t *testing.T) {
	assert.Equal(t, Money(0), FromFloat(math.NaN()))
	assert.Equal(t, Money(math.MaxInt64), FromFloat(math.Inf(1)))
	assert.Equal(t, Money(math.MinInt64), FromFloat(-1e30))
}

func TestMoneyJSONRejectsOverflow(t *testing.T) {
	var m Money
	require.Error(t, json.Unmarshal([]byte(`1e300`), &m))
	require.Error(t, json.Unmarshal([]byte(`1e400`), &m))
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(FromFloat(0.01)))
	assert.True(t, ValidAmount(MaxAmount))
	assert.False(t, ValidAmount(MaxAmount+1))
	assert.False(t, ValidAmount(0))
	assert.False(t, ValidAmount(FromFloat(-5)))
}
