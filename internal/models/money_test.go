package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoneyExactAccumulation(t *testing.T) {
	dime, err := MoneyFromString("0.10")
	require.NoError(t, err)

	sum := Money{}
	for i := 0; i < 3; i++ {
		sum = sum.Add(dime)
	}
	require.Equal(t, "0.30", sum.StringFixed(2))
}

func TestMoneyJSON(t *testing.T) {
	m, err := MoneyFromString("1234.5")
	require.NoError(t, err)

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	// Two fractional digits, emitted as a bare number.
	require.Equal(t, "1234.50", string(raw))

	var quoted Money
	require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &quoted))
	require.Equal(t, "12.34", quoted.StringFixed(2))

	var plain Money
	require.NoError(t, json.Unmarshal([]byte(`12.34`), &plain))
	require.Equal(t, "12.34", plain.StringFixed(2))
}

func TestMoneyNegative(t *testing.T) {
	m, err := MoneyFromString("-0.01")
	require.NoError(t, err)
	require.True(t, m.IsNegative())

	zero := Money{}
	require.False(t, zero.IsNegative())
}
