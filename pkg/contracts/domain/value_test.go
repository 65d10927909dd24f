package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatJSON(t *testing.T) {
	valid, err := json.Marshal(NewFloat(12.5))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(valid))

	missing, err := json.Marshal(Float{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(missing), "missing values render as null, never zero")

	var f Float
	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.False(t, f.Valid)

	require.NoError(t, json.Unmarshal([]byte("3.25"), &f))
	assert.True(t, f.Valid)
	assert.InDelta(t, 3.25, f.Value, 0.0001)
}

func TestFloatOr(t *testing.T) {
	assert.Equal(t, 5.0, NewFloat(5).Or(99))
	assert.Equal(t, 99.0, Float{}.Or(99))
}

func TestDateJSON(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-03-15")

	missing, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(missing))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Valid)
	assert.Equal(t, 2024, parsed.Time.Year())

	require.NoError(t, json.Unmarshal([]byte("null"), &parsed))
	assert.False(t, parsed.Valid)
}

func TestStringJSON(t *testing.T) {
	data, err := json.Marshal(NewString("Paid"))
	require.NoError(t, err)
	assert.Equal(t, `"Paid"`, string(data))

	missing, err := json.Marshal(String{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(missing))

	var s String
	require.NoError(t, json.Unmarshal([]byte(`"Unpaid"`), &s))
	assert.True(t, s.Valid)
	assert.Equal(t, "Unpaid", s.Value)
}
