package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateJSONNullPointer(t *testing.T) {
	type wrapper struct {
		When *Date `json:"when"`
	}

	raw, err := json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":null}`, string(raw))

	var back wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"when":null}`), &back))
	assert.Nil(t, back.When)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 1, 17, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-01", d.String())

	require.NoError(t, d.Scan("2023-12-31"))
	assert.Equal(t, "2023-12-31", d.String())

	require.Error(t, d.Scan(42))
}
