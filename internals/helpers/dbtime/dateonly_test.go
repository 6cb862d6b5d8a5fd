package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	d, err := Parse("2025-10-30")
	require.NoError(t, err)
	require.Equal(t, "2025-10-30", d.String())
}

func TestParseRejectsWrongFormat(t *testing.T) {
	// formato DD-MM-YYYY era aceito silenciosamente em versões antigas
	_, err := Parse("30-10-2025")
	require.Error(t, err)

	_, err = Parse("2025-10-30T00:00:00Z")
	require.Error(t, err)

	_, err = Parse("")
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2007-05-15"`), &d))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2007-05-15"`, string(b))
}

func TestUnmarshalRejectsNumber(t *testing.T) {
	var d DateOnly
	require.Error(t, json.Unmarshal([]byte(`20251030`), &d))
}

func TestScanVariants(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan(time.Date(2025, 10, 30, 13, 45, 0, 0, time.Local)))
	require.Equal(t, "2025-10-30", d.String())

	require.NoError(t, d.Scan("2024-01-02"))
	require.Equal(t, "2024-01-02", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-04")))
	require.Equal(t, "2024-03-04", d.String())
}

func TestValue(t *testing.T) {
	d, err := Parse("2025-10-30")
	require.NoError(t, err)

	v, err := d.Value()
	require.NoError(t, err)
	require.Equal(t, "2025-10-30", v)

	var zero DateOnly
	v, err = zero.Value()
	require.NoError(t, err)
	require.Nil(t, v)
}
