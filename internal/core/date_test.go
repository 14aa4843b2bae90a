package core

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantNil   bool
		wantValid bool
		want      string
	}{
		{name: "absent", raw: "", wantNil: true},
		{name: "chrome microseconds", raw: "1609459200000000", wantValid: true, want: "2021-01-01T00:00:00.000Z"},
		{name: "millisecond precision", raw: "1609459200123456", wantValid: true, want: "2021-01-01T00:00:00.123Z"},
		{name: "three digits reads as epoch", raw: "123", wantValid: true, want: "1970-01-01T00:00:00.000Z"},
		{name: "short value reads as epoch", raw: "7", wantValid: true, want: "1970-01-01T00:00:00.000Z"},
		{name: "negative", raw: "-1000", wantValid: true, want: "1969-12-31T23:59:59.999Z"},
		{name: "surrounding whitespace", raw: " 1000000", wantValid: true, want: "1970-01-01T00:00:01.000Z"},
		{name: "fraction truncates", raw: "1500.9000", wantValid: true, want: "1970-01-01T00:00:01.500Z"},
		{name: "not a number", raw: "abcdef", wantValid: false},
		{name: "largest date", raw: "8640000000000000000", wantValid: true, want: "+275760-09-13T00:00:00.000Z"},
		{name: "out of range", raw: "8640000000000001000", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDate(tt.raw)
			if tt.wantNil {
				assert.Nil(t, d)
				return
			}
			require.NotNil(t, d)
			assert.Equal(t, tt.wantValid, d.Valid())
			if tt.wantValid {
				assert.Equal(t, tt.want, d.String())
			}
		})
	}
}

func TestParseDate_DropsMicroseconds(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1609459200000, 1700000000123, 4102444800000} {
		for _, micros := range []string{"000", "123", "999"} {
			raw := strconv.FormatInt(ms, 10) + micros
			d := ParseDate(raw)
			require.NotNil(t, d, raw)
			assert.True(t, d.Valid(), raw)
			assert.Equal(t, ms, d.UnixMilli(), raw)
			assert.True(t, d.Time().Equal(time.UnixMilli(ms)), raw)
		}
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		out, err := json.Marshal(ParseDate("1609459200000000"))
		require.NoError(t, err)
		assert.Equal(t, `"2021-01-01T00:00:00.000Z"`, string(out))
	})

	t.Run("invalid date is null", func(t *testing.T) {
		out, err := json.Marshal(ParseDate("not-a-date"))
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})

	t.Run("negative year uses expanded form", func(t *testing.T) {
		d := ParseDate("-62198755200000000")
		require.NotNil(t, d)
		assert.Equal(t, "-000001-01-01T00:00:00.000Z", d.String())
	})
}

func TestDate_MarshalYAML(t *testing.T) {
	v, err := ParseDate("1609459200000000").MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "2021-01-01T00:00:00.000Z", v)

	v, err = ParseDate("oops-123").MarshalYAML()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_TimeOfInvalidDate(t *testing.T) {
	d := ParseDate("abcdef")
	require.NotNil(t, d)
	assert.True(t, d.Time().IsZero())
	assert.Equal(t, "Invalid Date", d.String())
}
