package schema

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(nil))
	assert.Nil(t, OptionalString(""))
	assert.Equal(t, "  x ", *OptionalString("  x "))
	assert.Equal(t, "12", *OptionalString(12))
}

func TestOptionalNumber(t *testing.T) {
	cases := []struct {
		name    string
		in      any
		want    *float64
		wantErr bool
	}{
		{name: "nil", in: nil},
		{name: "empty", in: ""},
		{name: "blank", in: "   "},
		{name: "float", in: 3.5, want: ptr(3.5)},
		{name: "int", in: 20, want: ptr(20)},
		{name: "zero stays zero", in: 0, want: ptr(0)},
		{name: "numeric string", in: " 88.5 ", want: ptr(88.5)},
		{name: "json number", in: json.Number("16"), want: ptr(16)},
		{name: "text", in: "abc", wantErr: true},
		{name: "nan", in: math.NaN(), wantErr: true},
		{name: "inf string", in: "Inf", wantErr: true},
		{name: "bool", in: true, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := OptionalNumber(tc.in, "Potência")
			if tc.wantErr {
				require.EqualError(t, err, "Potência deve ser um número")
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequiredString(t *testing.T) {
	_, err := RequiredString(nil, "Marca é obrigatória")
	assert.EqualError(t, err, "Marca é obrigatória")

	_, err = RequiredString(" \t", "Marca é obrigatória")
	assert.Error(t, err)

	_, err = RequiredString(42, "Marca é obrigatória")
	assert.Error(t, err)

	got, err := RequiredString(" Vulcano", "Marca é obrigatória")
	require.NoError(t, err)
	assert.Equal(t, " Vulcano", got)
}

func TestNormalizeBoolean(t *testing.T) {
	falsy := []any{nil, false, "", "false", "FALSE", "0", "off", "não", 0.0}
	for _, v := range falsy {
		got, err := NormalizeBoolean(v, "QPR")
		require.NoError(t, err, "%v", v)
		assert.False(t, got, "%v", v)
	}

	truthy := []any{true, "true", "1", "on", "sim", 1.0, json.Number("2")}
	for _, v := range truthy {
		got, err := NormalizeBoolean(v, "QPR")
		require.NoError(t, err, "%v", v)
		assert.True(t, got, "%v", v)
	}

	_, err := NormalizeBoolean("maybe", "QPR")
	assert.EqualError(t, err, "QPR deve ser verdadeiro ou falso")
}

func TestOptionalDate(t *testing.T) {
	got, err := OptionalDate("2019-07-01", "Data de fabrico")
	require.NoError(t, err)
	assert.Equal(t, "2019-07-01", *got)

	got, err = OptionalDate("2019-07-01T00:00:00.000Z", "Data de fabrico")
	require.NoError(t, err)
	assert.Equal(t, "2019-07-01", *got)

	got, err = OptionalDate("2024-01-01T23:30:00-05:00", "Data de fabrico")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", *got)

	got, err = OptionalDate(time.Date(2024, 1, 1, 23, 30, 0, 0, time.FixedZone("EST", -5*3600)), "Data de fabrico")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", *got)

	got, err = OptionalDate(time.Date(2020, 2, 29, 12, 0, 0, 0, time.UTC), "Data de fabrico")
	require.NoError(t, err)
	assert.Equal(t, "2020-02-29", *got)

	got, err = OptionalDate("", "Data de fabrico")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = OptionalDate("01/07/2019", "Data de fabrico")
	assert.EqualError(t, err, "Data de fabrico inválida")
}

func TestDescribe(t *testing.T) {
	desc := Describe()
	require.Len(t, desc, 5)

	esq := desc[0]
	assert.Equal(t, "Esquentador", string(esq.Type))
	require.Len(t, esq.Fields, 4)
	assert.Equal(t, FieldKindEnum, esq.Fields[0].Kind)
	assert.Len(t, esq.Fields[0].Options, 8)
	assert.Equal(t, "kW", esq.Fields[1].Unit)

	termo := desc[1]
	assert.Equal(t, FieldKindBoolean, termo.Fields[3].Kind)
	assert.Len(t, desc[3].Fields[0].Options, 13)
	assert.Len(t, TechnicalFieldNames(), 13)
}

func ptr(v float64) *float64 { return &v }
