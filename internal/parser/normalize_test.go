package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1234.56", "1234.56"},
		{"1234", "1234"},
		{"0,01", "0.01"},
		{"", "0"},
		{" 2.000.000,00 ", "2000000"},
	}

	for _, tt := range tests {
		d, err := ParseAmount(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, d.String(), "input %q", tt.in)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseAmount("abc")
	require.Error(t, err)

	_, err = ParseAmount("12,34,56")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2024-03-01", "01.03.2024", "01/03/2024"} {
		d, err := ParseDate(in)
		require.NoError(t, err, "input %q", in)
		require.True(t, d.Equal(want), "input %q parsed to %v", in, d)
	}

	_, err := ParseDate("03-01-2024")
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{
		"xml":          FormatNationalXML,
		"national_xml": FormatNationalXML,
		"CSV":          FormatCSV,
		"mt940":        FormatMT940,
		"sta":          FormatMT940,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("ofx")
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{
		"izvod-17.XML":      FormatNationalXML,
		"export.csv":        FormatCSV,
		"statement.mt940":   FormatMT940,
		"statement.sta":     FormatMT940,
		"nested/file.mt940": FormatMT940,
	} {
		got, err := DetectFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got, "file %q", in)
	}

	_, err := DetectFormat("statement.pdf")
	require.Error(t, err)
}
