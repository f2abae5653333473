package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
)

func trendFixture(revenues ...float64) *domain.TrendSeries {
	periods := make([]domain.ProductPeriod, 0, len(revenues))
	for i, revenue := range revenues {
		periods = append(periods, domain.ProductPeriod{
			Year:    2024,
			Month:   i + 1,
			Date:    time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Units:   10,
			Revenue: revenue,
		})
	}
	return domain.NewTrendSeries(periods)
}

func TestRender_PNG(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, trendFixture(100, 200, 300), FormatPNG)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRender_SVG(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, trendFixture(100, 150, 90), FormatSVG)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), Title)
}

func TestRender_FlatSeries(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, trendFixture(50, 50), FormatPNG))
	assert.NotZero(t, buf.Len())
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer

	assert.ErrorIs(t, Render(&buf, trendFixture(100), FormatPNG), ErrNotEnoughPoints)
	assert.ErrorIs(t, Render(&buf, trendFixture(), FormatPNG), ErrNotEnoughPoints)
	assert.ErrorIs(t, Render(&buf, nil, FormatPNG), ErrNotEnoughPoints)
	assert.ErrorIs(t, Render(&buf, trendFixture(1, 2), "gif"), ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", FormatPNG},
		{"PNG", FormatPNG},
		{" svg ", FormatSVG},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	assert.Equal(t, "image/svg+xml", ContentType(FormatSVG))
	assert.Equal(t, "image/png", ContentType(FormatPNG))
}
