package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriodDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		want    time.Time
		wantErr bool
	}{
		{name: "mês válido", year: 2024, month: 3, want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "dezembro", year: 2023, month: 12, want: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "mês zero", year: 2024, month: 0, wantErr: true},
		{name: "mês treze", year: 2024, month: 13, wantErr: true},
		{name: "ano negativo", year: -1, month: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriodDate(tt.year, tt.month)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.67, RoundWithTwoDecimalPlace(10.666666))
	assert.Equal(t, -3.14, RoundWithTwoDecimalPlace(-3.14159))
}
