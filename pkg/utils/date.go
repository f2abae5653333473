package utils

import (
	"fmt"
	"time"
)

// ParsePeriodDate monta a data do período (dia fixo em 1) a partir de ano e mês
func ParsePeriodDate(year, month int) (*time.Time, error) {
	date, err := time.Parse("2006-1-02", fmt.Sprintf("%04d-%d-01", year, month))
	if err != nil {
		return nil, err
	}

	return &date, nil
}
