package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		want      string
	}{
		{"both empty is an open range", "", "", ""},
		{"valid range", "2025-01-01", "2025-02-01", ""},
		{"open end", "2025-01-01", "", ""},
		{"open start", "", "2025-02-01", ""},
		{"garbage start", "yesterday", "", "Start date must be formatted YYYY-MM-DD"},
		{"garbage end", "", "01.02.2025", "End date must be formatted YYYY-MM-DD"},
		{"inverted range", "2025-02-01", "2025-01-01", "End date lies before the start date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateDateRange(tt.startDate, tt.endDate))
		})
	}
}
