package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportDetailPath(t *testing.T) {
	assert.Equal(t, "/admin/reports/r42", reportDetailPath("r42", ""))
	assert.Equal(t, "/admin/reports/r42?type=accident", reportDetailPath("r42", "accident"))
	assert.Equal(t, "/admin/reports/r42", reportDetailPath("r42", "   "), "whitespace does not count as a filter")
}
