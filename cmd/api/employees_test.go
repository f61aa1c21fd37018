package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-portal/internal/domain"
)

func TestPrintEmployees_Table(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printEmployees(&out, "tr", false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 15)
	assert.Contains(t, lines[0], "Ad")
	assert.Contains(t, lines[1], "Alexander")
	assert.Contains(t, lines[1], "15/01/2023")
}

func TestPrintEmployees_JSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printEmployees(&out, "en", true))

	var employees []domain.Employee
	require.NoError(t, json.Unmarshal(out.Bytes(), &employees))
	assert.Len(t, employees, 14)
	assert.Equal(t, "1", employees[0].ID)
}

func TestPrintEmployees_UnsupportedLanguage(t *testing.T) {
	var out bytes.Buffer

	err := printEmployees(&out, "fr", false)

	assert.ErrorContains(t, err, `language "fr" not supported`)
}
