package cliapp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"nwsw/internal/engine"
)

func TestMainGlobalAlignmentHappyPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Main("needleman-wunsch", engine.Global, []string{"-q", "-s", "1", "1", "1"},
		strings.NewReader("GATTACA\nGATCACA\n"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "co-optimal alignment(s)")
}

func TestMainRejectsWrongOperandCount(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Main("needleman-wunsch", engine.Global, []string{"1", "1"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "expected 3 operands")
}

func TestMainRejectsSingleWorker(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Main("smith-waterman", engine.Local, []string{"-p", "1", "1", "1", "1"},
		strings.NewReader("AC\nAC\n"), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "greater than 1")
}

func TestMainHelpPrintsUsageAndExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Main("needleman-wunsch", engine.Global, []string{"-h"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "usage:")
}

func TestMainListPrintsPerAlignmentCounts(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Main("smith-waterman", engine.Local, []string{"-q", "-l", "1", "1", "1"},
		strings.NewReader("AC\nAC\n"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "matches:")
}

func TestMainRejectsNonIntegerOperand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Main("needleman-wunsch", engine.Global, []string{"x", "1", "1"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "must be integers")
}
