package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noEnv(string) (string, bool) {
	return "", false
}

func mapEnv(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestRun_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--file", "data.csv", "--depvarname", "y"}, noEnv, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout.String(), "a quiet run prints nothing")
	assert.Empty(t, stderr.String())
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--help"}, noEnv, &stdout, &stderr)
	assert.Equal(t, 0, code, "help is an informational exit, not an error")
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Contains(t, stdout.String(), "--ntree")
	assert.Empty(t, stderr.String())
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--version"}, noEnv, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Please cite Ranger:")
}

func TestRun_ValidationFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--depvarname", "y"}, noEnv, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "--file", "the message names the missing flag")
	assert.Empty(t, stdout.String())
}

func TestRun_CoercionFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--file", "f", "--depvarname", "y", "--ntree", "0"}, noEnv, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "ntree")
}

func TestRun_LeftoversReported(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--file", "f", "--depvarname", "y", "stray"}, noEnv, &stdout, &stderr)
	assert.Equal(t, 0, code, "leftovers are reported but never fatal")
	assert.Contains(t, stderr.String(), "ignoring unrecognized argument 'stray'")
}

func TestRun_VerboseSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--file", "data.csv", "--depvarname", "y", "--verbose", "--seed", "5",
		"--quantiles", "0.1,0.9"}, noEnv, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Tree type: quantile")
	assert.Contains(t, stdout.String(), "Input file: data.csv")
	assert.Contains(t, stdout.String(), "Seed: 5")
	assert.Contains(t, stdout.String(), "Quantiles: [0.1 0.9]")
}

func TestRun_RangerOpts(t *testing.T) {
	var stdout, stderr bytes.Buffer

	env := mapEnv(map[string]string{"RANGER_OPTS": `--file "shared data.csv" --depvarname y`})
	code := run([]string{"--verbose"}, env, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Input file: shared data.csv")
}

func TestRun_ArgsOverrideRangerOpts(t *testing.T) {
	var stdout, stderr bytes.Buffer

	env := mapEnv(map[string]string{"RANGER_OPTS": "--file a.csv --depvarname y"})
	code := run([]string{"--file", "b.csv", "--verbose"}, env, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Input file: b.csv", "explicit arguments win over RANGER_OPTS")
}

func TestRun_BadRangerOpts(t *testing.T) {
	var stdout, stderr bytes.Buffer

	env := mapEnv(map[string]string{"RANGER_OPTS": `--file "unterminated`})
	code := run(nil, env, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "RANGER_OPTS")
}
