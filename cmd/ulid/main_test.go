package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plaenen/ulid/pkg/ulid"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestGenerateDefault(t *testing.T) {
	stdout, _, err := runCLI(t)
	require.NoError(t, err)

	out := lines(stdout)
	require.Len(t, out, 1)
	_, err = ulid.Parse(out[0])
	assert.NoError(t, err)
}

func TestGenerateMonotonicAtFixedTime(t *testing.T) {
	stdout, _, err := runCLI(t, "-n", "50", "-monotonic", "-fast", "-time", "1592257131689")
	require.NoError(t, err)

	out := lines(stdout)
	require.Len(t, out, 50)

	var prev ulid.ULID
	for i, s := range out {
		id, err := ulid.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, int64(1592257131689), id.Timestamp())
		if i > 0 {
			assert.Equal(t, 1, id.Compare(prev), "line %d not increasing", i)
		}
		prev = id
	}
}

func TestGenerateRFC3339Time(t *testing.T) {
	stdout, _, err := runCLI(t, "-time", "2020-06-15T21:38:51.689Z")
	require.NoError(t, err)

	id, err := ulid.Parse(strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.Equal(t, int64(1592257131689), id.Timestamp())
}

func TestGenerateFormats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, s string)
	}{
		{"lower", func(t *testing.T, s string) {
			assert.Len(t, s, ulid.EncodedSize)
			assert.Equal(t, strings.ToLower(s), s)
		}},
		{"uuid", func(t *testing.T, s string) {
			assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, s)
		}},
		{"hex", func(t *testing.T, s string) {
			assert.Regexp(t, `^[0-9a-f]{32}$`, s)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stdout, _, err := runCLI(t, "-format", tt.format)
			require.NoError(t, err)
			tt.check(t, strings.TrimSpace(stdout))
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"ZeroCount", []string{"-n", "0"}, "-n must be at least 1"},
		{"UnknownFormat", []string{"-format", "base64"}, `unknown format "base64"`},
		{"BadTime", []string{"-time", "yesterday"}, "invalid -time"},
		{"TimeOutOfRange", []string{"-time", "281474976710656"}, "out of range"},
		{"StrayArguments", []string{"01EAWYQD59KTN275S079C9ESX7"}, "did you mean -parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, stdout)
		})
	}
}

func TestParse(t *testing.T) {
	stdout, stderr, err := runCLI(t, "-parse", "01EAWYQD59KTN275S079C9ESX7")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Contains(t, stdout, "id:        01EAWYQD59KTN275S079C9ESX7\n")
	assert.Contains(t, stdout, "timestamp: 1592257131689\n")
	assert.Contains(t, stdout, "time:      2020-06-15T21:38:51.689Z\n")
	assert.Contains(t, stdout, "entropy:   9eaa2397203a589767a7\n")
	assert.Contains(t, stdout, "uuid:      0172b9eb-b4a9-9eaa-2397-203a589767a7\n")
}

func TestParseInvalid(t *testing.T) {
	stdout, stderr, err := runCLI(t, "-parse", "01EAWYQD59KTN275S079C9ESX7", "01EAWYQD59KTN275S079C9ESXU", "short")
	require.Error(t, err)
	assert.Equal(t, "2 of 3 identifiers are invalid", err.Error())

	assert.Contains(t, stdout, "01EAWYQD59KTN275S079C9ESX7")
	assert.Contains(t, stderr, "invalid character 'U' at position 26")
	assert.Contains(t, stderr, "must be exactly 26 characters long")
}

func TestParseWithoutArguments(t *testing.T) {
	_, _, err := runCLI(t, "-parse")
	require.Error(t, err)
}

func TestHelp(t *testing.T) {
	_, stderr, err := runCLI(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr, "Usage: ulid")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := runCLI(t, "-n", "2", "-log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "generating identifiers")
	assert.Contains(t, stderr, "count=2")
}
