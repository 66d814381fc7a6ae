package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-savgol/dsp/savgol"
)

// executeCommand runs the CLI with args and stdin, capturing stdout and
// stderr.
func executeCommand(stdin io.Reader, args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCommand()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(append([]string{"--quiet"}, args...))
	err = cmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, code, exitErr.Code)
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand(nil, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"list", "show", "apply", "response", "version"} {
		assert.Contains(t, stdout, sub, "help should mention %q subcommand", sub)
	}
	for _, flag := range []string{"--config", "--log-level", "--family", "--window", "--fft-size"} {
		assert.Contains(t, stdout, flag, "help should mention %q flag", flag)
	}
}

func TestRootCommand_UnknownFlag(t *testing.T) {
	_, stderr, err := executeCommand(nil, "--nonexistent")
	require.Error(t, err)
	requireExitCode(t, err, 2)
	assert.Empty(t, stderr)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	_, _, err := executeCommand(nil, "--config", "/nonexistent/path.yaml", "list")
	requireExitCode(t, err, 2)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestRootCommand_InvalidFamilyFlag(t *testing.T) {
	_, _, err := executeCommand(nil, "--family", "hann", "list")
	requireExitCode(t, err, 2)
	assert.Contains(t, err.Error(), "invalid family")
}

func TestList(t *testing.T) {
	stdout, _, err := executeCommand(nil, "list")
	require.NoError(t, err)

	for _, f := range savgol.Families() {
		assert.Contains(t, stdout, f.String())
	}
	assert.Contains(t, stdout, "7 9 11 13 15 17 19 21 23 25")
	assert.Contains(t, stdout, "derivative")
}

func TestShow(t *testing.T) {
	stdout, _, err := executeCommand(nil, "show", "quad-cubic", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kernel:  quad-cubic/7")
	assert.Contains(t, stdout, "norm:    21")
	assert.Contains(t, stdout, "weights: -2 3 6 7 6 3 -2")
	assert.Contains(t, stdout, "border:  3")
	assert.Contains(t, stdout, "dc gain: 1")
}

func TestShow_Defaults(t *testing.T) {
	stdout, _, err := executeCommand(nil, "--family", "gaussian", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "weights: 1 4 6 4 1")
	assert.Contains(t, stdout, "norm:    16")
}

func TestShow_UnsupportedWindow(t *testing.T) {
	_, _, err := executeCommand(nil, "show", "quartic-quintic", "5")
	requireExitCode(t, err, 2)
	assert.ErrorIs(t, err, savgol.ErrUnsupportedWindowSize)
}

func TestShow_UnknownFamily(t *testing.T) {
	_, _, err := executeCommand(nil, "show", "hann")
	requireExitCode(t, err, 2)
	assert.ErrorIs(t, err, savgol.ErrUnknownFamily)
}

func TestShow_BadWindow(t *testing.T) {
	_, _, err := executeCommand(nil, "show", "average", "five")
	requireExitCode(t, err, 2)
}

const pulse = "0 0 0 0 0 0 0 10 10 10 10 10 10 10 0 0 0 0 0 0 0\n"

func TestApply_Stdin(t *testing.T) {
	stdout, _, err := executeCommand(strings.NewReader(pulse), "-f", "average", "-w", "5", "apply")
	require.NoError(t, err)

	lines := strings.Fields(stdout)
	want := strings.Fields("0 0 0 0 0 2 4 6 8 10 10 10 8 6 4 2 0 0 0 0 0")
	assert.Equal(t, want, lines)
}

func TestApply_Columns(t *testing.T) {
	stdout, _, err := executeCommand(strings.NewReader(pulse),
		"-f", "average", "-w", "5", "apply", "--with-input", "--compare", "gaussian,quad-cubic", "-")
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, rows, 21)
	for _, r := range rows {
		assert.Len(t, strings.Fields(r), 4)
	}
	assert.Equal(t, "0 0 0 0", rows[0])
	// input 10, average of 0 0 10 10 10, gaussian (0+0+60+40+10)/16.
	assert.Equal(t, "10 6 6.875", strings.Join(strings.Fields(rows[7])[:3], " "))
}

func TestApply_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data.txt")
	content := "# header\n1 2 3\n4 5 # trailing\n6\n7\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	stdout, _, err := executeCommand(nil, "-f", "average", "-w", "5", "apply", p)
	require.NoError(t, err)
	assert.Equal(t, strings.Fields("1 2 3 4 5 6 7"), strings.Fields(stdout))
}

func TestApply_InvalidSample(t *testing.T) {
	_, _, err := executeCommand(strings.NewReader("1 2\n3 x\n"), "apply")
	requireExitCode(t, err, 1)
	assert.Contains(t, err.Error(), "line 2")
}

func TestApply_MissingFile(t *testing.T) {
	_, _, err := executeCommand(nil, "apply", filepath.Join(t.TempDir(), "missing.txt"))
	requireExitCode(t, err, 1)
}

func TestApply_UnsupportedCompare(t *testing.T) {
	_, _, err := executeCommand(strings.NewReader(pulse), "-w", "5", "apply", "--compare", "quartic-quintic")
	requireExitCode(t, err, 2)
	assert.ErrorIs(t, err, savgol.ErrUnsupportedWindowSize)
}

func TestResponse(t *testing.T) {
	stdout, _, err := executeCommand(nil, "--fft-size", "8", "response", "average", "5")
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"0", "0.000000", "1.000000"}, strings.Fields(rows[1])[:3])
	assert.Equal(t, []string{"4", "0.500000", "0.200000", "-13.98"}, strings.Fields(rows[5]))
}

func TestResponse_InvalidFFTSize(t *testing.T) {
	_, _, err := executeCommand(nil, "--fft-size", "12", "response", "average", "5")
	requireExitCode(t, err, 2)
	assert.ErrorIs(t, err, savgol.ErrInvalidFFTSize)
}

func TestVersion(t *testing.T) {
	stdout, _, err := executeCommand(nil, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sgfilter dev")
}

func TestReadSamples(t *testing.T) {
	got, err := readSamples(strings.NewReader("1.5 -2\n\n  3e2\t4 # x y z\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 300, 4}, got)

	got, err = readSamples(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadSamples_LongLine(t *testing.T) {
	// One row well past bufio.MaxScanTokenSize.
	row := strings.Repeat("1.2345678 ", 10000) + "# trailing comment\n2.5\n"
	got, err := readSamples(strings.NewReader(row))
	require.NoError(t, err)
	require.Len(t, got, 10001)
	assert.InDelta(t, 1.2345678, got[0], 0)
	assert.InDelta(t, 1.2345678, got[9999], 0)
	assert.InDelta(t, 2.5, got[10000], 0)
}

func TestApply_LongLine(t *testing.T) {
	in := strings.Repeat("4 ", 40000)
	stdout, _, err := executeCommand(strings.NewReader(in), "apply", "-f", "average", "-w", "5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 40000)
	assert.Equal(t, "4", lines[20000])
}

func TestWriteColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeColumns(&buf, [][]float64{{1, 2}, {0.5, -1}}))
	assert.Equal(t, "1 0.5\n2 -1\n", buf.String())

	buf.Reset()
	require.NoError(t, writeColumns(&buf, nil))
	assert.Empty(t, buf.String())
}
