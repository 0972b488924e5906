package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/R3mmurd/MonteCarlo/errs"
)

// execute runs the command line and returns its status and output.
func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

// fieldValue extracts the value printed for label in a plain report.
func fieldValue(t *testing.T, out, label string) string {
	t.Helper()

	re := regexp.MustCompile(`(?m)^\s+` + regexp.QuoteMeta(label) + `:\s+(.+)$`)
	m := re.FindStringSubmatch(out)
	require.NotNil(t, m, "label %q not found in:\n%s", label, out)

	return strings.TrimSpace(m[1])
}

func writeSpheres(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{usagef("missing"), exitUsage},
		{fmt.Errorf("wrapped: %w", usagef("missing")), exitUsage},
		{fmt.Errorf("%w: x", errs.ErrUnreadableInput), exitUnreadable},
		{errs.ErrZeroSamples, exitConfigError},
		{errs.ErrEmptyRegion, exitConfigError},
		{fmt.Errorf("%w: box", errs.ErrUnboundedRegion), exitConfigError},
		{errs.ErrUnknownIntegrand, exitConfigError},
		{errConfig, exitConfigError},
		{os.ErrPermission, exitFailure},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, exitCode(tt.err), "%v", tt.err)
	}
}

func TestPi(t *testing.T) {
	code, out, _ := execute(t, "pi", "200000", "--seed", "3", "--plain")
	require.Equal(t, exitOK, code)
	require.Equal(t, "200,000", fieldValue(t, out, "Samples"))
	require.Equal(t, "3", fieldValue(t, out, "Seed"))

	v, err := strconv.ParseFloat(fieldValue(t, out, "Estimate"), 64)
	require.NoError(t, err)
	require.InDelta(t, 3.14159, v, 0.05)

	_, again, _ := execute(t, "pi", "-n", "200000", "--seed", "3")
	require.Equal(t, fieldValue(t, out, "Estimate"), fieldValue(t, again, "Estimate"))
}

func TestPi_Workers(t *testing.T) {
	code, out, _ := execute(t, "pi", "-n", "100000", "--seed", "1", "--workers", "4")
	require.Equal(t, exitOK, code)
	require.Equal(t, "4", fieldValue(t, out, "Workers"))
}

func TestIntegrate(t *testing.T) {
	code, out, _ := execute(t, "integrate", "--func", "x2", "--a", "0", "--b", "1", "-n", "500000", "--seed", "9")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Integral of x^2 over [0, 1]")

	v, err := strconv.ParseFloat(fieldValue(t, out, "Estimate"), 64)
	require.NoError(t, err)
	require.InEpsilon(t, 1.0/3.0, v, 0.01)
	require.Equal(t, "0.3333333333", fieldValue(t, out, "Exact"))
}

func TestIntegrate_Defaults(t *testing.T) {
	code, out, _ := execute(t, "integrate", "100000", "--seed", "2")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Integral of e^(-x^2) over [0, 2]")
	require.Equal(t, "100,000", fieldValue(t, out, "Samples"))
}

func TestIntegrate_List(t *testing.T) {
	code, out, _ := execute(t, "integrate", "--list")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "exp-x2")
	require.Contains(t, out, "lorentz")
}

func TestSpheres(t *testing.T) {
	path := writeSpheres(t, "two.txt", "# coincident\n0 0 0 1\n0 0 0 1\n1 2\n")

	code, out, stderr := execute(t, "spheres", path, "400000", "--seed", "5")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Spheres (2)")
	require.Contains(t, out, "Center: (0, 0, 0); Radius: 1")
	require.Equal(t, "1", fieldValue(t, out, "Skipped records"))
	require.Equal(t, "(-1, -1, -1)", fieldValue(t, out, "Min"))
	require.Equal(t, "(1, 1, 1)", fieldValue(t, out, "Max"))
	require.Equal(t, "2 x 2 x 2", fieldValue(t, out, "Dimensions"))

	hit, err := strconv.ParseFloat(fieldValue(t, out, "Hit volume"), 64)
	require.NoError(t, err)
	require.InEpsilon(t, 4.18879, hit, 0.02)
	require.Equal(t, fieldValue(t, out, "Hit volume")+" (threshold 2)", fieldValue(t, out, "Overlap volume"))

	require.Contains(t, stderr, "skipped sphere record")
	require.Contains(t, stderr, "line=4")
}

func TestSpheres_Threshold(t *testing.T) {
	path := writeSpheres(t, "two.txt", "0 0 0 1\n0 0 0 1\n")

	code, out, _ := execute(t, "spheres", path, "-n", "10000", "-k", "3", "--seed", "5")
	require.Equal(t, exitOK, code)
	require.Equal(t, "0.000000 (threshold 3)", fieldValue(t, out, "Overlap volume"))
}

func TestGenerateThenSpheres(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.txt.zst")

	code, out, _ := execute(t, "generate", path, "--count", "5", "--seed", "8")
	require.Equal(t, exitOK, code)
	fingerprint := fieldValue(t, out, "Fingerprint")

	code, out, _ = execute(t, "spheres", path, "-n", "10000", "--seed", "8")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Spheres (5)")
	require.Equal(t, fingerprint, fieldValue(t, out, "Fingerprint"))
}

func TestConverge(t *testing.T) {
	code, out, _ := execute(t, "converge", "--sizes", "500,2000,8000", "--runs", "32", "--seed", "4")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Convergence of pi")
	require.Contains(t, out, "n=8,000")
	require.Regexp(t, `err = \S+ \* n\^-0\.\d{3}`, fieldValue(t, out, "Fit"))

	code, out, _ = execute(t, "converge", "integrate", "--func", "x2", "--b", "1", "--sizes", "100,1000", "--runs", "4", "--seed", "4")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "Convergence of integral of x^2")
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "mc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed: 77\npi:\n  samples: 1234\n"), 0o600))

	code, out, _ := execute(t, "pi", "--config", cfgPath)
	require.Equal(t, exitOK, code)
	require.Equal(t, "1,234", fieldValue(t, out, "Samples"))
	require.Equal(t, "77", fieldValue(t, out, "Seed"))

	code, out, _ = execute(t, "pi", "--config", cfgPath, "--seed", "1", "-n", "100")
	require.Equal(t, exitOK, code)
	require.Equal(t, "100", fieldValue(t, out, "Samples"))
	require.Equal(t, "1", fieldValue(t, out, "Seed"))
}

func TestExitStatuses(t *testing.T) {
	emptyFile := writeSpheres(t, "empty.txt", "# nothing\n")
	badConfig := writeSpheres(t, "bad.yaml", "workers: -1\n")
	farApart := writeSpheres(t, "far.txt", "0 0 0 1\n1e200 1e200 1e200 1\n")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no command", nil, exitUsage},
		{"unknown command", []string{"bogus"}, exitUsage},
		{"unknown flag", []string{"pi", "--bogus"}, exitUsage},
		{"missing file argument", []string{"spheres"}, exitUsage},
		{"bad positional count", []string{"pi", "lots"}, exitUsage},
		{"too many arguments", []string{"pi", "1", "2"}, exitUsage},
		{"unreadable file", []string{"spheres", filepath.Join(t.TempDir(), "absent.txt")}, exitUnreadable},
		{"zero samples", []string{"pi", "0"}, exitConfigError},
		{"empty sphere set", []string{"spheres", emptyFile, "-n", "10"}, exitConfigError},
		{"unbounded sphere set", []string{"spheres", farApart, "-n", "10"}, exitConfigError},
		{"zero threshold", []string{"spheres", emptyFile, "-k", "0"}, exitConfigError},
		{"unknown integrand", []string{"integrate", "--func", "tan"}, exitConfigError},
		{"negative workers", []string{"pi", "10", "--workers", "-1"}, exitConfigError},
		{"invalid config file", []string{"pi", "--config", badConfig}, exitConfigError},
		{"bad log level", []string{"pi", "10", "--log-level", "loud"}, exitConfigError},
		{"unknown estimator", []string{"converge", "tau"}, exitUsage},
		{"single convergence size", []string{"converge", "--sizes", "100"}, exitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(t, tt.args...)
			require.Equal(t, tt.want, code, stderr)
			require.Contains(t, stderr, "Error:")
		})
	}
}

func TestMissingArgumentPrintsUsage(t *testing.T) {
	code, stdout, stderr := execute(t, "spheres")
	require.Equal(t, exitUsage, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Usage:")
	require.Contains(t, stderr, "spheres FILE [samples]")
	require.Contains(t, stderr, "Error: accepts between 1 and 2 arg(s), received 0")

	code, _, stderr = execute(t, "pi", "1", "2")
	require.Equal(t, exitUsage, code)
	require.Contains(t, stderr, "Usage:")
}

func TestFormatCount(t *testing.T) {
	tests := map[int]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		1234567:    "1,234,567",
		-10000:     "-10,000",
		10_000_000: "10,000,000",
	}
	for n, want := range tests {
		require.Equal(t, want, formatCount(n))
	}
}
