package spheres

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/format"
	"github.com/R3mmurd/MonteCarlo/geometry"
)

func TestRead(t *testing.T) {
	input := `# two spheres
0 0 0 1
  1.5	-2 3e-1   0.25

`
	set, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, set.Skipped)
	require.Equal(t, []geometry.Sphere{
		geometry.NewSphere(0, 0, 0, 1),
		geometry.NewSphere(1.5, -2, 0.3, 0.25),
	}, set.Spheres)
}

func TestRead_SkipsMalformedRecords(t *testing.T) {
	input := strings.Join([]string{
		"0 0 0 1",    // 1 ok
		"1 2 3",      // 2 short
		"1 2 3 4 5",  // 3 long
		"a b c d",    // 4 not numbers
		"0 0 0 -1",   // 5 negative radius
		"0 0 NaN 1",  // 6 non-finite center
		"2 2 2 0",    // 7 ok, point sphere
		"3 3 3 0.5 ", // 8 ok, trailing blank
		"4 4 4",      // 9 short trailing record without newline
	}, "\n")

	set, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, set.Spheres, 3)
	require.Equal(t, geometry.NewSphere(3, 3, 3, 0.5), set.Spheres[2])

	lines := make([]int, 0, len(set.Skipped))
	for _, s := range set.Skipped {
		lines = append(lines, s.Line)
		require.NotEmpty(t, s.Reason)
	}
	require.Equal(t, []int{2, 3, 4, 5, 6, 9}, lines)
	require.Contains(t, set.Skipped[0].Reason, "expected 4 fields, got 3")
	require.Contains(t, set.Skipped[2].Reason, "invalid number")
}

func TestRead_Empty(t *testing.T) {
	set, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, set.Spheres)
	require.Empty(t, set.Skipped)
}

func TestRead_LongLines(t *testing.T) {
	comment := "#" + strings.Repeat("x", 70_000)
	junk := strings.Repeat("9 ", 40_000)
	input := "0 0 0 1\n" + comment + "\n" + junk + "\n1 1 1 1"

	set, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []geometry.Sphere{
		geometry.NewSphere(0, 0, 0, 1),
		geometry.NewSphere(1, 1, 1, 1),
	}, set.Spheres)
	require.Len(t, set.Skipped, 1)
	require.Equal(t, 3, set.Skipped[0].Line)
}

func TestRead_CRLF(t *testing.T) {
	set, err := Read(strings.NewReader("0 0 0 1\r\n\r\n2 2 2 0.5\r\n"))
	require.NoError(t, err)
	require.Len(t, set.Spheres, 2)
	require.Empty(t, set.Skipped)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, os.ErrPermission }

func TestRead_IOError(t *testing.T) {
	_, err := Read(failingReader{})
	require.ErrorIs(t, err, errs.ErrUnreadableInput)
	require.ErrorIs(t, err, os.ErrPermission)
}

func TestWrite_RoundTrip(t *testing.T) {
	spheres := []geometry.Sphere{
		geometry.NewSphere(0.1, -0.2, 1e-7, 3),
		geometry.NewSphere(1.0/3.0, 2, 3, 0),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, spheres))

	set, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, spheres, set.Spheres)
	require.Equal(t, Fingerprint(spheres), set.Fingerprint())
}

func TestFiles_RoundTrip(t *testing.T) {
	spheres, err := Generate(200, WithGenerateSeed(4))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"s.txt", "s.txt.zst", "s.txt.s2", "s.txt.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(path, spheres))

			set, err := ReadFile(path)
			require.NoError(t, err)
			require.Empty(t, set.Skipped)
			require.Equal(t, spheres, set.Spheres)

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			var plain bytes.Buffer
			require.NoError(t, Write(&plain, spheres))
			if format.FromExtension(path) == format.CompressionNone {
				require.Equal(t, plain.Bytes(), raw)
			} else {
				require.NotEqual(t, plain.Bytes(), raw)
			}
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
		require.ErrorIs(t, err, errs.ErrUnreadableInput)
	})

	t.Run("corrupt compressed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.zst")
		require.NoError(t, os.WriteFile(path, []byte("0 0 0 1\n"), 0o600))

		_, err := ReadFile(path)
		require.ErrorIs(t, err, errs.ErrUnreadableInput)
	})
}

func TestFingerprint(t *testing.T) {
	a := []geometry.Sphere{geometry.NewSphere(0, 0, 0, 1), geometry.NewSphere(1, 0, 0, 1)}
	b := []geometry.Sphere{geometry.NewSphere(1, 0, 0, 1), geometry.NewSphere(0, 0, 0, 1)}

	require.Equal(t, Fingerprint(a), Fingerprint(a))
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestGenerate(t *testing.T) {
	a, err := Generate(50, WithGenerateSeed(1), WithExtent(2), WithRadiusRange(0.1, 0.3))
	require.NoError(t, err)
	require.Len(t, a, 50)

	for _, s := range a {
		require.NoError(t, s.Validate())
		require.GreaterOrEqual(t, s.Radius, 0.1)
		require.LessOrEqual(t, s.Radius, 0.3)
		for _, c := range []float64{s.Center.X, s.Center.Y, s.Center.Z} {
			require.GreaterOrEqual(t, c, -2.0)
			require.LessOrEqual(t, c, 2.0)
		}
	}

	b, err := Generate(50, WithGenerateSeed(1), WithExtent(2), WithRadiusRange(0.1, 0.3))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(0)
	require.ErrorIs(t, err, errs.ErrEmptyRegion)

	_, err = Generate(3, WithRadiusRange(2, 1))
	require.ErrorIs(t, err, errs.ErrInvalidRadius)

	_, err = Generate(3, WithExtent(-1))
	require.Error(t, err)
}
