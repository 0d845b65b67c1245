package benchplot

import (
	"bytes"
	"github.com/minor-industries/benchplot/database"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const benchOutput = `goos: linux
goarch: amd64
BenchmarkFoo/testBytes=128      1000      45.2 ns/op
BenchmarkFoo/testBytes=256      500       90.1 ns/op
BenchmarkBar/testBytes=64       2000      10 ns/op
PASS
`

func writeBench(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "bench.txt")
	require.NoError(t, os.WriteFile(path, []byte(benchOutput), 0o644))
	return path
}

func TestPipelineRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "benchmark_results.png")

	p := &Pipeline{
		Input:  writeBench(t, dir),
		Output: out,
	}
	require.NoError(t, p.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestPipelineMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "benchmark_results.png")

	p := &Pipeline{
		Input:  filepath.Join(dir, "no-such-file.txt"),
		Output: out,
	}
	require.Error(t, p.Run())

	// no chart may be produced on a failed run
	_, err := os.Stat(out)
	require.True(t, os.IsNotExist(err))
}

func TestPipelineEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bench.txt")
	require.NoError(t, os.WriteFile(in, []byte("no benchmarks here\n"), 0o644))
	out := filepath.Join(dir, "benchmark_results.png")

	p := &Pipeline{Input: in, Output: out}
	require.NoError(t, p.Run())

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestPipelineRequests(t *testing.T) {
	dir := t.TempDir()
	in := writeBench(t, dir)

	p := &Pipeline{
		Input:    in,
		Output:   filepath.Join(dir, "out.png"),
		Requests: []string{"Bar", "Foo | avg 2"},
	}
	require.NoError(t, p.Run())

	p = &Pipeline{
		Input:    in,
		Output:   filepath.Join(dir, "out2.png"),
		Requests: []string{"Baz"},
	}
	err := p.Run()
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unknown series"))

	p = &Pipeline{
		Input:    in,
		Output:   filepath.Join(dir, "out3.png"),
		Requests: []string{"Foo", "Foo | avg 2"},
	}
	err = p.Run()
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "duplicate series"))
}

func TestPipelineArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "bench.db")

	p := &Pipeline{
		Input:   writeBench(t, dir),
		Output:  filepath.Join(dir, "out.png"),
		Archive: archive,
	}
	require.NoError(t, p.Run())

	db, err := database.Get(archive)
	require.NoError(t, err)

	loaded, err := database.NewBackend(db, "ns/op").LoadTable()
	require.NoError(t, err)
	require.Equal(t, []string{"Foo", "Bar"}, loaded.Names())

	foo, ok := loaded.Get("Foo")
	require.True(t, ok)
	require.Equal(t, []int64{128, 256}, foo.X)
	require.Equal(t, []float64{45.2, 90.1}, foo.Y)
}
