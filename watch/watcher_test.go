package watch

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if Logger == nil {
		Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
}

// recordingConverter records conversions and writes a fake PNG so the
// up-to-date check sees an output file
type recordingConverter struct {
	mu     sync.Mutex
	inputs []string
	err    error
}

func (r *recordingConverter) convert(inputPath, outputPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.inputs = append(r.inputs, filepath.Base(inputPath))
	return os.WriteFile(outputPath, []byte("png"), 0o644)
}

func (r *recordingConverter) converted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.inputs...)
	sort.Strings(out)
	return out
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
}

func newTestWatcher(t *testing.T, conv *recordingConverter) *Watcher {
	t.Helper()
	ingress := t.TempDir()
	output := t.TempDir()
	return &Watcher{
		IngressPath: ingress,
		OutputPath:  output,
		Interval:    10,
		Convert:     conv.convert,
	}
}

func TestScanConvertsSupportedFiles(t *testing.T) {
	conv := &recordingConverter{}
	w := newTestWatcher(t, conv)

	writeFile(t, filepath.Join(w.IngressPath, "a.pdf"))
	writeFile(t, filepath.Join(w.IngressPath, "b.mvle"))
	writeFile(t, filepath.Join(w.IngressPath, "notes.txt"))
	writeFile(t, filepath.Join(w.IngressPath, "nested", "c.pdf"))

	w.Scan()

	assert.Equal(t, []string{"a.pdf", "b.mvle", "c.pdf"}, conv.converted())

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		_, err := os.Stat(filepath.Join(w.OutputPath, name))
		assert.NoError(t, err, "expected output %s", name)
	}
}

func TestScanSkipsUpToDateOutputs(t *testing.T) {
	conv := &recordingConverter{}
	w := newTestWatcher(t, conv)

	writeFile(t, filepath.Join(w.IngressPath, "a.pdf"))

	w.Scan()
	require.Len(t, conv.converted(), 1)

	w.Scan()
	assert.Len(t, conv.converted(), 1, "second scan should skip the up-to-date output")
}

func TestScanSurvivesConversionFailure(t *testing.T) {
	conv := &recordingConverter{err: errors.New("bad document")}
	w := newTestWatcher(t, conv)

	writeFile(t, filepath.Join(w.IngressPath, "a.pdf"))
	writeFile(t, filepath.Join(w.IngressPath, "b.pdf"))

	// must not panic or abort on the first failure
	w.Scan()

	assert.Empty(t, conv.converted())
}

func TestScanEmptyIngress(t *testing.T) {
	conv := &recordingConverter{}
	w := newTestWatcher(t, conv)

	w.Scan()

	assert.Empty(t, conv.converted())
}

func TestOutputFor(t *testing.T) {
	w := &Watcher{OutputPath: "/out"}

	assert.Equal(t, filepath.Join("/out", "doc.png"), w.outputFor("/in/doc.pdf"))
	assert.Equal(t, filepath.Join("/out", "episode.png"), w.outputFor("/in/episode.mvle"))
}

func TestSupportedExt(t *testing.T) {
	assert.True(t, supportedExt("a.pdf"))
	assert.True(t, supportedExt("A.PDF"))
	assert.True(t, supportedExt("b.mvle"))
	assert.False(t, supportedExt("c.txt"))
	assert.False(t, supportedExt("noext"))
}
