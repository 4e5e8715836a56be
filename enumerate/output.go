package enumerate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// flushEvery is how many writes a bucket file accumulates before an
// unconditional flush; Close flushes whatever remains.
const flushEvery = 256

// outputWriter owns one buffered file per bucket under dir/<N>x<S>/. It is
// not safe for concurrent use; Run drives it from a single goroutine.
type outputWriter struct {
	dir         string
	files       map[Bucket]*os.File
	writers     map[Bucket]*bufio.Writer
	sinceFlush  map[Bucket]int
	ordinal     int64
}

// newOutputWriter creates dir/<N>x<S> (and dir, if needed) and returns a
// writer that opens each bucket's file lazily, on first write.
func newOutputWriter(root string, n, s int) (*outputWriter, error) {
	dir := filepath.Join(root, fmt.Sprintf("%dx%d", n, s))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &outputWriter{
		dir:        dir,
		files:      make(map[Bucket]*os.File),
		writers:    make(map[Bucket]*bufio.Writer),
		sinceFlush: make(map[Bucket]int),
	}, nil
}

// Write appends one record to bucket's file: ordinal, LNF-canonicalised
// TNF, and the decider's parameter string, tab-separated.
func (w *outputWriter) Write(bucket Bucket, lnfCode, params string) error {
	bw, err := w.writerFor(bucket)
	if err != nil {
		return err
	}

	w.ordinal++
	if _, err := fmt.Fprintf(bw, "%d\t%s\t%s\n", w.ordinal, lnfCode, params); err != nil {
		return err
	}

	w.sinceFlush[bucket]++
	if w.sinceFlush[bucket] >= flushEvery {
		w.sinceFlush[bucket] = 0

		return bw.Flush()
	}

	return nil
}

// AdvanceBucket flushes the given bucket's buffer. Run does not call it;
// during a Run, bucket files are flushed every flushEvery writes and on
// Close.
func (w *outputWriter) AdvanceBucket(bucket Bucket) error {
	if bw, ok := w.writers[bucket]; ok {
		return bw.Flush()
	}

	return nil
}

func (w *outputWriter) writerFor(bucket Bucket) (*bufio.Writer, error) {
	if bw, ok := w.writers[bucket]; ok {
		return bw, nil
	}

	f, err := os.Create(filepath.Join(w.dir, string(bucket)+".txt"))
	if err != nil {
		return nil, err
	}

	bw := bufio.NewWriter(f)
	w.files[bucket] = f
	w.writers[bucket] = bw

	return bw, nil
}

// Close flushes and closes every bucket file that was opened.
func (w *outputWriter) Close() error {
	var firstErr error
	for b, bw := range w.writers {
		if err := bw.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := w.files[b].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
