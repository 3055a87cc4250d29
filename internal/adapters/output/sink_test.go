package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"bucketx/internal/core/domain"
	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/logx"
	"bucketx/internal/testutil"
)

// memoryWriter guarda los registros en memoria y puede fallar a partir de
// la escritura failAt (1-based). No es seguro para uso concurrente a
// propósito: el Sink debe serializar.
type memoryWriter struct {
	name    string
	records []domain.ResultRecord
	failAt  int
	writes  int
	closed  bool
	inWrite bool
	overlap bool
}

func (m *memoryWriter) Name() string { return m.name }

func (m *memoryWriter) Write(rec domain.ResultRecord) error {
	if m.inWrite {
		m.overlap = true
	}
	m.inWrite = true
	defer func() { m.inWrite = false }()

	m.writes++
	if m.failAt > 0 && m.writes >= m.failAt {
		return fmt.Errorf("no space left on device")
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memoryWriter) Close() error {
	m.closed = true
	return nil
}

func outcome(name string, kind domain.OutcomeKind) domain.Outcome {
	c := domain.Candidate(name)
	return domain.NewOutcome(c, domain.NewEndpoint(c, domain.DefaultStorageHost), kind, "")
}

func TestSink_RecordsEveryOutcomeOnce(t *testing.T) {
	mem := &memoryWriter{name: "mem"}
	sink := NewSink(logx.NewSilent(), mem)

	kinds := []domain.OutcomeKind{
		domain.OutcomePubliclyListable,
		domain.OutcomeNotFoundOrPrivate,
		domain.OutcomeIndeterminate,
		domain.OutcomeTransportError,
	}
	for i, k := range kinds {
		testutil.RequireNoError(t, sink.Record(outcome(fmt.Sprintf("b%d", i), k)), "record")
	}

	stats := sink.Stats()
	testutil.AssertEqual(t, len(mem.records), 4, "records written")
	testutil.AssertEqual(t, stats.Recorded, 4, "recorded")
	for _, k := range kinds {
		testutil.AssertEqual(t, stats.ByKind[k], 1, "count for "+k.String())
	}
	testutil.AssertEqual(t, mem.records[0].Label, "Working Bucket", "label")
	testutil.AssertEqual(t, mem.records[0].Endpoint, "http://b0.s3.amazonaws.com", "endpoint")
}

func TestSink_ConcurrentRecordsDoNotInterleave(t *testing.T) {
	dir := t.TempDir()
	txtPath := filepath.Join(dir, "Results-list.txt")
	csvPath := filepath.Join(dir, "Results-list.csv")

	mem := &memoryWriter{name: "mem"}
	txt, err := OpenText(txtPath)
	testutil.RequireNoError(t, err, "open text")
	csvw, err := OpenCSV(csvPath)
	testutil.RequireNoError(t, err, "open csv")

	sink := NewSink(logx.NewSilent(), txt, csvw, mem)

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := domain.AllOutcomeKinds[i%len(domain.AllOutcomeKinds)]
			if err := sink.Record(outcome(fmt.Sprintf("bucket-%03d", i), kind)); err != nil {
				t.Errorf("record %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()
	testutil.RequireNoError(t, sink.Close(), "close")

	testutil.AssertFalse(t, mem.overlap, "writer calls overlapped")
	testutil.AssertEqual(t, sink.Stats().Recorded, n, "recorded")

	lines := testutil.ReadLines(t, txtPath)
	testutil.AssertEqual(t, len(lines), n, "text lines")
	for _, line := range lines {
		ok := false
		for _, k := range domain.AllOutcomeKinds {
			if strings.HasPrefix(line, k.Label()+": http://bucket-") && strings.HasSuffix(line, ".s3.amazonaws.com") {
				ok = true
			}
		}
		testutil.AssertTrue(t, ok, "malformed text line: "+line)
	}

	f, err := os.Open(csvPath)
	testutil.RequireNoError(t, err, "open csv for read")
	defer f.Close()
	records, err := ReadCSVRecords(f)
	testutil.RequireNoError(t, err, "read csv")
	testutil.AssertEqual(t, len(records), n, "csv rows")

	// mismo multiconjunto en todos los artefactos
	fromCSV := make([]string, 0, n)
	for _, r := range records {
		fromCSV = append(fromCSV, r.Label+": "+r.Endpoint)
	}
	sort.Strings(fromCSV)
	sort.Strings(lines)
	testutil.AssertEqual(t, fromCSV, lines, "text and csv carry the same records")
}

func TestSink_FirstFailureIsLatched(t *testing.T) {
	good := &memoryWriter{name: "good"}
	bad := &memoryWriter{name: "bad", failAt: 2}
	sink := NewSink(logx.NewSilent(), good, bad)

	testutil.RequireNoError(t, sink.Record(outcome("a", domain.OutcomePubliclyListable)), "first record")

	err := sink.Record(outcome("b", domain.OutcomeIndeterminate))
	testutil.AssertTrue(t, errors.IsOutputWrite(err), "second record should fail with ErrOutputWrite")
	testutil.AssertContains(t, err.Error(), "bad", "error names the artifact")

	err = sink.Record(outcome("c", domain.OutcomeIndeterminate))
	testutil.AssertTrue(t, errors.IsOutputWrite(err), "failure is latched")
	testutil.AssertEqual(t, bad.writes, 2, "no writes after failure")
	testutil.AssertEqual(t, sink.Stats().Recorded, 1, "failed records are not counted")
	testutil.AssertTrue(t, errors.IsOutputWrite(sink.Err()), "Err exposes the latched failure")
}

func TestSink_Close(t *testing.T) {
	mem := &memoryWriter{name: "mem"}
	sink := NewSink(logx.NewSilent(), mem)

	testutil.RequireNoError(t, sink.Close(), "close")
	testutil.RequireNoError(t, sink.Close(), "second close is a no-op")
	testutil.AssertTrue(t, mem.closed, "writer closed")

	err := sink.Record(outcome("late", domain.OutcomeIndeterminate))
	testutil.AssertTrue(t, errors.IsOutputWrite(err), "record after close fails")
}

func TestSink_StatsReturnsCopy(t *testing.T) {
	sink := NewSink(logx.NewSilent(), &memoryWriter{name: "mem"})
	testutil.RequireNoError(t, sink.Record(outcome("a", domain.OutcomePubliclyListable)), "record")

	stats := sink.Stats()
	stats.ByKind[domain.OutcomePubliclyListable] = 99

	testutil.AssertEqual(t, sink.Stats().ByKind[domain.OutcomePubliclyListable], 1, "internal stats untouched")
}

func TestOpen(t *testing.T) {
	logger := logx.NewSilent()

	t.Run("empty input leaves header-only csv", func(t *testing.T) {
		dir := t.TempDir()
		opts := Options{
			TextPath: filepath.Join(dir, "Results-empty.txt"),
			CSVPath:  filepath.Join(dir, "Results-empty.csv"),
		}
		sink, err := Open(opts, logger)
		testutil.RequireNoError(t, err, "open")
		testutil.RequireNoError(t, sink.Close(), "close")

		csvLines := testutil.ReadLines(t, opts.CSVPath)
		testutil.AssertEqual(t, csvLines, []string{"Bucket URL,Result Type"}, "csv has only the header")

		info, err := os.Stat(opts.TextPath)
		testutil.RequireNoError(t, err, "text artifact exists")
		testutil.AssertEqual(t, info.Size(), int64(0), "text artifact is empty")
	})

	t.Run("creates missing directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		sink, err := Open(Options{CSVPath: filepath.Join(dir, "r.csv")}, logger)
		testutil.RequireNoError(t, err, "open")
		sink.Close()

		_, err = os.Stat(filepath.Join(dir, "r.csv"))
		testutil.AssertNoError(t, err, "csv created")
	})

	t.Run("no artifacts is a configuration error", func(t *testing.T) {
		_, err := Open(Options{}, logger)
		testutil.AssertTrue(t, errors.IsConfiguration(err), "configuration error")
	})

	t.Run("unwritable path is an output error", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		testutil.RequireNoError(t, os.WriteFile(blocker, nil, 0o644), "blocker")

		_, err := Open(Options{
			TextPath: filepath.Join(dir, "ok.txt"),
			CSVPath:  filepath.Join(blocker, "sub", "r.csv"),
		}, logger)
		testutil.AssertTrue(t, errors.IsOutputWrite(err), "output error")
	})
}
