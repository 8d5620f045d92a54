package book

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/flate"

	"github.com/tessera-project/pijersi/internal/board"
)

func sampleRecord(t *testing.T) Record {
	t.Helper()
	b := board.NewBoard()
	var cells [board.NCells]byte
	for i := 0; i < board.NCells; i++ {
		cells[i] = b.GetPiece(i)
	}
	actions := board.GenerateActions(b, board.White)
	if len(actions) == 0 {
		t.Fatal("starting position has no legal actions")
	}
	return Record{Cells: cells, Side: board.White, Action: actions[0], Score: 42}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rec := sampleRecord(t)
	buf := encodeRecord(rec)
	if len(buf) != RecordSize {
		t.Fatalf("encodeRecord produced %d bytes, want %d", len(buf), RecordSize)
	}

	got := decodeRecord(buf)
	if got.Cells != rec.Cells || got.Side != rec.Side || got.Action != rec.Action || got.Score != rec.Score {
		t.Errorf("decodeRecord(encodeRecord(r)) = %+v, want %+v", got, rec)
	}
}

func TestCompressLoadRoundTrip(t *testing.T) {
	rec := sampleRecord(t)
	blob, err := Compress([]Record{rec})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	bk, err := Load(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bk.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bk.Len())
	}

	b := board.NewBoard()
	got, ok := bk.Lookup(b, board.White)
	if !ok {
		t.Fatal("Lookup did not find the stored position")
	}
	if got.Action != rec.Action || got.Score != rec.Score {
		t.Errorf("Lookup = %+v, want %+v", got, rec)
	}
}

func TestLookupMissReportsFalse(t *testing.T) {
	bk := &Book{entries: map[key]Record{}}
	b := board.NewBoard()
	if _, ok := bk.Lookup(b, board.White); ok {
		t.Error("Lookup on an empty book should report ok=false")
	}
}

func TestLoadIgnoresTruncatedTrailingRecord(t *testing.T) {
	rec := sampleRecord(t)
	var raw bytes.Buffer
	raw.Write(encodeRecord(rec))
	raw.Write(make([]byte, RecordSize/2))

	var compressed bytes.Buffer
	w, err := flate.NewWriter(&compressed, flate.BestCompression)
	if err != nil {
		t.Fatalf("flate.NewWriter: %v", err)
	}
	if _, err := w.Write(raw.Bytes()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	bk, err := Load(&compressed)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bk.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (truncated trailing record should be dropped)", bk.Len())
	}
}
