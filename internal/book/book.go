// Package book implements the compressed opening book: a fixed-width
// record per stored position, read once at startup and held in memory as
// a hash map keyed on board state.
package book

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/tessera-project/pijersi/internal/board"
)

// RecordSize is the on-disk width of one opening-book entry: 45 cell bytes,
// 1 side-to-move byte, a 4-byte packed action, an 8-byte score, and 12
// reserved bytes left for future fields without changing the record
// stride — the same fixed-record-width approach the reference engine's
// bincode-encoded 70-byte Response uses, re-laid-out for this encoder
// rather than bit-matched to it (no compiled opening-book blob ships with
// the filtered source pack to bit-match against).
const RecordSize = 45 + 1 + 4 + 8 + 12

// Record is one decoded opening-book entry.
type Record struct {
	Cells  [board.NCells]byte
	Side   board.Colour
	Action board.Action
	Score  int64
}

func encodeRecord(r Record) []byte {
	buf := make([]byte, RecordSize)
	copy(buf[:board.NCells], r.Cells[:])
	buf[board.NCells] = byte(r.Side)
	binary.LittleEndian.PutUint32(buf[board.NCells+1:], r.Action.Encode())
	binary.LittleEndian.PutUint64(buf[board.NCells+5:], uint64(r.Score))
	return buf
}

func decodeRecord(buf []byte) Record {
	var r Record
	copy(r.Cells[:], buf[:board.NCells])
	r.Side = board.Colour(buf[board.NCells])
	r.Action = board.DecodeAction(binary.LittleEndian.Uint32(buf[board.NCells+1:]))
	r.Score = int64(binary.LittleEndian.Uint64(buf[board.NCells+5:]))
	return r
}

type key [board.NCells + 1]byte

func keyOf(cells [board.NCells]byte, side board.Colour) key {
	var k key
	copy(k[:board.NCells], cells[:])
	k[board.NCells] = byte(side)
	return k
}

func boardKey(b *board.Board, side board.Colour) key {
	var cells [board.NCells]byte
	for i := 0; i < board.NCells; i++ {
		cells[i] = b.GetPiece(i)
	}
	return keyOf(cells, side)
}

// Book is the in-memory opening book: position -> precomputed response.
type Book struct {
	entries map[key]Record
}

// Load reads a DEFLATE-compressed stream of RecordSize-byte records (as
// produced by Compress) and builds a Book. A truncated final record is
// ignored, matching the reference loader's chunking of whatever bytes
// decompress cleanly.
func Load(r io.Reader) (*Book, error) {
	fr := flate.NewReader(r)
	defer fr.Close()

	raw, err := io.ReadAll(fr)
	if err != nil {
		return nil, err
	}
	if len(raw)%RecordSize != 0 {
		raw = raw[:len(raw)-len(raw)%RecordSize]
	}

	bk := &Book{entries: make(map[key]Record, len(raw)/RecordSize)}
	for off := 0; off < len(raw); off += RecordSize {
		rec := decodeRecord(raw[off : off+RecordSize])
		bk.entries[keyOf(rec.Cells, rec.Side)] = rec
	}
	return bk, nil
}

// Compress serializes records and DEFLATE-compresses them, the inverse of
// Load; used by the book-building tooling and by tests constructing a
// synthetic in-memory blob.
func Compress(records []Record) ([]byte, error) {
	var raw bytes.Buffer
	for _, rec := range records {
		raw.Write(encodeRecord(rec))
	}

	var out bytes.Buffer
	fw, err := flate.NewWriter(&out, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(raw.Bytes()); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ErrNotFound is returned by nothing directly but documents Lookup's zero
// value; Lookup instead signals absence via its bool return, matching
// internal/board's StringToIndex-style (value, ok) convention.
var ErrNotFound = errors.New("book: position not found")

// Lookup returns the stored response for b's current position and side to
// move, if the book has one.
func (bk *Book) Lookup(b *board.Board, side board.Colour) (Record, bool) {
	rec, ok := bk.entries[boardKey(b, side)]
	return rec, ok
}

// Len returns the number of stored positions.
func (bk *Book) Len() int { return len(bk.entries) }
