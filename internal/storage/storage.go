package storage

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	keyPrefix  = "game:"
	keyNextID  = "next_id"
	keyLearned = "learned:"
)

// Result is the outcome of a completed game.
type Result int

const (
	ResultNone Result = iota
	ResultP1Win
	ResultP2Win
	ResultDraw
)

// Record is one persisted game: enough to reconstruct and replay it.
type Record struct {
	ID          uint64        `json:"id"`
	StartingFen string        `json:"starting_fen"`
	Moves       []string      `json:"moves"`
	Result      Result        `json:"result"`
	Duration    time.Duration `json:"duration"`
	PlayedAt    time.Time     `json:"played_at"`
}

// LearnedEntry is a search-derived opening-book candidate: a position whose
// transposition-table score was found at or above a minimum depth, good
// enough to fold back into the opening book on a later rebuild.
type LearnedEntry struct {
	Fen    string `json:"fen"`
	Action string `json:"action"`
	Score  int64  `json:"score"`
	Depth  int    `json:"depth"`
}

// Store wraps a Badger database of completed games.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the game-record database at dir. An
// empty dir resolves to the platform default under GetDatabaseDir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		d, err := GetDatabaseDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// nextID allocates and persists the next monotonic game ID.
func (s *Store) nextID(txn *badger.Txn) (uint64, error) {
	var id uint64
	item, err := txn.Get([]byte(keyNextID))
	switch err {
	case nil:
		if verr := item.Value(func(val []byte) error {
			id = binary.BigEndian.Uint64(val)
			return nil
		}); verr != nil {
			return 0, verr
		}
	case badger.ErrKeyNotFound:
		id = 0
	default:
		return 0, err
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id+1)
	if err := txn.Set([]byte(keyNextID), buf); err != nil {
		return 0, err
	}
	return id, nil
}

func gameKey(id uint64) []byte {
	buf := make([]byte, len(keyPrefix)+8)
	copy(buf, keyPrefix)
	binary.BigEndian.PutUint64(buf[len(keyPrefix):], id)
	return buf
}

// SaveGame assigns rec a new ID and persists it.
func (s *Store) SaveGame(rec Record) (uint64, error) {
	var id uint64
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		id, err = s.nextID(txn)
		if err != nil {
			return err
		}
		rec.ID = id

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return txn.Set(gameKey(id), data)
	})
	return id, err
}

// LoadGame retrieves the game recorded under id.
func (s *Store) LoadGame(id uint64) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, err
}

// ListGames returns every recorded game, ordered by ID.
func (s *Store) ListGames() ([]Record, error) {
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

// SaveLearned persists a search-derived book candidate for fen, keyed so a
// later write for the same position replaces it.
func (s *Store) SaveLearned(entry LearnedEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyLearned+entry.Fen), data)
	})
}

// ListLearned returns every persisted learned-book candidate.
func (s *Store) ListLearned() ([]LearnedEntry, error) {
	var entries []LearnedEntry
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyLearned)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var entry LearnedEntry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}
