// Command pijersi-ugi runs the Tessera engine as a UGI protocol server
// over stdin/stdout.
package main

import (
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"flag"

	"github.com/tessera-project/pijersi/internal/book"
	"github.com/tessera-project/pijersi/internal/storage"
	"github.com/tessera-project/pijersi/internal/ugi"
)

// defaultBookName is the standard opening-book file name looked up in the
// working directory, its book/ subdirectory, and ~/.pijersi.
const defaultBookName = "pijersi-book.bin"

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	bookPath   = flag.String("book", "", "path to opening book file (DEFLATE-compressed records)")
	tableBits  = flag.Int("hash", 25, "transposition table size, log2 of bucket count")
	gamedbPath = flag.String("gamedb", "", "path to a Badger directory for persisted game records (optional)")
	noBook     = flag.Bool("nobook", false, "disable the opening book")
	noTable    = flag.Bool("notable", false, "disable the transposition table")
	quiet      = flag.Bool("quiet", false, "suppress info lines during search")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	opts := ugi.DefaultOptions()
	opts.TableBits = *tableBits
	opts.UseBook = !*noBook
	opts.UseTable = !*noTable
	opts.Verbose = !*quiet

	if opts.UseBook {
		if bk, err := loadBook(*bookPath); err != nil {
			log.Printf("opening book not loaded: %v (searching from the root every move)", err)
			opts.UseBook = false
		} else {
			opts.SearchBook = bk
			log.Printf("opening book loaded: %d positions", bk.Len())
		}
	}

	if *gamedbPath != "" {
		store, err := storage.Open(*gamedbPath)
		if err != nil {
			log.Printf("game record store not opened: %v (games will not be persisted)", err)
		} else {
			defer store.Close()
			opts.GameStore = store
		}
	}

	engine := ugi.New(opts, os.Stdout)
	engine.Run(os.Stdin)
}

// loadBook tries an explicit path; when none is given it tries the standard
// locations in the working directory, its book/ subdirectory, and
// ~/.pijersi.
func loadBook(explicit string) (*book.Book, error) {
	candidates := []string{explicit}
	if explicit == "" {
		candidates = []string{
			defaultBookName,
			filepath.Join(".", "book", defaultBookName),
			filepath.Join(configDir(), defaultBookName),
		}
	}

	var lastErr error
	for _, path := range candidates {
		if path == "" || !fileExists(path) {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			lastErr = err
			continue
		}
		bk, err := book.Load(f)
		f.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return bk, nil
	}
	if lastErr == nil {
		lastErr = os.ErrNotExist
	}
	return nil, lastErr
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".pijersi")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
