package tz

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/hlop3z/dtg/internal/dtgerr"
)

var tzifMagic = []byte("TZif")

// excluded holds top-level entries that are not zone names.
var excluded = map[string]bool{
	"posix":      true,
	"right":      true,
	"Factory":    true,
	"posixrules": true,
	"localtime":  true,
}

// Database is a zoneinfo tree.
type Database struct {
	fsys   fs.FS
	source string
	closer io.Closer
}

// NewDatabase wraps fsys, which must be rooted at a zoneinfo tree.
func NewDatabase(fsys fs.FS, source string) *Database {
	return &Database{fsys: fsys, source: source}
}

// OpenDatabase looks on the host for a zoneinfo tree.
func OpenDatabase() (*Database, error) {
	var tried []string
	for _, src := range candidateSources() {
		db, err := openSource(src)
		if err != nil {
			tried = append(tried, src)
			continue
		}
		return db, nil
	}
	return nil, dtgerr.New(dtgerr.ErrZoneDatabase, "no timezone database found").
		With("searched", strings.Join(tried, ", ")).
		WithHelp("set ZONEINFO to a zoneinfo directory or zip file")
}

func candidateSources() []string {
	var sources []string
	if z := os.Getenv("ZONEINFO"); z != "" {
		sources = append(sources, z)
	}
	sources = append(sources,
		"/usr/share/zoneinfo",
		"/usr/lib/zoneinfo",
		"/usr/share/lib/zoneinfo",
	)
	if root := runtime.GOROOT(); root != "" {
		sources = append(sources, filepath.Join(root, "lib", "time", "zoneinfo.zip"))
	}
	return sources
}

func openSource(src string) (*Database, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return NewDatabase(os.DirFS(src), src), nil
	}
	zr, err := zip.OpenReader(src)
	if err != nil {
		return nil, err
	}
	db := NewDatabase(zr, src)
	db.closer = zr
	return db, nil
}

// Source returns where the database was loaded from.
func (d *Database) Source() string {
	return d.source
}

// Close releases the underlying archive, if any.
func (d *Database) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// Names returns every zone name in the database, sorted.
func (d *Database) Names() ([]string, error) {
	var names []string
	err := fs.WalkDir(d.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if !strings.Contains(p, "/") && excluded[p] {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() || !d.isZoneFile(p, entry) {
			return nil
		}
		ok, err := d.isTZif(p)
		if err != nil {
			return err
		}
		if ok {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, dtgerr.Wrap(dtgerr.ErrZoneDatabase, err, "failed to read timezone database").
			With("source", d.source)
	}
	sort.Strings(names)
	return names, nil
}

// isZoneFile reports whether entry is a regular file or a link to one.
// Dangling links and links to directories are skipped.
func (d *Database) isZoneFile(p string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(d.fsys, p)
	return err == nil && info.Mode().IsRegular()
}

func (d *Database) isTZif(p string) (bool, error) {
	f, err := d.fsys.Open(p)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(head, tzifMagic), nil
}

// Search returns the zone names containing term, case-insensitively.
// An empty term returns every name.
func (d *Database) Search(term string) ([]string, error) {
	names, err := d.Names()
	if err != nil {
		return nil, err
	}
	if term == "" {
		return names, nil
	}

	needle := strings.ToLower(term)
	var found []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			found = append(found, name)
		}
	}
	if len(found) == 0 {
		return nil, dtgerr.ZeroZonesFound(term)
	}
	return found, nil
}

