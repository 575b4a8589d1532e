package fileexplorer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"zitta/pkg/log"
)

type implExplorer struct {
	fs afero.Fs
	l  log.Logger
}

var _ Explorer = (*implExplorer)(nil)

// New creates an Explorer over fsys. A nil fsys means the OS filesystem.
func New(fsys afero.Fs, l log.Logger) *implExplorer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &implExplorer{fs: fsys, l: l}
}

func (e *implExplorer) ListDirectory(ctx context.Context, path string) []Entry {
	if path == "" {
		path = DefaultDirectory
	}

	infos, err := afero.ReadDir(e.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			e.l.Warnf(ctx, "%s: %s: permission denied", LogPrefixList, path)
		} else {
			e.l.Errorf(ctx, "%s: %s: %v", LogPrefixList, path, err)
		}
		return []Entry{}
	}

	entries := make([]Entry, 0, len(infos))
	for _, fi := range infos {
		full := filepath.Join(path, fi.Name())
		if fi.Mode()&os.ModeSymlink != 0 {
			if target, err := e.fs.Stat(full); err == nil {
				fi = target
			}
		}

		entry := Entry{Name: fi.Name(), Path: full, IsDir: fi.IsDir()}
		if !entry.IsDir {
			entry.Size = fi.Size()
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries
}

func (e *implExplorer) FileInfo(ctx context.Context, path string) (Info, error) {
	fi, err := e.fs.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Info{}, ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return Info{}, ErrNoAccess
	case err != nil:
		e.l.Errorf(ctx, "%s: %s: %v", LogPrefixInfo, path, err)
		return Info{}, err
	}

	return Info{
		Name:    filepath.Base(path),
		Path:    path,
		IsDir:   fi.IsDir(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}, nil
}

func (e *implExplorer) SearchFiles(ctx context.Context, dir, pattern string, recursive bool) []string {
	if dir == "" {
		dir = DefaultDirectory
	}
	needle := strings.ToLower(pattern)
	found := []string{}

	if !recursive {
		for _, entry := range e.ListDirectory(ctx, dir) {
			if !entry.IsDir && strings.Contains(strings.ToLower(entry.Name), needle) {
				found = append(found, entry.Path)
			}
		}
		return found
	}

	err := afero.Walk(e.fs, dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			e.l.Debugf(ctx, "%s: skip %s: %v", LogPrefixSearch, path, err)
			if fi != nil && fi.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !fi.IsDir() && strings.Contains(strings.ToLower(fi.Name()), needle) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		e.l.Errorf(ctx, "%s: %s: %v", LogPrefixSearch, dir, err)
	}
	return found
}
