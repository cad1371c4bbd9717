// Package source finds text files under a directory and reads them line
// by line.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultSuffix is the file name suffix of eligible files.
	DefaultSuffix = ".txt"

	// DefaultMaxLineBytes caps the length of a single line.
	DefaultMaxLineBytes = 1 << 20
)

// ErrNotDir is returned by [Lister.ListTextFiles] when root is not a directory.
var ErrNotDir = errors.New("source: root is not a directory")

// Lister walks a directory tree and returns the regular files whose name
// ends in Suffix. The zero value uses [DefaultSuffix].
type Lister struct {
	Suffix string
}

// ListTextFiles walks root recursively and returns the absolute paths of
// every eligible file in lexical walk order. A symbolic link is eligible
// when it resolves to a regular file and is listed under its own path.
// Any walk error aborts the listing; no directory is silently skipped.
func (l Lister) ListTextFiles(ctx context.Context, root string) ([]string, error) {
	suffix := l.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	abs, err := Canonical(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, abs)
	}

	var files []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Links to regular files count; links to directories are
			// not descended into and dangling links are not files.
			info, err := os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			if err != nil {
				return err
			}
			if info.Mode().IsRegular() {
				files = append(files, path)
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Canonical returns the absolute, cleaned form of path with symlinks
// resolved, so that paths of the same file compare equal.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// Reader reads files line by line. The zero value uses
// [DefaultMaxLineBytes].
type Reader struct {
	MaxLineBytes int
}

// ReadLines lazily yields the lines of the file at path, without their
// terminators ("\n" or "\r\n"). Opening or reading failures are yielded
// once as the error of the final element. The file is closed when the
// sequence ends or the consumer stops ranging.
func (r Reader) ReadLines(path string) iter.Seq2[string, error] {
	limit := r.MaxLineBytes
	if limit <= 0 {
		limit = DefaultMaxLineBytes
	}

	return func(yield func(string, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield("", err)
			return
		}
		defer f.Close()

		// Scanner honours the larger of limit and the buffer's capacity.
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, min(64*1024, limit)), limit)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}
