package wordscan

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocatedWordString(t *testing.T) {
	w := LocatedWord{Word: "cat", Line: 3, Path: "/tmp/a.txt"}
	assert.Equal(t, "cat:/tmp/a.txt:3", w.String())
}

func TestLocation(t *testing.T) {
	assert.True(t, NoLocation.IsZero())
	assert.False(t, Location{Path: "/a", Line: 1}.IsZero())
	assert.Equal(t, "/a:1", Location{Path: "/a", Line: 1}.String())
}

func TestCountedLocationBeats(t *testing.T) {
	at := func(path string, count int) countedLocation {
		return countedLocation{Location: Location{Path: path, Line: 1}, Count: count}
	}
	assert.True(t, at("/z", 3).beats(at("/a", 2)))
	assert.False(t, at("/a", 2).beats(at("/z", 3)))
	assert.True(t, at("/a", 2).beats(at("/b", 2)))
	assert.False(t, at("/b", 2).beats(at("/a", 2)))

	// Line plays no part; a file only ever enters with its best line.
	late := countedLocation{Location: Location{Path: "/a", Line: 90}, Count: 2}
	assert.True(t, late.beats(at("/b", 2)))
}

func TestFileError(t *testing.T) {
	err := fmt.Errorf("query: %w", &FileError{Op: OpRead, Path: "/x.txt", Err: fs.ErrPermission})

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "query: read /x.txt: permission denied", err.Error())

	path, ok := PathOf(err)
	assert.True(t, ok)
	assert.Equal(t, "/x.txt", path)

	_, ok = PathOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestInvalidArg(t *testing.T) {
	err := invalidArg("negative limit %d", -2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "wordscan: invalid argument: negative limit -2", err.Error())
}

func TestOptionsPanicOnBadInput(t *testing.T) {
	assert.Panics(t, func() { WithLister(nil) })
	assert.Panics(t, func() { WithLineReader(nil) })
	assert.Panics(t, func() { WithTokenizer(nil) })
	assert.Panics(t, func() { WithLogger(nil) })
	assert.Panics(t, func() { WithWorkers(-1) })
	assert.Panics(t, func() { WithIOLimit(-1) })

	cfg := testConfig(WithWorkers(0), WithLineParallelism(-5))
	assert.Positive(t, cfg.workers)
	assert.Equal(t, 1, cfg.lineJobs)
}
