package javaindex

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of parsed files kept in memory.
const DefaultCacheSize = 4096

type cached struct {
	size    int64
	modTime time.Time
	file    *File
}

// cache holds parsed files keyed by path. An entry is reused only while the
// file's size and modification time are unchanged.
type cache struct {
	files *lru.Cache[string, cached]
}

func newCache(size int) (*cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	files, err := lru.New[string, cached](size)
	if err != nil {
		return nil, err
	}
	return &cache{files: files}, nil
}

// load returns the parsed file at path. Unreadable or unparsable files yield
// nil.
func (c *cache) load(path string) *File {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.files.Remove(path)
		return nil
	}
	if hit, ok := c.files.Get(path); ok && hit.size == info.Size() && hit.modTime.Equal(info.ModTime()) {
		return hit.file
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := Parse(path, content)
	if err != nil {
		return nil
	}
	c.files.Add(path, cached{size: info.Size(), modTime: info.ModTime(), file: f})
	return f
}

// len returns the number of cached files.
func (c *cache) len() int {
	return c.files.Len()
}
