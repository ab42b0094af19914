// Package texture keeps track of decoded images that have been uploaded to the
// GPU, keyed by a logical name.
package texture

import (
	"image"
	"log"
)

// Handle identifies an uploaded texture. The zero handle never refers to a
// real texture.
type Handle uint32

// Record pairs an uploaded texture with the width/height ratio of its source
// image.
type Record struct {
	Handle      Handle
	AspectRatio float32
}

// Sentinel is returned for names that were never loaded or failed to load.
var Sentinel = Record{Handle: 0, AspectRatio: 1.0}

// IsSentinel reports whether r refers to no texture.
func (r Record) IsSentinel() bool {
	return r.Handle == 0
}

// Decoder reads an image from a file path.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// Uploader moves decoded images to and from the GPU.
type Uploader interface {
	Upload(img image.Image) (Handle, error)
	Release(h Handle)
}

// Cache loads each named texture at most once and hands out its Record by name.
// A Cache is not safe for concurrent use; it belongs to the goroutine driving
// the scene.
type Cache struct {
	decoder  Decoder
	uploader Uploader
	records  map[string]Record
	logger   *log.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// NewCache creates an empty cache that decodes with decoder and uploads with
// uploader.
func NewCache(decoder Decoder, uploader Uploader, opts ...Option) *Cache {
	c := &Cache{
		decoder:  decoder,
		uploader: uploader,
		records:  make(map[string]Record),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the record stored under name, decoding and uploading the image
// at path if name has not been loaded yet. The first successful load for a name
// wins: later calls return it without looking at path. When the image cannot
// be decoded or uploaded nothing is stored and Sentinel is returned.
func (c *Cache) Load(path, name string) Record {
	if rec, ok := c.records[name]; ok {
		return rec
	}

	img, err := c.decoder.Decode(path)
	if err != nil {
		c.logger.Printf("texture %q failed to load at path %s: %v", name, path, err)
		return Sentinel
	}

	handle, err := c.uploader.Upload(img)
	if err != nil {
		c.logger.Printf("texture %q failed to upload from %s: %v", name, path, err)
		return Sentinel
	}

	rec := Record{Handle: handle, AspectRatio: 1.0}
	bounds := img.Bounds()
	if bounds.Dy() > 0 {
		rec.AspectRatio = float32(bounds.Dx()) / float32(bounds.Dy())
	}

	c.records[name] = rec
	return rec
}

// Get returns the record stored under name, or Sentinel if there is none.
// Get never loads anything.
func (c *Cache) Get(name string) Record {
	if rec, ok := c.records[name]; ok {
		return rec
	}
	return Sentinel
}

// Has reports whether name has been loaded successfully.
func (c *Cache) Has(name string) bool {
	_, ok := c.records[name]
	return ok
}

// Len returns the number of loaded textures.
func (c *Cache) Len() int {
	return len(c.records)
}

// ReleaseAll releases every loaded texture and empties the cache. Calling it
// on an empty cache does nothing.
func (c *Cache) ReleaseAll() {
	for name, rec := range c.records {
		c.uploader.Release(rec.Handle)
		delete(c.records, name)
	}
}
