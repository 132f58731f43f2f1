// Package cache memoizes decoded watch face frames by entry name.
//
// A watch face reuses the same few bitmaps across many items (a digit sheet
// is typically shared by the hour, minute and date items), so the frame
// resolver keeps what it decoded for the lifetime of one load.
//
// Sharded splits entries over 16 independently locked shards so concurrent
// item parses rarely contend, and evicts least recently used entries per
// shard once a shard reaches its capacity.
//
//	c := cache.NewSharded[image.Image](64)
//	img := c.GetOrCreate("digits/0.png", decode)
package cache
