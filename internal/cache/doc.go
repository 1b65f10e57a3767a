// Package cache memoizes forward pigment transforms.
//
// Solving for a latent vector is orders of magnitude more expensive than the
// rest of a mix, while real inputs (image pixels, palettes) repeat the same
// 8-bit colors over and over. Sharded keeps the most recently used results.
//
//	c := cache.NewSharded[uint32, Latent](256, cache.RGBHasher)
//	l := c.GetOrCreate(cache.RGBKey(r, g, b), func() Latent { ... })
//
// # Thread Safety
//
// Sharded is safe for concurrent use and must not be copied after creation.
package cache
