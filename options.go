package pigment

// MixerOption configures a Mixer during creation.
//
// Example:
//
//	// Default Kubelka–Munk transform with a latent cache
//	m := pigment.NewMixer()
//
//	// Custom transform (dependency injection), no cache, two image workers
//	m := pigment.NewMixer(
//	    pigment.WithTransform(myTransform),
//	    pigment.WithoutCache(),
//	    pigment.WithWorkers(2),
//	)
type MixerOption func(*mixerOptions)

// mixerOptions holds optional configuration for Mixer creation.
type mixerOptions struct {
	transform     Transform
	cacheCapacity int // per shard; 0 disables the cache
	workers       int // 0 means GOMAXPROCS
}

// DefaultCacheCapacity is the per-shard latent cache capacity used when no
// cache option is given. The cache has 16 shards.
const DefaultCacheCapacity = 256

func defaultMixerOptions() mixerOptions {
	return mixerOptions{
		transform:     nil, // KubelkaMunk() if nil
		cacheCapacity: DefaultCacheCapacity,
		workers:       0,
	}
}

// WithTransform sets the pigment transform used by the Mixer.
// A nil transform selects the default Kubelka–Munk kernel.
//
// Pigments are only meaningful to the transform that produced them; do not
// combine pigments built by mixers with different transforms.
func WithTransform(t Transform) MixerOption {
	return func(o *mixerOptions) {
		o.transform = t
	}
}

// WithCache memoizes the forward transform of 8-bit colors, keeping up to
// capacity entries per shard. capacity <= 0 selects DefaultCacheCapacity.
//
// Results are identical with and without the cache.
func WithCache(capacity int) MixerOption {
	return func(o *mixerOptions) {
		if capacity <= 0 {
			capacity = DefaultCacheCapacity
		}
		o.cacheCapacity = capacity
	}
}

// WithoutCache disables the latent cache.
func WithoutCache() MixerOption {
	return func(o *mixerOptions) {
		o.cacheCapacity = 0
	}
}

// WithWorkers sets the number of goroutines used by MixImages.
// n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) MixerOption {
	return func(o *mixerOptions) {
		o.workers = max(n, 0)
	}
}
