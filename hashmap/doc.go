// Package hashmap implements Map, a separate-chaining hash table whose
// buckets are short slices of key/value pairs scanned linearly.
//
// 🚀 Resize protocol
//
// A Map keeps its pair count between LowFactor and LoadFactor times its
// bucket count by rehashing everything into a freshly sized bucket array
// ("migrate"):
//
//   - grow: after a new key is inserted, if Len() > Cap()*LoadFactor, or the
//     key's bucket now holds more than BucketCap pairs while
//     Len() > Cap()*LowFactor, capacity doubles.
//   - shrink: after a successful Remove, if Cap() > ShrinkCap and
//     Len() < Cap()*LowFactor, capacity drops to the smallest multiple of
//     InitCap that is at least max(InitCap, Len()*GrowthFactor).
//
// Every migrate is O(Len() + Cap()); there is no incremental rehashing.
//
// ✨ Sizes
//
//	Len()             number of stored pairs, O(1)
//	Count()           number of stored pairs by full bucket scan, O(Cap())
//	BucketOccupancy() number of non-empty buckets, O(Cap())
//	Cap()             number of buckets
//
// ⚙️ Options
//
//	m, err := hashmap.NewWithOptions[string, int](
//		hashmap.WithCapacity(512),
//		hashmap.WithLogger(logger), // Debug record per migrate
//	)
//
// Keys are hashed with hash/maphash under a per-map random seed unless
// WithHasher supplies a function. Iteration order is bucket order and is
// not stable across resizes.
//
// A Map is not safe for concurrent use.
package hashmap
