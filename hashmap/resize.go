package hashmap

import "go.uber.org/zap"

const (
	reasonLoad   = "load"
	reasonChain  = "chain"
	reasonShrink = "shrink"
)

// grow doubles the table when the load factor is exceeded, or when the
// bucket that just received a pair is longer than BucketCap and the table
// is not nearly empty. chain is that bucket's new length.
func (m *Map[K, V]) grow(chain int) {
	c := len(m.buckets)
	switch {
	case m.size > int(float64(c)*LoadFactor):
		m.migrate(c*GrowthFactor, reasonLoad)
	case chain > BucketCap && m.size > int(float64(c)*LowFactor):
		m.migrate(c*GrowthFactor, reasonChain)
	}
}

// shrink resizes a large, sparse table down to about twice its pair count.
func (m *Map[K, V]) shrink() {
	c := len(m.buckets)
	if c <= ShrinkCap || m.size >= int(float64(c)*LowFactor) {
		return
	}
	m.migrate(roundUp(max(InitCap, m.size*GrowthFactor), InitCap), reasonShrink)
}

// migrate rehashes every pair into a fresh array of capacity buckets.
// Pairs keep their relative order within each destination bucket.
func (m *Map[K, V]) migrate(capacity int, reason string) {
	if ce := m.log.Check(zap.DebugLevel, "hashmap migrate"); ce != nil {
		ce.Write(
			zap.Int("from", len(m.buckets)),
			zap.Int("to", capacity),
			zap.Int("pairs", m.size),
			zap.String("reason", reason),
		)
	}
	old := m.buckets
	m.buckets = make([]bucket[K, V], capacity)
	for i := range old {
		for _, p := range old[i].pairs {
			b := &m.buckets[m.index(p.Key)]
			b.pairs = append(b.pairs, p)
		}
	}
}
