package cache

// Stats is a point-in-time view of cache occupancy, exposed for
// observability endpoints.
type Stats struct {
	Size        int     `json:"size"`
	MaxSize     int     `json:"maxSize"`
	TTLSeconds  float64 `json:"ttlSeconds"`
	Utilization float64 `json:"utilization"`
	OldestAge   float64 `json:"oldestItemAgeSeconds"`
	NewestAge   float64 `json:"newestItemAgeSeconds"`
}

// Stats reports current occupancy and entry-age extremes.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Size:       len(c.items),
		MaxSize:    c.maxSize,
		TTLSeconds: c.ttl.Seconds(),
	}
	if c.maxSize > 0 {
		s.Utilization = float64(len(c.items)) / float64(c.maxSize)
	}
	now := c.now()
	first := true
	for _, el := range c.items {
		age := now.Sub(el.Value.(*entry).insertedAt).Seconds()
		if first {
			s.OldestAge, s.NewestAge = age, age
			first = false
			continue
		}
		if age > s.OldestAge {
			s.OldestAge = age
		}
		if age < s.NewestAge {
			s.NewestAge = age
		}
	}
	return s
}
