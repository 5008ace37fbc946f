package hisparsebitset

import "testing"

func TestReduceCacheSlotsRoundTrip(t *testing.T) {
	for _, policy := range []CachePolicy{NoCachePolicy, FixedCachePolicy, DynamicCachePolicy} {
		slots := newReduceCacheSlots(policy, 4)
		slots.set(2, "hello")

		got, ok := slots.get(2)
		if policy == NoCachePolicy {
			if ok {
				t.Errorf("NoCachePolicy slots.get should always miss, got %v", got)
			}
			continue
		}
		if !ok || got != "hello" {
			t.Errorf("policy %v: get(2) = (%v, %v), want (\"hello\", true)", policy, got, ok)
		}
	}
}

func TestFixedCachePolicyFallsBackPastBound(t *testing.T) {
	slots := newReduceCacheSlots(FixedCachePolicy, fixedCacheBound+1)
	if _, ok := slots.(*dynamicCacheSlots); !ok {
		t.Errorf("FixedCachePolicy over %d sources should fall back to dynamicCacheSlots", fixedCacheBound+1)
	}
}
