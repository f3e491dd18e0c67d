package core

// PathFromParents rebuilds the node sequence src..dst from a predecessor
// table produced by a search, where parents[v] == u means v was first
// reached from u. The returned path includes both endpoints.
//
// All searches in this module share this reconstruction convention, so it
// lives here rather than being duplicated per algorithm.
//
// The boolean result is false when dst was never recorded in parents and
// dst != src, meaning the search did not reach the destination. It is also
// false if the chain fails to close on src within len(parents)+1 steps,
// which can only happen on a malformed table.
// Complexity: O(len(path)).
func PathFromParents(parents map[int]int, src, dst int) ([]int, bool) {
	if dst == src {
		return []int{src}, true
	}
	if _, ok := parents[dst]; !ok {
		return nil, false
	}

	// Walk backward from dst, then reverse.
	path := []int{dst}
	for cur := dst; cur != src; {
		prev, ok := parents[cur]
		if !ok || len(path) > len(parents)+1 {
			return nil, false
		}
		path = append(path, prev)
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
