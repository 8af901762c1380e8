package livelists

type runOp uint8

const (
	opEqual runOp = iota
	opInsert
	opDelete
)

// run is one homogeneous stretch of an edit script. Concatenating the keys
// of equal and insert runs reproduces the new sequence; equal and delete
// runs reproduce the old one.
type run[K comparable] struct {
	op   runOp
	keys []K
}

// diffKeys computes a shortest edit script between two key sequences: the
// total length of insert and delete runs is minimal. Identical inputs
// always produce an identical script; ties during backtracking resolve in
// favor of deletion so run boundaries are stable across runs.
func diffKeys[K comparable](old, new []K) []run[K] {
	// 1. Identify common prefix
	prefix := 0
	for prefix < len(old) && prefix < len(new) && old[prefix] == new[prefix] {
		prefix++
	}

	// 2. Identify common suffix
	suffix := 0
	for suffix < len(old)-prefix && suffix < len(new)-prefix &&
		old[len(old)-1-suffix] == new[len(new)-1-suffix] {
		suffix++
	}

	var runs []run[K]
	if prefix > 0 {
		runs = append(runs, run[K]{op: opEqual, keys: old[:prefix]})
	}

	midOld := old[prefix : len(old)-suffix]
	midNew := new[prefix : len(new)-suffix]

	switch {
	case len(midOld) == 0 && len(midNew) > 0:
		// Fast path: simple insertion
		runs = append(runs, run[K]{op: opInsert, keys: midNew})
	case len(midNew) == 0 && len(midOld) > 0:
		// Fast path: simple removal
		runs = append(runs, run[K]{op: opDelete, keys: midOld})
	case len(midOld) > 0:
		runs = append(runs, editRuns(midOld, midNew)...)
	}

	if suffix > 0 {
		runs = append(runs, run[K]{op: opEqual, keys: old[len(old)-suffix:]})
	}

	return runs
}

// editRuns uses dynamic programming to find the shortest edit script for
// the middle portion of the two sequences. The trimmed inputs are
// guaranteed to differ at both ends, so the first and last produced runs
// are never equal runs and no merging with the prefix/suffix is needed.
func editRuns[K comparable](old, new []K) []run[K] {
	n := len(old)
	m := len(new)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}

	for i := 0; i <= n; i++ {
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case old[i-1] == new[j-1]:
				dp[i][j] = dp[i-1][j-1]
			case dp[i-1][j] <= dp[i][j-1]:
				dp[i][j] = dp[i-1][j] + 1
			default:
				dp[i][j] = dp[i][j-1] + 1
			}
		}
	}

	// Backtrack from the tail, growing the current run while the edit kind
	// repeats. Runs and their keys come out reversed and are flipped once
	// at the end.
	var runs []run[K]
	push := func(op runOp, key K) {
		if len(runs) > 0 && runs[len(runs)-1].op == op {
			last := &runs[len(runs)-1]
			last.keys = append(last.keys, key)
			return
		}
		runs = append(runs, run[K]{op: op, keys: []K{key}})
	}

	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && old[i-1] == new[j-1]:
			push(opEqual, old[i-1])
			i--
			j--
		case i > 0 && (j == 0 || dp[i][j] == dp[i-1][j]+1):
			push(opDelete, old[i-1])
			i--
		default:
			push(opInsert, new[j-1])
			j--
		}
	}

	for k := 0; k < len(runs)/2; k++ {
		runs[k], runs[len(runs)-1-k] = runs[len(runs)-1-k], runs[k]
	}
	for _, r := range runs {
		for l, r2 := 0, len(r.keys)-1; l < r2; l, r2 = l+1, r2-1 {
			r.keys[l], r.keys[r2] = r.keys[r2], r.keys[l]
		}
	}

	return runs
}
