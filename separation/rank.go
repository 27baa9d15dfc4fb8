package separation

import "github.com/discopt/cmr-sub003/matrix"

// restrict returns, for line index i interpreted as a row (isRow) or
// column, the map of entries within the submatrix identified by the
// opposite-side indices "against".
func restrict(m *matrix.Matrix[int8], isRow bool, i int, against []int) map[int]int8 {
	out := make(map[int]int8, len(against))
	for _, j := range against {
		var v int8
		if isRow {
			v = m.At(i, j)
		} else {
			v = m.At(j, i)
		}
		if v != 0 {
			out[j] = v
		}
	}
	return out
}

func patternOf(vec map[int]int8) []int {
	keys := make([]int, 0, len(vec))
	for k := range vec {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func patternsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// matchesSigned reports whether vec equals rep entrywise, or equals rep
// negated entrywise (the two sign choices a binary-rank-1 row admits).
func matchesSigned(vec, rep map[int]int8) (negated bool, ok bool) {
	if len(vec) != len(rep) {
		return false, false
	}
	allPos, allNeg := true, true
	for k, rv := range rep {
		vv, present := vec[k]
		if !present {
			return false, false
		}
		if vv != rv {
			allPos = false
		}
		if vv != -rv {
			allNeg = false
		}
	}
	if allPos {
		return false, true
	}
	if allNeg {
		return true, true
	}
	return false, false
}

// xorPattern returns the symmetric difference of two column-sets.
func xorPattern(a, b map[int]int8) []int {
	out := make(map[int]bool)
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = true
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			out[k] = true
		}
	}
	keys := make([]int, 0, len(out))
	for k := range out {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// block holds the scan state for one off-diagonal block.
type block struct {
	rep1, rep2         map[int]int8
	rep1Line, rep2Line int
	rank               int
}

// scanBlock runs the bounded representative scan of this over block
// rows "lines" (either all rows of RowsA or all rows of RowsB, depending
// on which off-diagonal block is being scanned), each restricted to
// "against" (the opposite part's column or row set). isRow selects
// whether "lines" are matrix rows (true) or columns (false).
func scanBlock(m *matrix.Matrix[int8], isRow bool, lines, against []int) (*block, *Violator, error) {
	b := &block{rep1Line: -1, rep2Line: -1}
	for _, line := range lines {
		vec := restrict(m, isRow, line, against)
		if len(vec) == 0 {
			continue
		}
		pat := patternOf(vec)

		if b.rep1 == nil {
			b.rep1, b.rep1Line, b.rank = vec, line, 1
			continue
		}
		if patternsEqual(pat, patternOf(b.rep1)) {
			if neg, ok := matchesSigned(vec, b.rep1); ok {
				_ = neg
				continue
			}
			return nil, violatorFromTwo(isRow, b.rep1Line, line, patternOf(b.rep1)), nil
		}
		if b.rep2 == nil {
			b.rep2, b.rep2Line, b.rank = vec, line, 2
			continue
		}
		if patternsEqual(pat, patternOf(b.rep2)) {
			if neg, ok := matchesSigned(vec, b.rep2); ok {
				_ = neg
				continue
			}
			return nil, violatorFromTwo(isRow, b.rep2Line, line, patternOf(b.rep2)), nil
		}
		unionPat := xorPattern(b.rep1, b.rep2)
		if patternsEqual(pat, unionPat) {
			if ok := matchesSum(vec, b.rep1, b.rep2); ok {
				continue
			}
			return nil, violatorFromThree(isRow, b.rep1Line, b.rep2Line, line, unionPat), nil
		}
		return nil, nil, ErrRankExceedsAssumption
	}
	return b, nil, nil
}

// matchesSum reports whether vec equals one of the four sign choices
// (+-rep1) +- (+-rep2) restricted to their combined support.
func matchesSum(vec, rep1, rep2 map[int]int8) bool {
	signs := [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for _, s := range signs {
		ok := true
		for k, v := range rep1 {
			if vec[k] != s[0]*v {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for k, v := range rep2 {
			if vec[k] != s[1]*v {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func violatorFromTwo(isRow bool, lineA, lineB int, cols []int) *Violator {
	if len(cols) == 0 {
		return nil
	}
	c1 := cols[0]
	c2 := c1
	if len(cols) > 1 {
		c2 = cols[1]
	}
	if isRow {
		return &Violator{Rows: []int{lineA, lineB}, Columns: []int{c1, c2}}
	}
	return &Violator{Rows: []int{c1, c2}, Columns: []int{lineA, lineB}}
}

func violatorFromThree(isRow bool, lineA, lineB, lineC int, cols []int) *Violator {
	c1, c2, c3 := 0, 0, 0
	if len(cols) > 0 {
		c1 = cols[0]
	}
	if len(cols) > 1 {
		c2 = cols[1]
	}
	if len(cols) > 2 {
		c3 = cols[2]
	}
	if isRow {
		return &Violator{Rows: []int{lineA, lineB, lineC}, Columns: []int{c1, c2, c3}}
	}
	return &Violator{Rows: []int{c1, c2, c3}, Columns: []int{lineA, lineB, lineC}}
}
