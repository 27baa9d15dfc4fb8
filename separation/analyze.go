package separation

import (
	"fmt"

	"github.com/discopt/cmr-sub003/matrix"
)

// Analyze computes the binary rank (with ternary consistency check) of
// the two off-diagonal blocks named by part, and classifies the result.
// On a ternary inconsistency it returns a Result with a non-nil Violator;
// an off-diagonal rank above 2, or a rank pair that fits no separation
// kind, is reported as a wrapped ErrRankExceedsAssumption.
func Analyze(m *matrix.Matrix[int8], part Partition) (*Result, error) {
	if (len(part.RowsA) == 0 && len(part.ColsA) == 0) || (len(part.RowsB) == 0 && len(part.ColsB) == 0) {
		return nil, ErrEmptyPart
	}

	trBlock, trViolator, err := scanBlock(m, true, part.RowsA, part.ColsB)
	if err != nil {
		return nil, fmt.Errorf("separation.Analyze: top-right block: %w", err)
	}
	if trViolator != nil {
		return &Result{Violator: trViolator}, nil
	}

	blBlock, blViolator, err := scanBlock(m, true, part.RowsB, part.ColsA)
	if err != nil {
		return nil, fmt.Errorf("separation.Analyze: bottom-left block: %w", err)
	}
	if blViolator != nil {
		return &Result{Violator: blViolator}, nil
	}

	res := &Result{
		RankTopRight:      trBlock.rank,
		RankBottomLeft:    blBlock.rank,
		RepTopRightRows:   repLines(trBlock),
		RepTopRightCols:   repCols(trBlock),
		RepBottomLeftRows: repLines(blBlock),
		RepBottomLeftCols: repCols(blBlock),
	}

	total := res.RankTopRight + res.RankBottomLeft
	switch {
	case total <= 1:
		res.Kind = KindTwo
	case res.RankTopRight == 1 && res.RankBottomLeft == 1:
		res.Kind = KindThreeDistributed
	case (res.RankTopRight == 2 && res.RankBottomLeft == 0) || (res.RankTopRight == 0 && res.RankBottomLeft == 2):
		res.Kind = KindThreeConcentrated
	default:
		return nil, fmt.Errorf("separation.Analyze: ranks (%d,%d): %w", res.RankTopRight, res.RankBottomLeft, ErrRankExceedsAssumption)
	}
	return res, nil
}

func repLines(b *block) []int {
	var out []int
	if b.rep1Line >= 0 {
		out = append(out, b.rep1Line)
	}
	if b.rep2Line >= 0 {
		out = append(out, b.rep2Line)
	}
	return out
}

// repCols returns the column indices touched by the block's representative
// vectors (the keys of rep1/rep2), sorted ascending.
func repCols(b *block) []int {
	seen := make(map[int]bool)
	if b.rep1 != nil {
		for k := range b.rep1 {
			seen[k] = true
		}
	}
	if b.rep2 != nil {
		for k := range b.rep2 {
			seen[k] = true
		}
	}
	out := make([]int, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
