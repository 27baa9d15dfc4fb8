package cmr

import (
	"fmt"

	"github.com/discopt/cmr-sub003/decomp"
	"github.com/discopt/cmr-sub003/env"
	"github.com/discopt/cmr-sub003/graphic"
	"github.com/discopt/cmr-sub003/matrix"
)

// firstViolator walks the decomposition tree depth-first, ascending-index
// over children, and returns the first recorded Violator it finds: the
// ordering the dispatch driver itself enqueues children in, so the
// reported certificate is reproducible across runs.
func firstViolator(node *decomp.Node) *decomp.Violator {
	if node == nil {
		return nil
	}
	if node.Violator != nil {
		return node.Violator
	}
	for _, c := range node.Children {
		if v := firstViolator(c); v != nil {
			return v
		}
	}
	return nil
}

// isIrregularSomewhere reports whether any node of the tree is a
// KindIrregular leaf.
func isIrregularSomewhere(node *decomp.Node) bool {
	if node == nil {
		return false
	}
	if node.Kind == decomp.KindIrregular {
		return true
	}
	for _, c := range node.Children {
		if isIrregularSomewhere(c) {
			return true
		}
	}
	return false
}

func resolveEnv(e *env.Environment) *env.Environment {
	if e == nil {
		return env.New()
	}
	return e
}

// TestTotalUnimodularity validates that m is ternary, calls the
// decomposition driver to decide regularity of the underlying binary
// matroid, and — only once that answer is positive — runs a
// Camion-signing confirmation pass, checking m's own entries against
// every graphic or cographic leaf the driver found (decomp.Run itself
// only ever reasons about GF(2) support, since Seymour's decomposition
// theorem is a binary-matroid statement, so it cannot by itself confirm
// that the caller's actual chosen signs, rather than some other valid
// signing of the same pattern, make m totally unimodular).
func TestTotalUnimodularity(m *matrix.Matrix[int8], e *env.Environment) (*TUResult, error) {
	if !m.IsTernary(0) {
		return nil, fmt.Errorf("cmr.TestTotalUnimodularity: %w", ErrInvalidInput)
	}
	e = resolveEnv(e)
	root, err := decomp.Run(m, e, true)
	if err != nil {
		return nil, wrapEnvErr("cmr.TestTotalUnimodularity", err)
	}
	if isIrregularSomewhere(root) {
		return &TUResult{IsTotallyUnimodular: false, Decomposition: root, Violator: firstViolator(root)}, nil
	}
	if v := confirmTernarySigning(root); v != nil {
		return &TUResult{IsTotallyUnimodular: false, Decomposition: root, Violator: v}, nil
	}
	return &TUResult{IsTotallyUnimodular: true, Decomposition: root}, nil
}

// confirmTernarySigning walks the decomposition tree looking for a
// graphic or cographic leaf whose own matrix entries are not actually a
// valid network-matrix signing (series-parallel leaves are already
// sign-checked incrementally by the SP reducer, and 2-/3-sum internal
// nodes by the separation engine's representative scan; R10 leaves are
// not re-checked here, a documented gap — see DESIGN.md).
func confirmTernarySigning(node *decomp.Node) *decomp.Violator {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case decomp.KindGraphic:
		if v, err := graphic.VerifyTernary(node.Matrix, node.GraphicResult); err == nil && v != nil {
			return &decomp.Violator{Rows: v.Rows[:], Columns: v.Columns[:]}
		}
	case decomp.KindCographic:
		if v, err := graphic.VerifyTernary(node.Matrix.Transpose(), node.CographicResult); err == nil && v != nil {
			return &decomp.Violator{Rows: v.Rows[:], Columns: v.Columns[:]}
		}
	}
	for _, c := range node.Children {
		if v := confirmTernarySigning(c); v != nil {
			return v
		}
	}
	return nil
}

// TestRegular runs the same decomposition driver, but over the
// all-positive ternary lift of a binary support matrix (every stored 1
// becomes +1) with no further sign-consistency confirmation expected of
// the caller. The driver's direct graphic/cographic tests still
// Camion-sign internally (they have no "binary-only" mode): that signing
// happens only as an internal consequence of reusing one pipeline, never
// as a second pass the caller must separately request.
func TestRegular(m *matrix.Matrix[int8], e *env.Environment) (*RegularResult, error) {
	if !m.IsBinary(0) {
		return nil, fmt.Errorf("cmr.TestRegular: %w", ErrInvalidInput)
	}
	lift, err := liftToTernary(m)
	if err != nil {
		return nil, fmt.Errorf("cmr.TestRegular: %w", err)
	}
	e = resolveEnv(e)
	root, err := decomp.Run(lift, e, true)
	if err != nil {
		return nil, wrapEnvErr("cmr.TestRegular", err)
	}
	if isIrregularSomewhere(root) {
		return &RegularResult{IsRegular: false, Decomposition: root, Violator: firstViolator(root)}, nil
	}
	return &RegularResult{IsRegular: true, Decomposition: root}, nil
}

func liftToTernary(m *matrix.Matrix[int8]) (*matrix.Matrix[int8], error) {
	triplets := make([]matrix.Triplet[int8], 0, m.NumNonzeros())
	for i := 0; i < m.NumRows(); i++ {
		s, e := m.RowRange(i)
		for k := s; k < e; k++ {
			triplets = append(triplets, matrix.Triplet[int8]{Row: i, Col: int(m.ColIndex()[k]), Value: 1})
		}
	}
	return matrix.FromTriplets(m.NumRows(), m.NumColumns(), triplets)
}

// TestNetwork is a direct, whole-matrix graphicness decision with a
// consistent edge orientation (not a full Seymour decomposition into
// leaves).
func TestNetwork(m *matrix.Matrix[int8]) (*NetworkResult, error) {
	if !m.IsTernary(0) {
		return nil, fmt.Errorf("cmr.TestNetwork: %w", ErrInvalidInput)
	}
	res, err := directNetworkTest(m)
	if err != nil {
		return nil, fmt.Errorf("cmr.TestNetwork: %w", err)
	}
	return &NetworkResult{IsNetwork: res.IsGraphic, Result: res}, nil
}

// TestConetwork is TestNetwork on the transpose, since a matrix is
// conetwork iff its transpose is network.
func TestConetwork(m *matrix.Matrix[int8]) (*NetworkResult, error) {
	if !m.IsTernary(0) {
		return nil, fmt.Errorf("cmr.TestConetwork: %w", ErrInvalidInput)
	}
	res, err := directNetworkTest(m.Transpose())
	if err != nil {
		return nil, fmt.Errorf("cmr.TestConetwork: %w", err)
	}
	return &NetworkResult{IsNetwork: res.IsGraphic, Result: res}, nil
}

// directNetworkTest decides whether m itself (its actual chosen signs,
// not merely its support pattern) is a network matrix: DirectTest first
// decides binary graphicness of the support, then graphic.VerifyTernary
// confirms m's own entries — rather than some other valid signing of the
// same pattern — already alternate correctly along the matched tree
// paths. A matrix beyond the direct test's size bound is reported as
// "not (co)network" rather than an error: TestNetwork/TestConetwork make
// a yes/no decision, never promising a direct test on arbitrarily large
// input — the driver's other dispatch rules (SP reduction, nested-minor
// growth) exist precisely to cover what the direct test alone cannot, but
// those operate over a full decomposition tree, not a single
// whole-matrix orientation, so they are out of scope for this one-shot
// entry point.
func directNetworkTest(m *matrix.Matrix[int8]) (*graphic.Result, error) {
	res, err := graphic.DirectTest(m.Support())
	if err == graphic.ErrTooLarge {
		return &graphic.Result{IsGraphic: false}, nil
	}
	if err != nil {
		return nil, err
	}
	if !res.IsGraphic {
		return res, nil
	}
	violator, err := graphic.VerifyTernary(m, res)
	if err != nil {
		return nil, err
	}
	if violator != nil {
		return &graphic.Result{IsGraphic: false, Violator: violator}, nil
	}
	res.Signed = m
	return res, nil
}

func wrapEnvErr(op string, err error) error {
	if err == env.ErrDeadlineExceeded {
		return fmt.Errorf("%s: %w", op, ErrTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
