package graphic

import (
	"fmt"

	"github.com/discopt/cmr-sub003/camion"
	"github.com/discopt/cmr-sub003/matrix"
)

// VerifyTernary checks that m's own entries — not a freshly constructed
// alternative signing — already form a valid network-matrix signing for
// the tree/endpoints result names. DirectTestTernary's internal camion
// call only ever constructs some valid signing from m's support, since
// decomp.Run uses it to decide binary regularity (Seymour's decomposition
// theorem is a statement about the underlying matroid, not about any one
// choice of signs); this function is the separate, caller-invoked check
// for "is THIS matrix, as given, actually totally unimodular", matching
// this description of Camion signing as a confirming pass run
// once a positive regularity answer is already in hand.
func VerifyTernary(m *matrix.Matrix[int8], result *Result) (*Violator, error) {
	if result == nil || result.Tree == nil {
		return nil, fmt.Errorf("graphic.VerifyTernary: %w", ErrNoTree)
	}
	paths := make([]camion.Path, 0, len(result.Endpoints))
	for col, ep := range result.Endpoints {
		rows := pathRows(result.Tree.Edges, result.Tree.NumVertices, ep.U, ep.V)
		paths = append(paths, camion.Path{Column: col, Rows: rows})
	}
	violator, err := camion.VerifySigning(m, paths)
	if err != nil {
		return nil, fmt.Errorf("graphic.VerifyTernary: %w", err)
	}
	return fromCamionViolator(violator), nil
}
