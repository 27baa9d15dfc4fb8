package decomp

import (
	"github.com/discopt/cmr-sub003/graphic"
	"github.com/discopt/cmr-sub003/matrix"
	"github.com/discopt/cmr-sub003/nestedminor"
	"github.com/discopt/cmr-sub003/separation"
	"github.com/discopt/cmr-sub003/spreduce"
)

// Kind names the final (or, while still processing, provisional) type of
// a decomposition node: either the node becomes a leaf with a known type,
// or it becomes an internal node with children.
type Kind int

const (
	KindUnknown Kind = iota
	KindOneSum
	KindTwoSum
	KindThreeSumSeymour
	KindThreeSumTruemper
	KindSeriesParallel
	KindGraphic
	KindCographic
	KindPlanar
	KindR10
	KindIrregular
)

func (k Kind) String() string {
	switch k {
	case KindOneSum:
		return "oneSum"
	case KindTwoSum:
		return "twoSum"
	case KindThreeSumSeymour:
		return "threeSumSeymour"
	case KindThreeSumTruemper:
		return "threeSumTruemper"
	case KindSeriesParallel:
		return "seriesParallel"
	case KindGraphic:
		return "graphic"
	case KindCographic:
		return "cographic"
	case KindPlanar:
		return "planar"
	case KindR10:
		return "r10"
	case KindIrregular:
		return "irregular"
	default:
		return "unknown"
	}
}

// Node is one vertex of the decomposition tree: the matrix under test at
// this point plus which dispatch rule already decided it, and (once
// decided) either its Kind-specific certificate or its Children.
type Node struct {
	Matrix *matrix.Matrix[int8]

	// RowElements/ColElements name, for each row/column of Matrix, its
	// identity in the original root matrix, so a certificate can be lifted
	// back up through every split.
	RowElements, ColElements []int

	Kind     Kind
	Children []*Node

	// Per-rule "already decided" flags, tested in the order of spec
	// §4.9's dispatch table.
	connectivityTested bool
	graphicDecided     bool
	cographicDecided   bool
	r10Tested          bool
	spTested           bool
	sequenceGrown      bool
	seqGraphicDecided  bool
	seqCographicDecided bool

	// wheel/spRemaining carry the SP reducer's output from runSPReduce to
	// runGrowSequence (rule 6), and reductionOps carries the full removal
	// chain so a later 2-separation witness on the remainder can be
	// extended back across every reduced line.
	wheel        *spreduce.WheelCertificate
	spRemaining  matrix.Submatrix
	reductionOps []spreduce.Reduction

	// Results recorded along the way; at most one of these (plus Children)
	// is populated once the node reaches a final Kind.
	TwoSum           *separation.TwoSum
	ThreeSumSeymour  *separation.ThreeSumSeymour
	ThreeSumTruemper *separation.ThreeSumTruemper
	GraphicResult    *graphic.Result
	CographicResult  *graphic.Result
	Sequence         *nestedminor.Sequence

	// Violator is set on a KindIrregular leaf, or on a node that failed a
	// ternary-consistency check partway through: a witness to report back
	// to the caller.
	Violator *Violator
}

// Violator generalizes the several submatrix-certificate shapes this
// package's collaborators can return into one row/column pair, for
// uniform reporting at the façade.
type Violator struct {
	Rows, Columns []int
}

func identityElements(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// newRootNode wraps m as the root of a fresh decomposition tree, with
// RowElements/ColElements set to the identity mapping.
func newRootNode(m *matrix.Matrix[int8]) *Node {
	return &Node{
		Matrix:      m,
		RowElements: identityElements(m.NumRows()),
		ColElements: identityElements(m.NumColumns()),
	}
}

// Task is one unit of driver work: run the next applicable rule against
// Node.
type Task struct {
	Node *Node
}

// Queue is the driver's FIFO work queue, with three short-circuit flags
// that let a caller stop early once it has seen enough.
type Queue struct {
	tasks []*Task

	FoundIrregularity bool
	FoundNongraphic   bool
	FoundNoncographic bool
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue { return &Queue{} }

// Push enqueues t at the back of the queue.
func (q *Queue) Push(t *Task) { q.tasks = append(q.tasks, t) }

// Pop dequeues the front task, reporting false if the queue is empty.
func (q *Queue) Pop() (*Task, bool) {
	if len(q.tasks) == 0 {
		return nil, false
	}
	t := q.tasks[0]
	q.tasks = q.tasks[1:]
	return t, true
}

// Empty reports whether the queue has no pending tasks.
func (q *Queue) Empty() bool { return len(q.tasks) == 0 }
