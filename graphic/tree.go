package graphic

// directTestRowBound is the largest number of tree-edge rows the direct
// test will attempt: beyond this, enumerating every labelled tree times
// every row-to-edge assignment is not attempted. The decomposition driver
// restricts the direct test to matrices with <=3 rows or columns, so this
// bound is deliberately generous headroom, not a tight fit.
const directTestRowBound = 6

type rawEdge struct{ U, V int }

// pruferDecode decodes a Prüfer sequence (length n-2) into the n-1 edges
// of the unique labelled tree on n vertices it encodes.
func pruferDecode(seq []int, n int) []rawEdge {
	if n == 1 {
		return nil
	}
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, s := range seq {
		degree[s]++
	}
	edges := make([]rawEdge, 0, n-1)
	ptr := 0
	for ptr < n && degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr
	for _, s := range seq {
		edges = append(edges, rawEdge{leaf, s})
		degree[leaf]--
		degree[s]--
		if degree[s] == 1 && s < ptr {
			leaf = s
		} else {
			ptr++
			for ptr < n && degree[ptr] != 1 {
				ptr++
			}
			leaf = ptr
		}
	}
	u, v := -1, -1
	for i := 0; i < n; i++ {
		if degree[i] == 1 {
			if u == -1 {
				u = i
			} else {
				v = i
			}
		}
	}
	edges = append(edges, rawEdge{u, v})
	return edges
}

// allPruferSequences returns every sequence of length n-2 over alphabet
// 0..n-1 (n>=2), i.e. every labelled tree on n vertices via Cayley's
// bijection.
func allPruferSequences(n int) [][]int {
	length := n - 2
	if length <= 0 {
		return [][]int{{}}
	}
	var out [][]int
	seq := make([]int, length)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == length {
			cp := make([]int, length)
			copy(cp, seq)
			out = append(out, cp)
			return
		}
		for v := 0; v < n; v++ {
			seq[pos] = v
			rec(pos + 1)
		}
	}
	rec(0)
	return out
}

// permutations returns every permutation of 0..n-1.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	used := make([]bool, n)
	cur := make([]int, 0, n)
	var rec func()
	rec = func() {
		if len(cur) == n {
			cp := make([]int, n)
			copy(cp, cur)
			out = append(out, cp)
			return
		}
		for _, v := range base {
			if used[v] {
				continue
			}
			used[v] = true
			cur = append(cur, v)
			rec()
			cur = cur[:len(cur)-1]
			used[v] = false
		}
	}
	rec()
	return out
}

// pathRows returns, for a tree whose edges are labelled by row, the
// sequence of rows on the unique path between vertices u and v, in walk
// order from u to v. Returns nil if u == v (empty path).
func pathRows(edges []TreeEdge, numVertices, u, v int) []int {
	if u == v {
		return nil
	}
	type link struct {
		to  int
		row int
	}
	adj := make([][]link, numVertices)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], link{e.V, e.Row})
		adj[e.V] = append(adj[e.V], link{e.U, e.Row})
	}
	parent := make([]int, numVertices)
	parentRow := make([]int, numVertices)
	visited := make([]bool, numVertices)
	for i := range parent {
		parent[i] = -1
	}
	queue := []int{u}
	visited[u] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == v {
			break
		}
		for _, l := range adj[cur] {
			if !visited[l.to] {
				visited[l.to] = true
				parent[l.to] = cur
				parentRow[l.to] = l.row
				queue = append(queue, l.to)
			}
		}
	}
	if !visited[v] {
		return nil
	}
	var rows []int
	for cur := v; cur != u; cur = parent[cur] {
		rows = append(rows, parentRow[cur])
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}
