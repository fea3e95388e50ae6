package spdxexpr

// MinimizedRequirements returns the smallest subexpression of e whose
// leaves are all satisfied by some member of accepted, or a
// *RequirementsMismatch if no such subexpression exists.
func (e *Expression) MinimizedRequirements(accepted []Licensee) (string, error) {
	satisfiedBy := func(req LicenseReq) bool {
		for _, l := range accepted {
			if l.Satisfies(req) {
				return true
			}
		}
		return false
	}

	if !e.Evaluate(satisfiedBy) {
		return "", &RequirementsMismatch{Expression: e.src}
	}

	tree := buildTree(e.nodes)
	_, ok, chosen := minimizeNode(tree, satisfiedBy)
	if !ok {
		// Unreachable given the Evaluate check above, but kept as an
		// explicit invariant guard rather than an assumption.
		return "", &RequirementsMismatch{Expression: e.src}
	}
	return displayTree(chosen), nil
}

// minimizeNode returns the sorted leaf-index set sufficient to satisfy t
// under satisfiedBy, whether t is satisfiable at all, and the rebuilt
// subtree representing exactly that leaf set.
func minimizeNode(t *exprTree, satisfiedBy func(LicenseReq) bool) (leaves []int, ok bool, rebuilt *exprTree) {
	if !t.isOp {
		if satisfiedBy(t.req) {
			return []int{t.leaf}, true, &exprTree{req: t.req, span: t.span, leaf: t.leaf}
		}
		return nil, false, nil
	}

	lLeaves, lOk, lSub := minimizeNode(t.left, satisfiedBy)
	rLeaves, rOk, rSub := minimizeNode(t.right, satisfiedBy)

	if t.op == OpAnd {
		if !lOk || !rOk {
			return nil, false, nil
		}
		merged := mergeSortedLeaves(lLeaves, rLeaves)
		return merged, true, &exprTree{isOp: true, op: OpAnd, span: t.span, left: lSub, right: rSub}
	}

	// OpOr: pick whichever branch is satisfiable; if both are, pick the
	// smaller leaf set, ties broken by earliest leaf index.
	switch {
	case !lOk && !rOk:
		return nil, false, nil
	case lOk && !rOk:
		return lLeaves, true, lSub
	case !lOk && rOk:
		return rLeaves, true, rSub
	default:
		if leafSetLess(lLeaves, rLeaves) {
			return lLeaves, true, lSub
		}
		return rLeaves, true, rSub
	}
}

// leafSetLess reports whether a is the preferred (smaller, then
// earlier-leaning) leaf set relative to b.
func leafSetLess(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return true
}

// mergeSortedLeaves merges two ascending, disjoint leaf-index slices.
func mergeSortedLeaves(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
