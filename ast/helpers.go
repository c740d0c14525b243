package ast

// cloneOrNil clones n, passing through a genuine nil untouched —
// used for every optional child field so Clone never has to special
// case "this kind has no pointee/condition/etc.".
func cloneOrNil(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}

// acceptChild runs the traversal into a single optional child slot. A
// nil child contributes nothing. child is a pointer to the slot so a
// handler further up the call stack can have replaced it in place
// before this call runs.
func acceptChild(v *Visitor, child *Node, parents []Node) Status {
	if *child == nil {
		return StatusOk
	}
	return Accept(v, child, parents)
}

// acceptChildren runs the traversal into each element of a child list,
// in order, stopping immediately if any element returns Stop.
// children is addressed by index so a handler can replace
// children[i] in place.
func acceptChildren(v *Visitor, children []Node, parents []Node) Status {
	for i := range children {
		if status := acceptChild(v, &children[i], parents); status == StatusStop {
			return status
		}
	}
	return StatusOk
}
