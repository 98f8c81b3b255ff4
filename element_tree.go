package tui

// AddChild appends children to this Element. A child that already has a
// parent is moved.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child.parent != nil && child.parent != e {
			child.parent.RemoveChild(child)
		}
		child.parent = e
		child.setAppRecursive(e.app)
		e.children = append(e.children, child)
	}
	e.MarkDirty()
}

// RemoveChild removes a child from this Element.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			child.setAppRecursive(nil)
			e.MarkDirty()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Element.
func (e *Element) RemoveAllChildren() {
	for _, child := range e.children {
		child.parent = nil
		child.setAppRecursive(nil)
	}
	e.children = nil
	e.MarkDirty()
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) setAppRecursive(app *App) {
	if e == nil {
		return
	}
	e.app = app
	for _, child := range e.children {
		child.setAppRecursive(app)
	}
}
