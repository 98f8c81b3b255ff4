package layout

// Calculate lays out the tree rooted at root inside a viewport of the given
// size. The root resolves its own Width/Height against the viewport; auto
// dimensions fill it.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}
	style := root.LayoutStyle()
	width := style.Width.Resolve(availableWidth, availableWidth)
	height := style.Height.Resolve(availableHeight, availableHeight)
	calculateNode(root, NewRect(0, 0, max(0, width), max(0, height)))
}

// calculateNode stores the layout of node for the border box it was given
// and recurses into its children.
func calculateNode(node Layoutable, borderBox Rect) {
	style := node.LayoutStyle()
	contentRect := borderBox.Inset(style.Padding)

	node.SetLayout(Layout{Rect: borderBox, ContentRect: contentRect})

	children := node.LayoutChildren()
	if len(children) == 0 {
		return
	}
	layoutChildren(style, children, contentRect)
}

// flexItem holds intermediate calculation state for a child.
type flexItem struct {
	node      Layoutable
	mainSize  int
	crossSize int
	grow      float64
}

// layoutChildren places children along the main axis of style.
func layoutChildren(style Style, children []Layoutable, contentRect Rect) {
	isRow := style.Direction == Row
	mainSize, crossSize := contentRect.Width, contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	items := make([]flexItem, len(children))
	used := style.Gap * (len(children) - 1)
	totalGrow := 0.0

	for i, child := range children {
		cs := child.LayoutStyle()
		iw, ih := child.IntrinsicSize()
		item := &items[i]
		item.node = child
		item.grow = cs.FlexGrow

		if isRow {
			item.mainSize = cs.Width.Resolve(mainSize, iw)
			item.crossSize = cs.Height.Resolve(crossSize, crossSize)
		} else {
			item.mainSize = cs.Height.Resolve(mainSize, ih)
			item.crossSize = cs.Width.Resolve(crossSize, crossSize)
		}
		used += item.mainSize
		totalGrow += item.grow
	}

	free := mainSize - used
	if free > 0 && totalGrow > 0 {
		distributed := 0
		last := -1
		for i := range items {
			if items[i].grow <= 0 {
				continue
			}
			extra := int(float64(free) * items[i].grow / totalGrow)
			items[i].mainSize += extra
			distributed += extra
			last = i
		}
		// Rounding leftovers go to the last growing child.
		if last >= 0 {
			items[last].mainSize += free - distributed
		}
	}

	offset := 0
	for _, item := range items {
		main := max(0, min(item.mainSize, mainSize-offset))
		cross := max(0, min(item.crossSize, crossSize))

		var box Rect
		if isRow {
			box = NewRect(contentRect.X+offset, contentRect.Y, main, cross)
		} else {
			box = NewRect(contentRect.X, contentRect.Y+offset, cross, main)
		}
		calculateNode(item.node, box)
		offset += main + style.Gap
	}
}
