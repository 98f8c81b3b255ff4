package tui

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// DrawBox draws a box border around rect. Boxes smaller than 2x2 are skipped.
func DrawBox(buf *Buffer, rect Rect, border BorderStyle) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := border.Chars()
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	buf.SetRune(left, top, chars.TopLeft)
	buf.SetRune(right, top, chars.TopRight)
	buf.SetRune(left, bottom, chars.BottomLeft)
	buf.SetRune(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		buf.SetRune(x, top, chars.Top)
		buf.SetRune(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		buf.SetRune(left, y, chars.Left)
		buf.SetRune(right, y, chars.Right)
	}
}
