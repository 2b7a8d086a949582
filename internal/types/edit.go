package types

// EditInfo describes a single mutation of the buffer in both byte offsets
// and line/column positions. It is carried by BufferModified events.
type EditInfo struct {
	StartIndex     int      // Start byte of the edit
	OldEndIndex    int      // End byte of the old text
	NewEndIndex    int      // End byte of the new text
	StartPosition  Position // Start position (line, byte column)
	OldEndPosition Position
	NewEndPosition Position
}

// Delta is the change in document length caused by the edit.
func (e EditInfo) Delta() int {
	return e.NewEndIndex - e.OldEndIndex
}
