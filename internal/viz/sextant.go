package viz

// Sextant cells, numbered the way Unicode names the glyphs:
//
//	1 2
//	3 4
//	5 6
//
// Cell n is bit n-1 of a pattern.
const (
	TopLeft = 1 << iota
	TopRight
	MiddleLeft
	MiddleRight
	BottomLeft
	BottomRight
)

const (
	leftColumn  = TopLeft | MiddleLeft | BottomLeft
	rightColumn = TopRight | MiddleRight | BottomRight
	allCells    = leftColumn | rightColumn
)

// sextants maps every 6-bit pattern to its glyph. The Symbols for Legacy
// Computing block starts at U+1FB00 and omits the four patterns that already
// exist elsewhere: blank, full block and the two half blocks.
var sextants = [64]rune{
	' ',          // 00 -
	'\U0001FB00', // 01 1
	'\U0001FB01', // 02 2
	'\U0001FB02', // 03 12
	'\U0001FB03', // 04 3
	'\U0001FB04', // 05 13
	'\U0001FB05', // 06 23
	'\U0001FB06', // 07 123
	'\U0001FB07', // 08 4
	'\U0001FB08', // 09 14
	'\U0001FB09', // 10 24
	'\U0001FB0A', // 11 124
	'\U0001FB0B', // 12 34
	'\U0001FB0C', // 13 134
	'\U0001FB0D', // 14 234
	'\U0001FB0E', // 15 1234
	'\U0001FB0F', // 16 5
	'\U0001FB10', // 17 15
	'\U0001FB11', // 18 25
	'\U0001FB12', // 19 125
	'\U0001FB13', // 20 35
	'\u258C',     // 21 135
	'\U0001FB14', // 22 235
	'\U0001FB15', // 23 1235
	'\U0001FB16', // 24 45
	'\U0001FB17', // 25 145
	'\U0001FB18', // 26 245
	'\U0001FB19', // 27 1245
	'\U0001FB1A', // 28 345
	'\U0001FB1B', // 29 1345
	'\U0001FB1C', // 30 2345
	'\U0001FB1D', // 31 12345
	'\U0001FB1E', // 32 6
	'\U0001FB1F', // 33 16
	'\U0001FB20', // 34 26
	'\U0001FB21', // 35 126
	'\U0001FB22', // 36 36
	'\U0001FB23', // 37 136
	'\U0001FB24', // 38 236
	'\U0001FB25', // 39 1236
	'\U0001FB26', // 40 46
	'\U0001FB27', // 41 146
	'\u2590',     // 42 246
	'\U0001FB28', // 43 1246
	'\U0001FB29', // 44 346
	'\U0001FB2A', // 45 1346
	'\U0001FB2B', // 46 2346
	'\U0001FB2C', // 47 12346
	'\U0001FB2D', // 48 56
	'\U0001FB2E', // 49 156
	'\U0001FB2F', // 50 256
	'\U0001FB30', // 51 1256
	'\U0001FB31', // 52 356
	'\U0001FB32', // 53 1356
	'\U0001FB33', // 54 2356
	'\U0001FB34', // 55 12356
	'\U0001FB35', // 56 456
	'\U0001FB36', // 57 1456
	'\U0001FB37', // 58 2456
	'\U0001FB38', // 59 12456
	'\U0001FB39', // 60 3456
	'\U0001FB3A', // 61 13456
	'\U0001FB3B', // 62 23456
	'\u2588',     // 63 123456
}

// Sextant returns the glyph for a 2x3 block of cells.
func Sextant(topLeft, topRight, middleLeft, middleRight, bottomLeft, bottomRight bool) rune {
	var v uint8
	if topLeft {
		v |= TopLeft
	}
	if topRight {
		v |= TopRight
	}
	if middleLeft {
		v |= MiddleLeft
	}
	if middleRight {
		v |= MiddleRight
	}
	if bottomLeft {
		v |= BottomLeft
	}
	if bottomRight {
		v |= BottomRight
	}
	return sextants[v]
}

// SextantBits returns the glyph for a pattern built from the cell constants.
// Bits above the sixth are ignored.
func SextantBits(v uint8) rune {
	return sextants[v&allCells]
}
