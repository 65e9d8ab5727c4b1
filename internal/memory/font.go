package memory

const (
	// FontAddress is the address of the first font glyph.
	FontAddress = 0x050

	// GlyphSize is the number of bytes of a single font glyph.
	GlyphSize = 5

	// FontSize is the size of the complete font table.
	FontSize = 16 * GlyphSize
)

// font contains the sprites for the hexadecimal digits 0-F, each 4 pixels
// wide and 5 rows high.
var font = [FontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the address of the font glyph for the given digit.
// Only the low nibble of the digit is used, so FX29 always points into the
// font table. Interpreters without the mask point values above 0xF past the
// font, ROMs relying on that read glyph digit&0xF instead.
func GlyphAddress(digit byte) uint16 {
	return FontAddress + GlyphSize*uint16(digit&0x0F)
}
