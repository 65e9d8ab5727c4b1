package processor

// Quirks selects between behaviors that historical CHIP-8 interpreters
// disagree on. Different ROM collections were written against different
// interpreters, so none of the variants is correct for all of them.
type Quirks struct {
	// ShiftCopiesVY copies VY into VX before 8XY6 and 8XYE shift VX.
	// The original COSMAC VIP interpreter did this, CHIP-48 and later
	// interpreters shift VX in place.
	ShiftCopiesVY bool

	// LoadStoreIncrementsI leaves I pointing past the last register
	// accessed by FX55 and FX65.
	LoadStoreIncrementsI bool

	// JumpWithVX makes BNNN jump to VX + NNN, X being the highest nibble
	// of NNN, instead of V0 + NNN.
	JumpWithVX bool

	// ResetFlagOnLogic sets VF to 0 after 8XY1, 8XY2 and 8XY3.
	ResetFlagOnLogic bool
}

// DefaultQuirks returns the quirk settings that are used when no other
// settings are passed to the processor.
func DefaultQuirks() Quirks {
	return Quirks{
		ShiftCopiesVY: true,
	}
}
