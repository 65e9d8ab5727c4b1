// Package keypad implements the 16 key hexadecimal keypad state.
package keypad

// Keys is the number of keys on the keypad.
const Keys = 16

// Keypad tracks which of the 16 keys are currently held down.
type Keypad struct {
	keys [Keys]bool
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// Press marks the key as held down. Invalid keys are ignored.
func (k *Keypad) Press(key uint8) {
	k.Set(key, true)
}

// Release marks the key as released. Invalid keys are ignored.
func (k *Keypad) Release(key uint8) {
	k.Set(key, false)
}

// Set updates the state of a key. Invalid keys are ignored.
func (k *Keypad) Set(key uint8, down bool) {
	if int(key) >= Keys {
		return
	}
	k.keys[key] = down
}

// IsKeyDown returns whether the key is held down. Invalid keys are never down.
func (k *Keypad) IsKeyDown(key uint8) bool {
	if int(key) >= Keys {
		return false
	}
	return k.keys[key]
}

// FirstKeyDown returns the lowest numbered key that is held down.
// When a key is found the whole keypad is reset, so that a held key is
// reported only once to a waiting program.
func (k *Keypad) FirstKeyDown() (uint8, bool) {
	for i, down := range k.keys {
		if down {
			k.Reset()
			return uint8(i), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.keys = [Keys]bool{}
}
