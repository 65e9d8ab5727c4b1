//go:build headless

package window

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// ErrNotSupported is returned when the binary was built without window support.
var ErrNotSupported = errors.New("window frontend not supported in headless build")

// Run returns ErrNotSupported.
func Run(_ context.Context, _ *log.Logger, _ *machine.Machine, _ Options) error {
	return ErrNotSupported
}
