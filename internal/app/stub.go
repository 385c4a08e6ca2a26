//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"huelife/internal/config"
)

// Run reports that the GUI build tag is missing. Build with `-tags ebiten`
// for the windowed backend.
func Run(config.Config) error {
	return errors.New("the gui command requires building with the 'ebiten' tag")
}
