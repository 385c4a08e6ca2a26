//go:build !fyne

package lab

import (
	"github.com/pkg/errors"

	"huelife/internal/config"
)

// Run reports that the laboratory backend was not compiled in.
func Run(config.Config) error {
	return errors.New("the lab command requires building with the 'fyne' tag")
}
