package opts

import (
	"github.com/walteh/bytefix/pkg/config"
	"github.com/walteh/bytefix/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *status.UserLogger
	Async      bool
}
