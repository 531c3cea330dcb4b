// Package operation provides the patch operations that run against the target file
package operation

import (
	"context"

	"github.com/walteh/bytefix/pkg/config"
	"github.com/walteh/bytefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a single runnable patch operation
type Operation interface {
	// Name returns the operation name for logging
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Config describes the target file and its patches
	Config *config.Config
	// UserLogger reports outcomes to the user
	UserLogger *status.UserLogger
}

// validate checks that all required options are set
func (o Options) validate() error {
	if o.Config == nil {
		return errors.Errorf("config is required")
	}
	if o.UserLogger == nil {
		return errors.Errorf("user logger is required")
	}
	return nil
}

// 🏗️ baseOperation carries shared options
type baseOperation struct {
	opts Options
}
