// Package featureflags wraps the Rollout SDK. Two flags are registered: an
// Offline kill-switch that gates all non-health traffic, and a LogLevel
// string flag watched for runtime level flips. Without an API key the flags
// simply report their defaults.
package featureflags

import (
	"context"
	"fmt"

	"github.com/rollout/rox-go/v5/server"
)

// Flags is the registered flag container.
type Flags struct {
	Offline  server.RoxFlag
	LogLevel server.RoxString
}

var (
	flags = &Flags{
		Offline:  server.NewRoxFlag(false),
		LogLevel: server.NewRoxString("info", []string{"debug", "info", "warn", "error"}),
	}
	rox *server.Rox
)

// Values returns the flag container.
func Values() *Flags {
	return flags
}

// Init registers the flags and connects to Rollout when a key is configured.
// Without a key the flags stay at their defaults, which is an acceptable
// degraded mode — callers treat the returned error as a warning.
func Init(ctx context.Context, apiKey string) error {
	rox = server.NewRox()
	rox.Register("storefront", flags)

	if apiKey == "" {
		return fmt.Errorf("no rollout api key configured, flags stay at defaults")
	}

	options := server.NewRoxOptions(server.RoxOptionsBuilder{})
	select {
	case <-rox.Setup(apiKey, options):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown releases the SDK.
func Shutdown() {
	if rox != nil {
		<-rox.Shutdown()
	}
}
