//go:build !protogen

package creation

import "log/slog"

// NewRemoteProvider returns the fallback provider in builds without generated
// gRPC stubs. Build with -tags protogen (after protoc) for the remote path.
func NewRemoteProvider(_ *slog.Logger, _ string, fallback Provider) (Provider, error) {
	return fallback, nil
}
