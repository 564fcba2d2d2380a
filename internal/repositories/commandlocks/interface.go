package commandlocks

//go:generate mockgen -destination=mock/mock.go -package=mockcommandlocks -source=interface.go

import "context"

// Repository defines the interface for the admin-only command gate
type Repository interface {
	// IsLocked reports whether a command is restricted to admins
	IsLocked(ctx context.Context, commandName string) (bool, error)

	// SetLocked locks or unlocks a command
	SetLocked(ctx context.Context, commandName string, locked bool) error

	// All returns a snapshot of every recorded lock state
	All(ctx context.Context) (map[string]bool, error)
}
