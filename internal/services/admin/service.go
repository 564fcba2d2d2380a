package admin

//go:generate mockgen -destination=mock/mock_service.go -package=mockadmin -source=service.go

import (
	"context"
	"sort"

	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/commandlocks"
)

// Service gates commands behind an admin-only lock list
type Service interface {
	// IsAdmin reports whether a user is in the configured admin list
	IsAdmin(userID string) bool

	// Authorize returns nil when a user may run a command, or an
	// unauthorized error when the command is locked and the user is
	// not an admin
	Authorize(ctx context.Context, commandName, userID string) error

	// Lock restricts a command to admins
	Lock(ctx context.Context, commandName string) error

	// Unlock lifts the restriction on a command
	Unlock(ctx context.Context, commandName string) error

	// LockedCommands returns the sorted names of locked commands
	LockedCommands(ctx context.Context) ([]string, error)
}

type service struct {
	repository commandlocks.Repository
	adminIDs   map[string]struct{}
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository commandlocks.Repository // Required
	AdminIDs   []string
}

// NewService creates a new admin service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	admins := make(map[string]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = struct{}{}
	}

	return &service{
		repository: cfg.Repository,
		adminIDs:   admins,
	}
}

func (s *service) IsAdmin(userID string) bool {
	_, ok := s.adminIDs[userID]
	return ok
}

func (s *service) Authorize(ctx context.Context, commandName, userID string) error {
	if s.IsAdmin(userID) {
		return nil
	}

	locked, err := s.repository.IsLocked(ctx, commandName)
	if err != nil {
		return err
	}
	if locked {
		return botErr.Unauthorizedf("the '%s' command is restricted to admins", commandName).
			WithMeta("command", commandName)
	}
	return nil
}

func (s *service) Lock(ctx context.Context, commandName string) error {
	if commandName == "" {
		return botErr.InvalidArgument("command name is required")
	}
	return s.repository.SetLocked(ctx, commandName, true)
}

func (s *service) Unlock(ctx context.Context, commandName string) error {
	if commandName == "" {
		return botErr.InvalidArgument("command name is required")
	}
	return s.repository.SetLocked(ctx, commandName, false)
}

func (s *service) LockedCommands(ctx context.Context) ([]string, error) {
	all, err := s.repository.All(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for name, locked := range all {
		if locked {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
