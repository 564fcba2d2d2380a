package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/Kekatrice/DiscordBotty/internal/dice"
	"github.com/Kekatrice/DiscordBotty/internal/domain/character"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/locks"
	"github.com/Kekatrice/DiscordBotty/internal/repositories/characters"
	"github.com/Kekatrice/DiscordBotty/internal/services/economy"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service defines the character service interface. Every operation
// that mutates a character runs under a per-character lock, so
// check-then-set sequences are atomic with respect to other attempts
// on the same character.
type Service interface {
	// Upload creates a new character
	Upload(ctx context.Context, input *UploadInput) (*character.Character, error)

	// Get retrieves a character by name (case-insensitive)
	Get(ctx context.Context, name string) (*character.Character, error)

	// ListAll returns every character sorted by name
	ListAll(ctx context.Context) ([]*character.Character, error)

	// ListOwnedBy returns the characters owned by a user, sorted by name
	ListOwnedBy(ctx context.Context, userID string) ([]*character.Character, error)

	// UpdateInfo changes a character's name, description, side note or images
	UpdateInfo(ctx context.Context, input *UpdateInfoInput) (*character.Character, error)

	// AddImages appends image URLs to a character
	AddImages(ctx context.Context, name string, urls []string) (*character.Character, error)

	// Delete removes a character from the store entirely
	Delete(ctx context.Context, name string) error

	// Kill marks a character deceased and records the cause of death
	Kill(ctx context.Context, name, cause string) (*character.Character, error)

	// Revive marks a character alive again. The recorded cause of death
	// is kept as history.
	Revive(ctx context.Context, name string) (*character.Character, error)

	// Claim assigns an unclaimed, alive character to a user. Exactly one
	// of any number of concurrent claims succeeds; losers receive an
	// already_claimed error carrying the winner's ID in its metadata.
	Claim(ctx context.Context, name, userID string) (*character.Character, error)

	// Release clears ownership; only the current owner may release
	Release(ctx context.Context, name, userID string) error

	// Give transfers ownership to another user; only the owner may give
	Give(ctx context.Context, name, fromID, toID string) error

	// Sell lists an owned character for sale at the given price
	Sell(ctx context.Context, name, sellerID string, price int64) (*character.Character, error)

	// Buy purchases a listed character: the buyer's gold moves to the
	// seller and ownership transfers, atomically as a whole
	Buy(ctx context.Context, name, buyerID string) (*PurchaseResult, error)

	// RandomClaimable picks a uniformly random unclaimed, alive character
	RandomClaimable(ctx context.Context) (*character.Character, error)
}

// UploadInput contains data for creating a character
type UploadInput struct {
	Name        string
	Description string
	SideNote    string
	Images      []string
}

// UpdateInfoInput contains the optional field updates for a character.
// Nil fields are left unchanged.
type UpdateInfoInput struct {
	Name        string // Required: the character to update
	NewName     *string
	Description *string
	SideNote    *string
	Images      []string // Replaces all images when non-nil
}

// PurchaseResult describes a completed purchase
type PurchaseResult struct {
	Character *character.Character
	SellerID  string
	Price     int64
}

// service implements the Service interface
type service struct {
	repository Repository
	economy    economy.Service
	roller     dice.Roller
	charLocks  *locks.Keyed
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository      // Required
	Economy    economy.Service // Required for sales
	Roller     dice.Roller     // Optional, will use random if nil
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Economy == nil {
		panic("economy service is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &service{
		repository: cfg.Repository,
		economy:    cfg.Economy,
		roller:     roller,
		charLocks:  locks.NewKeyed(),
	}
}

// Upload creates a new character
func (s *service) Upload(ctx context.Context, input *UploadInput) (*character.Character, error) {
	if input == nil {
		return nil, botErr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, botErr.InvalidArgument("character name is required")
	}

	unlock := s.charLocks.Lock(character.CanonicalName(input.Name))
	defer unlock()

	if _, err := s.repository.Get(ctx, input.Name); err == nil {
		return nil, botErr.AlreadyExistsf("a character named '%s' already exists", input.Name).
			WithMeta("character_name", input.Name)
	} else if !botErr.IsNotFound(err) {
		return nil, err
	}

	char := &character.Character{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		SideNote:    input.SideNote,
		Images:      append([]string(nil), input.Images...),
		Status:      character.StatusAlive,
	}

	if err := s.repository.Put(ctx, char); err != nil {
		return nil, err
	}
	return char.Clone(), nil
}

// Get retrieves a character by name
func (s *service) Get(ctx context.Context, name string) (*character.Character, error) {
	return s.repository.Get(ctx, name)
}

// ListAll returns every character sorted by name
func (s *service) ListAll(ctx context.Context) ([]*character.Character, error) {
	all, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByName(all)
	return all, nil
}

// ListOwnedBy returns the characters owned by a user, sorted by name
func (s *service) ListOwnedBy(ctx context.Context, userID string) ([]*character.Character, error) {
	if userID == "" {
		return nil, botErr.InvalidArgument("user ID is required")
	}

	all, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var owned []*character.Character
	for _, char := range all {
		if char.OwnerID == userID {
			owned = append(owned, char)
		}
	}
	sortByName(owned)
	return owned, nil
}

// UpdateInfo changes a character's name, description, side note or images
func (s *service) UpdateInfo(ctx context.Context, input *UpdateInfoInput) (*character.Character, error) {
	if input == nil {
		return nil, botErr.InvalidArgument("input cannot be nil")
	}
	if input.Name == "" {
		return nil, botErr.InvalidArgument("character name is required")
	}

	oldKey := character.CanonicalName(input.Name)
	lockKeys := []string{oldKey}

	newKey := oldKey
	if input.NewName != nil {
		if strings.TrimSpace(*input.NewName) == "" {
			return nil, botErr.InvalidArgument("new name cannot be empty")
		}
		newKey = character.CanonicalName(*input.NewName)
		lockKeys = append(lockKeys, newKey)
	}

	unlock := s.charLocks.Lock(lockKeys...)
	defer unlock()

	char, err := s.repository.Get(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	if input.NewName != nil {
		if newKey != oldKey {
			if _, err := s.repository.Get(ctx, *input.NewName); err == nil {
				return nil, botErr.AlreadyExistsf("a character named '%s' already exists", *input.NewName)
			} else if !botErr.IsNotFound(err) {
				return nil, err
			}
		}
		char.Name = strings.TrimSpace(*input.NewName)
	}
	if input.Description != nil {
		char.Description = *input.Description
	}
	if input.SideNote != nil {
		char.SideNote = *input.SideNote
	}
	if input.Images != nil {
		char.Images = append([]string(nil), input.Images...)
	}

	// Store under the new key first so a crash between the two writes
	// duplicates the record instead of losing it
	if err := s.repository.Put(ctx, char); err != nil {
		return nil, err
	}
	if newKey != oldKey {
		if err := s.repository.Delete(ctx, input.Name); err != nil {
			log.Printf("Failed to remove old entry '%s' after rename: %v", input.Name, err)
		}
	}

	return char.Clone(), nil
}

// AddImages appends image URLs to a character
func (s *service) AddImages(ctx context.Context, name string, urls []string) (*character.Character, error) {
	if len(urls) == 0 {
		return nil, botErr.InvalidArgument("at least one image URL is required")
	}

	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	char, err := s.repository.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	char.Images = append(char.Images, urls...)
	if err := s.repository.Put(ctx, char); err != nil {
		return nil, err
	}
	return char.Clone(), nil
}

// Delete removes a character from the store entirely
func (s *service) Delete(ctx context.Context, name string) error {
	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	return s.repository.Delete(ctx, name)
}

// Kill marks a character deceased and records the cause of death
func (s *service) Kill(ctx context.Context, name, cause string) (*character.Character, error) {
	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	char, err := s.repository.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	char.Status = character.StatusDeceased
	char.CauseOfDeath = cause

	if err := s.repository.Put(ctx, char); err != nil {
		return nil, err
	}
	return char.Clone(), nil
}

// Revive marks a character alive again
func (s *service) Revive(ctx context.Context, name string) (*character.Character, error) {
	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	char, err := s.repository.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	char.Status = character.StatusAlive

	if err := s.repository.Put(ctx, char); err != nil {
		return nil, err
	}
	return char.Clone(), nil
}

// Claim assigns an unclaimed, alive character to a user
func (s *service) Claim(ctx context.Context, name, userID string) (*character.Character, error) {
	if userID == "" {
		return nil, botErr.InvalidArgument("user ID is required")
	}

	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	// Re-check inside the critical section: another claimant may have
	// won between the caller's look and this lock
	char, err := s.repository.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if char.IsClaimed() {
		return nil, botErr.AlreadyClaimedf("'%s' is already claimed by another user", char.Name).
			WithMeta("owner_id", char.OwnerID).
			WithMeta("character_name", char.Name)
	}
	if !char.IsAlive() {
		return nil, botErr.NotAlivef("'%s' is deceased and cannot be claimed", char.Name)
	}

	char.OwnerID = userID
	if err := s.repository.Put(ctx, char); err != nil {
		return nil, err
	}
	return char.Clone(), nil
}

// Release clears ownership; only the current owner may release
func (s *service) Release(ctx context.Context, name, userID string) error {
	if userID == "" {
		return botErr.InvalidArgument("user ID is required")
	}

	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	char, err := s.repository.Get(ctx, name)
	if err != nil {
		return err
	}
	if !char.IsClaimed() {
		return botErr.InvalidArgumentf("'%s' is not claimed by anyone", char.Name)
	}
	if char.OwnerID != userID {
		return botErr.Unauthorizedf("you do not own '%s'", char.Name).
			WithMeta("owner_id", char.OwnerID)
	}

	char.OwnerID = ""
	// A character with no owner cannot stay listed for sale
	char.SalePrice = 0

	return s.repository.Put(ctx, char)
}

// Give transfers ownership to another user; only the owner may give
func (s *service) Give(ctx context.Context, name, fromID, toID string) error {
	if fromID == "" || toID == "" {
		return botErr.InvalidArgument("both user IDs are required")
	}

	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	char, err := s.repository.Get(ctx, name)
	if err != nil {
		return err
	}
	if char.OwnerID != fromID {
		return botErr.Unauthorizedf("you do not own '%s'", char.Name).
			WithMeta("owner_id", char.OwnerID)
	}

	char.OwnerID = toID
	// The new owner has not consented to the old listing
	char.SalePrice = 0

	return s.repository.Put(ctx, char)
}

// Sell lists an owned character for sale at the given price
func (s *service) Sell(ctx context.Context, name, sellerID string, price int64) (*character.Character, error) {
	if sellerID == "" {
		return nil, botErr.InvalidArgument("user ID is required")
	}
	if price <= 0 {
		return nil, botErr.InvalidAmountf("sale price must be greater than 0, got %d", price)
	}

	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	char, err := s.repository.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if char.OwnerID != sellerID {
		return nil, botErr.Unauthorizedf("you do not own '%s'", char.Name).
			WithMeta("owner_id", char.OwnerID)
	}

	char.SalePrice = price
	if err := s.repository.Put(ctx, char); err != nil {
		return nil, err
	}
	return char.Clone(), nil
}

// Buy purchases a listed character
func (s *service) Buy(ctx context.Context, name, buyerID string) (*PurchaseResult, error) {
	if buyerID == "" {
		return nil, botErr.InvalidArgument("user ID is required")
	}

	unlock := s.charLocks.Lock(character.CanonicalName(name))
	defer unlock()

	char, err := s.repository.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if !char.IsForSale() {
		return nil, botErr.InvalidArgumentf("'%s' is not for sale", char.Name)
	}
	if char.OwnerID == buyerID {
		return nil, botErr.InvalidTransferf("you already own '%s'", char.Name)
	}

	sellerID := char.OwnerID
	price := char.SalePrice

	// Gold first: the transfer checks funds and moves both balances as
	// one persisted unit
	if err := s.economy.Transfer(ctx, buyerID, sellerID, price); err != nil {
		return nil, err
	}

	char.OwnerID = buyerID
	char.SalePrice = 0

	if err := s.repository.Put(ctx, char); err != nil {
		// Ownership did not change; give the buyer their gold back so
		// the purchase has no partial effect
		if refundErr := s.economy.Transfer(ctx, sellerID, buyerID, price); refundErr != nil {
			log.Printf("Failed to refund %d gold to %s after aborted purchase of '%s': %v",
				price, buyerID, char.Name, refundErr)
		}
		return nil, err
	}

	return &PurchaseResult{
		Character: char.Clone(),
		SellerID:  sellerID,
		Price:     price,
	}, nil
}

// RandomClaimable picks a uniformly random unclaimed, alive character
func (s *service) RandomClaimable(ctx context.Context) (*character.Character, error) {
	all, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var claimable []*character.Character
	for _, char := range all {
		if char.IsClaimable() {
			claimable = append(claimable, char)
		}
	}
	if len(claimable) == 0 {
		return nil, botErr.NotFound("no unclaimed alive characters are available")
	}

	// Sorted before the draw so the pick index is deterministic for a
	// given roller
	sortByName(claimable)

	idx, err := s.roller.Pick(len(claimable))
	if err != nil {
		return nil, err
	}
	return claimable[idx], nil
}

func sortByName(chars []*character.Character) {
	sort.Slice(chars, func(i, j int) bool {
		return character.CanonicalName(chars[i].Name) < character.CanonicalName(chars[j].Name)
	})
}
