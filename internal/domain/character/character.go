package character

import (
	"strings"
)

// Status tracks whether a character is alive or deceased
type Status string

const (
	StatusAlive    Status = "Alive"
	StatusDeceased Status = "Deceased"
)

// Character is a collectible entity. Names are unique across the store
// under case-insensitive comparison; the casing used at creation is kept
// for display.
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SideNote    string `json:"side_note"`

	// Images are URLs or local references, in display order
	Images []string `json:"images"`

	Status Status `json:"status"`

	// CauseOfDeath is set only while Status is Deceased. Revival leaves
	// it in place as a record of the last death.
	CauseOfDeath string `json:"cause_of_death,omitempty"`

	// OwnerID is empty while the character is unclaimed
	OwnerID string `json:"owner,omitempty"`

	// SalePrice is non-zero only while the character is listed for sale,
	// which requires an owner
	SalePrice int64 `json:"sale_price,omitempty"`
}

// CanonicalName folds a character name for case-insensitive comparison.
// Only comparisons use the folded form; stored names keep their casing.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsAlive reports whether the character is alive
func (c *Character) IsAlive() bool {
	return c.Status == StatusAlive
}

// IsClaimed reports whether the character has an owner
func (c *Character) IsClaimed() bool {
	return c.OwnerID != ""
}

// IsClaimable reports whether the character can be claimed right now
func (c *Character) IsClaimable() bool {
	return !c.IsClaimed() && c.IsAlive()
}

// IsForSale reports whether the character is currently listed
func (c *Character) IsForSale() bool {
	return c.SalePrice > 0
}

// Clone returns a deep copy so stored entities cannot be mutated
// through returned pointers
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Images = append([]string(nil), c.Images...)
	return &clone
}
