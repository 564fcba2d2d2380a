package guild

import "time"

// HuntingGround configures periodic character spawns for a guild
type HuntingGround struct {
	ChannelID string `json:"channel_id"`

	// Interval is the spawn interval in seconds
	Interval int64 `json:"interval"`

	// LastSpawn is persisted immediately after every spawn attempt so a
	// restart never replays a spawn that already happened
	LastSpawn time.Time `json:"last_spawn"`
}

// IntervalDuration returns the spawn interval as a duration
func (h *HuntingGround) IntervalDuration() time.Duration {
	return time.Duration(h.Interval) * time.Second
}

// Due reports whether a spawn is due at the given time
func (h *HuntingGround) Due(now time.Time) bool {
	return now.Sub(h.LastSpawn) >= h.IntervalDuration()
}

// Settings holds the per-guild channel configuration
type Settings struct {
	GuildID string `json:"guild_id"`

	// GraveyardChannelID displays deceased characters, empty when unset
	GraveyardChannelID string `json:"graveyard_channel,omitempty"`

	// CharacterListChannelID displays the full roster, empty when unset
	CharacterListChannelID string `json:"characterlist_channel,omitempty"`

	HuntingGround *HuntingGround `json:"hunting_ground,omitempty"`
}

// Clone returns a deep copy of the settings
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	clone := *s
	if s.HuntingGround != nil {
		hg := *s.HuntingGround
		clone.HuntingGround = &hg
	}
	return &clone
}
