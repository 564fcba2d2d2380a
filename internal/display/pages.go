package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Kekatrice/DiscordBotty/internal/domain/character"
)

// View tags distinguishing the tracked message sets in one channel
const (
	TagGraveyard = "graveyard"
	TagRoster    = "roster"
)

// BuildGraveyardPages renders the deceased characters, pageSize lines
// per page. An empty graveyard renders one placeholder page.
func BuildGraveyardPages(chars []*character.Character, pageSize int) []string {
	var lines []string
	for _, char := range sortedByName(chars) {
		if char.IsAlive() {
			continue
		}
		line := fmt.Sprintf("\U0001F480 **%s**", char.Name)
		if char.CauseOfDeath != "" {
			line += fmt.Sprintf(" — %s", char.CauseOfDeath)
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return []string{"The graveyard is empty. \U0001F331"}
	}
	return chunkLines(lines, pageSize)
}

// BuildRosterPages renders every character with a status marker,
// pageSize lines per page
func BuildRosterPages(chars []*character.Character, pageSize int) []string {
	var lines []string
	for _, char := range sortedByName(chars) {
		switch {
		case !char.IsAlive():
			lines = append(lines, fmt.Sprintf("\U0001F480 **%s**", char.Name))
		case char.IsClaimed():
			lines = append(lines, fmt.Sprintf("\U0001F512 **%s** — <@%s>", char.Name, char.OwnerID))
		default:
			lines = append(lines, fmt.Sprintf("\U0001F33F **%s**", char.Name))
		}
	}

	if len(lines) == 0 {
		return []string{"No characters have been uploaded yet."}
	}
	return chunkLines(lines, pageSize)
}

func sortedByName(chars []*character.Character) []*character.Character {
	out := append([]*character.Character(nil), chars...)
	sort.Slice(out, func(i, j int) bool {
		return character.CanonicalName(out[i].Name) < character.CanonicalName(out[j].Name)
	})
	return out
}

func chunkLines(lines []string, pageSize int) []string {
	if pageSize <= 0 {
		pageSize = 50
	}

	var pages []string
	for start := 0; start < len(lines); start += pageSize {
		end := start + pageSize
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, strings.Join(lines[start:end], "\n"))
	}
	return pages
}
