package roster

import (
	"strings"

	"baskettracker/internal/models"

	"github.com/google/uuid"
)

const (
	defaultNumber = "0"
	// below this score a fuzzy name lookup is treated as a miss
	minNameSimilarity = 0.75
)

// Roster is the ordered player list of one match. It is not safe for
// concurrent use; the session controller serialises access.
type Roster struct {
	players []models.Player
	newID   func() string
}

func New() *Roster {
	return &Roster{newID: newPlayerID}
}

func newPlayerID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (r *Roster) Add(name, number string) (models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Player{}, models.ErrEmptyName
	}
	number = strings.TrimSpace(number)
	if number == "" {
		number = defaultNumber
	}

	p := models.Player{
		ID:     r.newID(),
		Name:   name,
		Number: number,
	}
	r.players = append(r.players, p)
	return p.Clone(), nil
}

func (r *Roster) Remove(id string) {
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return
		}
	}
}

func (r *Roster) ResetStats() {
	for i := range r.players {
		r.players[i].Stats = models.StatRecord{}
		r.players[i].LastUpdated = nil
	}
}

func (r *Roster) Clear() {
	r.players = nil
}

// Replace swaps the whole roster, e.g. after an import.
func (r *Roster) Replace(players []models.Player) {
	r.players = clonePlayers(players)
}

func (r *Roster) Get(id string) (models.Player, bool) {
	if i := r.index(id); i >= 0 {
		return r.players[i].Clone(), true
	}
	return models.Player{}, false
}

// Update overwrites the stored copy of the player with the same id.
func (r *Roster) Update(p models.Player) bool {
	i := r.index(p.ID)
	if i < 0 {
		return false
	}
	r.players[i] = p.Clone()
	return true
}

func (r *Roster) Players() []models.Player {
	return clonePlayers(r.players)
}

func (r *Roster) Len() int {
	return len(r.players)
}

func (r *Roster) TotalPoints() int {
	total := 0
	for _, p := range r.players {
		total += p.Stats.Points
	}
	return total
}

// Find resolves a player reference typed by a user: id, jersey number, exact
// name, then the closest name above the similarity threshold.
func (r *Roster) Find(query string) (models.Player, bool) {
	query = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(query), "#"))
	if query == "" {
		return models.Player{}, false
	}

	for _, p := range r.players {
		if p.ID == query || p.Number == query {
			return p.Clone(), true
		}
	}
	for _, p := range r.players {
		if strings.EqualFold(NormalizeName(p.Name), NormalizeName(query)) {
			return p.Clone(), true
		}
	}

	best, bestScore := -1, 0.0
	for i, p := range r.players {
		if score := SimilarityScore(p.Name, query); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < minNameSimilarity {
		return models.Player{}, false
	}
	return r.players[best].Clone(), true
}

func (r *Roster) index(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range r.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func clonePlayers(in []models.Player) []models.Player {
	out := make([]models.Player, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
