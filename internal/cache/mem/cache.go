package mem

import (
	"sort"
	"sync"

	"github.com/goserg/ffserver/internal/domain"
	"github.com/goserg/ffserver/internal/normalize"
)

type Cache struct {
	mu      sync.RWMutex
	valid   bool
	players map[string]domain.Player
	byID    map[int]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
		byID:    make(map[int]domain.Player),
	}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player)
	c.byID = make(map[int]domain.Player)
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = players[i]
		c.byID[players[i].ID] = players[i]
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.valid
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name = normalize.Name(name)
	player, ok := c.players[name]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}

func (c *Cache) GetPlayer(id int) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	player, ok := c.byID[id]
	return player, ok
}

// Top returns up to n players with the most fantasy points. Players
// without points go last.
func (c *Cache) Top(n int) []domain.Player {
	c.mu.RLock()
	players := make([]domain.Player, 0, len(c.byID))
	for _, player := range c.byID {
		players = append(players, player)
	}
	c.mu.RUnlock()

	sort.SliceStable(players, func(i, j int) bool {
		pi, pj := players[i].FantasyPoints, players[j].FantasyPoints
		switch {
		case pi == nil && pj == nil:
			return players[i].ID < players[j].ID
		case pi == nil:
			return false
		case pj == nil:
			return true
		case *pi == *pj:
			return players[i].ID < players[j].ID
		}
		return *pi > *pj
	})
	if n >= 0 && len(players) > n {
		players = players[:n]
	}
	return players
}
