package client

import (
	"sort"
	"sync"

	"socclient/internal/table"
)

// Channel is a chat room we have joined.
type Channel struct {
	Name    string
	Members []string
	Defunct bool
}

// GameListing is one entry of the lobby's game list.
type GameListing struct {
	Name   string
	Scores []int
	Robots []bool
}

// Store is the replica state store: every game and channel we hold, plus
// the lobby lists. Only message handlers write to it.
type Store struct {
	self       string
	maxPlayers int
	c          *Client

	mu       sync.RWMutex
	games    map[string]*table.Table
	channels map[string]*Channel
	lobby    map[string]GameListing
	chanList map[string]struct{}
}

func newStore(c *Client) *Store {
	return &Store{
		self:       c.cfg.Nickname,
		maxPlayers: c.cfg.MaxPlayers,
		c:          c,
		games:      make(map[string]*table.Table),
		channels:   make(map[string]*Channel),
		lobby:      make(map[string]GameListing),
		chanList:   make(map[string]struct{}),
	}
}

// Game returns the replica for name.
func (s *Store) Game(name string) (*table.Table, bool) {
	s.mu.RLock()
	t, ok := s.games[name]
	s.mu.RUnlock()
	return t, ok
}

// Games returns the names of joined games, sorted.
func (s *Store) Games() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.games)
}

// CreateGame makes the replica for name. created is false if it existed.
func (s *Store) CreateGame(name string) (t *table.Table, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.games[name]; ok {
		return t, false
	}
	t = table.New(name, s.maxPlayers, s.self, s.c.logger)
	s.games[name] = t
	return t, true
}

// RemoveGame drops the replica; removed is false if we did not hold it.
func (s *Store) RemoveGame(name string) (removed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.games[name]
	if ok {
		t.MarkDefunct()
		delete(s.games, name)
	}
	return ok
}

// Channel returns a copy of the joined channel name.
func (s *Store) Channel(name string) (Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.channels[name]
	if !ok {
		return Channel{}, false
	}
	out := *ch
	out.Members = append([]string(nil), ch.Members...)
	return out, true
}

// Channels returns the names of joined channels, sorted.
func (s *Store) Channels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.channels)
}

func (s *Store) CreateChannel(name string) (created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.channels[name]; ok {
		return false
	}
	s.channels[name] = &Channel{Name: name}
	return true
}

func (s *Store) RemoveChannel(name string) (removed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.channels[name]
	delete(s.channels, name)
	return ok
}

// updateChannel runs fn on a joined channel under the write lock.
func (s *Store) updateChannel(name string, fn func(ch *Channel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.channels[name]
	if ok {
		fn(ch)
	}
	return ok
}

// Lobby returns the server's game list, sorted by name.
func (s *Store) Lobby() []GameListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]GameListing, 0, len(s.lobby))
	for _, name := range sortedKeys(s.lobby) {
		out = append(out, s.lobby[name])
	}
	return out
}

// ChannelList returns the server's channel list, sorted.
func (s *Store) ChannelList() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.chanList)
}

func (s *Store) listGame(name string) {
	s.mu.Lock()
	if _, ok := s.lobby[name]; !ok {
		s.lobby[name] = GameListing{Name: name}
	}
	s.mu.Unlock()
}

func (s *Store) unlistGame(name string) {
	s.mu.Lock()
	delete(s.lobby, name)
	s.mu.Unlock()
}

func (s *Store) setGameStats(name string, scores []int, robots []bool) {
	s.mu.Lock()
	s.lobby[name] = GameListing{Name: name, Scores: scores, Robots: robots}
	s.mu.Unlock()
}

func (s *Store) listChannel(name string) {
	s.mu.Lock()
	s.chanList[name] = struct{}{}
	s.mu.Unlock()
}

func (s *Store) unlistChannel(name string) {
	s.mu.Lock()
	delete(s.chanList, name)
	s.mu.Unlock()
}

// markDefunct freezes everything after the session died.
func (s *Store) markDefunct() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.games {
		t.MarkDefunct()
	}
	for _, ch := range s.channels {
		ch.Defunct = true
	}
}

// clear forgets every game and channel, returning what was dropped.
func (s *Store) clear() (games, channels []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	games, channels = sortedKeys(s.games), sortedKeys(s.channels)
	for _, t := range s.games {
		t.MarkDefunct()
	}
	s.games = make(map[string]*table.Table)
	s.channels = make(map[string]*Channel)
	return games, channels
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
