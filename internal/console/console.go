package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"socclient/internal/client"
	"socclient/internal/engine"
	"socclient/internal/table"
)

// Console is a line-oriented Presenter for terminals. Seat tables are
// aligned by display width so wide nicknames line up.
type Console struct {
	client.NopPresenter

	mu     sync.Mutex
	out    io.Writer
	lookup func(game string) (*table.Table, bool)
}

func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Bind lets the console read replicas when rendering seat tables.
func (c *Console) Bind(cl *client.Client) {
	c.mu.Lock()
	c.lookup = cl.Game
	c.mu.Unlock()
}

func (c *Console) printf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) table(game string) (*table.Table, bool) {
	c.mu.Lock()
	lookup := c.lookup
	c.mu.Unlock()
	if lookup == nil {
		return nil, false
	}
	return lookup(game)
}

func (c *Console) OnGameCreated(game string) { c.printf("[%s] joined", game) }
func (c *Console) OnGameRemoved(game string) { c.printf("[%s] left", game) }

func (c *Console) OnPlayerJoined(game string, seat int, name string) {
	c.printf("[%s] %s is here", game, name)
}

func (c *Console) OnPlayerLeft(game string, seat int, name string) {
	c.printf("[%s] %s left", game, name)
}

func (c *Console) OnPlayerSat(game string, seat int) {
	t, ok := c.table(game)
	if !ok {
		return
	}
	if p, err := t.Player(seat); err == nil {
		c.printf("[%s] %s sat at seat %d", game, p.Name, seat)
	}
}

func (c *Console) OnPhaseChanged(game string, phase engine.Phase) {
	c.printf("[%s] phase %s", game, phase)
}

func (c *Console) OnTurn(game string, seat int) {
	t, ok := c.table(game)
	if !ok {
		c.printf("[%s] turn: seat %d", game, seat)
		return
	}
	c.printf("[%s] turn: seat %d\n%s", game, seat, SeatTable(t))
}

func (c *Console) OnRollPrompt(game string, seat int) {
	if t, ok := c.table(game); ok && t.IsLocal(seat) {
		c.printf("[%s] your roll: type 'roll %s'", game, game)
	}
}

func (c *Console) OnDiceResult(game string, total int) {
	c.printf("[%s] rolled %d", game, total)
}

func (c *Console) OnOfferChanged(game string, seat int) {
	t, ok := c.table(game)
	if !ok || seat < 0 {
		return
	}
	p, err := t.Player(seat)
	if err != nil {
		return
	}
	if p.OfferState == engine.Offered && p.Offer != nil {
		c.printf("[%s] %s offers %s for %s to seats %v", game, p.Name, p.Offer.Give, p.Offer.Get, p.Offer.Recipients())
		return
	}
	c.printf("[%s] %s: offer %s", game, p.Name, p.OfferState)
}

func (c *Console) OnChooserRequested(game string, req client.ChooserRequest) {
	switch req.Kind {
	case engine.PromptDiscard:
		c.printf("[%s] discard %d cards: 'discard %s clay ore sheep wheat wood'", game, req.Count, game)
	case engine.PromptChoosePlayer:
		c.printf("[%s] choose a seat to rob from %v: 'choose %s <seat>'", game, req.Choices, game)
	case engine.PromptDiscovery:
		c.printf("[%s] pick two resources: 'discovery %s clay ore sheep wheat wood'", game, game)
	case engine.PromptMonopoly:
		c.printf("[%s] pick a resource: 'monopoly %s <resource>'", game, game)
	}
}

func (c *Console) OnGameTextReceived(game, speaker, text string) {
	c.printf("[%s] %s: %s", game, speaker, text)
}

func (c *Console) OnChannelJoined(channel string) { c.printf("#%s joined", channel) }
func (c *Console) OnChannelLeft(channel string)   { c.printf("#%s left", channel) }

func (c *Console) OnChannelTextReceived(channel, speaker, text string) {
	c.printf("#%s %s: %s", channel, speaker, text)
}

func (c *Console) OnStatus(text string) { c.printf("* %s", text) }

func (c *Console) OnDestroyed(reason error) { c.printf("disconnected: %v", reason) }

// SeatTable renders one row per seat. Every row has the same display
// width.
func SeatTable(t *table.Table) string {
	head := []string{"seat", "name", "vp", "cards", "dev", "kn", "flags"}
	rows := [][]string{head}
	for i := 0; i < t.Seats(); i++ {
		p, err := t.Player(i)
		if err != nil {
			continue
		}
		name := p.Name
		if name == "" {
			name = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			name,
			strconv.Itoa(p.PublicVP()),
			strconv.Itoa(p.Resources.Total()),
			strconv.Itoa(p.DevCards.Total()),
			strconv.Itoa(p.Knights),
			strings.Join(seatFlags(t, p), ","),
		})
	}

	widths := make([]int, len(head))
	for _, r := range rows {
		for k, cell := range r {
			if w := runewidth.StringWidth(cell); w > widths[k] {
				widths[k] = w
			}
		}
	}
	var b strings.Builder
	for n, r := range rows {
		if n > 0 {
			b.WriteByte('\n')
		}
		for k, cell := range r {
			if k > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(runewidth.FillRight(cell, widths[k]))
		}
	}
	return b.String()
}

func seatFlags(t *table.Table, p engine.Player) []string {
	var f []string
	if t.Current() == p.Seat {
		f = append(f, "turn")
	}
	if t.IsLocal(p.Seat) {
		f = append(f, "you")
	}
	if p.Robot {
		f = append(f, "robot")
	}
	if p.SeatLocked {
		f = append(f, "locked")
	}
	if p.LongestRoad {
		f = append(f, "road")
	}
	if p.LargestArmy {
		f = append(f, "army")
	}
	return f
}
