package client

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"socclient/internal/engine"
	"socclient/internal/netx"
	"socclient/internal/protocol"
	"socclient/internal/table"
	"socclient/pkg/types"
)

// Version we announce to the server.
const (
	ClientVersion        = 1100
	ClientVersionDisplay = "1.1.00"
	ClientBuild          = "socclient"
)

var (
	ErrDestroyed     = errors.New("session destroyed")
	ErrNoSuchGame    = errors.New("no such game")
	ErrNoSuchChannel = errors.New("no such channel")
	ErrRejected      = errors.New("connection rejected")
	ErrWrongPhase    = errors.New("not allowed in this phase")
	ErrBadChoice     = errors.New("bad choice")

	errPayloadSize = errors.New("unexpected field count")
)

// Client is one session with a game server. A single reader goroutine
// (Run) decodes and dispatches inbound lines; any goroutine may call the
// Request* methods.
type Client struct {
	cfg       types.Config
	nick      string
	session   protocol.SessionID
	conn      netx.Conn
	presenter Presenter
	logger    *log.Logger

	router *Router
	store  *Store
	ignore IgnoreList

	wmu       sync.Mutex // guards the outbound stream
	dying     bool
	destroyed bool
}

type Option func(*Client)

// WithLogger routes the client's log lines to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(conn netx.Conn, cfg types.Config, p Presenter, opts ...Option) *Client {
	if p == nil {
		p = NopPresenter{}
	}
	c := &Client{
		cfg:       cfg,
		nick:      cfg.Nickname,
		session:   protocol.NewSessionID(),
		conn:      conn,
		presenter: p,
		logger:    log.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	c.router = NewRouter(c.logger)
	c.store = newStore(c)
	c.registerHandlers()
	return c
}

func (c *Client) Session() protocol.SessionID { return c.session }
func (c *Client) Nickname() string            { return c.nick }
func (c *Client) Store() *Store               { return c.store }
func (c *Client) Ignore() *IgnoreList         { return &c.ignore }

// Game returns the replica for a joined game.
func (c *Client) Game(name string) (*table.Table, bool) { return c.store.Game(name) }
func (c *Client) Games() []string                       { return c.store.Games() }
func (c *Client) Channel(name string) (Channel, bool)   { return c.store.Channel(name) }
func (c *Client) Channels() []string                    { return c.store.Channels() }

// Run starts the transport, announces our version and dispatches inbound
// lines in order until the stream breaks or ctx ends. A broken stream
// returns the transport's failure after OnDestroyed has fired.
func (c *Client) Run(ctx context.Context) error {
	if err := c.conn.Start(ctx); err != nil {
		failure := &netx.TransportFailure{Op: "start", Err: err}
		c.destroy(failure, false)
		return failure
	}
	c.logger.Printf("session %s: connected as %s", c.session, c.nick)
	if err := c.send(protocol.Version, strconv.Itoa(ClientVersion), ClientVersionDisplay, ClientBuild); err != nil {
		c.logger.Printf("session %s: version announce: %v", c.session, err)
	}

	inbox := c.conn.Inbox()
	for {
		select {
		case <-ctx.Done():
			c.Close()
			return ctx.Err()
		case line, ok := <-inbox:
			if !ok {
				err := c.conn.Err()
				if err == nil {
					err = &netx.TransportFailure{Op: "read", Err: netx.ErrClosed}
				}
				c.destroy(err, false)
				return err
			}
			c.Dispatch(line)
		}
	}
}

// Dispatch decodes and applies one inbound line. After the session is
// destroyed it does nothing.
func (c *Client) Dispatch(line string) {
	if c.isDestroyed() {
		return
	}
	m, err := protocol.Decode(line)
	if err != nil {
		c.logger.Printf("session %s: %v", c.session, err)
		return
	}
	c.router.Dispatch(m)
}

// Close leaves everything, closes the transport and fires OnDestroyed.
func (c *Client) Close() {
	c.destroy(ErrDestroyed, true)
}

func (c *Client) isDestroyed() bool {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.destroyed
}

// destroy runs once: every replica goes defunct, dispatch stops, and the
// presenter hears a single OnDestroyed. The presenter may call back into
// the client from OnDestroyed.
func (c *Client) destroy(reason error, leave bool) {
	c.wmu.Lock()
	if c.dying {
		c.wmu.Unlock()
		return
	}
	c.dying = true
	if leave {
		if line, err := protocol.Encode(protocol.LeaveAll); err == nil {
			if err := c.conn.Send(line); err != nil {
				c.logger.Printf("session %s: leaveall: %v", c.session, err)
			}
		}
	}
	c.destroyed = true
	c.wmu.Unlock()

	c.store.markDefunct()
	if err := c.conn.Close(); err != nil {
		c.logger.Printf("session %s: close: %v", c.session, err)
	}
	c.logger.Printf("session %s: destroyed: %v", c.session, reason)
	c.presenter.OnDestroyed(reason)
}

// put writes one encoded line. Callers on any goroutine are serialized.
func (c *Client) put(line string) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if c.destroyed {
		return ErrDestroyed
	}
	return c.conn.Send(line)
}

// send encodes and transmits. A field that fails validation returns a
// protocol.ValidationError and nothing is written.
func (c *Client) send(t protocol.MsgType, fields ...string) error {
	line, err := protocol.Encode(t, fields...)
	if err != nil {
		return err
	}
	return c.put(line)
}

// table finds a joined game or fails with ErrNoSuchGame.
func (c *Client) table(game string) (*table.Table, error) {
	t, ok := c.store.Game(game)
	if !ok {
		return nil, errors.Wrap(ErrNoSuchGame, game)
	}
	return t, nil
}

// absorb logs ledger and counter warnings and lets the handler carry on,
// since the state was clamped and is still worth showing. Anything else,
// including a reference to a missing seat, is returned.
func (c *Client) absorb(game string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, engine.ErrOutOfSync) && !errors.Is(err, engine.ErrNoSuchSeat) {
		c.logger.Printf("game %s: %v", game, err)
		return nil
	}
	return err
}
