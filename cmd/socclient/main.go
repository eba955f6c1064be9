package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"socclient/internal/client"
	"socclient/internal/console"
	"socclient/internal/engine"
	"socclient/internal/netx"
	"socclient/pkg/types"
)

func main() {
	configPath := flag.String("config", "", "JSON config file (optional)")
	host := flag.String("host", "localhost", "server host")
	port := flag.Int("port", 8880, "server port")
	transport := flag.String("transport", types.TransportTCP, "tcp or ws")
	url := flag.String("url", "", "websocket URL (overrides host/port)")
	nick := flag.String("nick", "", "nickname")
	password := flag.String("password", "", "password (optional)")
	players := flag.Int("players", 4, "seats per game (4 or 6)")
	flag.Parse()

	cfg := types.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = types.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.Port = *port
		case "transport":
			cfg.Transport = *transport
		case "url":
			cfg.URL = *url
		case "nick":
			cfg.Nickname = *nick
		case "password":
			cfg.Password = *password
		case "players":
			cfg.MaxPlayers = *players
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var conn netx.Conn
	if cfg.Transport == types.TransportWebSocket {
		conn = netx.NewWebSocket(cfg.WebSocketURL())
	} else {
		conn = netx.NewTCP(cfg.Addr())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := log.New(os.Stderr, cfg.LogPrefix, log.LstdFlags)
	out := console.New(os.Stdout)
	cl := client.New(conn, cfg, out, client.WithLogger(logger))
	out.Bind(cl)

	go func() {
		if err := cl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Printf("session ended: %v", err)
		}
	}()

	fmt.Printf("%s connecting as %s\n", cl.Session(), cl.Nickname())
	fmt.Println("type 'help' for commands")
	repl(cl)
	cl.Close()
}

func repl(cl *client.Client) {
	s := bufio.NewScanner(os.Stdin)
	prompt := func() { fmt.Print("> ") }
	prompt()
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			prompt()
			continue
		}
		args := strings.Fields(line)
		cmd := strings.ToLower(args[0])
		if cmd == "quit" || cmd == "exit" {
			fmt.Println("bye")
			return
		}
		if err := run(cl, cmd, args[1:], line); err != nil {
			fmt.Println("error:", err)
		}
		prompt()
	}
}

var errUsage = errors.New("bad arguments; type 'help'")

func run(cl *client.Client, cmd string, args []string, line string) error {
	need := func(n int) error {
		if len(args) < n {
			return errUsage
		}
		return nil
	}
	switch cmd {
	case "help":
		printHelp()
	case "whoami":
		fmt.Println(cl.Nickname(), cl.Session())
	case "games":
		for _, g := range cl.Store().Lobby() {
			fmt.Printf("- %s scores=%v\n", g.Name, g.Scores)
		}
		fmt.Println("joined:", cl.Games())
	case "channels":
		fmt.Println("listed:", cl.Store().ChannelList())
		fmt.Println("joined:", cl.Channels())
	case "join":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestJoinGame(args[0])
	case "leave":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestLeaveGame(args[0])
	case "sit":
		if err := need(2); err != nil {
			return err
		}
		seat, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		return cl.RequestSit(args[0], seat)
	case "start":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestStart(args[0])
	case "roll":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestRoll(args[0])
	case "end":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestEndTurn(args[0])
	case "offer":
		// offer <game> <seat,seat> <give> <get>
		if err := need(4); err != nil {
			return err
		}
		to, err := parseSeats(args[1])
		if err != nil {
			return err
		}
		give, get, err := parsePair(args[2], args[3])
		if err != nil {
			return err
		}
		return cl.RequestOffer(args[0], give, get, to)
	case "counter":
		// counter <game> <seat> <give> <get>
		if err := need(4); err != nil {
			return err
		}
		from, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		give, get, err := parsePair(args[2], args[3])
		if err != nil {
			return err
		}
		t, ok := cl.Game(args[0])
		if !ok {
			return errors.Wrap(client.ErrNoSuchGame, args[0])
		}
		if err := t.OpenCounterDraft(from); err != nil {
			return err
		}
		if err := cl.RequestCounterOffer(args[0], give, get); err != nil {
			t.CancelCounterDraft()
			return err
		}
	case "accept":
		if err := need(2); err != nil {
			return err
		}
		from, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		return cl.RequestAcceptOffer(args[0], from)
	case "reject":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestRejectOffer(args[0])
	case "clear":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestClearOffer(args[0])
	case "bank":
		if err := need(3); err != nil {
			return err
		}
		give, get, err := parsePair(args[1], args[2])
		if err != nil {
			return err
		}
		return cl.RequestBankTrade(args[0], give, get)
	case "build", "cancel":
		if err := need(2); err != nil {
			return err
		}
		piece, err := parsePiece(args[1])
		if err != nil {
			return err
		}
		if cmd == "cancel" {
			return cl.RequestCancelBuild(args[0], piece)
		}
		return cl.RequestBuild(args[0], piece)
	case "put":
		if err := need(3); err != nil {
			return err
		}
		piece, err := parsePiece(args[1])
		if err != nil {
			return err
		}
		coord, err := strconv.ParseInt(args[2], 0, 32)
		if err != nil {
			return errUsage
		}
		return cl.RequestPutPiece(args[0], piece, int(coord))
	case "robber":
		if err := need(2); err != nil {
			return err
		}
		coord, err := strconv.ParseInt(args[1], 0, 32)
		if err != nil {
			return errUsage
		}
		return cl.RequestMoveRobber(args[0], int(coord))
	case "choose":
		if err := need(2); err != nil {
			return err
		}
		seat, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		return cl.RequestChoosePlayer(args[0], seat)
	case "buy":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestBuyDevCard(args[0])
	case "play":
		if err := need(2); err != nil {
			return err
		}
		card, err := engine.ParseDevCard(args[1])
		if err != nil {
			return err
		}
		return cl.RequestPlayDevCard(args[0], card)
	case "discard", "discovery":
		if err := need(2); err != nil {
			return err
		}
		rs, err := parseResources(args[1])
		if err != nil {
			return err
		}
		if cmd == "discard" {
			return cl.RequestDiscard(args[0], rs)
		}
		return cl.RequestDiscoveryPick(args[0], rs)
	case "monopoly":
		if err := need(2); err != nil {
			return err
		}
		r, err := engine.ParseResource(args[1])
		if err != nil {
			return err
		}
		return cl.RequestMonopolyPick(args[0], r)
	case "lock", "unlock":
		if err := need(2); err != nil {
			return err
		}
		seat, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		return cl.RequestSeatLock(args[0], seat, cmd == "lock")
	case "face":
		if err := need(2); err != nil {
			return err
		}
		face, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		return cl.RequestChangeFace(args[0], face)
	case "say":
		// say <game> <text...>
		if err := need(2); err != nil {
			return err
		}
		return cl.SendGameText(args[0], restAfter(line, 2))
	case "cjoin":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestJoinChannel(args[0])
	case "cleave":
		if err := need(1); err != nil {
			return err
		}
		return cl.RequestLeaveChannel(args[0])
	case "csay":
		if err := need(2); err != nil {
			return err
		}
		return cl.SendChannelText(args[0], restAfter(line, 2))
	case "seats":
		if err := need(1); err != nil {
			return err
		}
		t, ok := cl.Game(args[0])
		if !ok {
			return errors.Wrap(client.ErrNoSuchGame, args[0])
		}
		fmt.Printf("phase=%s current=%d you=%d\n", t.Phase(), t.Current(), t.LocalSeat())
		fmt.Println(console.SeatTable(t))
	case "dump":
		if err := need(1); err != nil {
			return err
		}
		t, ok := cl.Game(args[0])
		if !ok {
			return errors.Wrap(client.ErrNoSuchGame, args[0])
		}
		b, err := t.Snapshot().JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	default:
		fmt.Println("unknown command; type 'help'")
	}
	return nil
}

// restAfter returns line with its first n words removed, keeping the
// spacing of the remainder.
func restAfter(line string, n int) string {
	rest := line
	for i := 0; i < n; i++ {
		rest = strings.TrimLeft(rest, " \t")
		if k := strings.IndexAny(rest, " \t"); k >= 0 {
			rest = rest[k:]
		} else {
			return ""
		}
	}
	return strings.TrimLeft(rest, " \t")
}

func parseSeats(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(errUsage, "seat %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseResources reads "clay=1,wheat=2". A bare name counts as one.
func parseResources(s string) (engine.ResourceSet, error) {
	var rs engine.ResourceSet
	if s == "-" {
		return rs, nil
	}
	for _, f := range strings.Split(s, ",") {
		name, count, found := strings.Cut(f, "=")
		n := 1
		if found {
			var err error
			if n, err = strconv.Atoi(count); err != nil {
				return rs, errors.Wrapf(errUsage, "count %q", count)
			}
		}
		r, err := engine.ParseResource(name)
		if err != nil {
			return rs, err
		}
		rs.Gain(r, n)
	}
	return rs, nil
}

func parsePair(give, get string) (engine.ResourceSet, engine.ResourceSet, error) {
	g, err := parseResources(give)
	if err != nil {
		return g, engine.ResourceSet{}, err
	}
	w, err := parseResources(get)
	return g, w, err
}

func parsePiece(s string) (engine.PieceType, error) {
	for _, p := range []engine.PieceType{engine.PieceRoad, engine.PieceSettlement, engine.PieceCity} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, errors.Errorf("unknown piece %q", s)
}

func printHelp() {
	fmt.Println(`commands:
  whoami | games | channels
  join <game> | leave <game>
  sit <game> <seat> | start <game>
  roll <game> | end <game>
  offer <game> <seat,seat> <give> <get>     e.g. offer g1 1,2 clay=1 wheat
  counter <game> <seat> <give> <get>
  accept <game> <seat> | reject <game> | clear <game>
  bank <game> <give> <get>
  build|cancel <game> road|settlement|city
  put <game> <piece> <coord> | robber <game> <coord>
  choose <game> <seat> | buy <game> | play <game> <card>
  discard <game> <cards> | discovery <game> <cards> | monopoly <game> <resource>
  lock|unlock <game> <seat> | face <game> <n>
  say <game> <text>     (\ignore name, \unignore name)
  cjoin <ch> | cleave <ch> | csay <ch> <text>
  seats <game> | dump <game>
  quit`)
}
