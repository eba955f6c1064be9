package protocol

import (
	"strconv"
	"strings"
)

// MsgType is the numeric message id that leads every line on the wire.
type MsgType int

const (
	AuthRequest          MsgType = 999
	NullMessage          MsgType = 1000
	NewChannel           MsgType = 1001
	Members              MsgType = 1002
	Channels             MsgType = 1003
	Join                 MsgType = 1004
	TextMsg              MsgType = 1005
	Leave                MsgType = 1006
	DeleteChannel        MsgType = 1007
	LeaveAll             MsgType = 1008
	PutPiece             MsgType = 1009
	GameTextMsg          MsgType = 1010
	LeaveGame            MsgType = 1011
	SitDown              MsgType = 1012
	JoinGame             MsgType = 1013
	BoardLayout          MsgType = 1014
	DeleteGame           MsgType = 1015
	NewGame              MsgType = 1016
	GameMembers          MsgType = 1017
	StartGame            MsgType = 1018
	Games                MsgType = 1019
	JoinAuth             MsgType = 1020
	JoinGameAuth         MsgType = 1021
	ImARobot             MsgType = 1022
	RobotJoinGameRequest MsgType = 1023
	PlayerElement        MsgType = 1024
	GameState            MsgType = 1025
	Turn                 MsgType = 1026
	SetupDone            MsgType = 1027
	DiceResult           MsgType = 1028
	DiscardRequest       MsgType = 1029
	RollDiceRequest      MsgType = 1030
	RollDice             MsgType = 1031
	EndTurn              MsgType = 1032
	Discard              MsgType = 1033
	MoveRobber           MsgType = 1034
	ChoosePlayer         MsgType = 1035
	ChoosePlayerRequest  MsgType = 1036
	RejectOffer          MsgType = 1037
	ClearOffer           MsgType = 1038
	AcceptOffer          MsgType = 1039
	BankTrade            MsgType = 1040
	MakeOffer            MsgType = 1041
	ClearTradeMsg        MsgType = 1042
	BuildRequest         MsgType = 1043
	CancelBuildRequest   MsgType = 1044
	BuyCardRequest       MsgType = 1045
	DevCardAction        MsgType = 1046
	DevCardCount         MsgType = 1047
	SetPlayedDevCard     MsgType = 1048
	PlayDevCardRequest   MsgType = 1049
	DiscoveryPick        MsgType = 1052
	MonopolyPick         MsgType = 1053
	FirstPlayer          MsgType = 1054
	SetTurn              MsgType = 1055
	RobotDismiss         MsgType = 1056
	PotentialSettlements MsgType = 1057
	ChangeFace           MsgType = 1058
	RejectConnection     MsgType = 1059
	LastSettlement       MsgType = 1060
	GameStats            MsgType = 1061
	BCastTextMsg         MsgType = 1062
	ResourceCount        MsgType = 1063
	AdminPing            MsgType = 1064
	AdminReset           MsgType = 1065
	LongestRoad          MsgType = 1066
	LargestArmy          MsgType = 1067
	SetSeatLock          MsgType = 1068
	StatusMessage        MsgType = 1069
	CreateAccount        MsgType = 1070
	UpdateRobotParams    MsgType = 1071
	RollDicePrompt       MsgType = 1072
	ResetBoardRequest    MsgType = 1073
	ResetBoardAuth       MsgType = 1074
	ResetBoardVoteReq    MsgType = 1075
	ResetBoardVote       MsgType = 1076
	ResetBoardReject     MsgType = 1077
	PlayerElements       MsgType = 1086
	TimingPing           MsgType = 1088
	GameServerText       MsgType = 1091
	Version              MsgType = 9998
	ServerPing           MsgType = 9999
)

// Message is a decoded protocol line. It is immutable: accessors hand
// out copies, and there are no setters.
type Message struct {
	typ    MsgType
	fields []string
}

func NewMessage(t MsgType, fields ...string) Message {
	return Message{typ: t, fields: append([]string(nil), fields...)}
}

func (m Message) Type() MsgType { return m.typ }
func (m Message) Len() int      { return len(m.fields) }

// Fields returns a copy of the ordered field list.
func (m Message) Fields() []string { return append([]string(nil), m.fields...) }

// Known reports whether the type is in the registry.
func (m Message) Known() bool { return Known(m.typ) }

func (m Message) String() string {
	return m.typ.String() + "[" + strings.Join(m.fields, ",") + "]"
}

// Field returns field i, or a FieldError if the message is too short.
func (m Message) Field(i int) (string, error) {
	if i < 0 || i >= len(m.fields) {
		return "", &FieldError{Type: m.typ, Index: i, Reason: "missing"}
	}
	return m.fields[i], nil
}

func (m Message) Int(i int) (int, error) {
	s, err := m.Field(i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FieldError{Type: m.typ, Index: i, Reason: "not an integer: " + s}
	}
	return n, nil
}

// Bool accepts "true"/"false" and "t"/"f", the forms the server emits.
func (m Message) Bool(i int) (bool, error) {
	s, err := m.Field(i)
	if err != nil {
		return false, err
	}
	switch s {
	case "true", "t", "1":
		return true, nil
	case "false", "f", "0":
		return false, nil
	}
	return false, &FieldError{Type: m.typ, Index: i, Reason: "not a boolean: " + s}
}

// Ints parses n consecutive integer fields starting at i.
func (m Message) Ints(i, n int) ([]int, error) {
	out := make([]int, n)
	for k := 0; k < n; k++ {
		v, err := m.Int(i + k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// Bools parses n consecutive boolean fields starting at i.
func (m Message) Bools(i, n int) ([]bool, error) {
	out := make([]bool, n)
	for k := 0; k < n; k++ {
		v, err := m.Bool(i + k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// Rest returns fields i.. as a fresh slice; empty if i is past the end.
func (m Message) Rest(i int) []string {
	if i >= len(m.fields) {
		return nil
	}
	return append([]string(nil), m.fields[i:]...)
}
