package protocol

import "fmt"

// Layout says how a payload is split into fields.
type Layout int

const (
	// LayoutFields splits on SEP2, or collects SEP tokens when the payload
	// carries more than one.
	LayoutFields Layout = iota
	// LayoutMulti always splits on SEP; each field may hold SEP2-joined
	// sub-fields parsed by the handler.
	LayoutMulti
	// LayoutText splits the first TextAt fields on SEP2 and keeps the
	// remainder verbatim as one free-text field.
	LayoutText
)

type typeInfo struct {
	name   string
	layout Layout
	textAt int
}

var registry = map[MsgType]typeInfo{
	AuthRequest:          {name: "AUTHREQUEST"},
	NullMessage:          {name: "NULLMESSAGE"},
	NewChannel:           {name: "NEWCHANNEL"},
	Members:              {name: "MEMBERS"},
	Channels:             {name: "CHANNELS"},
	Join:                 {name: "JOIN"},
	TextMsg:              {name: "TEXTMSG", layout: LayoutText, textAt: 2},
	Leave:                {name: "LEAVE"},
	DeleteChannel:        {name: "DELETECHANNEL"},
	LeaveAll:             {name: "LEAVEALL"},
	PutPiece:             {name: "PUTPIECE"},
	GameTextMsg:          {name: "GAMETEXTMSG", layout: LayoutText, textAt: 2},
	LeaveGame:            {name: "LEAVEGAME"},
	SitDown:              {name: "SITDOWN"},
	JoinGame:             {name: "JOINGAME"},
	BoardLayout:          {name: "BOARDLAYOUT"},
	DeleteGame:           {name: "DELETEGAME"},
	NewGame:              {name: "NEWGAME"},
	GameMembers:          {name: "GAMEMEMBERS"},
	StartGame:            {name: "STARTGAME"},
	Games:                {name: "GAMES"},
	JoinAuth:             {name: "JOINAUTH"},
	JoinGameAuth:         {name: "JOINGAMEAUTH"},
	ImARobot:             {name: "IMAROBOT"},
	RobotJoinGameRequest: {name: "ROBOTJOINGAMEREQUEST"},
	PlayerElement:        {name: "PLAYERELEMENT"},
	GameState:            {name: "GAMESTATE"},
	Turn:                 {name: "TURN"},
	SetupDone:            {name: "SETUPDONE"},
	DiceResult:           {name: "DICERESULT"},
	DiscardRequest:       {name: "DISCARDREQUEST"},
	RollDiceRequest:      {name: "ROLLDICEREQUEST"},
	RollDice:             {name: "ROLLDICE"},
	EndTurn:              {name: "ENDTURN"},
	Discard:              {name: "DISCARD"},
	MoveRobber:           {name: "MOVEROBBER"},
	ChoosePlayer:         {name: "CHOOSEPLAYER"},
	ChoosePlayerRequest:  {name: "CHOOSEPLAYERREQUEST"},
	RejectOffer:          {name: "REJECTOFFER"},
	ClearOffer:           {name: "CLEAROFFER"},
	AcceptOffer:          {name: "ACCEPTOFFER"},
	BankTrade:            {name: "BANKTRADE"},
	MakeOffer:            {name: "MAKEOFFER"},
	ClearTradeMsg:        {name: "CLEARTRADEMSG"},
	BuildRequest:         {name: "BUILDREQUEST"},
	CancelBuildRequest:   {name: "CANCELBUILDREQUEST"},
	BuyCardRequest:       {name: "BUYCARDREQUEST"},
	DevCardAction:        {name: "DEVCARDACTION"},
	DevCardCount:         {name: "DEVCARDCOUNT"},
	SetPlayedDevCard:     {name: "SETPLAYEDDEVCARD"},
	PlayDevCardRequest:   {name: "PLAYDEVCARDREQUEST"},
	DiscoveryPick:        {name: "DISCOVERYPICK"},
	MonopolyPick:         {name: "MONOPOLYPICK"},
	FirstPlayer:          {name: "FIRSTPLAYER"},
	SetTurn:              {name: "SETTURN"},
	RobotDismiss:         {name: "ROBOTDISMISS"},
	PotentialSettlements: {name: "POTENTIALSETTLEMENTS"},
	ChangeFace:           {name: "CHANGEFACE"},
	RejectConnection:     {name: "REJECTCONNECTION", layout: LayoutText, textAt: 0},
	LastSettlement:       {name: "LASTSETTLEMENT"},
	GameStats:            {name: "GAMESTATS"},
	BCastTextMsg:         {name: "BCASTTEXTMSG", layout: LayoutText, textAt: 0},
	ResourceCount:        {name: "RESOURCECOUNT"},
	AdminPing:            {name: "ADMINPING"},
	AdminReset:           {name: "ADMINRESET"},
	LongestRoad:          {name: "LONGESTROAD"},
	LargestArmy:          {name: "LARGESTARMY"},
	SetSeatLock:          {name: "SETSEATLOCK"},
	StatusMessage:        {name: "STATUSMESSAGE", layout: LayoutText, textAt: 0},
	CreateAccount:        {name: "CREATEACCOUNT"},
	UpdateRobotParams:    {name: "UPDATEROBOTPARAMS"},
	RollDicePrompt:       {name: "ROLLDICEPROMPT"},
	ResetBoardRequest:    {name: "RESETBOARDREQUEST"},
	ResetBoardAuth:       {name: "RESETBOARDAUTH"},
	ResetBoardVoteReq:    {name: "RESETBOARDVOTEREQUEST"},
	ResetBoardVote:       {name: "RESETBOARDVOTE"},
	ResetBoardReject:     {name: "RESETBOARDREJECT"},
	PlayerElements:       {name: "PLAYERELEMENTS", layout: LayoutMulti},
	TimingPing:           {name: "TIMINGPING"},
	GameServerText:       {name: "GAMESERVERTEXT", layout: LayoutText, textAt: 1},
	Version:              {name: "VERSION", layout: LayoutText, textAt: 2},
	ServerPing:           {name: "SERVERPING"},
}

// Known reports whether t is a registered message type.
func Known(t MsgType) bool {
	_, ok := registry[t]
	return ok
}

// LayoutOf returns the payload layout for t; unknown types use LayoutFields.
func LayoutOf(t MsgType) (Layout, int) {
	s := registry[t]
	return s.layout, s.textAt
}

func (t MsgType) String() string {
	if s, ok := registry[t]; ok {
		return s.name
	}
	return fmt.Sprintf("MSG(%d)", int(t))
}
