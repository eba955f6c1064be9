package protocol

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		typ    MsgType
		fields []string
		line   string
	}{
		{name: "no fields", typ: LeaveAll, line: "1008"},
		{name: "single field", typ: JoinGameAuth, fields: []string{"g1"}, line: "1021|g1"},
		{name: "element", typ: PlayerElement, fields: []string{"g1", "2", "102", "6", "1"}, line: "1024|g1,2,102,6,1"},
		{name: "text with commas", typ: GameTextMsg, fields: []string{"g1", "Server", "a, b, c"}, line: "1010|g1,Server,a, b, c"},
		{name: "text only", typ: StatusMessage, fields: []string{"Welcome, friend"}, line: "1069|Welcome, friend"},
		{name: "multi", typ: PlayerElements, fields: []string{"g1", "0", "100", "1,2", "3,0"}, line: "1086|g1|0|100|1,2|3,0"},
		{name: "unregistered type", typ: 9001, fields: []string{"x", "y"}, line: "9001|x,y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := Encode(tt.typ, tt.fields...)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if line != tt.line {
				t.Fatalf("line = %q, want %q", line, tt.line)
			}
			msg, err := Decode(line)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if msg.Type() != tt.typ {
				t.Errorf("type = %d, want %d", msg.Type(), tt.typ)
			}
			if msg.Len() != len(tt.fields) || (len(tt.fields) > 0 && !reflect.DeepEqual(msg.Fields(), tt.fields)) {
				t.Errorf("fields = %q, want %q", msg.Fields(), tt.fields)
			}
		})
	}
}

func TestEncodeRejectsUnsafeFields(t *testing.T) {
	tests := []struct {
		name   string
		typ    MsgType
		fields []string
	}{
		{name: "empty", typ: JoinGame, fields: []string{"bob", "", "host", "g"}},
		{name: "sep", typ: JoinGameAuth, fields: []string{"a|b"}},
		{name: "sep2", typ: JoinGameAuth, fields: []string{"a,b"}},
		{name: "newline", typ: JoinGameAuth, fields: []string{"a\nb"}},
		{name: "control", typ: JoinGameAuth, fields: []string{"a\x16"}},
		{name: "line separator", typ: JoinGameAuth, fields: []string{"a\u2028b"}},
		{name: "sep inside text", typ: GameTextMsg, fields: []string{"g", "bob", "a|b"}},
		{name: "text arity", typ: GameTextMsg, fields: []string{"g", "hi"}},
		{name: "sep inside multi", typ: PlayerElements, fields: []string{"g", "0|1"}},
		{name: "bad type", typ: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.typ, tt.fields...)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if !errors.Is(err, ErrUnsafeField) {
				t.Errorf("err does not match ErrUnsafeField")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("multiple sep tokens collect into fields", func(t *testing.T) {
		msg, err := Decode("1061|g|3,4|x")
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"g", "3,4", "x"}
		if !reflect.DeepEqual(msg.Fields(), want) {
			t.Errorf("fields = %q, want %q", msg.Fields(), want)
		}
		if got := SplitSub(msg.Fields()[1]); !reflect.DeepEqual(got, []string{"3", "4"}) {
			t.Errorf("sub = %q", got)
		}
	})

	t.Run("trailing newline", func(t *testing.T) {
		msg, err := Decode("1025|g,20\r\n")
		if err != nil {
			t.Fatal(err)
		}
		if n, _ := msg.Int(1); n != 20 {
			t.Errorf("state = %d", n)
		}
	})

	t.Run("unknown type is not an error", func(t *testing.T) {
		msg, err := Decode("9001|a")
		if err != nil {
			t.Fatal(err)
		}
		if msg.Known() {
			t.Errorf("9001 should be unknown")
		}
	})

	for _, line := range []string{"", "abc|x", "-5|x", "0"} {
		t.Run("malformed "+line, func(t *testing.T) {
			_, err := Decode(line)
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("err = %v, want DecodeError", err)
			}
		})
	}

	t.Run("text without text", func(t *testing.T) {
		if _, err := Decode("1010|g,bob"); !errors.Is(err, ErrMalformed) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestMessageAccessors(t *testing.T) {
	msg := NewMessage(MakeOffer, "g", "1", "true", "f", "x")
	if s, _ := msg.Field(0); s != "g" {
		t.Errorf("field 0 = %q", s)
	}
	bs, err := msg.Bools(2, 2)
	if err != nil || !bs[0] || bs[1] {
		t.Errorf("bools = %v, %v", bs, err)
	}
	if _, err := msg.Int(4); !errors.Is(err, ErrMalformed) {
		t.Errorf("int of x: %v", err)
	}
	if _, err := msg.Field(9); err == nil {
		t.Errorf("expected missing field error")
	}

	fields := msg.Fields()
	fields[0] = "mutated"
	if s, _ := msg.Field(0); s != "g" {
		t.Errorf("message was mutated through Fields copy")
	}
	if got := msg.Rest(3); !reflect.DeepEqual(got, []string{"f", "x"}) {
		t.Errorf("rest = %q", got)
	}
}

func TestIsSingleLineAndSafe(t *testing.T) {
	tests := []struct {
		s        string
		allowSep bool
		want     bool
	}{
		{"bob", false, true},
		{"two words", false, true},
		{"", true, false},
		{"a,b", false, false},
		{"a,b", true, true},
		{"tab\there", true, false},
		{"\xff", true, false},
	}
	for _, tt := range tests {
		if got := IsSingleLineAndSafe(tt.s, tt.allowSep); got != tt.want {
			t.Errorf("IsSingleLineAndSafe(%q, %v) = %v, want %v", tt.s, tt.allowSep, got, tt.want)
		}
	}
}

func TestMsgTypeString(t *testing.T) {
	if GameState.String() != "GAMESTATE" {
		t.Errorf("GameState = %s", GameState)
	}
	if MsgType(9001).String() != "MSG(9001)" {
		t.Errorf("unknown = %s", MsgType(9001))
	}
}
