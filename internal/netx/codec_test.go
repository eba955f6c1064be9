package netx

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestEncodeLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr bool
	}{
		{name: "plain", line: "1025|g,20", want: "1025|g,20\n"},
		{name: "embedded newline", line: "1025|g\n20", wantErr: true},
		{name: "embedded cr", line: "1025|g\r", wantErr: true},
		{name: "too long", line: strings.Repeat("x", MaxLineLen), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := EncodeLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(b) != tt.want {
				t.Errorf("frame = %q, want %q", b, tt.want)
			}
		})
	}
}

func TestDecodeLine(t *testing.T) {
	r := bufio.NewReaderSize(strings.NewReader("1026|g,1\r\n1028|g,7\n\n1019|a,b"), 16)
	for _, want := range []string{"1026|g,1", "1028|g,7", ""} {
		got, err := DecodeLine(r)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != want {
			t.Errorf("line = %q, want %q", got, want)
		}
	}
	if _, err := DecodeLine(r); err != io.ErrUnexpectedEOF {
		t.Errorf("truncated frame: %v", err)
	}
	if _, err := DecodeLine(r); err != io.EOF {
		t.Errorf("after end: %v", err)
	}
}

func TestDecodeLineTooLong(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(strings.Repeat("a", MaxLineLen+10) + "\n"))
	if _, err := DecodeLine(r); !errors.Is(err, ErrLineTooLong) {
		t.Errorf("err = %v", err)
	}
}
