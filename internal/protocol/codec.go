package protocol

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Wire separators: Sep ends the type id, Sep2 separates fields.
const (
	Sep  = "|"
	Sep2 = ","

	sepChar  = '|'
	sep2Char = ','
)

// Placeholder fills optional fields that are empty, such as a blank
// password; empty fields are not allowed on the wire.
const Placeholder = "-"

// IsSingleLineAndSafe reports whether s may be placed in a field without
// breaking line framing. With allowSep false it also rejects Sep and Sep2.
func IsSingleLineAndSafe(s string, allowSep bool) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	if !allowSep && strings.ContainsAny(s, Sep+Sep2) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) || unicode.In(r, unicode.Zl, unicode.Zp) {
			return false
		}
	}
	return true
}

// Encode validates fields and renders one protocol line (no terminator).
func Encode(t MsgType, fields ...string) (string, error) {
	if t <= 0 {
		return "", &ValidationError{Type: t, Index: -1, Reason: "type id must be positive"}
	}
	head := strconv.Itoa(int(t))
	if len(fields) == 0 {
		return head, nil
	}

	layout, textAt := LayoutOf(t)
	joiner := Sep2
	switch layout {
	case LayoutText:
		if len(fields) != textAt+1 {
			return "", &ValidationError{Type: t, Index: len(fields) - 1, Reason: "expected " + strconv.Itoa(textAt) + " fields before text"}
		}
	case LayoutMulti:
		joiner = Sep
	}

	for i, f := range fields {
		relaxed := layout == LayoutMulti || (layout == LayoutText && i == textAt)
		if !IsSingleLineAndSafe(f, relaxed) {
			return "", &ValidationError{Type: t, Index: i, Value: f, Reason: "empty, multi-line or contains separators"}
		}
		if relaxed && strings.ContainsRune(f, sepChar) {
			return "", &ValidationError{Type: t, Index: i, Value: f, Reason: "contains " + Sep}
		}
	}
	return head + Sep + strings.Join(fields, joiner), nil
}

// Decode parses one line. Unregistered types decode normally; callers
// check Known and decide what to do with them.
func Decode(line string) (Message, error) {
	line = strings.TrimRight(line, "\r\n")
	head, payload, _ := strings.Cut(line, Sep)
	n, err := strconv.Atoi(head)
	if err != nil || n <= 0 {
		return Message{}, &DecodeError{Line: line, Reason: "bad type id"}
	}
	t := MsgType(n)
	if payload == "" {
		return Message{typ: t}, nil
	}

	layout, textAt := LayoutOf(t)
	var fields []string
	switch layout {
	case LayoutText:
		fields = strings.SplitN(payload, Sep2, textAt+1)
		if len(fields) != textAt+1 {
			return Message{}, &DecodeError{Line: line, Reason: "missing text field"}
		}
	case LayoutMulti:
		fields = strings.Split(payload, Sep)
	default:
		if strings.ContainsRune(payload, sepChar) {
			fields = strings.Split(payload, Sep)
		} else {
			fields = strings.Split(payload, Sep2)
		}
	}
	return Message{typ: t, fields: fields}, nil
}

// SplitSub splits a composite field on Sep2.
func SplitSub(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, string(sep2Char))
}
