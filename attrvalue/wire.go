/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrvalue

import (
	"bytes"
	"encoding/base64"
	"sort"

	"github.com/goccy/go-json"
)

// MarshalJSON writes v in DynamoDB JSON: a single-key object holding the tag.
// Map keys are sorted so the output is deterministic.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeWire(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeWire(buf *bytes.Buffer) error {
	if v.kind == KindUnknown {
		raw := []byte(v.text)
		if len(raw) > 0 && json.Valid(raw) {
			buf.Write(raw)
			return nil
		}
		return writeJSON(buf, v.text)
	}

	buf.WriteByte('{')
	if err := writeJSON(buf, v.kind.Tag()); err != nil {
		return err
	}
	buf.WriteByte(':')

	var err error
	switch v.kind {
	case KindS, KindN:
		err = writeJSON(buf, v.text)
	case KindB:
		err = writeJSON(buf, base64.StdEncoding.EncodeToString(v.bin))
	case KindBOOL, KindNULL:
		err = writeJSON(buf, v.flag)
	case KindSS, KindNS:
		strs := v.strs
		if strs == nil {
			strs = []string{}
		}
		err = writeJSON(buf, strs)
	case KindBS:
		encoded := make([]string, len(v.bins))
		for i, b := range v.bins {
			encoded[i] = base64.StdEncoding.EncodeToString(b)
		}
		err = writeJSON(buf, encoded)
	case KindL:
		err = writeList(buf, v.list)
	case KindM:
		err = writeMap(buf, v.m)
	}
	if err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func writeList(buf *bytes.Buffer, vs []Value) error {
	buf.WriteByte('[')
	for i, elem := range vs {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := elem.writeWire(buf); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeMap(buf *bytes.Buffer, m Item) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := m[k].writeWire(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// UnmarshalJSON reads one DynamoDB JSON value. It never fails on content: a
// value with no recognized tag, or whose payload does not fit its tag, becomes
// an Unknown value carrying the raw text. When several tags are present only
// the first one in Precedence order is honored.
func (v *Value) UnmarshalJSON(data []byte) error {
	var tags map[string]json.RawMessage
	if err := json.Unmarshal(data, &tags); err != nil {
		*v = Unknown(string(bytes.TrimSpace(data)))
		return nil
	}

	for _, kind := range Precedence {
		payload, ok := tags[kind.Tag()]
		if !ok {
			continue
		}
		decoded, ok := decodePayload(kind, payload)
		if !ok {
			break
		}
		*v = decoded
		return nil
	}

	*v = Unknown(string(bytes.TrimSpace(data)))
	return nil
}

func decodePayload(kind Kind, payload json.RawMessage) (Value, bool) {
	switch kind {
	case KindS:
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return Value{}, false
		}
		return String(s), true

	case KindN:
		text, ok := numberText(payload)
		if !ok {
			return Value{}, false
		}
		return Number(text), true

	case KindB:
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return Value{}, false
		}
		return Binary(decodeBase64(s)), true

	case KindBOOL:
		var b bool
		if err := json.Unmarshal(payload, &b); err != nil {
			return Value{}, false
		}
		return Bool(b), true

	case KindNULL:
		var b bool
		if err := json.Unmarshal(payload, &b); err != nil {
			return Value{}, false
		}
		return Null(b), true

	case KindSS:
		var ss []string
		if err := json.Unmarshal(payload, &ss); err != nil {
			return Value{}, false
		}
		return StringSet(ss...), true

	case KindNS:
		var ns []json.RawMessage
		if err := json.Unmarshal(payload, &ns); err != nil {
			return Value{}, false
		}
		strs := make([]string, len(ns))
		for i, n := range ns {
			text, ok := numberText(n)
			if !ok {
				return Value{}, false
			}
			strs[i] = text
		}
		return NumberSet(strs...), true

	case KindBS:
		var bs []string
		if err := json.Unmarshal(payload, &bs); err != nil {
			return Value{}, false
		}
		bins := make([][]byte, len(bs))
		for i, s := range bs {
			bins[i] = decodeBase64(s)
		}
		return BinarySet(bins...), true

	case KindL:
		var vs []Value
		if err := json.Unmarshal(payload, &vs); err != nil {
			return Value{}, false
		}
		return List(vs...), true

	case KindM:
		var m Item
		if err := json.Unmarshal(payload, &m); err != nil {
			return Value{}, false
		}
		return Map(m), true
	}
	return Value{}, false
}

// numberText accepts the string form DynamoDB uses for N as well as a bare JSON
// number, which some exporters write. The text is kept as-is either way.
func numberText(payload json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(payload, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(payload, &n); err != nil {
		return "", false
	}
	return n.String(), true
}

// decodeBase64 returns the decoded payload, or the text itself when it is not
// base64 (hand-written fixtures often carry plain text).
func decodeBase64(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return []byte(s)
	}
	return b
}
