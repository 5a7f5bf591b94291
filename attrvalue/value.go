/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrvalue

// Kind identifies which wire-format tag a Value carries.
type Kind int

const (
	KindUnknown Kind = iota
	KindS
	KindN
	KindB
	KindBOOL
	KindNULL
	KindSS
	KindNS
	KindBS
	KindL
	KindM
)

// Precedence is the order in which tags are honored when a malformed wire value
// carries more than one of them.
var Precedence = []Kind{KindS, KindN, KindB, KindBOOL, KindNULL, KindSS, KindNS, KindBS, KindL, KindM}

var kindTags = map[Kind]string{
	KindS:    "S",
	KindN:    "N",
	KindB:    "B",
	KindBOOL: "BOOL",
	KindNULL: "NULL",
	KindSS:   "SS",
	KindNS:   "NS",
	KindBS:   "BS",
	KindL:    "L",
	KindM:    "M",
}

var kindNames = map[Kind]string{
	KindS:    "String",
	KindN:    "Number",
	KindB:    "Binary",
	KindBOOL: "Boolean",
	KindNULL: "Null",
	KindSS:   "String Set",
	KindNS:   "Number Set",
	KindBS:   "Binary Set",
	KindL:    "List",
	KindM:    "Map",
}

// Tag returns the wire tag ("S", "N", ...) or "" for KindUnknown.
func (k Kind) Tag() string {
	return kindTags[k]
}

// String returns the human readable type name used in analysis reports.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Value is a single wire-format attribute value. Exactly one tag is populated;
// the zero Value is KindUnknown with an empty raw form.
type Value struct {
	kind Kind
	text string // S, N, raw form of unknown values
	bin  []byte
	flag bool // BOOL value, NULL marker
	strs []string
	bins [][]byte
	list []Value
	m    Item
}

// Item is one raw record: attribute name to wire value.
type Item map[string]Value

// Row is one decoded record ready for tabular output. Values are string, int64,
// float64, bool or nil.
type Row map[string]any

func String(s string) Value { return Value{kind: KindS, text: s} }

// Number keeps the decimal text exactly as the store sent it.
func Number(text string) Value { return Value{kind: KindN, text: text} }

func Binary(b []byte) Value { return Value{kind: KindB, bin: b} }

func Bool(b bool) Value { return Value{kind: KindBOOL, flag: b} }

// Null builds a NULL value. The store always sends NULL=true; false is kept
// only so malformed input survives a round trip.
func Null(set bool) Value { return Value{kind: KindNULL, flag: set} }

func StringSet(ss ...string) Value { return Value{kind: KindSS, strs: ss} }

func NumberSet(ns ...string) Value { return Value{kind: KindNS, strs: ns} }

func BinarySet(bs ...[]byte) Value { return Value{kind: KindBS, bins: bs} }

func List(vs ...Value) Value { return Value{kind: KindL, list: vs} }

func Map(m Item) Value { return Value{kind: KindM, m: m} }

// Unknown wraps a value whose tag is not recognized, keeping its raw textual form.
func Unknown(raw string) Value { return Value{kind: KindUnknown, text: raw} }

func (v Value) Kind() Kind { return v.kind }

// Text returns the payload of S and N values, or the raw form of unknown values.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindS, KindN, KindUnknown:
		return v.text, true
	}
	return "", false
}

func (v Value) Bytes() ([]byte, bool) {
	return v.bin, v.kind == KindB
}

// Bool returns the BOOL payload or the NULL marker.
func (v Value) Bool() (bool, bool) {
	return v.flag, v.kind == KindBOOL || v.kind == KindNULL
}

// IsNull reports whether v is an explicit NULL=true.
func (v Value) IsNull() bool {
	return v.kind == KindNULL && v.flag
}

// Strings returns the members of a string or number set.
func (v Value) Strings() ([]string, bool) {
	return v.strs, v.kind == KindSS || v.kind == KindNS
}

func (v Value) BinaryMembers() ([][]byte, bool) {
	return v.bins, v.kind == KindBS
}

func (v Value) List() ([]Value, bool) {
	return v.list, v.kind == KindL
}

func (v Value) Map() (Item, bool) {
	return v.m, v.kind == KindM
}

// String renders the canonical wire-JSON form of v, used wherever a value needs
// a debug representation.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return v.text
	}
	return string(b)
}
