/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrvalue

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decode flattens v into the value written to a tabular cell. It is total:
// every Value, including unknown ones, produces a result.
//
//	S         the string itself
//	N         int64 when the text has no '.', float64 otherwise, raw text if unparseable
//	B         debug form of the payload
//	BOOL      bool
//	NULL      nil
//	SS, NS    members joined with ", "
//	BS        members in debug form joined with ", "
//	L, M      canonical wire JSON, members are not decoded
//	unknown   raw textual form
func Decode(v Value) any {
	switch v.kind {
	case KindS:
		return v.text
	case KindN:
		return decodeNumber(v.text)
	case KindB:
		return binaryText(v.bin)
	case KindBOOL:
		return v.flag
	case KindNULL:
		return nil
	case KindSS, KindNS:
		return strings.Join(v.strs, ", ")
	case KindBS:
		parts := make([]string, len(v.bins))
		for i, b := range v.bins {
			parts[i] = binaryText(b)
		}
		return strings.Join(parts, ", ")
	case KindL, KindM:
		return compositeText(v)
	}
	return v.text
}

// DecodeItem decodes every attribute of item into a new Row.
func DecodeItem(item Item) Row {
	row := make(Row, len(item))
	for name, v := range item {
		row[name] = Decode(v)
	}
	return row
}

func decodeNumber(text string) any {
	if !strings.Contains(text, ".") {
		n, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return n
		}
		// Integers beyond int64 lose precision rather than being dropped.
		if errors.Is(err, strconv.ErrRange) {
			if f, ferr := strconv.ParseFloat(text, 64); ferr == nil {
				return f
			}
		}
		return text
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	return f
}

// compositeText serializes the payload of a list or map without its tag, so a
// list cell reads [{"S":"a"},{"N":"1.50"}] and numbers keep their exact text.
func compositeText(v Value) string {
	var buf bytes.Buffer
	var err error
	if v.kind == KindL {
		err = writeList(&buf, v.list)
	} else {
		err = writeMap(&buf, v.m)
	}
	if err != nil {
		return v.String()
	}
	return buf.String()
}

func binaryText(b []byte) string {
	return fmt.Sprintf("%q", b)
}
