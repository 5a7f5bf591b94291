/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/suparena/ddbexport/attrvalue"
	"github.com/suparena/ddbexport/errors"
)

// Mode is the comparison a clause applies.
type Mode int

const (
	Equals Mode = iota
	NotEquals
	Wildcard
	IsEmpty
	IsNotEmpty
)

func (m Mode) String() string {
	switch m {
	case Equals:
		return "equals"
	case NotEquals:
		return "not-equals"
	case Wildcard:
		return "wildcard"
	case IsEmpty:
		return "is-empty"
	case IsNotEmpty:
		return "is-not-empty"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Clause is one condition over one attribute.
type Clause struct {
	Attribute string
	Mode      Mode
	Operand   string

	pattern *regexp.Regexp
}

// String renders the clause in the grammar Parse accepts.
func (c Clause) String() string {
	switch c.Mode {
	case IsEmpty:
		return c.Attribute + "="
	case IsNotEmpty:
		return c.Attribute + "!="
	case NotEquals:
		return c.Attribute + "!=" + c.Operand
	}
	return c.Attribute + "=" + c.Operand
}

// Parse reads one clause:
//
//	attribute=value    equals, or a glob (*, ?, [seq]) when value contains '*'
//	attribute=         is-empty (attribute="" is accepted too)
//	attribute!=        is-not-empty
//	attribute!=value   not-equals
//
// The line is split on its first '='.
func Parse(line string) (Clause, error) {
	line = strings.TrimSpace(line)
	key, operand, found := strings.Cut(line, "=")
	if !found {
		return Clause{}, errors.NewValidationError("filter",
			fmt.Sprintf("invalid format %q, use attribute_name=value", line))
	}

	key = strings.TrimSpace(key)
	operand = strings.TrimSpace(operand)

	c := Clause{Operand: operand}
	if strings.HasSuffix(key, "!") {
		c.Attribute = strings.TrimSpace(strings.TrimSuffix(key, "!"))
		if operand == "" {
			c.Mode = IsNotEmpty
		} else {
			c.Mode = NotEquals
		}
	} else {
		c.Attribute = key
		switch {
		case operand == "" || operand == `""`:
			c.Mode = IsEmpty
			c.Operand = ""
		case strings.Contains(operand, "*"):
			c.Mode = Wildcard
			c.pattern = compileGlob(operand)
		default:
			c.Mode = Equals
		}
	}

	if c.Attribute == "" {
		return Clause{}, errors.NewValidationError("filter",
			fmt.Sprintf("missing attribute name in %q", line))
	}
	return c, nil
}

// ParseAll parses already-collected clause lines in order. Blank lines are
// skipped; the first malformed line fails the whole list.
func ParseAll(lines []string) ([]Clause, error) {
	clauses := make([]Clause, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i+1, err)
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

// Match reports whether item satisfies the clause. Comparisons use the raw wire
// value, not its decoded form.
func (c Clause) Match(item attrvalue.Item) bool {
	v, present := item[c.Attribute]

	switch c.Mode {
	case IsEmpty:
		if !present || v.IsNull() {
			return true
		}
		text, _ := v.Text()
		return v.Kind() == attrvalue.KindS && text == ""

	case IsNotEmpty:
		return notEqual(v, present, "")

	case NotEquals:
		return notEqual(v, present, c.Operand)

	case Equals, Wildcard:
		if !present {
			return false
		}
		actual := Project(v)
		if strings.Contains(c.Operand, "*") {
			return c.glob().MatchString(actual)
		}
		return actual == c.Operand
	}
	return false
}

// notEqual treats a missing attribute as equal to the empty string and
// different from everything else.
func notEqual(v attrvalue.Value, present bool, operand string) bool {
	if !present {
		return operand != ""
	}
	return Project(v) != operand
}

func (c Clause) glob() *regexp.Regexp {
	if c.pattern != nil {
		return c.pattern
	}
	return compileGlob(c.Operand)
}

// compileGlob turns a shell-style pattern into an anchored, case-sensitive
// regexp. '*' matches any run of characters (newlines included), '?' one
// character, [seq] and [!seq] a character class. A '[' without a closing ']'
// is literal.
func compileGlob(pattern string) *regexp.Regexp {
	runes := []rune(pattern)

	var b strings.Builder
	b.WriteString(`(?s)^`)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(runes) && runes[j] == '!' {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(charClass(runes[i+1 : j]))
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

// charClass renders the body of a [seq] group. Ranges whose bounds are out of
// order match nothing and are dropped.
func charClass(body []rune) string {
	negate := len(body) > 0 && body[0] == '!'
	if negate {
		body = body[1:]
	}

	var members strings.Builder
	for k := 0; k < len(body); k++ {
		if k+2 < len(body) && body[k+1] == '-' {
			lo, hi := body[k], body[k+2]
			if lo <= hi {
				members.WriteString(classRune(lo) + "-" + classRune(hi))
			}
			k += 2
			continue
		}
		members.WriteString(classRune(body[k]))
	}

	switch {
	case members.Len() == 0 && negate:
		return "."
	case members.Len() == 0:
		return `[^\x00-\x{10FFFF}]`
	case negate:
		return "[^" + members.String() + "]"
	}
	return "[" + members.String() + "]"
}

func classRune(r rune) string {
	switch r {
	case '\\', '[', ']', '^', '-':
		return `\` + string(r)
	}
	return string(r)
}

// Project renders a wire value as comparison text: S and N as their text,
// BOOL as True/False, NULL as empty, anything else as its wire JSON.
func Project(v attrvalue.Value) string {
	switch v.Kind() {
	case attrvalue.KindS, attrvalue.KindN:
		text, _ := v.Text()
		return text
	case attrvalue.KindBOOL:
		if b, _ := v.Bool(); b {
			return "True"
		}
		return "False"
	case attrvalue.KindNULL:
		return ""
	}
	return v.String()
}
