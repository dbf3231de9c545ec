/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package nestedjson provides nested JSON formatting for design tokens.
package nestedjson

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/token"
)

// Formatter outputs JSON nested by token path with values at the leaves.
type Formatter struct{}

// New creates a new nested JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// node is one level of the output tree. Children keep insertion order.
type node struct {
	keys     []string
	children map[string]*node
	leaf     bool
	value    any
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Format converts tokens to nested JSON, preserving first-seen key order.
func (f *Formatter) Format(tokens []*token.Token, _ formatter.Options) ([]byte, error) {
	root := newNode()
	for _, tok := range tokens {
		if err := root.insert(tok.SourceSegments(), tok.Value); err != nil {
			return nil, err
		}
	}

	var sb strings.Builder
	if err := root.write(&sb, 0); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func (n *node) insert(path []string, value any) error {
	if len(path) == 0 {
		return fmt.Errorf("token has no path")
	}

	current := n
	for i, segment := range path {
		child, ok := current.children[segment]
		if !ok {
			child = newNode()
			current.children[segment] = child
			current.keys = append(current.keys, segment)
		}
		last := i == len(path)-1
		if child.leaf || (last && len(child.keys) > 0) {
			return fmt.Errorf("%s: conflicting token path", strings.Join(path[:i+1], "."))
		}
		if last {
			child.leaf = true
			child.value = value
		}
		current = child
	}
	return nil
}

func (n *node) write(sb *strings.Builder, depth int) error {
	if n.leaf {
		value, err := formatter.JSONValue(n.value, depth)
		if err != nil {
			return err
		}
		sb.WriteString(value)
		return nil
	}

	if len(n.keys) == 0 {
		sb.WriteString("{}")
		return nil
	}

	indent := strings.Repeat(formatter.Indent, depth+1)
	sb.WriteString("{\n")
	for i, key := range n.keys {
		sb.WriteString(indent + formatter.JSONKey(key) + ": ")
		if err := n.children[key].write(sb, depth+1); err != nil {
			return err
		}
		if i < len(n.keys)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(formatter.Indent, depth) + "}")
	return nil
}
