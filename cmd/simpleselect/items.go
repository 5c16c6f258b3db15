package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect"
)

// parseItem reads "label" or "label=value". A leading "!" disables the item.
func parseItem(spec string) (*simpleselect.Item, bool) {
	spec = strings.TrimSpace(spec)
	disabled := strings.HasPrefix(spec, "!")
	spec = strings.TrimPrefix(spec, "!")

	label, value, found := strings.Cut(spec, "=")
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, false
	}
	if !found {
		value = label
	}

	item := simpleselect.NewItem(label, strings.TrimSpace(value))
	item.SetDisabled(disabled)
	return item, true
}

// readItems parses one item per line. Blank lines and lines starting with
// "#" are skipped.
func readItems(r io.Reader) ([]*simpleselect.Item, error) {
	var items []*simpleselect.Item

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if item, ok := parseItem(line); ok {
			items = append(items, item)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	return items, nil
}
