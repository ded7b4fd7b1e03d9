/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package console

import (
	"strings"

	"github.com/chzyer/readline"
)

// choiceCompleter completes the whole input line against the answers the
// current prompt accepts.
type choiceCompleter struct {
	choices []string
}

var _ readline.AutoCompleter = (*choiceCompleter)(nil)

func (c *choiceCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	prefix := strings.TrimLeft(string(line[:pos]), " ")

	completions := uniqueStrings(filterChoices(c.choices, prefix))
	if len(completions) == 0 {
		return [][]rune{}, 0
	}

	if len(completions) == 1 {
		return [][]rune{[]rune(completions[0][len(prefix):])}, len(prefix)
	}

	commonPrefix := findCommonPrefix(completions)
	if len(commonPrefix) > len(prefix) {
		return [][]rune{[]rune(commonPrefix[len(prefix):])}, len(prefix)
	}

	newLine = make([][]rune, len(completions))
	for i, completion := range completions {
		newLine[i] = []rune(completion[len(prefix):])
	}
	return newLine, len(prefix)
}

func filterChoices(choices []string, prefix string) []string {
	if prefix == "" {
		return choices
	}

	var filtered []string
	lowerPrefix := strings.ToLower(prefix)

	for _, choice := range choices {
		if strings.HasPrefix(strings.ToLower(choice), lowerPrefix) {
			filtered = append(filtered, choice)
		}
	}

	return filtered
}

func findCommonPrefix(completions []string) string {
	if len(completions) == 0 {
		return ""
	}

	prefix := completions[0]

	for _, comp := range completions[1:] {
		i := 0
		for i < len(prefix) && i < len(comp) && prefix[i] == comp[i] {
			i++
		}
		prefix = prefix[:i]

		if prefix == "" {
			return ""
		}
	}

	return prefix
}

func uniqueStrings(strs []string) []string {
	seen := make(map[string]bool)
	result := []string{}

	for _, str := range strs {
		if !seen[str] {
			seen[str] = true
			result = append(result, str)
		}
	}

	return result
}
