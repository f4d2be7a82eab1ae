// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"fmt"
	"strings"
)

// GenerateData generates test data from a generator description.
// Supports simple loops, concatenation of parts (join), and nested loops.
//
// Format:
//
//	Simple loop: {loop: ["value", count]}
//	Join parts: {join: [{text: "..."}, {loop: ["...", count]}]}
//	Nested: {join: [...], loop: count}
func GenerateData(gen any) ([]byte, error) {
	genMap, ok := gen.(map[string]any)
	if !ok {
		// If it's just a string, return it as-is
		if str, ok := gen.(string); ok {
			return []byte(str), nil
		}
		return nil, fmt.Errorf("data generator must be map or string, got %T", gen)
	}

	// Check for simple loop: {loop: ["value", count]}
	if loopVal, hasLoop := genMap["loop"]; hasLoop {
		if _, hasJoin := genMap["join"]; !hasJoin {
			return generateSimpleLoop(loopVal)
		}
	}

	// Check for join: {join: [{text: "..."}, {loop: ["...", count]}]}
	if joinVal, hasJoin := genMap["join"]; hasJoin {
		result, err := generateJoin(joinVal)
		if err != nil {
			return nil, err
		}

		// Check for loop: repeat the entire join N times
		if loopVal, hasLoop := genMap["loop"]; hasLoop {
			count, ok := loopVal.(int)
			if !ok {
				return nil, fmt.Errorf("loop count must be int, got %T", loopVal)
			}
			return []byte(strings.Repeat(string(result), count)), nil
		}

		return result, nil
	}

	return nil, fmt.Errorf("data generator must have 'loop' or 'join' field")
}

func generateSimpleLoop(loopVal any) ([]byte, error) {
	loopArr, ok := loopVal.([]any)
	if !ok {
		return nil, fmt.Errorf("loop must be array [value, count], got %T", loopVal)
	}

	if len(loopArr) != 2 {
		return nil, fmt.Errorf("loop must have 2 elements [value, count], got %d", len(loopArr))
	}

	value, ok := loopArr[0].(string)
	if !ok {
		return nil, fmt.Errorf("loop value must be string, got %T", loopArr[0])
	}

	count, ok := loopArr[1].(int)
	if !ok {
		return nil, fmt.Errorf("loop count must be int, got %T", loopArr[1])
	}

	return []byte(strings.Repeat(value, count)), nil
}

func generateJoin(joinVal any) ([]byte, error) {
	joinList, ok := joinVal.([]any)
	if !ok {
		return nil, fmt.Errorf("join must be array, got %T", joinVal)
	}

	var result strings.Builder
	for i, item := range joinList {
		itemMap, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("join item %d must be map, got %T", i, item)
		}

		// Check for text field
		if text, hasText := itemMap["text"]; hasText {
			textStr, ok := text.(string)
			if !ok {
				return nil, fmt.Errorf("join item %d text must be string, got %T", i, text)
			}
			result.WriteString(textStr)
			continue
		}

		// Check for loop field
		if loopVal, hasLoop := itemMap["loop"]; hasLoop {
			loopData, err := generateSimpleLoop(loopVal)
			if err != nil {
				return nil, fmt.Errorf("join item %d: %w", i, err)
			}
			result.Write(loopData)
			continue
		}

		return nil, fmt.Errorf("join item %d must have 'text' or 'loop' field", i)
	}

	return []byte(result.String()), nil
}
