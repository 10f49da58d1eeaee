/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cinput

import "sync"

func mapCount(m *sync.Map) int {
	count := 0
	m.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// DebugInterfaceCount returns the number of registered restricted interfaces.
func DebugInterfaceCount() int {
	return mapCount(&interfaceRegistry)
}

// DebugLogHandlerCount returns the number of contexts with a log handler.
func DebugLogHandlerCount() int {
	return mapCount(&logRegistry)
}
