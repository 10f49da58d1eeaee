/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package colpetto carries the module version reported by the colpetto
// command. The bindings live under pkg/.
package colpetto

// Version is the semantic version of the module.
const Version = "0.1.0"
