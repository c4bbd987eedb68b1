// Package trace reads and writes message traces as JSON lines.
//
// The input format is one record per line with the three raw fields
// the window procedure receives:
//
//	{"msg": 513, "wparam": 1, "lparam": 1310730}
//
// The output format enriches each record with the band, the protocol
// name, and the derived keyboard or button view when one applies.
package trace
