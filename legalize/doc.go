// Package legalize implements the TETRIS-style legalizer: it converts
// continuous cell positions into non-overlapping integer positions,
// respecting a row structure indexed by (tier, z-row), under a
// caller-chosen horizontal backtrack budget.
package legalize
