//go:build !race

package noshell

const raceEnabled = false
