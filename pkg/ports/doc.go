// Package ports declares the interfaces the tramway core depends on, plus
// a reusable contract suite so every adapter is verified against the same
// expectations.
package ports
