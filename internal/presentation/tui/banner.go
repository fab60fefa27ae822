package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the tramway ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Amber-to-rose gradient
	s1 := termenv.String(" _                                         ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("| |_ _ __ __ _ _ __ _____      ____ _ _  _ ").Foreground(p.Color("#fb923c"))
	s3 := termenv.String("| __| '__/ _` | '_ ` _ \\ \\ /\\ / / _` | | | |").Foreground(p.Color("#f87171"))
	s4 := termenv.String("| |_| | | (_| | | | | | \\ V  V / (_| | |_| |").Foreground(p.Color("#f472b6"))
	s5 := termenv.String(" \\__|_|  \\__,_|_| |_| |_|\\_/\\_/ \\__,_|\\__, |").Foreground(p.Color("#e879f9"))
	s6 := termenv.String("                                      |___/ ").Foreground(p.Color("#c084fc"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
