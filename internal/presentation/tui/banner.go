package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the OrderBot ASCII art banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Warm amber-to-red gradient, fitting for a burger stand.
	s1 := termenv.String("   ___          _           ____        _   ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("  / _ \\ _ __ __| | ___ _ __| __ )  ___ | |_ ").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String(" | | | | '__/ _` |/ _ \\ '__|  _ \\ / _ \\| __|").Foreground(p.Color("#f97316"))
	s4 := termenv.String(" | |_| | | | (_| |  __/ |  | |_) | (_) | |_ ").Foreground(p.Color("#ef4444"))
	s5 := termenv.String("  \\___/|_|  \\__,_|\\___|_|  |____/ \\___/ \\__|").Foreground(p.Color("#dc2626"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
