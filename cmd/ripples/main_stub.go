//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of mad-ripples requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/ripples` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless frame, use `go run ./cmd/ripple-dump`.")
	os.Exit(2)
}
