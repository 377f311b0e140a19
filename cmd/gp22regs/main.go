// Command gp22regs prints a GP22 register file and the fields the
// driver decodes from it.
//
//	gp22regs config.regs
package main

import (
	"fmt"
	"os"

	"github.com/moffa90/go-gp22/gp22"
	"github.com/moffa90/go-gp22/regfile"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: gp22regs <register file>")
		os.Exit(2)
	}

	img, err := regfile.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for n := 0; n < len(img); n++ {
		v, _ := img.Register(n)
		fmt.Printf("reg %d: 0x%08X  % X\n", n, v, img[n][:])
	}
	fmt.Println()

	if hits, ok := img.ExpectedHits(); ok {
		fmt.Printf("Expected hits: %d\n", hits)
	} else {
		fmt.Printf("Expected hits: unknown (field 0b%03b)\n", img.ExpectedHitsBits())
	}
	fmt.Printf("Resolution:    %s\n", resolution(img))
}

func resolution(img *gp22.Image) string {
	switch {
	case img.IsDoubleRes() && img.IsQuadRes():
		return "double and quad (invalid)"
	case img.IsQuadRes():
		return "quad"
	case img.IsDoubleRes():
		return "double"
	default:
		return "single"
	}
}
