package regfile

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/moffa90/go-gp22/gp22"
)

// Write writes img in explicit register form, one register per line,
// so that ParseReader returns the same image.
func Write(w io.Writer, img *gp22.Image) error {
	bw := bufio.NewWriter(w)

	for reg, word := range img {
		if _, err := fmt.Fprintf(bw, "%d: 0x%s\n", reg, strings.ToUpper(hex.EncodeToString(word[:]))); err != nil {
			return err
		}
	}

	return bw.Flush()
}
