package regfile

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/moffa90/go-gp22/gp22"
	"github.com/moffa90/go-gp22/protocol"
)

// Constants for register file parsing.
const (
	// WordLength is the length of a register word in hex characters
	WordLength = 2 * protocol.ConfigRegisterSize

	// CommentPrefix starts a comment that runs to the end of the line
	CommentPrefix = "#"
)

// Parse parses a register file from the given file path.
// Returns the configuration image or an error if parsing fails.
//
// Example:
//
//	img, err := regfile.Parse("gp22.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tdc := gp22.New(opener, gp22.WithImage(*img))
func Parse(path string) (*gp22.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a register file from any io.Reader.
// Registers not mentioned in the input stay zero.
//
// Example:
//
//	img, err := regfile.ParseReader(strings.NewReader("1: 21444000\n"))
func ParseReader(r io.Reader) (*gp22.Image, error) {
	scanner := bufio.NewScanner(r)

	var img gp22.Image
	var seen [protocol.NumConfigRegisters]bool
	next := 0
	lineNum := 0
	found := 0

	for scanner.Scan() {
		lineNum++
		line := stripComment(scanner.Text())

		// Skip empty lines
		if line == "" {
			continue
		}

		reg, word, err := parseLine(line, next)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if seen[reg] {
			return nil, fmt.Errorf("line %d: register %d defined twice", lineNum, reg)
		}

		seen[reg] = true
		img[reg] = word
		next = reg + 1
		found++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if found == 0 {
		return nil, fmt.Errorf("no registers found in file")
	}

	return &img, nil
}

// stripComment removes a trailing comment and surrounding white space.
func stripComment(line string) string {
	if i := strings.Index(line, CommentPrefix); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// parseLine parses a single register line.
//
// Line format, either explicit or positional:
//
//	<REG>: <WORD>
//	<WORD>
//
// REG is the register number 0-6 in decimal. WORD is 8 hex digits,
// optionally prefixed with 0x, most significant byte first.
// A positional line fills the register after the previous one.
//
// Example: "1: 0x21444000"
//
//	Register: 1
//	Bytes: [0x21, 0x44, 0x40, 0x00]
func parseLine(line string, next int) (int, [protocol.ConfigRegisterSize]byte, error) {
	var word [protocol.ConfigRegisterSize]byte

	reg := next
	if i := strings.Index(line, ":"); i >= 0 {
		n, err := strconv.Atoi(strings.TrimSpace(line[:i]))
		if err != nil {
			return 0, word, fmt.Errorf("invalid register number %q", strings.TrimSpace(line[:i]))
		}
		reg = n
		line = strings.TrimSpace(line[i+1:])
	}

	if reg < 0 || reg >= protocol.NumConfigRegisters {
		return 0, word, fmt.Errorf("register %d is out of range: valid range is 0-%d", reg, protocol.NumConfigRegisters-1)
	}

	line = strings.TrimPrefix(strings.TrimPrefix(line, "0x"), "0X")
	if len(line) != WordLength {
		return 0, word, fmt.Errorf("invalid word length: got %d characters, expected %d", len(line), WordLength)
	}

	data, err := hex.DecodeString(line)
	if err != nil {
		return 0, word, fmt.Errorf("invalid hex data: %w", err)
	}
	copy(word[:], data)

	return reg, word, nil
}
