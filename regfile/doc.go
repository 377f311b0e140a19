// Package regfile reads and writes GP22 configuration images as text.
//
// # File Format
//
// One configuration register per line, as 8 hex digits, most significant
// byte first. A line may name its register explicitly; a line without a
// register number fills the register after the previous line. Text after
// '#' is ignored.
//
//	# single resolution, 3 hits
//	0: 0x00242000
//	1: 0x21434000
//	A0000000      # register 2, positional
//	3: 0x18000000
//	4: 0x20000000
//	5: 0x00000000
//	6: 0x00000000
//
// Registers not present in the file stay zero.
//
// # Usage
//
//	img, err := regfile.Parse("gp22.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tdc.SetImage(*img)
//
// # Error Handling
//
// Parse returns errors with line numbers for:
//   - Register numbers outside 0-6
//   - Registers defined twice
//   - Words that are not exactly 8 hex digits
//   - Files without any register
package regfile
