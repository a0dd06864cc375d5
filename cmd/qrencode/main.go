// Command qrencode is a CLI driver around the qr encoding core: it
// parses the version/level argument and message flags, converts host
// text into the byte sequence each mode expects, and renders the
// resulting matrix as PNG or PBM.
package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	qr "github.com/vvgo/qr18004"
	"github.com/vvgo/qr18004/render"
)

var (
	numericArg = getopt.StringLong("numeric", 0, "", "encode as Numeric")
	alphaArg   = getopt.StringLong("alpha", 0, "", "encode as Alphanumeric")
	byteArg    = getopt.StringLong("byte", 0, "", "encode as Byte")
	kanjiArg   = getopt.StringLong("kanji", 0, "", "encode as Kanji (Shift-JIS via UTF-8 input)")
	output     = getopt.StringLong("output", 'o', "", "output file (default: stdout)")
	scale      = getopt.IntLong("scale", 's', 8, "module scale in pixels")
	format     = getopt.StringLong("format", 'f', "", "output format: png or pbm (default: detected from output)")
	lightArg   = getopt.StringLong("light", 0, "", "light module color R,G,B")
	darkArg    = getopt.StringLong("dark", 0, "", "dark module color R,G,B")
)

// parseColor parses an "R,G,B" flag value into an RGB triple.
func parseColor(s string, fallback [3]byte) [3]byte {
	if s == "" {
		return fallback
	}
	var r, g, b int
	if n, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil || n != 3 {
		log.Fatalf("invalid color %q: want R,G,B", s)
	}
	return [3]byte{byte(r), byte(g), byte(b)}
}

var versionRe = regexp.MustCompile(`^(M?)(\d+)-([LMQH])$`)

// parseVersion parses the "-[M]V-E" positional argument into a
// symbol type, version and level; "-M1" selects Micro v1 with
// ErrorDetectionOnly.
func parseVersion(s string) (qr.SymbolType, int, qr.Level, error) {
	if s == "-M1" {
		return qr.MicroQR, 1, qr.ErrorDetectionOnly, nil
	}
	s = trimLeadingDash(s)
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("invalid version/level argument %q", s)
	}
	typ := qr.QR
	if m[1] == "M" {
		typ = qr.MicroQR
	}
	version, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, 0, err
	}
	levels := map[string]qr.Level{"L": qr.L, "M": qr.M, "Q": qr.Q, "H": qr.H}
	return typ, version, levels[m[3]], nil
}

func trimLeadingDash(s string) string {
	if len(s) > 0 && s[0] == '-' {
		return s[1:]
	}
	return s
}

func main() {
	getopt.SetParameters("-[M]V-E")
	getopt.Parse()
	args := getopt.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: qrencode -[M]V-E [-numeric|-alpha|-byte|-kanji msg] [-output file]")
		os.Exit(2)
	}

	typ, version, level, err := parseVersion(args[0])
	if err != nil {
		log.Fatalln(err)
	}
	enc, err := qr.New(typ, version, level)
	if err != nil {
		log.Fatalln(err)
	}

	if *numericArg != "" {
		if err := enc.AddCharacters([]byte(*numericArg), qr.Numeric); err != nil {
			log.Fatalln(err)
		}
	}
	if *alphaArg != "" {
		if err := enc.AddCharacters([]byte(*alphaArg), qr.Alphanumeric); err != nil {
			log.Fatalln(err)
		}
	}
	if *byteArg != "" {
		latin1, err := charmap.ISO8859_1.NewEncoder().String(*byteArg)
		if err != nil {
			log.Fatalln("byte: converting to Latin-1:", err)
		}
		if err := enc.AddCharacters([]byte(latin1), qr.Byte); err != nil {
			log.Fatalln(err)
		}
	}
	if *kanjiArg != "" {
		sjis, err := japanese.ShiftJIS.NewEncoder().String(*kanjiArg)
		if err != nil {
			log.Fatalln("kanji: converting to Shift-JIS:", err)
		}
		if err := enc.AddCharacters([]byte(sjis), qr.Kanji); err != nil {
			log.Fatalln(err)
		}
	}

	m := enc.GenerateMatrix()

	out := os.Stdout
	outFormat := *format
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		out = f
		if outFormat == "" {
			outFormat = formatFromName(*output)
		}
	}
	if outFormat == "" {
		if isatty.IsTerminal(out.Fd()) {
			outFormat = "pbm"
		} else {
			outFormat = "png"
		}
	}

	dark := parseColor(*darkArg, [3]byte{0, 0, 0})
	light := parseColor(*lightArg, [3]byte{255, 255, 255})
	img := &render.Image{Matrix: m, Scale: *scale, Dark: dark, Light: light}
	switch outFormat {
	case "png":
		err = render.EncodePNG(out, img)
	case "pbm":
		err = render.EncodePBM(out, img)
	default:
		log.Fatalf("unknown output format %q", outFormat)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func formatFromName(name string) string {
	for i := len(name) - 1; i >= 0 && name[i] != '/'; i-- {
		if name[i] == '.' {
			switch name[i+1:] {
			case "png":
				return "png"
			case "pbm":
				return "pbm"
			}
			break
		}
	}
	return ""
}
