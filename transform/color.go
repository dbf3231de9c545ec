/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokenforge/token"
)

// RGBTriple decomposes a color value into "r, g, b".
//
// "#" values parse their leading hex digits as an integer and take bits
// 16-23, 8-15 and 0-7 as red, green and blue. Digits are not validated, so
// malformed hex such as "#12" yields "0, 0, 18". "rgb(" values keep only
// digits and commas and read the first three comma-separated channels;
// unparsable or missing channels are 0. Anything else, including non-string
// values, yields "0, 0, 0".
func RGBTriple(value any) string {
	s, ok := value.(string)
	if !ok {
		return "0, 0, 0"
	}

	switch {
	case strings.HasPrefix(s, "#"):
		n := parseHexInt(s[1:])
		return fmt.Sprintf("%d, %d, %d", (n>>16)&255, (n>>8)&255, n&255)
	case strings.HasPrefix(s, "rgb("):
		return rgbChannels(s)
	default:
		return "0, 0, 0"
	}
}

// parseHexInt reads the leading hex digits of s into a 32-bit integer,
// after optional leading whitespace, sign and 0x prefix. Overflow wraps;
// no digits yields 0.
func parseHexInt(s string) uint32 {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	var n float64
	for _, r := range s {
		d, ok := hexDigit(r)
		if !ok {
			break
		}
		n = n*16 + float64(d)
	}

	if math.IsInf(n, 0) {
		return 0
	}
	bits := uint32(math.Mod(n, 1<<32))
	if negative {
		bits = -bits
	}
	return bits
}

func hexDigit(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	default:
		return 0, false
	}
}

func rgbChannels(s string) string {
	kept := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' {
			return r
		}
		return -1
	}, s)

	parts := strings.Split(kept, ",")
	channels := [3]int{}
	for i := range channels {
		if i >= len(parts) {
			break
		}
		if n, err := strconv.Atoi(parts[i]); err == nil {
			channels[i] = n
		}
	}
	return fmt.Sprintf("%d, %d, %d", channels[0], channels[1], channels[2])
}

func isColor(tok *token.Token) bool {
	return tok.Type == token.TypeColor
}

// ColorRGB is "color/rgb": the value becomes its channel triple.
var ColorRGB = Transform{
	Name:    "color/rgb",
	Kind:    KindValue,
	Matcher: isColor,
	Value: func(tok *token.Token) any {
		return RGBTriple(tok.Value)
	},
}

// parseColor parses any CSS color into an sRGB color and an 8-bit alpha.
func parseColor(value string) (colorful.Color, uint8, error) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return colorful.Color{}, 0, err
	}
	rgb := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	alpha := uint8(math.Round(max(0, min(c.A, 1)) * 255))
	return rgb, alpha, nil
}

// HexColor normalizes any CSS color to lowercase #rrggbb, or #rrggbbaa when
// translucent.
func HexColor(value string) (string, error) {
	rgb, alpha, err := parseColor(value)
	if err != nil {
		return "", err
	}
	if alpha < 255 {
		return fmt.Sprintf("%s%02x", rgb.Hex(), alpha), nil
	}
	return rgb.Hex(), nil
}

// AndroidColor encodes a CSS color as Android's #aarrggbb.
func AndroidColor(value string) (string, error) {
	rgb, alpha, err := parseColor(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%s", alpha, strings.TrimPrefix(rgb.Hex(), "#")), nil
}

// stringColor adapts a string color encoder into a value transform function.
// Values it cannot encode are returned unchanged.
func stringColor(encode func(string) (string, error)) func(tok *token.Token) any {
	return func(tok *token.Token) any {
		s, ok := tok.Value.(string)
		if !ok {
			return tok.Value
		}
		out, err := encode(s)
		if err != nil {
			return tok.Value
		}
		return out
	}
}

// ColorHex is "color/hex".
var ColorHex = Transform{
	Name:    "color/hex",
	Kind:    KindValue,
	Matcher: isColor,
	Value:   stringColor(HexColor),
}

// ColorHex8Android is "color/hex8android".
var ColorHex8Android = Transform{
	Name:    "color/hex8android",
	Kind:    KindValue,
	Matcher: isColor,
	Value:   stringColor(AndroidColor),
}
