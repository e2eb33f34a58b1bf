package rasterizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// lookupEncoding resolves a user-facing encoding name against the IANA
// registry first, then the WHATWG index, which accepts looser aliases.
// Names like "latin-1" that appear in neither registry are retried with
// separators stripped ("latin1").
func lookupEncoding(name string) (encoding.Encoding, error) {
	candidates := []string{name}
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, name)
	if stripped != name {
		candidates = append(candidates, stripped)
	}

	for _, cand := range candidates {
		if enc, err := ianaindex.IANA.Encoding(cand); err == nil && enc != nil {
			return enc, nil
		}
		if enc, err := htmlindex.Get(cand); err == nil && enc != nil {
			return enc, nil
		}
	}
	return nil, &UnknownEncodingError{Name: name}
}

// decodeCharset maps each of the 256 character codes to its character
// under the named encoding. Codes the encoding leaves undefined map to
// utf8.RuneError, whose glyph the font resolves like any other missing
// character.
func decodeCharset(name string) ([256]rune, error) {
	var table [256]rune

	enc, err := lookupEncoding(name)
	if err != nil {
		return table, err
	}

	dec := enc.NewDecoder()
	for code := 0; code < len(table); code++ {
		decoded, err := dec.Bytes([]byte{byte(code)})
		if err != nil || len(decoded) == 0 {
			table[code] = utf8.RuneError
			continue
		}
		r, _ := utf8.DecodeRune(decoded)
		table[code] = r
	}
	return table, nil
}
