package reader

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// EncodingNames lists the accepted --encoding values.
var EncodingNames = []string{"utf-8", "utf-16", "utf-16le", "utf-16be", "latin-1"}

// LookupEncoding resolves an encoding name to its decoder. The empty name
// means UTF-8. A leading byte-order mark is honored for "utf-8" and
// "utf-16"; the explicit "utf-16le"/"utf-16be" variants fix the byte order
// regardless of any BOM.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch name {
	case "", "utf-8":
		return unicode.UTF8BOM, nil
	case "utf-16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "latin-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q (supported: %v)", name, EncodingNames)
	}
}
