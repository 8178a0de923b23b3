package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/funvibe/specblock/internal/types"
)

var (
	intRe   = regexp.MustCompile(`^(u?)int(\d*)$`)
	bytesRe = regexp.MustCompile(`^bytes(\d+)$`)
)

// MatchElementary recognizes a single elementary-type token (spec.md §4.B's
// regex rules) and returns the algebra type it denotes. It does not consult
// any scope; it is pure string matching, shared by ingestTypeName (fatal on
// miss) and detectBuiltinType (miss just means "not a builtin type name").
func MatchElementary(name string) (types.Type, bool) {
	switch name {
	case "bool":
		return types.Bool{}, true
	case "address":
		return types.Address{Payable: false}, true
	case "address payable":
		return types.Address{Payable: true}, true
	case "byte":
		return types.FixedBytes{Width: 1}, true
	case "bytes":
		return types.Bytes{}, true
	case "string":
		return types.String{}, true
	}

	if strings.HasPrefix(name, "int_const") {
		return types.IntLiteral{}, true
	}

	if m := intRe.FindStringSubmatch(name); m != nil {
		signed := m[1] == ""
		bits := 256
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, false
			}
			bits = n
		}
		if !isValidIntBits(bits) {
			return nil, false
		}
		return types.Int{Bits: bits, Signed: signed}, true
	}

	if m := bytesRe.FindStringSubmatch(name); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > 32 {
			return nil, false
		}
		return types.FixedBytes{Width: n}, true
	}

	return nil, false
}

func isValidIntBits(bits int) bool {
	return bits >= 8 && bits <= 256 && bits%8 == 0
}
