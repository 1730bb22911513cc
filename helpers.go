package rdispatch

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rohanthewiz/rdispatch/consts"
)

// ControllerName returns the conventional controller name for a controller param:
// "users" -> "UsersController", "user_sessions" -> "UserSessionsController".
func ControllerName(param string) string {
	if param == "" {
		return ""
	}
	return camelize(param) + consts.ControllerSuffix
}

// camelize upper cases the first letter of every underscore or dash separated word.
func camelize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, word := range strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' }) {
		r, size := utf8.DecodeRuneInString(word)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(word[size:])
	}
	return sb.String()
}
