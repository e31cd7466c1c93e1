package utils

import (
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// RenderTemplate replaces {{ name }} placeholders with values. Unknown
// placeholders are left untouched.
func RenderTemplate(tmpl string, values map[string]string) string {
	return fasttemplate.ExecuteFuncString(tmpl, "{{", "}}", func(w io.Writer, tag string) (int, error) {
		v, ok := values[strings.TrimSpace(tag)]
		if !ok {
			return w.Write([]byte("{{" + tag + "}}"))
		}
		return w.Write([]byte(v))
	})
}
