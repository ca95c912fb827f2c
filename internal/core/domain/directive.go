package domain

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

const directivePrefix = "cargo::"

// LinkDirectives tells the surrounding build where the compiled library lives and what to link.
type LinkDirectives struct {
	SearchDir string
	Library   string
}

// Lines renders the directives, one per line, without trailing newlines.
// It fails if a value would corrupt the directive stream.
func (d LinkDirectives) Lines() ([]string, error) {
	if err := checkDirectiveText(d.SearchDir); err != nil {
		return nil, zerr.With(err, "path", d.SearchDir)
	}
	if err := checkDirectiveText(d.Library); err != nil {
		return nil, zerr.With(err, "library", d.Library)
	}
	return []string{
		directivePrefix + "rustc-link-search=native=" + d.SearchDir,
		directivePrefix + "rustc-link-lib=" + d.Library,
	}, nil
}

func checkDirectiveText(s string) error {
	if s == "" {
		return zerr.Wrap(ErrEncoding, "empty value")
	}
	if !utf8.ValidString(s) {
		return zerr.Wrap(ErrEncoding, "not valid UTF-8")
	}
	if strings.ContainsAny(s, "\r\n") {
		return zerr.Wrap(ErrEncoding, "contains a line break")
	}
	return nil
}
