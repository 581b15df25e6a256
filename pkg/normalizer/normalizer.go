package normalizer

import (
	"strings"
	"time"
	"unicode"

	"github.com/formkit/brformat/pkg/charfilter"
)

// TrimMode selects which surrounding whitespace Normalize removes.
type TrimMode int

const (
	// TrimFull removes leading and trailing whitespace. The default.
	TrimFull TrimMode = iota
	// TrimLeft removes leading whitespace only.
	TrimLeft
	// TrimRight removes trailing whitespace only.
	TrimRight
	// TrimNone leaves whitespace in place.
	TrimNone
)

// displayFormat tags the punctuation rule Format applies after normalizing.
type displayFormat int

const (
	displayNone displayFormat = iota
	displayPhone
	displayPostCode
	displayPassport
	displayIDCard
	displayCPF
	displayCNPJ
	displayDate
)

// Normalizer is an immutable text normalizer. The zero value trims
// surrounding whitespace and nothing else.
type Normalizer struct {
	remove   string
	trim     TrimMode
	keep     charfilter.Predicate
	upper    bool
	fold     bool
	collapse bool
	display  displayFormat
	layout   string
}

// Option configures a Normalizer at construction time.
type Option func(*Normalizer)

// WithRemove removes every occurrence of the given characters before
// trimming.
func WithRemove(chars string) Option {
	return func(n *Normalizer) { n.remove = chars }
}

// WithTrim sets the trim mode.
func WithTrim(mode TrimMode) Option {
	return func(n *Normalizer) { n.trim = mode }
}

// WithKeep keeps only characters satisfying the predicate, dropping the
// rest. Applied after removal and trimming.
func WithKeep(keep charfilter.Predicate) Option {
	return func(n *Normalizer) { n.keep = keep }
}

// WithUppercase uppercases the normalized text.
func WithUppercase() Option {
	return func(n *Normalizer) { n.upper = true }
}

// WithFoldDiacritics replaces accented characters with their base form.
func WithFoldDiacritics() Option {
	return func(n *Normalizer) { n.fold = true }
}

// WithCollapseWhitespace replaces runs of whitespace with a single space.
func WithCollapseWhitespace() Option {
	return func(n *Normalizer) { n.collapse = true }
}

// New returns a Normalizer built from the given options. Without options it
// only trims surrounding whitespace.
func New(opts ...Option) Normalizer {
	var n Normalizer
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Normalize rewrites text into its canonical storage form. It never fails;
// empty input yields an empty string.
func (n Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	for _, r := range n.remove {
		text = strings.ReplaceAll(text, string(r), "")
	}

	switch n.trim {
	case TrimFull:
		text = strings.TrimSpace(text)
	case TrimLeft:
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	case TrimRight:
		text = strings.TrimRightFunc(text, unicode.IsSpace)
	}

	if n.fold {
		text = FoldDiacritics(text)
	}
	if n.collapse {
		text = whitespaceRegex.ReplaceAllString(text, " ")
	}
	if n.keep != nil {
		text = charfilter.Filter(text, n.keep)
	}
	if n.upper {
		text = strings.ToUpper(text)
	}

	return text
}

// Format renders text for display: it normalizes first, then applies the
// format's punctuation rule. Fixed-length formats return the normalized text
// unchanged when its length does not match the format.
func (n Normalizer) Format(text string) string {
	t := n.Normalize(text)

	switch n.display {
	case displayPhone:
		// (12) 3456 7890 or (12) 3456 78901
		if len(t) != 10 && len(t) != 11 {
			return t
		}
		return "(" + t[0:2] + ") " + t[2:6] + " " + t[6:]
	case displayPostCode:
		if len(t) != 8 {
			return t
		}
		return t[0:5] + "-" + t[5:8]
	case displayPassport:
		if len(t) != 8 {
			return t
		}
		return t[0:2] + " " + t[2:5] + " " + t[5:8]
	case displayIDCard:
		if len(t) != 9 {
			return t
		}
		return t[0:4] + "." + t[4:8] + "-" + t[8:9]
	case displayCPF:
		if len(t) != 11 {
			return t
		}
		return t[0:3] + "." + t[3:6] + "." + t[6:9] + "-" + t[9:11]
	case displayCNPJ:
		if len(t) != 14 {
			return t
		}
		return t[0:2] + "." + t[2:5] + "." + t[5:8] + "/" + t[8:12] + "-" + t[12:14]
	case displayDate:
		d, err := time.Parse(dateLayout, strings.TrimSpace(t))
		if err != nil {
			return t
		}
		return d.Format(n.layout)
	}

	return t
}
