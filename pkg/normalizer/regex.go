package normalizer

import "regexp"

var whitespaceRegex = regexp.MustCompile(`\s+`)
