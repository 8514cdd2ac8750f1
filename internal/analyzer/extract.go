package analyzer

import "regexp"

// A URL candidate runs from the scheme up to the first whitespace, bracket or
// quote character. Purely lexical; no validation that the match is reachable
// or even well formed.
var urlPattern = regexp.MustCompile(`https?://[^\s'")(<>]+`)

// ExtractURLs pulls candidate URLs out of free-form text. Duplicates are
// collapsed, keeping first-seen order.
func ExtractURLs(text string) []string {
	if text == "" {
		return nil
	}

	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		urls = append(urls, m)
	}
	return urls
}
