package bundle

import "strings"

// relevantExtensions is the fixed allow-list of extensions considered for
// classification at all. Anything else is dropped from the scan without an
// error or a record.
var relevantExtensions = []string{
	".json", ".yaml", ".yml", ".md", ".txt", ".py", ".ts", ".js",
}

// Relevant reports whether a file name is a candidate for classification.
// Matching is case-insensitive on the file name's suffix.
func Relevant(fileName string) bool {
	lower := strings.ToLower(fileName)
	for _, ext := range relevantExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// RelevantExtensions returns a copy of the allow-list, for display in help
// text and scan summaries.
func RelevantExtensions() []string {
	exts := make([]string, len(relevantExtensions))
	copy(exts, relevantExtensions)
	return exts
}
