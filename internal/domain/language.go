package domain

// SupportedLanguages is the fixed, ordered set of languages the platform
// accepts. Initialized once at process start and never mutated.
var SupportedLanguages = []string{
	"python",
	"javascript",
	"java",
	"go",
	"rust",
	"cpp",
}

// IsSupportedLanguage reports whether lang is a member of SupportedLanguages.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
