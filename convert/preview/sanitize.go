package preview

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("div", "nav")
	p.AllowStyling()
	p.AllowAttrs("lang").OnElements("div")
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^chapter_[0-9]+$`)).OnElements("a")
	p.AllowAttrs("href").Matching(regexp.MustCompile(`^#chapter_[0-9]+$`)).OnElements("a")
	return p
})
