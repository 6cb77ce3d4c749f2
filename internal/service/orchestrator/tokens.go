package orchestrator

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tkOnce sync.Once
	tk     *tiktoken.Tiktoken
)

// countTokens is a best-effort estimate for debug logging. Returns 0
// when the encoding cannot be loaded.
func countTokens(text string) int {
	tkOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		tk = enc
	})
	if tk == nil || text == "" {
		return 0
	}
	return len(tk.Encode(text, nil, nil))
}
