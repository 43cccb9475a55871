package tui

import "strings"

const maxPromptHistory = 200

// promptHistory 是终端输入的上下箭头历史，只在本次运行内有效。
// back 表示从最新一条往回走了几步，0 即未在浏览。
type promptHistory struct {
	entries []string
	back    int
	draft   string
}

// Add 记录一条输入并结束浏览。连续重复的输入只记一次。
func (h *promptHistory) Add(text string) {
	defer h.ResetBrowsing()
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == text {
		return
	}
	h.entries = append(h.entries, text)
	if over := len(h.entries) - maxPromptHistory; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
}

func (h *promptHistory) Len() int { return len(h.entries) }

func (h *promptHistory) ResetBrowsing() {
	h.back = 0
	h.draft = ""
}

// Prev 往回一步，停在最早一条。刚开始浏览时记下 current 作为草稿。
func (h *promptHistory) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.back == 0 {
		h.draft = current
	}
	if h.back < len(h.entries) {
		h.back++
	}
	return h.entries[len(h.entries)-h.back], true
}

// Next 往前一步，越过最新一条时还原草稿；未在浏览时返回 false。
func (h *promptHistory) Next() (string, bool) {
	if h.back == 0 {
		return "", false
	}
	h.back--
	if h.back == 0 {
		return h.draft, true
	}
	return h.entries[len(h.entries)-h.back], true
}
