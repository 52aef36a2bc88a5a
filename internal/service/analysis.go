package service

import (
	"strings"
	"unicode"
)

// 每个单词两侧要剥离的标点
const wordPunctuation = ".,!?;:\"'()"

// countTokens 统计空白分隔的非空片段数，换行视为空格
func countTokens(text string) int {
	return len(strings.Fields(strings.ReplaceAll(text, "\n", " ")))
}

// countUniqueWords 小写化并剥离两侧标点后去重计数
func countUniqueWords(text string) int {
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		w = strings.ToLower(strings.Trim(w, wordPunctuation))
		seen[w] = struct{}{}
	}
	return len(seen)
}

// countChallengeHits 统计挑战词和习语在文本中的命中数（大小写不敏感的子串匹配），范围0-2
func countChallengeHits(text, word, idiom string) int {
	lower := strings.ToLower(text)
	hits := 0
	if w := strings.ToLower(word); w != "" && strings.Contains(lower, w) {
		hits++
	}
	if i := strings.ToLower(idiom); i != "" && strings.Contains(lower, i) {
		hits++
	}
	return hits
}

// splitSentences 把 ? 和 ! 统一成 . 再按 . 切分，返回trim后的非空句子
func splitSentences(text string) []string {
	normalized := strings.NewReplacer("?", ".", "!", ".").Replace(text)
	var sentences []string
	for _, s := range strings.Split(normalized, ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// averageSentenceLength 平均每句单词数，分母至少为1避免除零
func averageSentenceLength(sentences []string) float64 {
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	n := len(sentences)
	if n < 1 {
		n = 1
	}
	return float64(total) / float64(n)
}

// rewriteBestVersion 只按 . 切分原文，去空格去空段、句首大写后用". "拼回；
// 原文以 . 结尾时补回结尾的点
func rewriteBestVersion(text string) string {
	var fragments []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			fragments = append(fragments, capitalizeFirst(s))
		}
	}
	best := strings.Join(fragments, ". ")
	if strings.HasSuffix(text, ".") {
		best += "."
	}
	return best
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
