package service

import (
	"reflect"
	"testing"
)

func TestCountTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"  Hello   world  ", 2},
		{"one\ntwo\nthree", 3},
		{"a b c d", 4},
	}
	for _, tt := range tests {
		if got := countTokens(tt.text); got != tt.want {
			t.Errorf("countTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestCountUniqueWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Cat cat, dog!", 2},
		{"Hello hello HELLO", 1},
		{"(one) one. 'two'", 2},
	}
	for _, tt := range tests {
		if got := countUniqueWords(tt.text); got != tt.want {
			t.Errorf("countUniqueWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestCountChallengeHits(t *testing.T) {
	text := "I tried to Break The Ice with a story about an ABERRATION in the weather."
	if got := countChallengeHits(text, "aberration", "break the ice"); got != 2 {
		t.Errorf("hits = %d, want 2", got)
	}
	if got := countChallengeHits("nothing relevant here", "aberration", "break the ice"); got != 0 {
		t.Errorf("hits = %d, want 0", got)
	}
	if got := countChallengeHits("only the word aberration", "aberration", "break the ice"); got != 1 {
		t.Errorf("hits = %d, want 1", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First one. Second one? Third one! ")
	want := []string{"First one", "Second one", "Third one"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences = %v, want %v", got, want)
	}

	if got := splitSentences("   "); got != nil {
		t.Errorf("splitSentences(blank) = %v, want nil", got)
	}
}

func TestAverageSentenceLength(t *testing.T) {
	// 无句子时分母取1，避免除零
	if got := averageSentenceLength(nil); got != 0 {
		t.Errorf("avg(nil) = %f, want 0", got)
	}
	if got := averageSentenceLength([]string{"one two three", "four five"}); got != 2.5 {
		t.Errorf("avg = %f, want 2.5", got)
	}
}

func TestRewriteBestVersion(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"hello there. this is fine.", "Hello there. This is fine."},
		{"no trailing dot", "No trailing dot"},
		{"  spaced out .  second  ", "Spaced out. Second"},
		// 问号不参与best version的切分
		{"is it? maybe so.", "Is it? maybe so."},
	}
	for _, tt := range tests {
		if got := rewriteBestVersion(tt.text); got != tt.want {
			t.Errorf("rewriteBestVersion(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
