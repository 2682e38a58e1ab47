package script

import (
	"strings"
	"testing"
)

func joinedWords(phrases []Phrase) []string {
	var parts []string
	for _, p := range phrases {
		parts = append(parts, p.Text)
	}
	return strings.Fields(strings.Join(parts, " "))
}

func assertWordSequencePreserved(t *testing.T, input string, phrases []Phrase) {
	t.Helper()
	want := strings.Fields(input)
	got := joinedWords(phrases)
	if len(want) != len(got) {
		t.Fatalf("word count changed: want %d, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("word %d changed: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitPhrasesEmptyInput(t *testing.T) {
	if got := SplitPhrases("", SplitOptions{}); len(got) != 0 {
		t.Fatalf("expected no phrases, got %d", len(got))
	}
	if got := SplitPhrases("   \n\t ", SplitOptions{}); len(got) != 0 {
		t.Fatalf("expected no phrases for whitespace input, got %d", len(got))
	}
}

func TestSplitPhrasesSentenceBoundaries(t *testing.T) {
	input := "Nova 4.6 llegó. Pero nadie lo notó. ¿Será que ya nos acostumbramos?"
	phrases := SplitPhrases(input, SplitOptions{})

	if len(phrases) != 3 {
		t.Fatalf("expected 3 phrases, got %d: %+v", len(phrases), phrases)
	}
	if phrases[0].Text != "Nova 4.6 llegó." {
		t.Fatalf("decimal point must not end a sentence: %q", phrases[0].Text)
	}
	if phrases[2].Text != "¿Será que ya nos acostumbramos?" {
		t.Fatalf("unexpected final phrase %q", phrases[2].Text)
	}
	for i, p := range phrases {
		if p.Index != i {
			t.Fatalf("phrase %d has index %d", i, p.Index)
		}
		if p.WordCount < 1 {
			t.Fatalf("phrase %d has word count %d", i, p.WordCount)
		}
	}
	assertWordSequencePreserved(t, input, phrases)
}

func TestSplitPhrasesCommaAccumulation(t *testing.T) {
	input := "aaa bbb ccc ddd, eee fff ggg hhh, iii jjj kkk lll"
	phrases := SplitPhrases(input, SplitOptions{})

	if len(phrases) != 2 {
		t.Fatalf("expected 2 phrases, got %d: %+v", len(phrases), phrases)
	}
	if phrases[0].Text != "aaa bbb ccc ddd, eee fff ggg hhh," {
		t.Fatalf("completed accumulation should keep its trailing comma: %q", phrases[0].Text)
	}
	if phrases[1].Text != "iii jjj kkk lll" {
		t.Fatalf("last accumulation must not gain a comma: %q", phrases[1].Text)
	}
	assertWordSequencePreserved(t, input, phrases)
}

func TestSplitPhrasesConnectorCut(t *testing.T) {
	input := "The launch was delayed for almost a year because the supply chain collapsed overnight"
	phrases := SplitPhrases(input, SplitOptions{})

	if len(phrases) != 2 {
		t.Fatalf("expected 2 phrases, got %d: %+v", len(phrases), phrases)
	}
	if !strings.HasPrefix(phrases[1].Text, "because ") {
		t.Fatalf("connector should stay with the second half: %q", phrases[1].Text)
	}
	assertWordSequencePreserved(t, input, phrases)
}

func TestSplitPhrasesLeavesUnsplittableSentenceIntact(t *testing.T) {
	input := "This very long sentence keeps itself intact despite exceeding every configured limit"
	phrases := SplitPhrases(input, SplitOptions{})

	if len(phrases) != 1 {
		t.Fatalf("expected 1 intact phrase, got %d: %+v", len(phrases), phrases)
	}
	if phrases[0].CharCount <= defaultMaxCharsPerPhrase {
		t.Fatalf("test sentence should exceed the limit, got %d chars", phrases[0].CharCount)
	}
}

func TestSplitPhrasesShortPartsCombineForward(t *testing.T) {
	input := "Yes. It matters. Really it does."
	phrases := SplitPhrases(input, SplitOptions{})

	if len(phrases) != 2 {
		t.Fatalf("expected 2 phrases, got %d: %+v", len(phrases), phrases)
	}
	if phrases[0].Text != "Yes. It matters." {
		t.Fatalf("short parts should combine forward: %q", phrases[0].Text)
	}
	assertWordSequencePreserved(t, input, phrases)
}

func TestSplitPhrasesTrailingShortPartJoinsPrevious(t *testing.T) {
	input := "This is a fine opening sentence. The end."
	phrases := SplitPhrases(input, SplitOptions{})

	if len(phrases) != 1 {
		t.Fatalf("expected 1 phrase, got %d: %+v", len(phrases), phrases)
	}
	if phrases[0].Text != "This is a fine opening sentence. The end." {
		t.Fatalf("trailing short part should join the previous phrase: %q", phrases[0].Text)
	}
}

func TestJoinedConcatenatesSectionsInOrder(t *testing.T) {
	n := Narration{Hook: " A hook. ", Body: "The body.", CTA: "Follow for more."}
	if got := n.Joined(); got != "A hook. The body. Follow for more." {
		t.Fatalf("unexpected joined script %q", got)
	}
	if (Narration{}).IsEmpty() != true {
		t.Fatalf("empty narration should report empty")
	}
}
