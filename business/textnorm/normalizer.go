package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Mode selects the stopword policy of the pipeline.
type Mode int

const (
	// ModeCatalogName keeps short tokens so brand names such as "lg" survive.
	ModeCatalogName Mode = iota
	// ModeReviewSentence additionally drops tokens of two runes or fewer.
	ModeReviewSentence
)

func (m Mode) String() string {
	switch m {
	case ModeCatalogName:
		return "catalog"
	case ModeReviewSentence:
		return "review"
	default:
		return "unknown"
	}
}

// ParseMode maps "catalog" / "review" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "catalog", "catalog_name", "name":
		return ModeCatalogName, true
	case "review", "review_sentence", "sentence":
		return ModeReviewSentence, true
	default:
		return ModeCatalogName, false
	}
}

// Removing stopwords can make two surviving tokens adjacent that form a slang
// bigram, so Normalize re-runs the pass until it reaches a fixpoint.
const maxPasses = 4

const shortTokenLen = 2

var (
	mentionRe  = regexp.MustCompile(`@[A-Za-z0-9]+`)
	hashtagRe  = regexp.MustCompile(`#[A-Za-z0-9]+`)
	retweetRe  = regexp.MustCompile(`RT\s`)
	urlRe      = regexp.MustCompile(`http\S+`)
	digitRe    = regexp.MustCompile(`[0-9]+`)
	emojiRe    = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2700}-\x{27BF}\x{24C2}-\x{1F251}]+`)
	nonWordRe  = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	newlineRe  = regexp.MustCompile(`[\r\n]+`)
	caseFolder = cases.Fold()
)

// Normalizer is the text-cleaning pipeline shared by the recommender and the
// summarizer. A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	lexicon *Lexicon
	stemmer Stemmer
}

func NewNormalizer(lexicon *Lexicon, stemmer Stemmer) *Normalizer {
	return &Normalizer{
		lexicon: lexicon,
		stemmer: stemmer,
	}
}

// Normalize runs clean, casefold, stem, slang, tokenize, stopword filter and
// join, in that order. Blank input yields "".
func (n *Normalizer) Normalize(raw string, mode Mode) string {
	out := n.pass(raw, mode)
	for i := 1; i < maxPasses && out != ""; i++ {
		next := n.pass(out, mode)
		if next == out {
			break
		}
		out = next
	}
	return out
}

// Tokens is Normalize split on whitespace.
func (n *Normalizer) Tokens(raw string, mode Mode) []string {
	return strings.Fields(n.Normalize(raw, mode))
}

// Lexicon exposes the table the normalizer was built with.
func (n *Normalizer) Lexicon() *Lexicon {
	return n.lexicon
}

func (n *Normalizer) pass(text string, mode Mode) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = clean(text)
	if text == "" {
		return ""
	}

	text = caseFolder.String(text)

	text = n.stem(text)
	if text == "" {
		return ""
	}

	text = n.fixSlang(text)

	tokens := strings.Fields(text)
	tokens = n.filter(tokens, mode)

	return strings.Join(tokens, " ")
}

func clean(text string) string {
	text = norm.NFKC.String(text)
	text = mentionRe.ReplaceAllString(text, "")
	text = hashtagRe.ReplaceAllString(text, "")
	text = retweetRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = digitRe.ReplaceAllString(text, "")
	text = emojiRe.ReplaceAllString(text, "")
	text = nonWordRe.ReplaceAllString(text, "")
	text = newlineRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stem works on the unsegmented string so that the slang and stopword tables,
// which are keyed on stemmed forms, see every token. Tokens joined with "_"
// come from slang phrases and are left alone.
func (n *Normalizer) stem(text string) string {
	words := strings.Fields(text)
	if n.stemmer == nil {
		return strings.Join(words, " ")
	}

	for i, w := range words {
		if strings.Contains(w, "_") {
			continue
		}
		if s := n.stemmer.Stem(w); s != "" {
			words[i] = s
		}
	}
	return strings.Join(words, " ")
}

// fixSlang substitutes unigrams first, then scans the substituted tokens left
// to right replacing non-overlapping bigrams.
func (n *Normalizer) fixSlang(text string) string {
	if n.lexicon == nil {
		return text
	}

	words := strings.Fields(text)
	unigrams := make([]string, len(words))
	for i, w := range words {
		if v, ok := n.lexicon.unigram(w); ok {
			unigrams[i] = v
			continue
		}
		unigrams[i] = w
	}

	out := make([]string, 0, len(unigrams))
	for i := 0; i < len(unigrams); i++ {
		if i+1 < len(unigrams) {
			if v, ok := n.lexicon.bigram(unigrams[i], unigrams[i+1]); ok {
				out = append(out, v)
				i++
				continue
			}
		}
		out = append(out, unigrams[i])
	}

	return strings.Join(out, " ")
}

func (n *Normalizer) filter(tokens []string, mode Mode) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if n.lexicon != nil && n.lexicon.IsStopword(t) {
			continue
		}
		if mode == ModeReviewSentence && utf8.RuneCountInString(t) <= shortTokenLen {
			continue
		}
		out = append(out, t)
	}
	return out
}
