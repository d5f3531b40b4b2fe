package alpha_abbrev

import (
	"sort"
	"strings"

	"github.com/wbrown/alpha_abbrev/resources"
)

type LexNode struct {
	letter   byte              // The letter this node represents.
	word     string            // The word ending here, if terminal.
	terminal bool              // If a lexicon word ends at this node.
	childs   map[byte]*LexNode // The child nodes.
	ordered  []*LexNode        // The child nodes, sorted by letter.
}

func newLexNode(letter byte) *LexNode {
	return &LexNode{
		letter: letter,
		childs: make(map[byte]*LexNode, 0),
	}
}

// Lexicon is a trie of words that abbreviations can be expanded against.
// It is not safe for concurrent Insert, but concurrent reads are fine.
type Lexicon struct {
	root  *LexNode
	count int
}

func NewLexicon(words ...string) *Lexicon {
	lex := &Lexicon{root: newLexNode(0)}
	for _, word := range words {
		lex.Insert(word)
	}
	return lex
}

// NewDefaultLexicon
// Returns a Lexicon loaded with the word list embedded in the binary.
func NewDefaultLexicon() (*Lexicon, error) {
	rsrc, err := resources.EmbeddedWordList()
	if err != nil {
		return nil, err
	}
	lex := NewLexicon(rsrc.Words()...)
	if err = rsrc.Cleanup(); err != nil {
		return nil, err
	}
	return lex, nil
}

// LoadLexicon
// Returns a Lexicon loaded from the word list at `uri`, a local path or an
// http(s) URL. Also returns the number of words that were rejected.
func LoadLexicon(uri string, cacheDir string) (*Lexicon, int, error) {
	rsrc, err := resources.OpenWordList(uri, cacheDir)
	if err != nil {
		return nil, 0, err
	}
	lex := NewLexicon()
	rejected := 0
	for _, word := range rsrc.Words() {
		if !lex.Insert(word) {
			rejected++
		}
	}
	if err = rsrc.Cleanup(); err != nil {
		return nil, 0, err
	}
	return lex, rejected, nil
}

// Insert adds `word` to the lexicon. Words that are not valid abbreviation
// sources are rejected and false is returned. Re-inserting a word is a no-op
// that returns true.
func (lex *Lexicon) Insert(word string) bool {
	if !isWord(word) {
		return false
	}
	node := lex.root
	for i := 0; i < len(word); i++ {
		letter := word[i]
		child, ok := node.childs[letter]
		if !ok {
			child = newLexNode(letter)
			node.childs[letter] = child
			idx := sort.Search(len(node.ordered), func(k int) bool {
				return node.ordered[k].letter >= letter
			})
			node.ordered = append(node.ordered, nil)
			copy(node.ordered[idx+1:], node.ordered[idx:])
			node.ordered[idx] = child
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		node.word = word
		lex.count++
	}
	return true
}

func (lex *Lexicon) Contains(word string) bool {
	node := lex.root
	for i := 0; i < len(word); i++ {
		child, ok := node.childs[word[i]]
		if !ok {
			return false
		}
		node = child
	}
	return node.terminal
}

func (lex *Lexicon) Len() int {
	return lex.count
}

// Words returns every word in the lexicon in lexical order.
func (lex *Lexicon) Words() []string {
	words := make([]string, 0, lex.count)
	lex.root.walk(0, func(node *LexNode) {
		if node.terminal {
			words = append(words, node.word)
		}
	})
	return words
}

// walk visits every node below `node`, depth first, in letter order. Nodes
// `depth` levels down are passed to `visit`; with a depth of 0 every
// descendant is visited.
func (node *LexNode) walk(depth int, visit func(*LexNode)) {
	for _, child := range node.ordered {
		if depth == 1 {
			visit(child)
			continue
		}
		if depth == 0 {
			visit(child)
			child.walk(0, visit)
		} else {
			child.walk(depth-1, visit)
		}
	}
}

// Expand
// Returns every word in the lexicon that `abbr` is a valid abbreviation of,
// in lexical order. The trie is walked with the same automaton as
// IsValidAbbreviation, so skips fan out over every branch at once.
func (lex *Lexicon) Expand(abbr string) []string {
	matches := make([]string, 0)
	if !isAbbreviation(abbr) {
		return matches
	}
	lex.root.expand(abbr, 0, false, &matches)
	sort.Strings(matches)
	return matches
}

func (node *LexNode) expand(abbr string, j int, prevWasSkip bool,
	matches *[]string) {
	if j == len(abbr) {
		if node.terminal {
			*matches = append(*matches, node.word)
		}
		return
	}
	token := abbr[j]
	skip := Rank(token)
	for _, child := range node.ordered {
		if child.letter == token {
			child.expand(abbr, j+1, false, matches)
			continue
		}
		// A skip can only start on a letter that isn't a literal match.
		if prevWasSkip {
			continue
		}
		if skip == 1 {
			child.expand(abbr, j+1, true, matches)
			continue
		}
		child.walk(skip-1, func(landing *LexNode) {
			landing.expand(abbr, j+1, true, matches)
		})
	}
}

// Represent the trie as a string by traversing it, and using tree
// characters to represent the structure. Terminal nodes are marked with `$`.
func (node *LexNode) string(level int) string {
	if node == nil {
		return ""
	}
	s := string(node.letter)
	if node.terminal {
		s += "$"
	}
	if len(node.ordered) == 1 {
		return s + node.ordered[0].string(level)
	}
	level += 1
	for idx, child := range node.ordered {
		childPrefix := "\n" + strings.Repeat("| ", level-1)
		if idx == len(node.ordered)-1 {
			childPrefix += "└─"
		} else {
			childPrefix += "├─"
		}
		s += childPrefix + child.string(level)
	}
	return s
}

func (lex *Lexicon) String() string {
	var b strings.Builder
	for _, child := range lex.root.ordered {
		b.WriteString(child.string(0))
		b.WriteByte('\n')
	}
	return b.String()
}
