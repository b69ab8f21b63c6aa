// Package seqgen generates synthetic sequences and corrupted variants of
// them over a caller-chosen alphabet, for exercising the alignment engine
// without hand-typed test fixtures: the benchmark and profiling harnesses,
// the demo binary, and the web UI's "generate a random pair" feature all
// build their inputs here. The alignment engine itself is alphabet-agnostic
// (it aligns arbitrary byte strings), so nothing here is tied to nucleotide
// data - DefaultAlphabet just picks a readable four-symbol default.
package seqgen

import (
	"math/rand"
	"time"
)

// DefaultAlphabet is used by the package-level functions and by New when
// given a nil/empty alphabet.
var DefaultAlphabet = []byte("ACGT")

// Generator produces random sequences and corrupted variants of them over
// one alphabet, holding its own random source rather than a package-global
// one so two generators (e.g. a batch harness's query generator and its
// reference generator) never contend on the same *rand.Rand.
type Generator struct {
	alphabet []byte
	rng      *rand.Rand
}

// New returns a Generator over alphabet seeded from seed. A nil or empty
// alphabet falls back to DefaultAlphabet.
func New(alphabet []byte, seed int64) *Generator {
	if len(alphabet) == 0 {
		alphabet = DefaultAlphabet
	}
	return &Generator{alphabet: alphabet, rng: rand.New(rand.NewSource(seed))}
}

var defaultGen = New(nil, time.Now().UnixNano())

// RandomSequence returns a random sequence of the given length over the
// default alphabet.
func RandomSequence(length int) string {
	return defaultGen.RandomSequence(length)
}

// WithSNP returns a copy of original with a single symbol changed at
// position. See Generator.WithSNP.
func WithSNP(original string, position int) string {
	return defaultGen.WithSNP(original, position)
}

// WithInsertion returns a copy of original with inserted spliced in at
// position. See Generator.WithInsertion.
func WithInsertion(original string, position int, inserted string) string {
	return defaultGen.WithInsertion(original, position, inserted)
}

// WithDeletion returns a copy of original with length symbols removed
// starting at position. See Generator.WithDeletion.
func WithDeletion(original string, position, length int) string {
	return defaultGen.WithDeletion(original, position, length)
}

// WithBurst returns a copy of original with a contiguous run of length
// symbols, starting at position, each replaced independently. See
// Generator.WithBurst.
func WithBurst(original string, position, length int) string {
	return defaultGen.WithBurst(original, position, length)
}

// WithMutations applies exactly numMutations distinct-position symbol
// changes to original. See Generator.WithMutations.
func WithMutations(original string, numMutations int) string {
	return defaultGen.WithMutations(original, numMutations)
}

// Consensus returns, for each position up to the shortest input's length,
// the most common symbol across all sequences, ties broken by the
// alphabet's own order. See Generator.Consensus.
func Consensus(sequences []string) string {
	return defaultGen.Consensus(sequences)
}

// RandomSequence returns a random sequence of the given length drawn
// uniformly from g's alphabet.
func (g *Generator) RandomSequence(length int) string {
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = g.alphabet[g.rng.Intn(len(g.alphabet))]
	}
	return string(seq)
}

// replacementFor draws a symbol from g's alphabet that differs from
// exclude, in a single draw: it samples an index into the
// len(alphabet)-1 symbols other than exclude's, then shifts past
// exclude's own slot if the draw landed on or past it. This never loops,
// unlike resampling until the draw happens to differ - which never
// terminates if the alphabet has only one symbol. Over a one-symbol
// alphabet there is no other symbol, and exclude itself is returned.
func (g *Generator) replacementFor(exclude byte) byte {
	if len(g.alphabet) <= 1 {
		return exclude
	}
	excludeIdx := -1
	for i, b := range g.alphabet {
		if b == exclude {
			excludeIdx = i
			break
		}
	}
	idx := g.rng.Intn(len(g.alphabet) - 1)
	if excludeIdx >= 0 && idx >= excludeIdx {
		idx++
	}
	return g.alphabet[idx]
}

// WithSNP returns a copy of original with a single symbol changed at
// position (a point substitution). Invalid positions return original
// unchanged, as does a one-symbol alphabet (see replacementFor).
func (g *Generator) WithSNP(original string, position int) string {
	if position < 0 || position >= len(original) {
		return original
	}
	seq := []byte(original)
	seq[position] = g.replacementFor(seq[position])
	return string(seq)
}

// WithInsertion returns a copy of original with inserted spliced in at
// position. Invalid positions return original unchanged.
func (g *Generator) WithInsertion(original string, position int, inserted string) string {
	if position < 0 || position > len(original) {
		return original
	}
	return original[:position] + inserted + original[position:]
}

// WithDeletion returns a copy of original with length symbols removed
// starting at position, clamped to the sequence's end.
func (g *Generator) WithDeletion(original string, position, length int) string {
	if position < 0 || position >= len(original) {
		return original
	}
	if position+length > len(original) {
		length = len(original) - position
	}
	return original[:position] + original[position+length:]
}

// WithBurst returns a copy of original with a contiguous run of length
// symbols, starting at position, each independently replaced - a
// clustered-corruption pattern distinct from WithMutations' scattered
// distinct-position changes, useful for exercising how a run of adjacent
// substitutions (as opposed to an isolated SNP or a clean indel) affects
// the reconstructed alignment. Invalid or zero-length runs return
// original unchanged; a run extending past the end is clamped.
func (g *Generator) WithBurst(original string, position, length int) string {
	if position < 0 || position >= len(original) || length <= 0 {
		return original
	}
	if position+length > len(original) {
		length = len(original) - position
	}
	seq := []byte(original)
	for i := position; i < position+length; i++ {
		seq[i] = g.replacementFor(seq[i])
	}
	return string(seq)
}

// WithMutations applies exactly numMutations distinct-position symbol
// changes to original, chosen at random non-repeating positions. A
// numMutations of zero or less, or greater than len(original), returns
// original unchanged.
func (g *Generator) WithMutations(original string, numMutations int) string {
	if numMutations <= 0 || numMutations > len(original) {
		return original
	}

	seq := []byte(original)
	mutated := make(map[int]bool, numMutations)

	for i := 0; i < numMutations; i++ {
		var position int
		for {
			position = g.rng.Intn(len(seq))
			if !mutated[position] {
				break
			}
		}
		mutated[position] = true
		seq[position] = g.replacementFor(seq[position])
	}
	return string(seq)
}

// Consensus returns, for each position up to the shortest input sequence's
// length, the most common symbol across all sequences. Ties are broken by
// the generator's alphabet order (the first alphabet symbol reaching the
// winning count wins), so the result is deterministic regardless of
// how Go happens to range over the vote tally.
func (g *Generator) Consensus(sequences []string) string {
	if len(sequences) == 0 {
		return ""
	}

	minLength := len(sequences[0])
	for _, seq := range sequences {
		if len(seq) < minLength {
			minLength = len(seq)
		}
	}

	consensus := make([]byte, minLength)
	for i := 0; i < minLength; i++ {
		counts := make(map[byte]int, len(g.alphabet))
		for _, seq := range sequences {
			counts[seq[i]]++
		}

		var best byte
		bestCount := 0
		for _, symbol := range g.alphabet {
			if counts[symbol] > bestCount {
				bestCount = counts[symbol]
				best = symbol
			}
		}
		if bestCount == 0 {
			// None of the votes at this position are in g's alphabet
			// (e.g. a consensus call over sequences from a different
			// generator); fall back to whatever the first sequence has.
			best = sequences[0][i]
		}
		consensus[i] = best
	}
	return string(consensus)
}
