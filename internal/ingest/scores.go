package ingest

import "math/rand/v2"

// ScoreSource supplies default contact scores for people rows that carry no
// parsable contact_score value. The source dashboard assigned a
// pseudo-random value in [1,100]; that non-determinism is preserved as the
// default here but kept behind this interface so tests and deployments can
// pin a deterministic source instead.
type ScoreSource interface {
	Next() int
}

type randomScores struct {
	r *rand.Rand
}

// NewRandomScores returns a ScoreSource yielding pseudo-random scores in
// [1,100]. A zero seed produces an unseeded, non-deterministic source
// matching the original behavior.
func NewRandomScores(seed uint64) ScoreSource {
	if seed == 0 {
		return randomScores{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return randomScores{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s randomScores) Next() int {
	return s.r.IntN(100) + 1
}

// FixedScore is a ScoreSource that always yields the same value.
type FixedScore int

// Next implements ScoreSource.
func (f FixedScore) Next() int { return int(f) }
