// Package similar scores catalog scenes by tag overlap with a current scene
// and draws a random sample of the qualifying candidates.
package similar

import (
	"math/rand"

	"github.com/scenebrowse/similar-scenes/internal/stash"
)

const (
	// MinMatchTags is the smallest tag overlap still considered a genuine
	// recommendation; anything below is noise.
	MinMatchTags = 2
	// MaxMatchTags is the largest overlap accepted; above it the candidate
	// is closer to a duplicate than a recommendation.
	MaxMatchTags = 7
	// DefaultSampleSize is the number of picks shown in the panel.
	DefaultSampleSize = 10
)

// Candidate is a catalog scene together with the tags it shares with the
// current scene. Candidates are built fresh on every selection call and
// never mutated afterwards.
type Candidate struct {
	Scene        stash.Scene
	MatchingTags []stash.Tag
}

// MatchCount returns the number of shared tags.
func (c Candidate) MatchCount() int {
	return len(c.MatchingTags)
}

// Select returns up to sampleSize candidates whose tag overlap with current
// falls within [MinMatchTags, MaxMatchTags], drawn uniformly at random
// without replacement. The current scene itself is never a candidate. The
// result is deterministic for a fixed rng and empty when current has no
// tags or nothing qualifies.
func Select(current stash.Scene, catalog []stash.Scene, sampleSize int, rng *rand.Rand) []Candidate {
	if sampleSize <= 0 || len(current.Tags) == 0 {
		return nil
	}
	currentTags := current.TagIDs()

	qualifying := make([]Candidate, 0, len(catalog))
	for _, scene := range catalog {
		if scene.ID == current.ID {
			continue
		}
		matching := intersectTags(scene.Tags, currentTags)
		if len(matching) < MinMatchTags || len(matching) > MaxMatchTags {
			continue
		}
		qualifying = append(qualifying, Candidate{Scene: scene, MatchingTags: matching})
	}
	return sample(qualifying, sampleSize, rng)
}

func intersectTags(tags []stash.Tag, ids map[string]struct{}) []stash.Tag {
	var matching []stash.Tag
	for _, tag := range tags {
		if _, ok := ids[tag.ID]; ok {
			matching = append(matching, tag)
		}
	}
	return matching
}

// sample performs a partial Fisher-Yates shuffle, swapping a uniformly
// chosen remaining element into each of the first k positions. Every
// k-subset of the candidates is equally likely.
func sample(candidates []Candidate, k int, rng *rand.Rand) []Candidate {
	if len(candidates) == 0 {
		return nil
	}
	if k > len(candidates) {
		k = len(candidates)
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:k:k]
}
