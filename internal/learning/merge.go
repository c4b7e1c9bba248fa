package learning

// Pattern accumulation across conversations. Repeat observations of the
// same (agent, type) pair are merged rather than appended: frequency and
// effectiveness become observation-weighted running averages, confidence
// grows with the number of observations, and examples are kept up to a
// bounded window.

const (
	mergedExampleCap  = 10
	confidenceGrowth  = 0.05
	confidenceCeiling = 0.95
)

// MergePattern folds a fresh observation into an existing pattern of
// the same type. The existing pattern carries the accumulated history;
// the incoming one is a single-conversation detection.
func MergePattern(existing, incoming Pattern) Pattern {
	merged := existing

	oldN := float64(existing.Observations)
	if oldN < 1 {
		oldN = 1
	}
	newN := oldN + 1

	merged.Frequency = (existing.Frequency*oldN + incoming.Frequency) / newN
	merged.Effectiveness = (existing.Effectiveness*oldN + incoming.Effectiveness) / newN
	merged.Outcome = incoming.Outcome
	merged.LastObserved = incoming.LastObserved
	merged.Observations = existing.Observations + 1

	// Confidence starts from the stronger of the two detections and
	// grows with repeated observation.
	conf := existing.Confidence
	if incoming.Confidence > conf {
		conf = incoming.Confidence
	}
	bonus := float64(merged.Observations)
	if bonus > 10 {
		bonus = 10
	}
	conf += confidenceGrowth * bonus / 10
	if conf > confidenceCeiling {
		conf = confidenceCeiling
	}
	merged.Confidence = conf

	// Union of triggers
	seen := map[string]bool{}
	for _, trig := range existing.Triggers {
		seen[trig] = true
	}
	for _, trig := range incoming.Triggers {
		if !seen[trig] {
			merged.Triggers = append(merged.Triggers, trig)
			seen[trig] = true
		}
	}

	merged.Examples = append(merged.Examples, incoming.Examples...)
	if len(merged.Examples) > mergedExampleCap {
		merged.Examples = merged.Examples[len(merged.Examples)-mergedExampleCap:]
	}

	return merged
}
