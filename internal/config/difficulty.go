package config

import "sort"

// ObstacleDelay returns the obstacle spawn delay for the given score by
// walking the difficulty steps. The schedule is a non-increasing step
// function: the delay of the highest step whose score threshold has been
// reached applies. With no steps configured the default schedule is used.
func ObstacleDelay(steps []DifficultyStep, score int) float64 {
	if len(steps) == 0 {
		steps = defaultDifficultySteps()
	}

	delay := steps[0].Delay
	for _, s := range steps {
		if score >= s.Score {
			delay = s.Delay
		} else {
			break
		}
	}
	return delay
}

// NormalizeDifficulty sorts steps by score threshold so ObstacleDelay can
// walk them in order regardless of how the YAML listed them.
func NormalizeDifficulty(steps []DifficultyStep) {
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].Score < steps[j].Score
	})
}

func defaultDifficultySteps() []DifficultyStep {
	return []DifficultyStep{
		{Score: 0, Delay: 2.0},
		{Score: 5, Delay: 1.7},
		{Score: 20, Delay: 1.4},
		{Score: 40, Delay: 1.1},
	}
}
