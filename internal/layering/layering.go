// Package layering computes parallel-execution layers over a declared
// dependency structure using Kahn-style topological batching.
package layering

// Compute batches step ids into execution layers. Each iteration collects
// every not-yet-placed id whose dependencies are all already placed; that
// batch becomes the next layer, so ids within a layer are mutually
// independent. The ids slice fixes iteration order, which keeps layer
// contents deterministic. deps maps an id to the ids it depends on;
// dependencies pointing outside the id set never become satisfied.
//
// If an iteration places nothing (a cycle, or a dangling dependency), all
// remaining ids are forced into one final layer instead of looping forever.
// That fallback layer is not a correct schedule for cyclic input; callers
// must pair this with validation to get a trustworthy cycle diagnosis.
func Compute(ids []string, deps map[string][]string) [][]string {
	placed := make(map[string]bool, len(ids))
	var layers [][]string

	for len(placed) < len(ids) {
		var layer []string
		for _, id := range ids {
			if placed[id] {
				continue
			}
			ready := true
			for _, dep := range deps[id] {
				if !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				layer = append(layer, id)
			}
		}

		if len(layer) == 0 {
			// Cycle or unknown dependency: dump the leftovers into a
			// single terminal layer rather than spinning.
			for _, id := range ids {
				if !placed[id] {
					layer = append(layer, id)
				}
			}
			layers = append(layers, layer)
			return layers
		}

		for _, id := range layer {
			placed[id] = true
		}
		layers = append(layers, layer)
	}

	return layers
}

// MaxParallelism returns the size of the widest layer, i.e. the number of
// steps eligible to run at the same time.
func MaxParallelism(layers [][]string) int {
	max := 0
	for _, layer := range layers {
		if len(layer) > max {
			max = len(layer)
		}
	}
	return max
}
