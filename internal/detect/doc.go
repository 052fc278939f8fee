// Package detect holds the detection data model and the detectors that
// produce it: the primary model-output decoder with non-maximum
// suppression, and the four pixel-level heuristic detectors (human,
// vehicle, animal, machinery) used when the model is absent or finds
// too little.
package detect
