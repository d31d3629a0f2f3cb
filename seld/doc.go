// Package seld implements the joint evaluation metrics for sound event
// localization and detection (SELD) systems proposed in Mesaros et al.,
// "Joint Measurement of Localization and Detection of Sound Events",
// WASPAA 2019.
//
// Responsibilities: block-by-block accumulation of detection and
// localization counters from ground-truth and predicted class/DOA
// annotations, derivation of the location-sensitive detection scores
// (error rate, F-score) and the class-sensitive localization scores
// (mean angular error, matched-pair F-score), and the early-stopping
// composite used for model selection.
// Key types: Accumulator, Config, Scores, Counts.
//
// Annotation loading, command-line drivers and plotting live with the
// callers; this package consumes already-parsed per-block maps and
// returns scores.
package seld
