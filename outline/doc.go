// Package outline computes the cloud outline geometry: jittered point rings
// around the text center, their moving-average smoothing, and the cubic
// Bezier paths fitted through them for vector export.
//
// All functions are pure. Rings are recomputed for every render and never
// cached.
package outline
