// Package sentiment implements the keyword-based journal text classifier.
// It produces a polarity score, a dominant emotion label, and a
// safety-risk flag from fixed lexicons, with no learned model and no I/O.
package sentiment
