// Package pipeline walks the transcript list and collects one Result per
// ID, in input order. It owns the error policy of a batch run: a failing
// transcript is downgraded to an empty record and the run continues,
// because a partial report beats no report.
package pipeline
