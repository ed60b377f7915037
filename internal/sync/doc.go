// Package sync reconciles home fixtures against the operator's calendar.
//
// For each scheduled match it checks whether a matching event already exists
// (same calendar day, title containing both team names) and creates one
// otherwise. Outcomes are aggregated per match into created / existing /
// failed buckets; one match failing never aborts the rest of the batch.
// Running the reconciler twice over an unchanged calendar and fixture list
// creates nothing on the second run.
package sync
