// Package dataprocessing implements the reconciliation and aggregation
// pipeline behind both retail dashboards. It handles the complete data
// lifecycle from Excel ingestion to the grouped and ranked datasets the
// presentation layer renders.
//
// # Architecture
//
// The pipeline runs the same five stages for each dashboard:
//
//  1. Loader: reads a workbook into typed records, normalizing join keys
//     to strings and defaulting missing values to zero
//  2. Cache: process-wide memoization of loaded workbooks by path
//  3. Joiner: left-joins the reference table with the transaction table
//  4. Derivation: computes totals, ratios, and value columns
//  5. Filter and Aggregator: narrows rows, then groups and ranks them
//
// # Data Flow
//
//	Workbook → Loader → Cache → Joiner → Derivation → Filter → Aggregator
//
// Flow is strictly one-directional and every stage produces new values;
// cached tables are never mutated, so concurrent requests can share them
// without locking.
//
// # Error Handling
//
// Loaders return load errors (file absent or unreadable) and schema errors
// (required column missing). Everything past the loader is pure arithmetic
// with zero-guarded ratios and cannot fail; an empty table flows through
// the whole pipeline and yields zero metrics and empty listings.
package dataprocessing
