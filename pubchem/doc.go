// Package pubchem retrieves molecular bond connectivity from the PubChem
// PUG REST API.
//
// For a compound name, the client fetches the full compound record
// (GET {base}/compound/name/{name}/JSON) and extracts the bond table
// (PC_Compounds[0].bonds.aid1/aid2). PubChem atom ids are 1-based; the
// client shifts them to 0-based so downstream documents use the same
// index origin as the rest of the system.
//
// Outbound calls run through a sony/gobreaker circuit breaker: after a
// run of consecutive failures the breaker opens and subsequent fetches
// fail immediately until the cool-down elapses, sparing the remote API
// during outages. Timeouts come from the caller's context plus the
// client-level HTTP timeout.
//
// FetchAll is the batch entry point and never fails: every per-name
// error is logged and recorded as the standard "edge relations not
// found" marker, matching the retrieval contract the aggregator expects.
package pubchem
