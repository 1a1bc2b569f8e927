// Package mbta is a thin client for the MBTA v3 JSON:API.
//
// It covers exactly the two endpoints the planner needs (/routes and
// /stops), authenticates with the x-api-key header, and retries transient
// failures (rate limits, server errors) with exponential backoff. All other
// errors pass through to the caller untouched.
package mbta
