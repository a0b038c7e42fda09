// Package server exposes the query service over HTTP.
//
// Routes:
//
//	GET /company/{companyID}/employees
//	GET /person/{personID}
//	GET /person/{personID}/friends_join/{person2ID}
//	GET /healthz
//
// Ids must be non-negative integers; anything else does not match a route and
// yields 404. Records that do not exist yield 404 with a JSON error body.
package server
