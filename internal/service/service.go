// Package service is the core business logic layer.
//
// It sits between handlers and repositories: handlers hand it validated
// input, it applies the business rules and transaction boundaries, and
// repositories run the SQL.
package service
