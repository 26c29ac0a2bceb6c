package db

import _ "embed"

// Schema is the full DDL for the service. Applied by the e2e harness and
// usable by deploy tooling.
//
//go:embed schema.sql
var Schema string
