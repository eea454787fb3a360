// Package ent holds the generated entity client. Run `go generate ./ent`
// after editing schemas; generated code is not committed.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
