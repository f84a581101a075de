// Package user defines the account identity record and its persistence
// contract. User IDs are immutable 15-character sortable identifiers
// (see core/token); usernames are unique; display metadata is mutable.
package user
