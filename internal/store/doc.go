// Package store provides the Redis implementation of the expload.Store
// interface and defines the hash-name constants shared with the online
// serving side.
package store
