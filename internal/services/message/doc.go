// Package message creates outbound messages and manages their lifecycle.
//
// A message is created with a fresh 10-digit numeric ID, classified exactly
// once as sent, stored or disregarded, and can later be looked up by ID or
// recipient or deleted by hash. The stored subset is mirrored to disk
// through a domain.MessageStore.
package message
