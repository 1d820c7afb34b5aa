// Package event defines the immutable audit record appended alongside every
// load mutation, the closed event-type vocabulary, and one typed payload per
// event type.
//
// Events are append-only: once created they are never mutated or deleted.
// Within a single load's stream they are ordered by creation time, with ties
// broken by insertion order of the backing store.
//
// Payloads are a tagged union rather than a free-form key/value record, so the
// compiler enforces that each event type carries exactly the fields it needs
// and that every switch over the vocabulary is exhaustive.
package event
