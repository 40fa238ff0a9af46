// Package future provides combinators that compose a fixed number of
// poll-based futures into a single one.
//
// A [Future] is a single-shot unit of asynchronous work: polling it either
// completes it, yielding its value, or reports that it is still pending.
// This package does not run futures. Driving a future to completion is
// the job of an external executor, which polls the top-level future
// repeatedly until it completes. How the executor parks between polls and
// what wakes it up again are its own business; the combinators here only
// promise to make progress on every poll.
//
// Three compositions are provided, each at every arity from 2 to 8:
//
//   - [Join2] through [Join8] complete when all of their futures complete,
//     yielding every value in input order;
//   - [Race2] through [Race8] complete when any single one of their futures
//     completes, yielding the winning value tagged with its position;
//   - [RaceSame2] through [RaceSame8] are like Race, but require all their
//     futures to share one result type and yield the winning value alone.
//
// Combinators implement [Future] themselves, so they nest.
//
// # One Shared Wake-Up
//
// This package assumes the coarsest possible wake-up granularity: whatever
// mechanism resumes the executor does not say which future became
// unblocked. A combinator therefore re-polls every still-pending future
// on every poll. This amplifies polling when only one of many siblings
// actually made progress, but it can never miss a wake-up, and it keeps
// futures free of any registration protocol. A future that has already
// completed is never polled again; its value is held in place until the
// combinator completes.
//
// # Deterministic Sweep Order
//
// Within one poll, futures are always swept in input order. For Join this
// only determines the order of side effects, not the result, which is
// indexed by input position regardless of completion order. For Race and
// RaceSame it is the tie-break rule: the sweep stops at the first future
// found complete, so when several become ready at once, the lowest
// position wins. The remaining futures are abandoned. They are never
// polled again, their eventual values are never observed, and the
// combinator releases its references to them.
//
// # Single-Shot Polling
//
// Futures here are single-shot, like the ones this package produces:
// once Poll has returned true, the future must not be polled again.
// The combinators uphold this contract towards the futures they own, and
// expect it from their callers in return. Polling a completed combinator
// is a programming error and panics.
//
// # Concurrency
//
// There is none. Polling is a synchronous call, a combinator never blocks,
// and a combinator instance must only ever be touched by one goroutine at
// a time. Futures are moved into a combinator at construction and must
// not be polled by anyone else afterwards.
package future
