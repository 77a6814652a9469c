// Package service keeps the home directory in sync with the stage.
//
// Three producers feed one queue of requests:
//
//   - a recursive filesystem watch on the stage; qualifying events re-arm
//     an apply debouncer and an update debouncer
//   - the two debouncers, each enqueueing one request once its delay has
//     passed without being re-armed
//   - a periodic timer enqueueing a pull every pull frequency, starting
//     immediately
//
// A single consumer drains the queue in arrival order and is the only code
// that runs operations, so applies, updates and pulls never overlap. A pull
// that succeeds is followed by an apply. Failed operations are logged and
// the consumer moves on.
package service
