// Package chain demonstrates the Chain of Responsibility pattern with a
// support desk: requests travel down a chain of handlers until one of them
// accepts the request type.
//
// Overview:
//
//   - Every handler runs the same skeleton (a template method):
//     1. if the request type matches, narrate the handling and stop;
//     2. otherwise, forward to the next handler;
//     3. at the end of the chain, drop the request silently.
//   - Concrete handlers differ only in the type they accept and the words
//     they narrate; see NewBasicSupportHandler, NewTechnicalSupportHandler and
//     NewBillingSupportHandler, or build your own with NewHandler.
//   - SetNext returns its argument, so chains read left to right:
//
//     basic.SetNext(technical).SetNext(billing)
//
// Observability:
//
//   - Forwarding and dropping are logged at debug level with the request ID;
//     nothing is narrated for them.
//
// Handle reports whether any handler accepted the request, so callers can
// detect drops without parsing output.
package chain
