// Package gate implements the ordered interceptor pipeline that admits or
// rejects inbound calls before they reach a handler.
//
// A Gate has two hooks. Admit runs once per call, before the handler, and
// may attach values to the call context. Inspect runs for every inbound
// message, including each message of a client or bidi stream. The first
// gate to fail ends the call with its status; later gates never run.
package gate
