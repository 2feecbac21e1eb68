// Package server hosts the Fiber application context and the ordered
// bootstrap sequence that assembles it: resource loading, the named auth
// scheme, content negotiation, access logging, route registration, and the
// not-found fallback. Each stage mutates the shared App exactly once before
// the engine starts listening; nothing touches routing or middleware after
// that. Exports stay narrow and take explicit dependencies so the
// composition can be exercised entirely in-memory through App.Test.
package server
