package htmlbridge

// DeviceContext is an opaque paint-target token. The caller passes it to
// Document.Draw and receives it back, untouched, in every drawing callback.
// The bridge never interprets it.
type DeviceContext uint64

// FontHandle is an opaque font token allocated by the caller's create-font
// callback and owned by the caller's font subsystem. Handle 0 means
// "no font". Each allocated handle is released by exactly one delete-font
// call, at the latest during document teardown.
type FontHandle uint64
