// Package fonts provides a handle registry for the caller's font subsystem.
//
// The bridge's create-font capability must return an opaque integer token and
// the delete-font capability must release it exactly once. Registry does the
// bookkeeping for hosts that keep real font objects on the Go side:
//
//	reg := fonts.NewRegistry()
//
//	table := &container.Table{
//	    CreateFont: func(ud any, d *container.FontDescriptionRef, m *abi.FontMetrics) htmlbridge.FontHandle {
//	        face := openFace(d.Family(), d.Size())
//	        fillMetrics(m, face)
//	        return reg.Create(face)
//	    },
//	    DeleteFont: func(ud any, h htmlbridge.FontHandle) {
//	        reg.Release(h)
//	    },
//	}
//
// Handle 0 is reserved and always invalid. Release reports whether the
// handle was live, so double releases are detectable. Faces implementing
// Dropper get their Drop method called on release. Observers can subscribe
// to allocation/release events, which is how the leak checks in this
// repository's tests verify font-handle balance.
package fonts
