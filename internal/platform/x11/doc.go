// Package x11 implements the platform interfaces over an X11 connection
// using EWMH and ICCCM properties.
//
// Clients are discovered from the root window's _NET_CLIENT_LIST, so the
// adapter works next to any EWMH compliant window manager.
package x11
