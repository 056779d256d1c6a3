package nfakit

// Version is the toolkit release version. Overridable at build time via
// -ldflags "-X github.com/nfakit/nfakit.Version=...".
var Version = "0.1.0"
