package common

// IdentityMarker must appear in a login identity for it to be accepted.
const IdentityMarker = "@"
