// Package auth implements named authentication schemes. A scheme is
// registered once during bootstrap and only enforced on routes that opt in
// through Require; everything else passes untouched. Registries are
// per-instance so independently configured servers never share schemes.
package auth
