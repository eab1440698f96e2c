//go:build !ebiten

// Package app provides the ebiten window renderer. Headless builds leave the
// "window" renderer unregistered.
package app

// Available reports whether the window renderer was compiled in.
const Available = false
