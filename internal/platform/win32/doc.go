// Package win32 provides the Windows platform backend: window class lookup
// through user32 and the keyboard input locale of the foreground thread.
// On other systems only the layout helpers compile and no provider is
// registered.
package win32
