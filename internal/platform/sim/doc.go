// Package sim provides an in-memory host: a scripted remote accessibility
// tree with fault injection, a window class table, and output channels that
// record every call. It backs the replay and serve commands and the tests.
package sim
