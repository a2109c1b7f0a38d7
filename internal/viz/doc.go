// Package viz provides terminal visualization for recorded and live signal
// runs: a Braille pixel canvas, asciigraph trace plots, and a Bubble Tea
// live view that steps a signal graph in real time.
package viz
