// Package cli implements the onthisday command line interface: the
// interactive daily quiz, history stats, a reset command and result sharing.
package cli
