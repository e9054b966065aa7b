// Package notifier shares a finished day's game result.
//
// The Notifier interface has two implementations: a Twitter notifier that
// posts the share text using credentials from the environment, and a dry-run
// notifier that prints what would be posted. The share text is the familiar
// score line plus a row of squares, one per question.
package notifier
