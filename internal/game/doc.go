// Package game implements the daily trivia game engine.
//
// A game session owns one State: the player's progress through today's fixed
// set of questions, the articles mentioned so far, and the long-term per-day
// answer history. The Engine exposes the session operations — Load,
// SubmitAnswer, Advance, Reset — each of which returns one variant of the
// closed Result set and persists the state before returning.
//
// Loading reconciles restored state against today's date: a finished previous
// day rolls over into a fresh game, an unfinished same-day game resumes, and
// a finished same-day game stays finished until tomorrow. Selection of each
// question pair is deterministic per calendar date, so restarting mid-game
// reproduces the question on screen.
package game
