/*
Package session implements the interactive traversal engine: a console-loop
state machine that walks a story tree from its root to a leaf, driven by
numeric choices read one line at a time.

The loop is a pure forward walk. It renders the current node, lists its
children as a numbered menu, validates the reply (empty, non-numeric and
out-of-range inputs each re-prompt with a specific message) and moves to the
chosen child. End-of-input ends the session gracefully; a cyclic graph can
loop forever, which is accepted behavior.

I/O is injectable, so tests drive a session by scripting input lines into a
buffer instead of a live terminal.
*/
package session
