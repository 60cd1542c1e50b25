// Package ui contains the Bubble Tea program that presents the launcher menu.
// The Model only translates terminal messages into selection events and
// draws the result; all selection semantics live in internal/ui/state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg has one focused handler.
//   - Key presses are decoded by the key map (keys.go) into state.Event values
//     and handed to state.Session.Step exactly once per press.
//   - When Step reports a terminal outcome the model records it and quits; the
//     caller reads it back with Model.Result and performs the exit effect after
//     the terminal has been released.
//
// Candidates normally arrive fully built. In fast-start mode the model is
// created with a Loader instead; it runs as a tea.Cmd and the result is
// delivered as a candidatesLoadedMsg, while the query stays editable.
package ui
