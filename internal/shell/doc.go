// Package shell is the interactive foodchat terminal front end.
//
// It owns the user's dialogue session, turns input lines into engine calls,
// and draws the transcript, the order notice and the orders panel. Typical
// flow: /login with an email, chat freely, and look at the orders panel when
// the assistant refreshes it.
//
// Commands:
//   - /help             show available commands
//   - /login [email]    start a session (prompts for the email when omitted)
//   - /logout           end the session and drop the transcript
//   - /orders           show the orders panel
//   - /history          redraw the whole transcript
//   - /exit | /quit     leave the program
//
// Any other line is sent to the assistant. The REPL is started via App.Run,
// which blocks until the user exits, input ends, or the process is signalled.
package shell
