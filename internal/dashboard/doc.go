// Package dashboard holds the dashboard's state: the chat session, the file
// registry, the file modal and the health indicator. Every transition is a
// pure function returning a new value, so the terminal layer only runs
// effects and styles the view descriptions built here.
package dashboard
