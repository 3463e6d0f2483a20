// Package board keeps the task collection and its kanban columns in step.
//
// A Store holds each task once in a canonical map and once in the ordered
// partition for its stage. Create, Update, Move and Delete are the only
// mutations and each leaves both views consistent before returning. The
// Controller sits in front of the store for the UI: it turns drag gestures
// into moves, projects the columns for rendering and emits notifications.
package board
